package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jemtech/storefront/internal/payment"
)

func TestCreateOrder(t *testing.T) {
	provider := payment.NewMockProvider()
	mux, _ := newTestMux(t, newTestCatalog(t, shopCatalog), provider)

	rec := doRequest(mux, http.MethodPost, "/shop/orders", strings.NewReader(`{"product_id": "lt-1"}`), nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, int64(28999), resp.Amount, "amount comes from the catalog, not the client")
	assert.Equal(t, "usd", resp.Currency)

	require.Len(t, provider.CallLog, 1)
	assert.Contains(t, provider.CallLog[0], "lt-1")
}

func TestCreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "invalid json", body: `{not json`, wantStatus: http.StatusBadRequest},
		{name: "missing product id", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "unknown product", body: `{"product_id": "nope"}`, wantStatus: http.StatusNotFound},
		{name: "sold out product", body: `{"product_id": "ph-1"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := newTestMux(t, newTestCatalog(t, shopCatalog), payment.NewMockProvider())

			rec := doRequest(mux, http.MethodPost, "/shop/orders", strings.NewReader(tt.body), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreateOrder_ProviderDisabled(t *testing.T) {
	mux, _ := newTestMux(t, newTestCatalog(t, shopCatalog), payment.NewDisabledProvider())

	rec := doRequest(mux, http.MethodPost, "/shop/orders", strings.NewReader(`{"product_id": "lt-1"}`), nil)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestCreateOrder_ProviderError(t *testing.T) {
	provider := payment.NewMockProvider()
	provider.CreateOrderFunc = func(ctx context.Context, params payment.CreateOrderParams) (*payment.Order, error) {
		return nil, errors.New("stripe is down")
	}
	mux, _ := newTestMux(t, newTestCatalog(t, shopCatalog), provider)

	rec := doRequest(mux, http.MethodPost, "/shop/orders", strings.NewReader(`{"product_id": "lt-1"}`), nil)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.NotContains(t, rec.Body.String(), "stripe is down", "provider errors never leak to the client")
}

func TestCaptureOrder(t *testing.T) {
	provider := payment.NewMockProvider()
	mux, _ := newTestMux(t, newTestCatalog(t, shopCatalog), provider)

	created := doRequest(mux, http.MethodPost, "/shop/orders", strings.NewReader(`{"product_id": "lt-1"}`), nil)
	require.Equal(t, http.StatusCreated, created.Code)

	var order struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(created.Body).Decode(&order))

	rec := doRequest(mux, http.MethodPost, "/shop/orders/"+order.ID+"/capture", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OrderID string `json:"order_id"`
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, order.ID, resp.OrderID)
	assert.Equal(t, "succeeded", resp.Status)
	assert.Equal(t, "Payment complete! Thank you, Taylor. We will contact you about pickup or shipping.", resp.Message)
}

func TestCaptureOrder_ClosesModal(t *testing.T) {
	provider := payment.NewMockProvider()
	mux, _ := newTestMux(t, newTestCatalog(t, shopCatalog), provider)

	opened := doRequest(mux, http.MethodPost, "/shop/products/lt-1/modal", nil, nil)
	require.Equal(t, http.StatusOK, opened.Code)

	created := doRequest(mux, http.MethodPost, "/shop/orders", strings.NewReader(`{"product_id": "lt-1"}`), opened)
	require.Equal(t, http.StatusCreated, created.Code)

	var order struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(created.Body).Decode(&order))

	captured := doRequest(mux, http.MethodPost, "/shop/orders/"+order.ID+"/capture", nil, opened)
	require.Equal(t, http.StatusOK, captured.Code)

	// The session's modal is gone after a successful capture
	closed := doRequest(mux, http.MethodPost, "/shop/modal/gallery", strings.NewReader("action=next"), opened)
	require.Equal(t, http.StatusOK, closed.Code)
	assert.NotContains(t, closed.Body.String(), "Dell Latitude")
}

func TestCaptureOrder_ProviderError(t *testing.T) {
	provider := payment.NewMockProvider()
	provider.CaptureOrderFunc = func(ctx context.Context, orderID string) (*payment.Capture, error) {
		return nil, errors.New("intent has not been confirmed")
	}
	mux, _ := newTestMux(t, newTestCatalog(t, shopCatalog), provider)

	req := httptest.NewRequest(http.MethodPost, "/shop/orders/pi_123/capture", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusPaymentRequired, rec.Code)

	// JSON clients get a structured error they can surface to the user
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "could not complete payment", body.Error.Message)
	assert.NotContains(t, body.Error.Message, "confirmed", "provider detail stays out of the response")
}

func TestCaptureOrder_UnknownOrder(t *testing.T) {
	mux, _ := newTestMux(t, newTestCatalog(t, shopCatalog), payment.NewMockProvider())

	rec := doRequest(mux, http.MethodPost, "/shop/orders/pi_missing/capture", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
