package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jemtech/storefront/internal"
	"github.com/jemtech/storefront/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

func TestOrderParamsFor(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		wantCents int64
	}{
		{name: "whole dollars", price: 289, wantCents: 28900},
		{name: "two decimals", price: 289.99, wantCents: 28999},
		{name: "taxing float representation", price: 19.99, wantCents: 1999},
		{name: "free", price: 0, wantCents: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := OrderParamsFor(domain.Product{ID: "p", Name: "Product", Price: tt.price})
			assert.Equal(t, tt.wantCents, params.AmountCents)
			assert.Equal(t, "usd", params.Currency)
			assert.Equal(t, "Product", params.Description)
			assert.Equal(t, "p", params.ProductID)
		})
	}
}

func TestApprovalMessage(t *testing.T) {
	withName := ApprovalMessage(&Capture{PayerGivenName: "Taylor"})
	assert.Equal(t, "Payment complete! Thank you, Taylor. We will contact you about pickup or shipping.", withName)

	noName := ApprovalMessage(&Capture{})
	assert.Equal(t, "Payment complete! Thank you. We will contact you about pickup or shipping.", noName)
}

func TestNewButtonView(t *testing.T) {
	available := domain.Product{ID: "p1", Name: "Laptop", Price: 100, Available: boolPtr(true)}
	soldOut := domain.Product{ID: "p2", Name: "Phone", Price: 50, Available: boolPtr(false)}

	tests := []struct {
		name        string
		provider    Provider
		product     domain.Product
		wantEnabled bool
	}{
		{name: "enabled provider and available product", provider: NewMockProvider(), product: available, wantEnabled: true},
		{name: "sold out product", provider: NewMockProvider(), product: soldOut, wantEnabled: false},
		{name: "disabled provider", provider: NewDisabledProvider(), product: available, wantEnabled: false},
		{name: "nil provider", provider: nil, product: available, wantEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewButtonView(tt.provider, tt.product, LayoutHorizontal)
			assert.Equal(t, tt.wantEnabled, view.Enabled)
			assert.Equal(t, tt.product.ID, view.ProductID)
			assert.Equal(t, LayoutHorizontal, view.Layout)
		})
	}
}

func TestDisabledProvider(t *testing.T) {
	p := NewDisabledProvider()
	ctx := context.Background()

	assert.False(t, p.Enabled())

	_, err := p.CreateOrder(ctx, CreateOrderParams{ProductID: "x", AmountCents: 100})
	assert.ErrorIs(t, err, ErrProviderDisabled)

	_, err = p.CaptureOrder(ctx, "pi_123")
	assert.ErrorIs(t, err, ErrProviderDisabled)
}

func TestMockProvider_OrderFlow(t *testing.T) {
	p := NewMockProvider()
	ctx := context.Background()

	order, err := p.CreateOrder(ctx, CreateOrderParams{ProductID: "lt-1", Description: "Laptop", AmountCents: 28999, Currency: "usd"})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, int64(28999), order.AmountCents)

	capture, err := p.CaptureOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, capture.OrderID)
	assert.NotEmpty(t, capture.PayerGivenName)

	assert.Len(t, p.CallLog, 2)
}

func TestNewProvider(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		p, err := NewProvider(internal.PaymentConfig{Provider: "none"})
		require.NoError(t, err)
		assert.False(t, p.Enabled())
	})

	t.Run("empty defaults to none", func(t *testing.T) {
		p, err := NewProvider(internal.PaymentConfig{})
		require.NoError(t, err)
		assert.False(t, p.Enabled())
	})

	t.Run("stripe requires a key", func(t *testing.T) {
		_, err := NewProvider(internal.PaymentConfig{Provider: "stripe"})
		assert.ErrorIs(t, err, ErrInvalidAPIKey)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewProvider(internal.PaymentConfig{Provider: "paypal-classic"})
		assert.Error(t, err)
	})
}

func TestPublishableKey(t *testing.T) {
	stripe, err := NewStripeProvider(StripeConfig{APIKey: "sk_test_abc", PublishableKey: "pk_test_abc"})
	require.NoError(t, err)
	assert.Equal(t, "pk_test_abc", stripe.PublishableKey(), "the browser needs the key to confirm intents before capture")

	assert.Empty(t, NewDisabledProvider().PublishableKey())
	assert.Empty(t, NewMockProvider().PublishableKey(), "no client-side confirmation step in the mock flow")
}

func TestStripeConfig_IsTestMode(t *testing.T) {
	test := StripeConfig{APIKey: "sk_test_abc"}
	live := StripeConfig{APIKey: "sk_live_abc"}
	assert.True(t, test.IsTestMode())
	assert.False(t, live.IsTestMode())
}
