package storefront

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jemtech/storefront/internal/catalog"
	"github.com/jemtech/storefront/internal/handler"
	"github.com/jemtech/storefront/internal/payment"
	"github.com/jemtech/storefront/web"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestCatalog loads a catalog service from a literal JSON payload.
func newTestCatalog(t *testing.T, payload string) catalog.Service {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	overrides, err := catalog.NewOverrideStore(filepath.Join(dir, "overrides"))
	require.NoError(t, err)

	svc := catalog.NewService(overrides, "jemtech_products", catalog.NewFileSource(path), testLogger(), nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

// newFailedCatalog loads a catalog service whose source is unreachable.
func newFailedCatalog(t *testing.T) catalog.Service {
	t.Helper()

	dir := t.TempDir()
	overrides, err := catalog.NewOverrideStore(filepath.Join(dir, "overrides"))
	require.NoError(t, err)

	svc := catalog.NewService(overrides, "jemtech_products", catalog.NewFileSource(filepath.Join(dir, "missing.json")), testLogger(), nil)
	require.Error(t, svc.Load(context.Background()))
	return svc
}

func newTestRenderer(t *testing.T) *handler.Renderer {
	t.Helper()
	renderer, err := handler.NewRenderer(web.Templates, "templates")
	require.NoError(t, err)
	return renderer
}

// newTestMux wires the storefront handlers onto a mux the way the server
// does, so path values resolve in tests.
func newTestMux(t *testing.T, catalogService catalog.Service, provider payment.Provider) (*http.ServeMux, *SessionStore) {
	t.Helper()

	renderer := newTestRenderer(t)
	sessions := NewSessionStore(false)

	shop := NewShopHandler(catalogService, provider, renderer, sessions, nil, testLogger())
	orders := NewOrderHandler(catalogService, provider, sessions, nil, testLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /shop", shop.Page)
	mux.HandleFunc("GET /shop/grid", shop.Grid)
	mux.HandleFunc("POST /shop/products/{id}/modal", shop.OpenModal)
	mux.HandleFunc("POST /shop/modal/gallery", shop.Gallery)
	mux.HandleFunc("POST /shop/modal/close", shop.CloseModal)
	mux.HandleFunc("POST /shop/orders", orders.Create)
	mux.HandleFunc("POST /shop/orders/{id}/capture", orders.Capture)
	return mux, sessions
}

// doRequest runs a request through the mux, carrying over the session cookie
// from a previous response when given.
func doRequest(mux *http.ServeMux, method, target string, body io.Reader, prior *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil && method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if prior != nil {
		for _, c := range prior.Result().Cookies() {
			req.AddCookie(c)
		}
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}
