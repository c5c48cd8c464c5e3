package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jemtech/storefront/internal/domain"
)

// mockSource is a Source with overridable behavior for testing.
type mockSource struct {
	fetchFunc func(ctx context.Context) ([]byte, error)
}

func (m *mockSource) Fetch(ctx context.Context) ([]byte, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return nil, errors.New("no fetch configured")
}

func (m *mockSource) Location() string { return "mock" }

const sourceCatalog = `[
	{"id": "lt-1", "name": "Laptop One", "price": 199.99, "category": "Laptops", "available": true},
	{"id": "ph-1", "name": "Phone One", "price": 99.99, "category": "Phones", "available": false},
	{"id": "lt-2", "name": "Laptop Two", "price": 299.99, "category": "Laptops"}
]`

const overrideCatalog = `[
	{"id": "ov-1", "name": "Override Product", "price": 49.99, "category": "Accessories"}
]`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, src Source) Service {
	t.Helper()
	overrides, err := NewOverrideStore(t.TempDir())
	require.NoError(t, err)
	return NewService(overrides, "jemtech_products", src, testLogger(), nil)
}

func newTestServiceWithOverride(t *testing.T, src Source, override string) Service {
	t.Helper()
	overrides, err := NewOverrideStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, overrides.Put("jemtech_products", []byte(override)))
	return NewService(overrides, "jemtech_products", src, testLogger(), nil)
}

func TestService_Load_FromSource(t *testing.T) {
	svc := newTestService(t, &mockSource{
		fetchFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(sourceCatalog), nil
		},
	})

	require.NoError(t, svc.Load(context.Background()))
	assert.False(t, svc.LoadFailed())
	assert.Len(t, svc.Snapshot(), 3)
}

func TestService_Load_OverrideTakesPrecedence(t *testing.T) {
	fetched := false
	svc := newTestServiceWithOverride(t, &mockSource{
		fetchFunc: func(ctx context.Context) ([]byte, error) {
			fetched = true
			return []byte(sourceCatalog), nil
		},
	}, overrideCatalog)

	require.NoError(t, svc.Load(context.Background()))

	snapshot := svc.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "ov-1", snapshot[0].ID)
	assert.False(t, fetched, "override hit must not touch the source")
}

func TestService_Load_CorruptOverrideFallsBack(t *testing.T) {
	svc := newTestServiceWithOverride(t, &mockSource{
		fetchFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(sourceCatalog), nil
		},
	}, `{not json`)

	require.NoError(t, svc.Load(context.Background()))

	assert.False(t, svc.LoadFailed())
	assert.Len(t, svc.Snapshot(), 3, "corrupt override falls through to the source")
}

func TestService_Load_SourceFailure(t *testing.T) {
	svc := newTestService(t, &mockSource{
		fetchFunc: func(ctx context.Context) ([]byte, error) {
			return nil, errors.New("connection refused")
		},
	})

	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.EUNAVAILABLE))
	assert.Equal(t, "Unable to load products. Please try again later.", domain.ErrorMessage(err))

	assert.True(t, svc.LoadFailed())
	assert.Empty(t, svc.Snapshot(), "failed load leaves an empty snapshot")
}

func TestService_Load_RejectsInvalidProduct(t *testing.T) {
	svc := newTestService(t, &mockSource{
		fetchFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(`[{"id": "x", "price": -5}]`), nil
		},
	})

	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.True(t, svc.LoadFailed())
}

func TestService_Get(t *testing.T) {
	svc := newTestService(t, &mockSource{
		fetchFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(sourceCatalog), nil
		},
	})
	require.NoError(t, svc.Load(context.Background()))

	p, err := svc.Get("ph-1")
	require.NoError(t, err)
	assert.Equal(t, "Phone One", p.Name)

	_, err = svc.Get("missing")
	assert.True(t, domain.IsCode(err, domain.ENOTFOUND))
}

func TestService_View(t *testing.T) {
	svc := newTestService(t, &mockSource{
		fetchFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(sourceCatalog), nil
		},
	})
	require.NoError(t, svc.Load(context.Background()))

	assert.Len(t, svc.View("all"), 3)
	assert.Len(t, svc.View("Laptops"), 2)
	assert.Empty(t, svc.View("Monitors"))
}

func TestService_Categories(t *testing.T) {
	svc := newTestService(t, &mockSource{
		fetchFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(sourceCatalog), nil
		},
	})
	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, []string{"Laptops", "Phones"}, svc.Categories(), "first seen order, no duplicates")
}

func TestService_CategoriesRoundTripThroughView(t *testing.T) {
	svc := newTestService(t, &mockSource{
		fetchFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(`[
				{"id": "lt-1", "name": "Laptop", "price": 199.99, "category": "Laptops"},
				{"id": "misc-1", "name": "Widget", "price": 5}
			]`), nil
		},
	})
	require.NoError(t, svc.Load(context.Background()))

	categories := svc.Categories()
	assert.Equal(t, []string{"Laptops", "Other"}, categories)

	// Every category button must select at least the product that put it there
	for _, c := range categories {
		assert.NotEmpty(t, svc.View(c), "category %q has a button but an empty view", c)
	}

	view := svc.View("Other")
	require.Len(t, view, 1)
	assert.Equal(t, "misc-1", view[0].ID)
}
