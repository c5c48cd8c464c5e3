package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jemtech/storefront/internal/domain"
	"github.com/jemtech/storefront/internal/telemetry"
)

// Service owns the in-memory catalog snapshot and the views over it.
// The snapshot is loaded once at startup; category filtering never re-fetches.
type Service interface {
	// Load resolves the snapshot: local override first, then the catalog
	// source. A failed load is recorded (see LoadFailed) and returned for
	// logging; the service keeps running with an empty snapshot.
	Load(ctx context.Context) error

	// Snapshot returns the full loaded product list in catalog order.
	Snapshot() []domain.Product

	// LoadFailed reports whether the last Load could not produce a snapshot.
	LoadFailed() bool

	// Get looks up one product by its stable id.
	Get(id string) (domain.Product, error)

	// View returns the snapshot filtered by category ("all" for everything).
	View(category string) []domain.Product

	// Categories returns the distinct product categories in first-seen order,
	// for the filter buttons.
	Categories() []string
}

type service struct {
	overrides   *OverrideStore
	overrideKey string
	source      Source
	validate    *validator.Validate
	logger      *slog.Logger
	metrics     *telemetry.BusinessMetrics // optional

	mu       sync.RWMutex
	snapshot []domain.Product
	loadErr  error
}

// NewService creates a catalog Service. metrics may be nil.
func NewService(overrides *OverrideStore, overrideKey string, source Source, logger *slog.Logger, metrics *telemetry.BusinessMetrics) Service {
	return &service{
		overrides:   overrides,
		overrideKey: overrideKey,
		source:      source,
		validate:    validator.New(),
		logger:      logger,
		metrics:     metrics,
	}
}

// Load implements Service.
func (s *service) Load(ctx context.Context) error {
	if s.overrides != nil {
		data, ok, err := s.overrides.Get(s.overrideKey)
		switch {
		case err != nil:
			s.logger.Warn("failed to read catalog override", "key", s.overrideKey, "error", err)
		case ok:
			products, perr := s.parseSnapshot(data)
			if perr == nil {
				s.install(products, nil)
				s.observeLoad("override", "ok", len(products))
				s.logger.Info("catalog loaded from override", "key", s.overrideKey, "products", len(products))
				return nil
			}
			// A corrupt override is silent to the user: fall through to the
			// catalog source.
			s.observeLoad("override", "error", 0)
			s.logger.Warn("ignoring unparseable catalog override", "key", s.overrideKey, "error", perr)
		}
	}

	label := sourceLabel(s.source)

	data, err := s.source.Fetch(ctx)
	if err == nil {
		var products []domain.Product
		products, err = s.parseSnapshot(data)
		if err == nil {
			s.install(products, nil)
			s.observeLoad(label, "ok", len(products))
			s.logger.Info("catalog loaded", "source", s.source.Location(), "products", len(products))
			return nil
		}
	}

	loadErr := domain.Unavailable(err, "catalog.load", "Unable to load products. Please try again later.")
	s.install(nil, loadErr)
	s.observeLoad(label, "error", 0)
	return loadErr
}

// Snapshot implements Service.
func (s *service) Snapshot() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// LoadFailed implements Service.
func (s *service) LoadFailed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr != nil
}

// Get implements Service.
func (s *service) Get(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.snapshot {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Product{}, domain.ErrProductNotFound
}

// View implements Service.
func (s *service) View(category string) []domain.Product {
	return FilterByCategory(s.Snapshot(), category)
}

// Categories implements Service.
func (s *service) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.snapshot {
		c := p.DisplayCategory()
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories
}

// parseSnapshot deserializes and validates a catalog payload.
func (s *service) parseSnapshot(data []byte) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for i, p := range products {
		if err := s.validate.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid product at index %d: %w", i, err)
		}
	}

	return products, nil
}

func (s *service) install(products []domain.Product, loadErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = products
	s.loadErr = loadErr
}

func (s *service) observeLoad(source, result string, count int) {
	if s.metrics == nil {
		return
	}
	s.metrics.CatalogLoads.WithLabelValues(source, result).Inc()
	if result == "ok" {
		s.metrics.CatalogProducts.Set(float64(count))
	}
}

func sourceLabel(src Source) string {
	switch src.(type) {
	case *FileSource:
		return "file"
	case *HTTPSource:
		return "http"
	default:
		return "source"
	}
}
