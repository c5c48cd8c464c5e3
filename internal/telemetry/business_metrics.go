package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for shop-level observability,
// separate from the HTTP metrics in the middleware package.
type BusinessMetrics struct {
	// Catalog
	CatalogLoads    *prometheus.CounterVec
	CatalogProducts prometheus.Gauge

	// Shop engagement
	ShopViews    *prometheus.CounterVec
	ProductViews *prometheus.CounterVec

	// Payment funnel
	OrdersCreated  *prometheus.CounterVec
	OrdersCaptured *prometheus.CounterVec
	PaymentErrors  *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers all business metrics
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "jemtech"
	}

	subsystem := "business"

	return &BusinessMetrics{
		CatalogLoads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "catalog_loads_total",
				Help:      "Total catalog load attempts",
			},
			[]string{"source", "result"}, // source: override, file, http; result: ok, error
		),
		CatalogProducts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "catalog_products",
				Help:      "Number of products in the loaded snapshot",
			},
		),
		ShopViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "shop_views_total",
				Help:      "Total shop page renders",
			},
			[]string{"category"},
		),
		ProductViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_views_total",
				Help:      "Total product detail modal opens",
			},
			[]string{"product_id"},
		),
		OrdersCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_created_total",
				Help:      "Total payment orders created",
			},
			[]string{"result"},
		),
		OrdersCaptured: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_captured_total",
				Help:      "Total payment orders captured",
			},
			[]string{"result"},
		),
		PaymentErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "payment_errors_total",
				Help:      "Total payment provider errors (logged, never surfaced)",
			},
			[]string{"operation"},
		),
	}
}
