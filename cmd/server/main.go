package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/jemtech/storefront/internal"
	"github.com/jemtech/storefront/internal/catalog"
	"github.com/jemtech/storefront/internal/handler"
	"github.com/jemtech/storefront/internal/handler/storefront"
	"github.com/jemtech/storefront/internal/middleware"
	"github.com/jemtech/storefront/internal/payment"
	"github.com/jemtech/storefront/internal/router"
	"github.com/jemtech/storefront/internal/routes"
	"github.com/jemtech/storefront/internal/telemetry"
	"github.com/jemtech/storefront/web"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("jemtech")
	businessMetrics := telemetry.NewBusinessMetrics("jemtech")

	// Initialize the local override store
	overrides, err := catalog.NewOverrideStore(cfg.Catalog.OverrideDir)
	if err != nil {
		return fmt.Errorf("failed to initialize override store: %w", err)
	}

	// Initialize the catalog service and load the snapshot once. A failed
	// load is not fatal: the shop stays up and shows the failure message.
	source := catalog.NewSource(cfg.Catalog)
	catalogService := catalog.NewService(overrides, cfg.Catalog.OverrideKey, source, logger, businessMetrics)

	logger.Info("Loading product catalog...")
	if err := catalogService.Load(ctx); err != nil {
		logger.Warn("catalog load failed, serving without products", "error", err)
	} else {
		logger.Info("Product catalog loaded", "products", len(catalogService.Snapshot()))
	}

	// Initialize the payment provider. With PAYMENT_PROVIDER=none the shop
	// renders without buy buttons.
	paymentProvider, err := payment.NewProvider(cfg.Payment)
	if err != nil {
		return fmt.Errorf("failed to initialize payment provider: %w", err)
	}
	logger.Info("Payment provider initialized",
		"provider", cfg.Payment.Provider,
		"enabled", paymentProvider.Enabled(),
		"test_mode", cfg.Payment.IsTestMode())

	// Load templates with renderer
	logger.Info("Loading templates...")
	renderer, err := handler.NewRenderer(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	logger.Info("Templates loaded successfully")

	// Session store for per-visitor gallery state
	sessions := storefront.NewSessionStore(cfg.Env == "prod")

	// Handlers
	storefrontDeps := routes.StorefrontDeps{
		HomeHandler:  storefront.NewHomeHandler(renderer),
		ShopHandler:  storefront.NewShopHandler(catalogService, paymentProvider, renderer, sessions, businessMetrics, logger),
		OrderHandler: storefront.NewOrderHandler(catalogService, paymentProvider, sessions, businessMetrics, logger),
	}

	// Router
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		router.Logger(logger),
		middleware.WithRequestLogger(logger),
	)

	// Static files (images and the sample catalog)
	r.Static("/static/", "./web/static")

	// Metrics endpoint (no auth required, but should be protected in production via firewall)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Register route groups
	routes.RegisterStorefrontRoutes(r, storefrontDeps)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
