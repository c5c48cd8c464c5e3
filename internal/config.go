package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16
	BaseURL  string
	Catalog  CatalogConfig
	Payment  PaymentConfig
}

// CatalogConfig controls where the product snapshot is loaded from.
// The override store is always consulted first; when the override key is
// absent (or corrupt) the catalog falls back to the remote URL if set,
// otherwise to the local file path.
type CatalogConfig struct {
	// URL is an absolute URL serving the products.json resource.
	// When empty, Path is used instead.
	URL string

	// Path is the local products.json file (the static resource shipped
	// with the site).
	Path string

	// OverrideDir is the directory holding the locally persisted catalog
	// override, keyed by OverrideKey. Written by the admin tooling, only
	// ever read here.
	OverrideDir string

	// OverrideKey names the override entry. Kept in sync with the admin
	// tooling's storage key.
	OverrideKey string
}

type PaymentConfig struct {
	// Provider selects the payment implementation: "stripe" or "none".
	Provider string

	// StripeSecretKey is the Stripe secret key (sk_test_... or sk_live_...).
	StripeSecretKey string

	// StripePublishableKey is the browser-side key (pk_test_... or
	// pk_live_...). Stripe.js confirms payment intents with it before the
	// server captures them.
	StripePublishableKey string
}

// IsTestMode returns true if using test mode API keys.
func (c PaymentConfig) IsTestMode() bool {
	return len(c.StripeSecretKey) > 7 && c.StripeSecretKey[:8] == "sk_test_"
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),
		BaseURL:  getEnv("BASE_URL", "http://localhost:3000"),
		Catalog: CatalogConfig{
			URL:         getEnv("CATALOG_URL", ""),
			Path:        getEnv("CATALOG_PATH", "./web/static/products.json"),
			OverrideDir: getEnv("CATALOG_OVERRIDE_DIR", "./data"),
			OverrideKey: getEnv("CATALOG_OVERRIDE_KEY", "jemtech_products"),
		},
		Payment: PaymentConfig{
			Provider:             getEnv("PAYMENT_PROVIDER", "none"),
			StripeSecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
			StripePublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", ""),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	switch cfg.Payment.Provider {
	case "none", "stripe":
	default:
		return nil, fmt.Errorf("unknown PAYMENT_PROVIDER %q (expected \"stripe\" or \"none\")", cfg.Payment.Provider)
	}

	if cfg.Payment.Provider == "stripe" && cfg.Payment.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY required when PAYMENT_PROVIDER=stripe")
	}

	// Without the publishable key the browser cannot confirm intents and no
	// order would ever become capturable.
	if cfg.Payment.Provider == "stripe" && cfg.Payment.StripePublishableKey == "" {
		return nil, fmt.Errorf("STRIPE_PUBLISHABLE_KEY required when PAYMENT_PROVIDER=stripe")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}
