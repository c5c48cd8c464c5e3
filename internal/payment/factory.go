package payment

import (
	"fmt"

	"github.com/jemtech/storefront/internal"
)

// NewProvider creates a Provider based on configuration. The "none" provider
// is a valid production setup: the shop simply runs without buy buttons.
func NewProvider(cfg internal.PaymentConfig) (Provider, error) {
	switch cfg.Provider {
	case "none", "":
		return NewDisabledProvider(), nil
	case "stripe":
		return NewStripeProvider(StripeConfig{
			APIKey:         cfg.StripeSecretKey,
			PublishableKey: cfg.StripePublishableKey,
		})
	default:
		return nil, fmt.Errorf("payment: unknown provider %q", cfg.Provider)
	}
}
