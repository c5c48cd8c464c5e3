package payment

import (
	"context"
)

// DisabledProvider is the documented no-op default used when no payment
// credentials are configured. Enabled reports false, so callers render no
// buttons and never reach the order methods.
type DisabledProvider struct{}

// NewDisabledProvider creates the no-op provider.
func NewDisabledProvider() *DisabledProvider {
	return &DisabledProvider{}
}

// Enabled implements Provider.
func (*DisabledProvider) Enabled() bool { return false }

// PublishableKey implements Provider.
func (*DisabledProvider) PublishableKey() string { return "" }

// CreateOrder implements Provider.
func (*DisabledProvider) CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error) {
	return nil, ErrProviderDisabled
}

// CaptureOrder implements Provider.
func (*DisabledProvider) CaptureOrder(ctx context.Context, orderID string) (*Capture, error) {
	return nil, ErrProviderDisabled
}
