package payment

import (
	"errors"
)

var (
	// ErrProviderDisabled is returned when an order operation reaches a
	// provider that is not configured. Callers should have checked Enabled
	// first; the error exists so a race never turns into a panic.
	ErrProviderDisabled = errors.New("payment: provider not configured")

	// ErrInvalidAPIKey is returned when the provider API key is missing.
	ErrInvalidAPIKey = errors.New("payment: invalid or missing API key")

	// ErrOrderNotFound is returned when an order ID does not exist.
	ErrOrderNotFound = errors.New("payment: order not found")

	// ErrAmountTooSmall is returned when the amount is below the provider's
	// minimum chargeable amount.
	ErrAmountTooSmall = errors.New("payment: amount too small (minimum $0.50 USD)")
)
