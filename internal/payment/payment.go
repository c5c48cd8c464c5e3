// Package payment wraps the third-party payment processor behind an optional
// capability. When no provider is configured the storefront renders no buy
// buttons and everything else keeps working; the contact path remains the
// fallback purchase route.
package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jemtech/storefront/internal/domain"
)

// Provider defines the interface for payment processing.
// Implementations can use Stripe, PayPal, Square, etc.
type Provider interface {
	// Enabled reports whether the capability is actually present. Callers
	// check once at the call site and render nothing when it isn't.
	Enabled() bool

	// CreateOrder opens a payment order for a single product purchase.
	CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error)

	// CaptureOrder captures an approved order and surfaces who paid.
	CaptureOrder(ctx context.Context, orderID string) (*Capture, error)

	// PublishableKey is the browser-side key for providers whose orders are
	// confirmed client-side before capture. Empty when not applicable; the
	// page then skips the confirmation step.
	PublishableKey() string
}

// CreateOrderParams contains parameters for creating a one-product order.
type CreateOrderParams struct {
	// ProductID links the order back to the catalog entry (kept in metadata).
	ProductID string

	// Description appears on the payer's statement; it is the product name.
	Description string

	// AmountCents is the price in the smallest currency unit.
	AmountCents int64

	// Currency code (ISO 4217 lowercase). Defaults to "usd" when empty.
	Currency string

	// IdempotencyKey prevents duplicate orders on retried requests.
	IdempotencyKey string
}

// Order represents an open payment order awaiting approval.
type Order struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
	Status       string
	CreatedAt    time.Time
}

// Capture represents a completed payment.
type Capture struct {
	OrderID string
	Status  string

	// PayerGivenName is the payer's given name as reported by the provider,
	// empty when the provider doesn't surface one.
	PayerGivenName string
}

// OrderParamsFor builds the order parameters for one product: description from
// the name, amount from the two-decimal price.
func OrderParamsFor(p domain.Product) CreateOrderParams {
	return CreateOrderParams{
		ProductID:   p.ID,
		Description: p.Name,
		AmountCents: int64(math.Round(p.Price * 100)),
		Currency:    "usd",
	}
}

// ApprovalMessage is the user-facing confirmation after a capture, including
// the payer's given name when the provider reported one.
func ApprovalMessage(c *Capture) string {
	if c.PayerGivenName != "" {
		return fmt.Sprintf("Payment complete! Thank you, %s. We will contact you about pickup or shipping.", c.PayerGivenName)
	}
	return "Payment complete! Thank you. We will contact you about pickup or shipping."
}

// Layout selects the button presentation per call site.
type Layout string

const (
	// LayoutHorizontal is the compact variant used on grid cards.
	LayoutHorizontal Layout = "horizontal"

	// LayoutVertical is the stacked variant used in the detail modal.
	LayoutVertical Layout = "vertical"
)

// ButtonView is the per-product button description handed to the renderer.
// It is rebuilt on every render, which is what keeps mounting idempotent per
// container: the prior button markup is replaced wholesale, never stacked.
type ButtonView struct {
	ProductID   string
	Layout      Layout
	Description string
	Amount      string // two-decimal price string
	Enabled     bool
}

// NewButtonView builds the button description for a product at a call site.
// The button is disabled when the capability is absent or the product is sold
// out; disabled buttons render nothing.
func NewButtonView(provider Provider, p domain.Product, layout Layout) ButtonView {
	return ButtonView{
		ProductID:   p.ID,
		Layout:      layout,
		Description: p.Name,
		Amount:      p.DisplayPrice(),
		Enabled:     provider != nil && provider.Enabled() && p.IsAvailable(),
	}
}
