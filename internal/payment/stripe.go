package payment

import (
	"context"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// StripeConfig contains configuration for the Stripe provider.
type StripeConfig struct {
	// APIKey is the Stripe secret key (sk_test_... or sk_live_...)
	APIKey string

	// PublishableKey is the browser-side key (pk_test_... or pk_live_...)
	// used by Stripe.js to confirm payment intents before capture.
	PublishableKey string
}

// IsTestMode returns true if using test mode API keys.
func (c *StripeConfig) IsTestMode() bool {
	return strings.HasPrefix(c.APIKey, "sk_test_")
}

// StripeProvider implements Provider using Stripe payment intents: CreateOrder
// opens a manual-capture intent for one product, CaptureOrder captures it once
// the buyer approved.
type StripeProvider struct {
	config StripeConfig
}

// NewStripeProvider creates a new Stripe payment provider.
func NewStripeProvider(config StripeConfig) (*StripeProvider, error) {
	if config.APIKey == "" {
		return nil, ErrInvalidAPIKey
	}

	stripe.Key = config.APIKey

	return &StripeProvider{config: config}, nil
}

// Enabled implements Provider.
func (s *StripeProvider) Enabled() bool { return true }

// PublishableKey implements Provider. Orders are confirmed by Stripe.js in
// the browser; the manual-capture intent only becomes capturable afterwards.
func (s *StripeProvider) PublishableKey() string { return s.config.PublishableKey }

// CreateOrder implements Provider.
func (s *StripeProvider) CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error) {
	// Stripe rejects charges below 50 cents; fail fast with our own error.
	if params.AmountCents < 50 {
		return nil, ErrAmountTooSmall
	}

	currency := params.Currency
	if currency == "" {
		currency = "usd"
	}

	piParams := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(params.AmountCents),
		Currency:      stripe.String(currency),
		Description:   stripe.String(params.Description),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
	}
	piParams.AddMetadata("product_id", params.ProductID)
	if params.IdempotencyKey != "" {
		piParams.SetIdempotencyKey(params.IdempotencyKey)
	}

	pi, err := paymentintent.New(piParams)
	if err != nil {
		return nil, err
	}

	return &Order{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		CreatedAt:    time.Unix(pi.Created, 0),
	}, nil
}

// CaptureOrder implements Provider.
func (s *StripeProvider) CaptureOrder(ctx context.Context, orderID string) (*Capture, error) {
	captureParams := &stripe.PaymentIntentCaptureParams{
		Params: stripe.Params{
			Context: ctx,
			Expand:  []*string{stripe.String("latest_charge")},
		},
	}

	pi, err := paymentintent.Capture(orderID, captureParams)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.HTTPStatusCode == 404 {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return &Capture{
		OrderID:        pi.ID,
		Status:         string(pi.Status),
		PayerGivenName: payerGivenName(pi),
	}, nil
}

// payerGivenName pulls the payer's given name from the charge billing details.
// Stripe only records a full name, so the first word stands in for the given
// name; empty when the charge carries no name at all.
func payerGivenName(pi *stripe.PaymentIntent) string {
	if pi.LatestCharge == nil || pi.LatestCharge.BillingDetails == nil {
		return ""
	}

	name := strings.TrimSpace(pi.LatestCharge.BillingDetails.Name)
	if name == "" {
		return ""
	}

	return strings.Fields(name)[0]
}
