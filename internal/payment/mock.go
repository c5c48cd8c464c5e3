package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MockProvider is a mock payment provider for testing.
// Simulates successful order flows without calling a payment API.
type MockProvider struct {
	// CreateOrderFunc allows customizing order creation behavior
	CreateOrderFunc func(ctx context.Context, params CreateOrderParams) (*Order, error)

	// CaptureOrderFunc allows customizing capture behavior
	CaptureOrderFunc func(ctx context.Context, orderID string) (*Capture, error)

	// DisabledFlag makes Enabled report false when set
	DisabledFlag bool

	// Orders stores created orders for retrieval
	Orders map[string]*Order

	// CallLog tracks method calls for test assertions
	CallLog []string

	// PublishableKeyValue is returned by PublishableKey when set
	PublishableKeyValue string
}

// NewMockProvider creates a new mock payment provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Orders:  make(map[string]*Order),
		CallLog: []string{},
	}
}

// Enabled implements Provider.
func (m *MockProvider) Enabled() bool {
	return !m.DisabledFlag
}

// PublishableKey implements Provider.
func (m *MockProvider) PublishableKey() string {
	return m.PublishableKeyValue
}

// CreateOrder creates a mock order.
func (m *MockProvider) CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error) {
	m.CallLog = append(m.CallLog, fmt.Sprintf("CreateOrder(%s, %d)", params.ProductID, params.AmountCents))

	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, params)
	}

	order := &Order{
		ID:           "pi_" + uuid.New().String(),
		ClientSecret: "secret_" + uuid.New().String(),
		AmountCents:  params.AmountCents,
		Currency:     params.Currency,
		Status:       "requires_payment_method",
		CreatedAt:    time.Now(),
	}

	m.Orders[order.ID] = order
	return order, nil
}

// CaptureOrder captures a mock order.
func (m *MockProvider) CaptureOrder(ctx context.Context, orderID string) (*Capture, error) {
	m.CallLog = append(m.CallLog, fmt.Sprintf("CaptureOrder(%s)", orderID))

	if m.CaptureOrderFunc != nil {
		return m.CaptureOrderFunc(ctx, orderID)
	}

	if _, ok := m.Orders[orderID]; !ok {
		return nil, ErrOrderNotFound
	}

	return &Capture{
		OrderID:        orderID,
		Status:         "succeeded",
		PayerGivenName: "Taylor",
	}, nil
}
