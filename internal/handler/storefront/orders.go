package storefront

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jemtech/storefront/internal/catalog"
	"github.com/jemtech/storefront/internal/domain"
	"github.com/jemtech/storefront/internal/gallery"
	"github.com/jemtech/storefront/internal/handler"
	"github.com/jemtech/storefront/internal/payment"
	"github.com/jemtech/storefront/internal/telemetry"
)

// OrderHandler drives the buy-button flow: order creation when a button is
// clicked, capture once the payer approves.
type OrderHandler struct {
	catalog  catalog.Service
	payments payment.Provider
	sessions *SessionStore
	metrics  *telemetry.BusinessMetrics
	logger   *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(catalogService catalog.Service, payments payment.Provider, sessions *SessionStore, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		catalog:  catalogService,
		payments: payments,
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
	}
}

type createOrderRequest struct {
	ProductID string `json:"product_id"`
}

type createOrderResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret,omitempty"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type captureOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Create handles POST /shop/orders. The order amount always comes from the
// catalog snapshot, never from the client.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("order.create", "invalid request body"))
		return
	}
	if req.ProductID == "" {
		handler.ErrorResponse(w, r, domain.Invalid("order.create", "product_id is required"))
		return
	}

	p, err := h.catalog.Get(req.ProductID)
	if err != nil {
		h.observeOrderCreated("not_found")
		handler.ErrorResponse(w, r, domain.NotFound("order.create", "product", req.ProductID))
		return
	}
	if !p.IsAvailable() {
		h.observeOrderCreated("sold_out")
		handler.ErrorResponse(w, r, domain.Invalid("order.create", "product is sold out"))
		return
	}

	order, err := h.payments.CreateOrder(ctx, payment.OrderParamsFor(p))
	if err != nil {
		h.observeOrderCreated("error")
		h.observePaymentError("create")
		if errors.Is(err, payment.ErrProviderDisabled) {
			handler.ErrorResponse(w, r, domain.Errorf(domain.EPAYMENT, "order.create", "online payment is not available"))
			return
		}
		h.logger.Error("order creation failed",
			slog.String("product_id", p.ID),
			slog.String("error", err.Error()))
		handler.ErrorResponse(w, r, domain.WrapError(err, domain.EPAYMENT, "order.create", "could not start payment"))
		return
	}

	h.observeOrderCreated("ok")
	h.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.String("product_id", p.ID),
		slog.Int64("amount_cents", order.AmountCents))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createOrderResponse{
		ID:           order.ID,
		ClientSecret: order.ClientSecret,
		Amount:       order.AmountCents,
		Currency:     order.Currency,
		Status:       order.Status,
	})
}

// Capture handles POST /shop/orders/{id}/capture. On success the session's
// detail modal is closed and the approval message returned for display.
func (h *OrderHandler) Capture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := r.PathValue("id")
	if orderID == "" {
		handler.ErrorResponse(w, r, domain.Invalid("order.capture", "order id is required"))
		return
	}

	capture, err := h.payments.CaptureOrder(ctx, orderID)
	if err != nil {
		h.observeOrderCaptured("error")
		h.observePaymentError("capture")
		if errors.Is(err, payment.ErrOrderNotFound) {
			handler.ErrorResponse(w, r, domain.NotFound("order.capture", "order", orderID))
			return
		}
		h.logger.Error("order capture failed",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()))
		handler.ErrorResponse(w, r, domain.WrapError(err, domain.EPAYMENT, "order.capture", "could not complete payment"))
		return
	}

	h.sessions.WithGallery(w, r, func(c *gallery.Controller) {
		c.Close()
	})

	h.observeOrderCaptured("ok")
	h.logger.Info("order captured",
		slog.String("order_id", capture.OrderID),
		slog.String("status", capture.Status))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(captureOrderResponse{
		OrderID: capture.OrderID,
		Status:  capture.Status,
		Message: payment.ApprovalMessage(capture),
	})
}

func (h *OrderHandler) observeOrderCreated(result string) {
	if h.metrics != nil {
		h.metrics.OrdersCreated.WithLabelValues(result).Inc()
	}
}

func (h *OrderHandler) observeOrderCaptured(result string) {
	if h.metrics != nil {
		h.metrics.OrdersCaptured.WithLabelValues(result).Inc()
	}
}

func (h *OrderHandler) observePaymentError(operation string) {
	if h.metrics != nil {
		h.metrics.PaymentErrors.WithLabelValues(operation).Inc()
	}
}
