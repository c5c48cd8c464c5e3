package storefront

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jemtech/storefront/internal/catalog"
	"github.com/jemtech/storefront/internal/domain"
	"github.com/jemtech/storefront/internal/gallery"
	"github.com/jemtech/storefront/internal/handler"
	"github.com/jemtech/storefront/internal/payment"
	"github.com/jemtech/storefront/internal/telemetry"
)

// ShopHandler serves the shop page, the category-filtered product grid and
// the product detail modal fragments.
type ShopHandler struct {
	catalog  catalog.Service
	payments payment.Provider
	renderer *handler.Renderer
	sessions *SessionStore
	metrics  *telemetry.BusinessMetrics
	logger   *slog.Logger
}

// NewShopHandler creates a new shop handler
func NewShopHandler(catalogService catalog.Service, payments payment.Provider, renderer *handler.Renderer, sessions *SessionStore, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{
		catalog:  catalogService,
		payments: payments,
		renderer: renderer,
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
	}
}

// Page handles GET /shop. The optional category query parameter filters the
// grid against the already-loaded snapshot; no request ever re-fetches the
// catalog.
func (h *ShopHandler) Page(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "all"
	}

	products := h.catalog.View(category)
	grid := handler.BuildGrid(products, h.payments, h.catalog.LoadFailed())

	if h.metrics != nil {
		h.metrics.ShopViews.WithLabelValues(category).Inc()
	}

	data := BaseTemplateData(r)
	data["Grid"] = grid
	data["Categories"] = h.catalog.Categories()
	data["ActiveCategory"] = category
	data["Modal"] = handler.ModalView{}
	if h.payments != nil {
		data["StripePublishableKey"] = h.payments.PublishableKey()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.renderer.RenderHTTP(w, "shop", data)
}

// Grid handles GET /shop/grid, returning just the grid fragment for a
// category swap without a full page load.
func (h *ShopHandler) Grid(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "all"
	}

	products := h.catalog.View(category)
	grid := handler.BuildGrid(products, h.payments, h.catalog.LoadFailed())

	if h.metrics != nil {
		h.metrics.ShopViews.WithLabelValues(category).Inc()
	}

	h.renderer.RenderPartial(w, "grid", grid)
}

// OpenModal handles POST /shop/products/{id}/modal. It opens the session's
// gallery on the product and returns the modal fragment.
func (h *ShopHandler) OpenModal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p, err := h.catalog.Get(id)
	if err != nil {
		handler.ErrorResponse(w, r, domain.NotFound("shop.modal", "product", id))
		return
	}

	if h.metrics != nil {
		h.metrics.ProductViews.WithLabelValues(p.ID).Inc()
	}

	var view handler.ModalView
	h.sessions.WithGallery(w, r, func(c *gallery.Controller) {
		c.Open(p)
		view = handler.BuildModal(c, h.payments)
	})

	h.renderer.RenderPartial(w, "modal", view)
}

// Gallery handles POST /shop/modal/gallery. The action form value selects the
// transition: "set" with an index, "next" or "prev". Transitions on a closed
// gallery or with an out-of-range index change nothing; the fragment is
// re-rendered either way.
func (h *ShopHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("shop.gallery", "invalid form data"))
		return
	}

	action := r.FormValue("action")

	var view handler.ModalView
	switch action {
	case "set":
		index, err := strconv.Atoi(r.FormValue("index"))
		if err != nil {
			handler.ErrorResponse(w, r, domain.Invalid("shop.gallery", "index must be an integer"))
			return
		}
		h.sessions.WithGallery(w, r, func(c *gallery.Controller) {
			c.SetImage(index)
			view = handler.BuildModal(c, h.payments)
		})
	case "next":
		h.sessions.WithGallery(w, r, func(c *gallery.Controller) {
			c.Next()
			view = handler.BuildModal(c, h.payments)
		})
	case "prev":
		h.sessions.WithGallery(w, r, func(c *gallery.Controller) {
			c.Prev()
			view = handler.BuildModal(c, h.payments)
		})
	default:
		handler.ErrorResponse(w, r, domain.Invalid("shop.gallery", "unknown gallery action"))
		return
	}

	h.renderer.RenderPartial(w, "modal", view)
}

// CloseModal handles POST /shop/modal/close. Closing clears the gallery state
// entirely, so a later open always starts from the first image.
func (h *ShopHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	var view handler.ModalView
	h.sessions.WithGallery(w, r, func(c *gallery.Controller) {
		c.Close()
		view = handler.BuildModal(c, h.payments)
	})

	h.renderer.RenderPartial(w, "modal", view)
}
