package routes

import (
	"github.com/jemtech/storefront/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing storefront routes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Home page
	r.Get("/", deps.HomeHandler.ServeHTTP)

	// Shop page and grid fragment
	r.Get("/shop", deps.ShopHandler.Page)
	r.Get("/shop/grid", deps.ShopHandler.Grid)

	// Product detail modal and gallery transitions
	r.Post("/shop/products/{id}/modal", deps.ShopHandler.OpenModal)
	r.Post("/shop/modal/gallery", deps.ShopHandler.Gallery)
	r.Post("/shop/modal/close", deps.ShopHandler.CloseModal)

	// Buy-button order flow
	r.Post("/shop/orders", deps.OrderHandler.Create)
	r.Post("/shop/orders/{id}/capture", deps.OrderHandler.Capture)
}
