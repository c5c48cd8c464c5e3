package routes

import (
	"net/http"

	"github.com/jemtech/storefront/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for storefront routes
type StorefrontDeps struct {
	// Home
	HomeHandler http.Handler

	// Shop page, grid fragment and detail modal
	ShopHandler *storefront.ShopHandler

	// Buy-button order flow
	OrderHandler *storefront.OrderHandler
}
