// Package gallery implements the product detail modal's view state: which
// product is open and which of its images is showing. The controller is an
// explicit state machine with two states, Closed and Open; every navigation
// operation is a no-op when Closed.
package gallery

import (
	"github.com/jemtech/storefront/internal/catalog"
	"github.com/jemtech/storefront/internal/domain"
)

// Controller holds the modal view state for one visitor session.
// It is not safe for concurrent use; the session store serializes access.
type Controller struct {
	open    bool
	product domain.Product
	images  []string
	index   int
}

// NewController creates a controller in the Closed state.
func NewController() *Controller {
	return &Controller{}
}

// Open transitions Closed -> Open for the given product, with its normalized
// gallery and the first image selected. Opening while already open replaces
// the current product wholesale.
func (c *Controller) Open(p domain.Product) {
	c.open = true
	c.product = p
	c.images = catalog.ImagesOf(p)
	c.index = 0
}

// Close transitions to Closed and clears all view state so no stale product
// reference is retained. Closing while Closed is a no-op.
func (c *Controller) Close() {
	c.open = false
	c.product = domain.Product{}
	c.images = nil
	c.index = 0
}

// IsOpen reports whether the modal is open.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Product returns the product being viewed; ok is false when Closed.
func (c *Controller) Product() (domain.Product, bool) {
	return c.product, c.open
}

// Images returns the gallery of the open product (empty when Closed or when
// the product has no images).
func (c *Controller) Images() []string {
	return c.images
}

// Index returns the selected gallery index. Invariant: 0 <= index < length
// whenever the gallery is non-empty.
func (c *Controller) Index() int {
	return c.index
}

// SetImage selects gallery image i. Out-of-range requests (and any request
// while Closed) are ignored, not errors.
func (c *Controller) SetImage(i int) {
	if !c.open || i < 0 || i >= len(c.images) {
		return
	}
	c.index = i
}

// Next advances to the following image, wrapping from the last back to the
// first. A no-op when Closed or when there is at most one image.
func (c *Controller) Next() {
	if !c.open || len(c.images) < 2 {
		return
	}
	c.index = (c.index + 1) % len(c.images)
}

// Prev steps to the preceding image, wrapping from the first to the last.
// A no-op when Closed or when there is at most one image.
func (c *Controller) Prev() {
	if !c.open || len(c.images) < 2 {
		return
	}
	c.index = (c.index - 1 + len(c.images)) % len(c.images)
}
