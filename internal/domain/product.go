package domain

import (
	"fmt"
	"strings"
)

// Product is one entry of the catalog resource. The shape is owned by the
// catalog JSON, not by this service; optional fields stay optional here so a
// snapshot round-trips unchanged.
type Product struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`

	// Category is optional; DisplayCategory falls back to "Other".
	Category string `json:"category,omitempty"`

	// Condition is free-form ("Like New", "Good", "Fair", ...). A value of
	// "fair" (case-insensitive) gets a distinct styling class in views.
	Condition string `json:"condition,omitempty"`

	// Available is a tri-state: nil or true means purchasable, false means
	// sold out.
	Available *bool `json:"available,omitempty"`

	// Images is the ordered gallery. Image is the legacy singular field that
	// older snapshots used; it only counts when Images is empty.
	Images []string `json:"images,omitempty"`
	Image  string   `json:"image,omitempty"`
}

// IsAvailable reports whether the product is purchasable.
// Absence of the field counts as available.
func (p Product) IsAvailable() bool {
	return p.Available == nil || *p.Available
}

// DisplayCategory returns the category, defaulting to "Other" when absent.
func (p Product) DisplayCategory() string {
	if p.Category == "" {
		return "Other"
	}
	return p.Category
}

// DisplayPrice formats the price to two decimals, the only price format the
// site (and the payment order description) ever shows.
func (p Product) DisplayPrice() string {
	return fmt.Sprintf("%.2f", p.Price)
}

// HasFairCondition reports whether the condition is "fair", case-insensitively.
func (p Product) HasFairCondition() bool {
	return strings.EqualFold(p.Condition, "fair")
}

// Product-specific errors.
var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
)
