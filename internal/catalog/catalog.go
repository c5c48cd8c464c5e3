package catalog

import (
	"github.com/jemtech/storefront/internal/domain"
)

// Partition stable-partitions a product list into the available group followed
// by the sold-out group. Relative order inside each group is preserved; a
// product counts as available unless its available flag is explicitly false.
func Partition(products []domain.Product) (available, soldOut []domain.Product) {
	for _, p := range products {
		if p.IsAvailable() {
			available = append(available, p)
		} else {
			soldOut = append(soldOut, p)
		}
	}
	return available, soldOut
}

// FilterByCategory returns the products whose display category matches
// category by exact string equality. Matching on the display value keeps the
// filter in step with the category buttons: uncategorized products surface as
// "Other" and their button selects them. The "all" category is the identity
// filter: the input comes back unchanged in content and order.
func FilterByCategory(products []domain.Product, category string) []domain.Product {
	if category == "all" {
		return products
	}

	var out []domain.Product
	for _, p := range products {
		if p.DisplayCategory() == category {
			out = append(out, p)
		}
	}
	return out
}

// ImagesOf normalizes a product's gallery. The plural images field wins when
// non-empty; otherwise the legacy singular image field becomes a one-element
// gallery; otherwise the gallery is empty and views fall back to the category
// icon. Every consumer of product images (grid thumbnail, modal gallery,
// thumbnail strip) goes through this one function.
func ImagesOf(p domain.Product) []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}

// categoryIcons is the closed set of category glyphs. Anything outside the
// table (including the empty category) renders the default glyph.
var categoryIcons = map[string]string{
	"Laptops":     "\U0001F4BB",
	"Desktops":    "\U0001F5A5",
	"Phones":      "\U0001F4F1",
	"Tablets":     "\U0001F4F2",
	"Gaming":      "\U0001F3AE",
	"Accessories": "\U0001F3A7",
}

// DefaultCategoryIcon is the placeholder glyph for products without images in
// an unrecognized category.
const DefaultCategoryIcon = "\U0001F4BB"

// CategoryIcon looks up the glyph for a category, falling back to the default.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return DefaultCategoryIcon
}
