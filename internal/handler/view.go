package handler

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"

	"github.com/jemtech/storefront/internal/catalog"
	"github.com/jemtech/storefront/internal/domain"
	"github.com/jemtech/storefront/internal/gallery"
	"github.com/jemtech/storefront/internal/payment"
)

// CardView is one product card in the shop grid.
type CardView struct {
	ID             string
	Name           string
	Description    string
	Category       string
	Icon           string
	Price          string
	Condition      string
	FairCondition  bool
	SoldOut        bool
	ImageURL       string // first image, empty when the card falls back to the icon
	Button         payment.ButtonView
}

// GridView is the complete shop grid: available products first, sold-out
// products after, in catalog order within each group.
type GridView struct {
	Cards      []CardView
	Empty      bool
	LoadFailed bool
	Message    string
}

// LoadFailedMessage is shown in place of the grid when the catalog could not
// be loaded at startup.
const LoadFailedMessage = "Unable to load products. Please try again later."

// EmptyMessage is shown when the catalog loaded but holds no products for the
// current view.
const EmptyMessage = "No products available at the moment. Check back soon!"

// BuildGrid assembles the grid view for a product slice. It re-partitions on
// every call, so a card never renders in the wrong group regardless of which
// category view produced the slice.
func BuildGrid(products []domain.Product, provider payment.Provider, loadFailed bool) GridView {
	if loadFailed {
		return GridView{LoadFailed: true, Message: LoadFailedMessage}
	}

	available, soldOut := catalog.Partition(products)
	if len(available)+len(soldOut) == 0 {
		return GridView{Empty: true, Message: EmptyMessage}
	}

	cards := make([]CardView, 0, len(available)+len(soldOut))
	for _, p := range available {
		cards = append(cards, buildCard(p, provider))
	}
	for _, p := range soldOut {
		cards = append(cards, buildCard(p, provider))
	}
	return GridView{Cards: cards}
}

func buildCard(p domain.Product, provider payment.Provider) CardView {
	card := CardView{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.DisplayCategory(),
		Icon:          catalog.CategoryIcon(p.DisplayCategory()),
		Price:         p.DisplayPrice(),
		Condition:     p.Condition,
		FairCondition: p.HasFairCondition(),
		SoldOut:       !p.IsAvailable(),
		Button:        payment.NewButtonView(provider, p, payment.LayoutHorizontal),
	}
	if images := catalog.ImagesOf(p); len(images) > 0 {
		card.ImageURL = images[0]
	}
	return card
}

// GalleryThumb is one entry in the modal's thumbnail strip.
type GalleryThumb struct {
	URL    string
	Index  int
	Active bool
}

// ModalView describes the product detail modal, derived entirely from the
// gallery controller's current state.
type ModalView struct {
	Open            bool
	ProductID       string
	Name            string
	Category        string
	Icon            string
	Price           string
	Condition       string
	FairCondition   bool
	SoldOut         bool
	DescriptionHTML template.HTML
	ImageURL        string // current gallery image, empty when the product has none
	Index           int
	HasGallery      bool // more than one image: arrows and thumbnails show
	PrevIndex       int
	NextIndex       int
	Thumbs          []GalleryThumb
	Button          payment.ButtonView
}

// BuildModal assembles the modal view from the controller. A closed controller
// yields the zero view, which the template renders as nothing.
func BuildModal(c *gallery.Controller, provider payment.Provider) ModalView {
	p, ok := c.Product()
	if !ok {
		return ModalView{}
	}

	images := c.Images()
	view := ModalView{
		Open:            true,
		ProductID:       p.ID,
		Name:            p.Name,
		Category:        p.DisplayCategory(),
		Icon:            catalog.CategoryIcon(p.DisplayCategory()),
		Price:           p.DisplayPrice(),
		Condition:       p.Condition,
		FairCondition:   p.HasFairCondition(),
		SoldOut:         !p.IsAvailable(),
		DescriptionHTML: renderDescription(p.Description),
		Index:           c.Index(),
		Button:          payment.NewButtonView(provider, p, payment.LayoutVertical),
	}

	if len(images) > 0 {
		view.ImageURL = images[view.Index]
	}
	if len(images) > 1 {
		view.HasGallery = true
		view.PrevIndex = (view.Index - 1 + len(images)) % len(images)
		view.NextIndex = (view.Index + 1) % len(images)
		for i, url := range images {
			view.Thumbs = append(view.Thumbs, GalleryThumb{
				URL:    url,
				Index:  i,
				Active: i == view.Index,
			})
		}
	}
	return view
}

// renderDescription converts the product description from Markdown to HTML.
// Goldmark escapes raw HTML by default, so descriptions stay inert.
func renderDescription(desc string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(desc), &buf); err != nil {
		escaped := template.HTMLEscapeString(desc)
		return template.HTML("<p>" + escaped + "</p>")
	}
	return template.HTML(buf.String())
}
