package storefront

import (
	"net/http"

	"github.com/jemtech/storefront/internal/handler"
)

// HomeHandler serves the landing page
type HomeHandler struct {
	renderer *handler.Renderer
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(renderer *handler.Renderer) *HomeHandler {
	return &HomeHandler{renderer: renderer}
}

// ServeHTTP handles GET /
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := BaseTemplateData(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.renderer.RenderHTTP(w, "home", data)
}
