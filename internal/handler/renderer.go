package handler

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
)

// Renderer manages template parsing and rendering with isolated template sets
type Renderer struct {
	templates map[string]*template.Template
	partials  *template.Template
}

// NewRenderer parses the template tree from the given filesystem. Pages at the
// root of templatesDir are each cloned from layout.html so they share the base
// chrome; partials/ holds the fragments rendered on their own (product grid,
// detail modal) for partial page swaps.
func NewRenderer(fsys fs.FS, templatesDir string) (*Renderer, error) {
	templates := make(map[string]*template.Template)

	// Parse the storefront layout once as base template
	baseTmpl, err := template.New("base").Funcs(TemplateFuncs()).ParseFS(fsys, path.Join(templatesDir, "layout.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	// Get list of page templates (root level)
	pages, err := fs.Glob(fsys, path.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}

	// Clone base template for each page
	for _, page := range pages {
		// Skip layout itself
		if path.Base(page) == "layout.html" {
			continue
		}

		pageTmpl, err := baseTmpl.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone template for %s: %w", page, err)
		}

		// Parse page-specific content into the clone
		pageTmpl, err = pageTmpl.ParseFS(fsys, page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", page, err)
		}

		// Partials are shared by pages and fragment handlers alike
		pageTmpl, err = pageTmpl.ParseFS(fsys, path.Join(templatesDir, "partials", "*.html"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse partials for %s: %w", page, err)
		}

		// Store with base name as key (without extension)
		pageName := path.Base(page)
		pageName = pageName[:len(pageName)-len(path.Ext(pageName))]
		templates[pageName] = pageTmpl
	}

	// A standalone partial set for fragment responses
	partials, err := template.New("partials").Funcs(TemplateFuncs()).ParseFS(fsys, path.Join(templatesDir, "partials", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse partials: %w", err)
	}

	return &Renderer{
		templates: templates,
		partials:  partials,
	}, nil
}

// Execute returns a named page template set
func (r *Renderer) Execute(name string) (*template.Template, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	return tmpl, nil
}

// Render is a convenience method that executes a page template and writes to an io.Writer
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	tmpl, err := r.Execute(name)
	if err != nil {
		return err
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

// RenderHTTP is a convenience method that renders a page to an http.ResponseWriter with error handling
func (r *Renderer) RenderHTTP(w http.ResponseWriter, name string, data interface{}) {
	tmpl, err := r.Execute(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "template error: %v\n", err)
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}

// RenderPartial renders a named fragment template without the page layout.
// Fragment endpoints use this to return just the grid or modal markup.
func (r *Renderer) RenderPartial(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.partials.ExecuteTemplate(w, name, data); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}
