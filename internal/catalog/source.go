package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jemtech/storefront/internal"
)

// Source fetches the raw bytes of the catalog resource (products.json).
// Implementations can read the static file shipped with the site or fetch it
// over HTTP from a CDN or object store.
type Source interface {
	// Fetch returns the raw catalog payload. Transport errors and non-success
	// responses come back as errors; the caller decides how to surface them.
	Fetch(ctx context.Context) ([]byte, error)

	// Location describes the resource for logs.
	Location() string
}

// NewSource creates a Source based on configuration: an HTTP source when a
// catalog URL is set, otherwise the local file path.
func NewSource(cfg internal.CatalogConfig) Source {
	if cfg.URL != "" {
		return NewHTTPSource(cfg.URL)
	}
	return NewFileSource(cfg.Path)
}

// FileSource reads the catalog resource from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a Source backed by a local products.json file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads the catalog file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return data, nil
}

// Location implements Source.
func (s *FileSource) Location() string { return s.path }

// HTTPSource fetches the catalog resource with a plain GET.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a Source that GETs the catalog from url.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Fetch performs the GET. A non-2xx status is an error; the body is not
// consulted for failure responses.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog request returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	return data, nil
}

// Location implements Source.
func (s *HTTPSource) Location() string { return s.url }
