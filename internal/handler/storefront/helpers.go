package storefront

import (
	"net/http"
	"time"
)

// BaseTemplateData returns common data for all storefront pages
func BaseTemplateData(r *http.Request) map[string]interface{} {
	return map[string]interface{}{
		"Year": time.Now().Year(),
		"Path": r.URL.Path,
	}
}
