// Package web holds the embedded storefront templates. Static assets are
// served from disk so the sample catalog can be edited without a rebuild.
package web

import "embed"

//go:embed templates
var Templates embed.FS
