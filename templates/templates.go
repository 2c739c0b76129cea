// Package templates embeds the storefront's HTML pages.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every page. Pages share the header and footer blocks
// defined in layout.html.
func Load() (*template.Template, error) {
	return template.New("").ParseFS(files, "*.html")
}
