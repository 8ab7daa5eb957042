// Package web carries the embedded HTML templates for the server-rendered
// pages.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every embedded page template. Pages are executed by
// file name, e.g. "index.html".
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
