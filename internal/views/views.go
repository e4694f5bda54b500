// Package views holds the embedded HTML pages for the web harness.
//
// Templates are parsed once at package initialization and addressed by
// file name ("index.html", "report.html", "error.html"), so a broken
// template fails the process at startup rather than on the first request.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates
var files embed.FS

var pages = template.Must(template.ParseFS(files, "templates/*.html"))

// Pages returns the parsed page templates, keyed by file name.
func Pages() *template.Template {
	return pages
}
