package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy  *bluemonday.Policy
	previewPolicy *bluemonday.Policy
	initOnce      sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// strictPolicy strips ALL HTML, returns plain text.
		strictPolicy = bluemonday.StrictPolicy()

		// previewPolicy keeps the markup email clients commonly render so a
		// message body can be embedded in a page without active content.
		previewPolicy = bluemonday.NewPolicy()
		previewPolicy.AllowStandardURLs()
		previewPolicy.AllowElements(
			"p", "br", "div", "span",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"table", "thead", "tbody", "tr", "td", "th",
		)
		previewPolicy.AllowAttrs("href").OnElements("a")
		previewPolicy.AllowAttrs("src", "alt", "width", "height").OnElements("img")
		previewPolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeHTML reduces a message body to the formatting tags email clients
// commonly render (headings, paragraphs, lists, tables, images, links).
// Strips all dangerous elements and attributes including scripts, event
// handlers, and javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return previewPolicy.Sanitize(s)
}

// StripHTML removes all markup and returns plain text with collapsed
// whitespace. The result is for text contexts only; re-embedding it in
// HTML requires escaping again.
func StripHTML(s string) string {
	initPolicies()
	text := html.UnescapeString(strictPolicy.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}
