// Package sanitizer cleans user-supplied HTML before it is persisted.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text.
		strictPolicy = bluemonday.StrictPolicy()

		// safePolicy allows basic formatting for blog content.
		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br",
			"h2", "h3",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"blockquote",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.AllowImages()
		safePolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeHTML allows safe formatting tags (headings, paragraphs, links,
// lists, images). Scripts, event handlers, and javascript: URLs are
// stripped. Use for blog post content.
func SanitizeHTML(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}

// StripHTML removes all markup, returning plain text. Use for fields
// that must never contain HTML (titles, excerpts, locations).
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}
