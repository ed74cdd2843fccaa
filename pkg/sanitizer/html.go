// Package sanitizer cleans HTML fragments that reach a document unescaped.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	inlinePolicy *bluemonday.Policy
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Inline formatting only: translations may emphasize or link, never structure.
		inlinePolicy = bluemonday.NewPolicy()
		inlinePolicy.AllowStandardURLs()
		inlinePolicy.AllowElements("strong", "b", "em", "i", "code", "br")
		inlinePolicy.AllowAttrs("href", "hreflang").OnElements("a")
		inlinePolicy.RequireNoFollowOnLinks(true)
	})
}

// Inline keeps inline formatting and links and drops everything else,
// including scripts, event handlers and javascript: URLs.
//
//	Inline(`Read <strong>this</strong><script>x()</script>`) // "Read <strong>this</strong>"
func Inline(s string) string {
	initPolicies()
	return inlinePolicy.Sanitize(s)
}

// StripTags removes all markup and returns text.
func StripTags(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}
