package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

// Default names of the query parameter and cookie that carry a locale choice.
const (
	DefaultQueryParam = "lng"
	DefaultCookieName = "lng"
)

// Source yields a locale candidate from a request.
type Source func(r *http.Request) (string, bool)

// FromQuery reads the candidate from a query parameter.
func FromQuery(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie reads the candidate from a cookie.
func FromCookie(name string) Source {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromHeader reads the candidate verbatim from a request header.
func FromHeader(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}

// FromAcceptLanguage matches the Accept-Language header against supported,
// honoring quality values. The first supported locale is the matcher's
// fallback, so a match with no confidence counts as a miss.
func FromAcceptLanguage(supported []string) Source {
	tags := make([]language.Tag, len(supported))
	for i, l := range supported {
		tags[i] = language.Make(l)
	}
	matcher := language.NewMatcher(tags)

	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" || len(supported) == 0 {
			return "", false
		}

		desired, _, err := language.ParseAcceptLanguage(header)
		if err != nil || len(desired) == 0 {
			return "", false
		}

		_, index, confidence := matcher.Match(desired...)
		if confidence == language.No {
			return "", false
		}
		return supported[index], true
	}
}

// Negotiator picks the request locale from an ordered list of sources.
// The first source that yields a supported locale wins; otherwise the
// fallback is returned. Negotiate never fails.
type Negotiator struct {
	table    *Table
	sources  []Source
	fallback string
}

// NegotiatorOption configures a Negotiator.
type NegotiatorOption func(*Negotiator)

// WithSources replaces the default source chain.
func WithSources(sources ...Source) NegotiatorOption {
	return func(n *Negotiator) {
		n.sources = sources
	}
}

// WithFallback overrides the table default as the negotiation fallback.
// Unsupported values are ignored.
func WithFallback(locale string) NegotiatorOption {
	return func(n *Negotiator) {
		if matched, ok := n.table.Match(locale); ok {
			n.fallback = matched
		}
	}
}

// NewNegotiator creates a negotiator over the table's supported locales.
// The default chain is query "lng", cookie "lng", then Accept-Language.
func NewNegotiator(table *Table, opts ...NegotiatorOption) *Negotiator {
	n := &Negotiator{
		table:    table,
		fallback: table.DefaultLocale(),
		sources: []Source{
			FromQuery(DefaultQueryParam),
			FromCookie(DefaultCookieName),
			FromAcceptLanguage(table.Locales()),
		},
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Negotiate returns a supported locale for the request.
func (n *Negotiator) Negotiate(r *http.Request) string {
	for _, source := range n.sources {
		candidate, ok := source(r)
		if !ok {
			continue
		}
		if locale, ok := n.table.Match(candidate); ok {
			return locale
		}
	}
	return n.fallback
}

// Fallback returns the locale used when no source matches.
func (n *Negotiator) Fallback() string {
	return n.fallback
}

// Table returns the table the negotiator matches against.
func (n *Negotiator) Table() *Table {
	return n.table
}
