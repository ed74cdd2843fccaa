package internal

import (
	"context"
	"slices"
)

// LoadContext is the per-request data a document render needs before any
// component runs: the negotiated locale and the translation namespaces the
// matched route declared.
type LoadContext struct {
	Locale     string
	Namespaces []string
}

// WithNamespaces returns a copy with ns appended, skipping duplicates.
func (lc LoadContext) WithNamespaces(ns ...string) LoadContext {
	out := LoadContext{Locale: lc.Locale, Namespaces: slices.Clone(lc.Namespaces)}
	for _, n := range ns {
		if n != "" && !slices.Contains(out.Namespaces, n) {
			out.Namespaces = append(out.Namespaces, n)
		}
	}
	return out
}

// LoadContextKey is the context key the LoadContext is stored under.
type LoadContextKey struct{}

// ContextWithLoadContext returns a copy of ctx carrying lc.
func ContextWithLoadContext(ctx context.Context, lc LoadContext) context.Context {
	return context.WithValue(ctx, LoadContextKey{}, lc)
}

// LoadContextFromContext returns the LoadContext stored in ctx.
// The bool is false when none was stored.
func LoadContextFromContext(ctx context.Context) (LoadContext, bool) {
	lc, ok := ctx.Value(LoadContextKey{}).(LoadContext)
	return lc, ok
}

// GetLoadContext returns the request's LoadContext, or the zero value when
// the I18n middleware did not run.
func GetLoadContext(c Context) LoadContext {
	lc, _ := LoadContextFromContext(c.Context())
	return lc
}
