package middlewares

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/ssrkit/internal"
	"github.com/dmitrymomot/ssrkit/pkg/i18n"
	"github.com/dmitrymomot/ssrkit/pkg/logger"
)

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	// Namespaces are loaded for every route, before route namespaces.
	Namespaces []string
	// Vary adds "Vary: Accept-Language, Cookie" to responses.
	Vary bool
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nNamespaces sets namespaces every route loads.
func WithI18nNamespaces(ns ...string) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Namespaces = append(cfg.Namespaces, ns...)
	}
}

// WithI18nVary toggles the Vary header. Enabled by default.
func WithI18nVary(enabled bool) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Vary = enabled
	}
}

// I18n returns middleware that negotiates the request locale, stores the
// LoadContext and a request-scoped Translator in the request context.
// Negotiation never fails: without a usable signal the negotiator fallback
// is used.
func I18n(n *i18n.Negotiator, opts ...I18nOption) internal.Middleware {
	if n == nil {
		panic("middlewares: negotiator is not provided")
	}

	cfg := &I18nConfig{Vary: true}
	for _, opt := range opts {
		opt(cfg)
	}

	table := n.Table()

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			lc := internal.LoadContext{Locale: n.Negotiate(c.Request())}.WithNamespaces(cfg.Namespaces...)

			c.Set(internal.LoadContextKey{}, lc)
			c.Set(i18n.TranslatorKey{}, i18n.NewTranslator(table, lc.Locale, lc.Namespaces...))
			if cfg.Vary {
				c.Response().Header().Add("Vary", "Accept-Language, Cookie")
			}

			return next(c)
		}
	}
}

// Namespaces returns route middleware that adds namespaces to the request's
// LoadContext and rebuilds its Translator. It must run after I18n.
//
//	r.GET("/", h.home, middlewares.Namespaces("home"))
func Namespaces(ns ...string) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			lc, ok := internal.LoadContextFromContext(c.Context())
			if !ok {
				return next(c)
			}
			lc = lc.WithNamespaces(ns...)
			c.Set(internal.LoadContextKey{}, lc)

			if tr := i18n.TranslatorFromContext(c.Context()); tr != nil {
				c.Set(i18n.TranslatorKey{}, tr.WithNamespaces(lc.Namespaces...))
			}

			return next(c)
		}
	}
}

// GetTranslator extracts the Translator from the context.
// Returns nil if the I18n middleware is not used.
func GetTranslator(c internal.Context) *i18n.Translator {
	return i18n.TranslatorFromContext(c.Context())
}

// GetLocale extracts the negotiated locale from the context.
// Returns an empty string if the I18n middleware is not used.
func GetLocale(c internal.Context) string {
	return internal.GetLoadContext(c).Locale
}

// LocaleExtractor returns a ContextExtractor for use with WithLogger.
// Adds "locale" to log entries of requests that went through I18n.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if lc, ok := internal.LoadContextFromContext(ctx); ok && lc.Locale != "" {
			return slog.String("locale", lc.Locale), true
		}
		return slog.Attr{}, false
	}
}
