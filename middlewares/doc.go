// Package middlewares provides HTTP middleware for ssrkit applications.
//
// # I18n
//
// I18n negotiates the request locale (query "lng", cookie "lng", then
// Accept-Language) and stores the LoadContext and a request-scoped
// Translator. Route handlers add the namespaces they need with Namespaces:
//
//	table, _ := i18n.New(i18n.WithDir(resources.Locales), i18n.WithLocales("en", "sk"))
//
//	app := ssrkit.New(
//	    ssrkit.WithMiddleware(middlewares.I18n(i18n.NewNegotiator(table))),
//	)
//
//	func (h *Pages) Routes(r ssrkit.Router) {
//	    r.GET("/", h.home, middlewares.Namespaces("home"))
//	}
//
// # DataCache
//
// DataCache marks prefetched data responses (JSON, text) as privately
// cacheable for ten seconds, unless the handler set its own Cache-Control.
// Documents are never touched.
//
// # Request ID
//
// RequestID assigns a unique ID to each request, reusing an upstream one
// when present. Use RequestIDExtractor() and LocaleExtractor() with
// WithLogger to add them to every log entry:
//
//	app := ssrkit.New(
//	    ssrkit.WithLogger("web", logger.Config{},
//	        middlewares.RequestIDExtractor(),
//	        middlewares.LocaleExtractor(),
//	    ),
//	    ssrkit.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns handler panics into a *PanicError for the ErrorHandler.
//
// # Recommended Middleware Order
//
//	ssrkit.WithMiddleware(
//	    middlewares.RequestID(), // first: every later log line carries the id
//	    middlewares.Recover(),
//	    middlewares.I18n(negotiator),
//	    middlewares.DataCache(),
//	)
package middlewares
