// Package ssrkit serves localized, streamed HTML documents.
//
// A request passes through three stages. The I18n middleware negotiates a
// locale from the "lng" query parameter, the "lng" cookie and
// Accept-Language, and stores it with the route's translation namespaces as
// the request's LoadContext. The handler calls Context.Document, which hands
// the component to a render.Renderer: crawlers receive the complete page,
// browsers receive the shell as soon as it is ready and the rest as it
// streams. Data endpoints answering browser prefetches get a short private
// Cache-Control through the DataCache middleware.
//
// # Quick Start
//
//	table, err := i18n.New(i18n.WithDir(locales), i18n.WithLocales("en", "sk"))
//	if err != nil {
//	    return err
//	}
//
//	app := ssrkit.New(
//	    ssrkit.WithRenderer(render.New(table, render.WithLogger(log))),
//	    ssrkit.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.I18n(i18n.NewNegotiator(table)),
//	        middlewares.DataCache(),
//	    ),
//	    ssrkit.WithHandlers(&pages{}),
//	    ssrkit.WithHealthChecks(ssrkit.WithReadinessCheck("translations", table.Check)),
//	)
//
//	return ssrkit.Run(app, ssrkit.Address(":8080"), ssrkit.Environment(env))
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes. Route
// middleware runs after the global middleware, so Namespaces can extend the
// LoadContext negotiated by I18n:
//
//	func (p *pages) Routes(r ssrkit.Router) {
//	    r.GET("/", p.home, middlewares.Namespaces("home"))
//	    r.GET("/api/stats", p.stats)
//	}
//
//	func (p *pages) home(c ssrkit.Context) error {
//	    return c.Document(http.StatusOK, views.Home())
//	}
//
// # Documents
//
// Components mark the end of their shell with render.Boundary(). Everything
// before it is the shell. A failure before the shell is ready is returned from
// Document, untouched response and all, so the [ErrorHandler] decides what to
// send. A failure after it turns into a 500 (when the status was not sent
// yet), one log line and a truncated document.
//
// # Adapters
//
// Run picks one [Adapter] before it listens. Production and staging use the
// [ProductionAdapter]; everything else uses the [DevelopmentAdapter].
package ssrkit
