package internal

// Handler declares routes on a router.
//
// Example:
//
//	type PagesHandler struct{}
//
//	func (h *PagesHandler) Routes(r ssrkit.Router) {
//	    r.GET("/", h.home, middlewares.Namespaces("home"))
//	    r.GET("/api/stats", h.stats)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect the request, short-circuit processing,
// or hook into the response before it is written.
//
// Example:
//
//	func NoIndex(next ssrkit.HandlerFunc) ssrkit.HandlerFunc {
//	    return func(c ssrkit.Context) error {
//	        c.SetHeader("X-Robots-Tag", "noindex")
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
