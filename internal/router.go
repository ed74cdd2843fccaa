package internal

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// Router is the interface handlers use to declare routes. Route middleware
// runs after the app's global middleware, in the order it is listed.
type Router interface {
	GET(path string, h HandlerFunc, mw ...Middleware)
	POST(path string, h HandlerFunc, mw ...Middleware)
	PUT(path string, h HandlerFunc, mw ...Middleware)
	PATCH(path string, h HandlerFunc, mw ...Middleware)
	DELETE(path string, h HandlerFunc, mw ...Middleware)
	HEAD(path string, h HandlerFunc, mw ...Middleware)

	// Handle registers h for an arbitrary method.
	Handle(method, path string, h HandlerFunc, mw ...Middleware)

	// Group creates an inline route group sharing middleware added with Use.
	Group(fn func(r Router))

	// Route creates a route group under a pattern prefix.
	Route(pattern string, fn func(r Router))

	// Use appends middleware to the group's stack.
	Use(mw ...Middleware)

	// Mount attaches an http.Handler at the given pattern.
	Mount(pattern string, h http.Handler)
}

type routerAdapter struct {
	router chi.Router
	app    *App
}

func (r *routerAdapter) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodGet, path, h, mw...)
}

func (r *routerAdapter) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodPost, path, h, mw...)
}

func (r *routerAdapter) PUT(path string, h HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodPut, path, h, mw...)
}

func (r *routerAdapter) PATCH(path string, h HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodPatch, path, h, mw...)
}

func (r *routerAdapter) DELETE(path string, h HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodDelete, path, h, mw...)
}

func (r *routerAdapter) HEAD(path string, h HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodHead, path, h, mw...)
}

func (r *routerAdapter) Handle(method, path string, h HandlerFunc, mw ...Middleware) {
	r.router.Method(method, path, r.app.wrapHandler(chain(h, mw)))
}

func (r *routerAdapter) Group(fn func(Router)) {
	r.router.Group(func(cr chi.Router) {
		fn(&routerAdapter{router: cr, app: r.app})
	})
}

func (r *routerAdapter) Route(pattern string, fn func(Router)) {
	r.router.Route(pattern, func(cr chi.Router) {
		fn(&routerAdapter{router: cr, app: r.app})
	})
}

func (r *routerAdapter) Use(mw ...Middleware) {
	for _, m := range mw {
		r.router.Use(r.app.adaptMiddleware(m))
	}
}

func (r *routerAdapter) Mount(pattern string, h http.Handler) {
	r.router.Mount(pattern, h)
}

// chain wraps h so that mw[0] is the outermost middleware.
func chain(h HandlerFunc, mw []Middleware) HandlerFunc {
	for _, m := range slices.Backward(mw) {
		h = m(h)
	}
	return h
}

// adaptMiddleware turns a Middleware into chi middleware. Each layer gets
// its own Context over the request it receives, and next sees the request as
// the middleware left it, values stored with Set included.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := newContext(w, r, a)
			err := mw(func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			})(c)
			if err != nil {
				a.handleError(c, err)
			}
		})
	}
}
