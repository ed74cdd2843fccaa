// Package internal provides the core types and implementation for ssrkit.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/ssrkit" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: routing, middleware, the document renderer and graceful shutdown
//   - Context: request/response access, translation helpers and Document
//   - Router: interface handlers use to declare routes
//   - Handler: types that declare routes on a router
//   - Middleware: wraps handlers to add cross-cutting concerns
//   - LoadContext: negotiated locale and route namespaces of a request
//   - Adapter: turns the app into an http.Server for one environment
//
// # Documents
//
// Context.Document hands a component to the app's render.Renderer together
// with the request's LoadContext and User-Agent. Crawlers receive the
// complete page, browsers receive the shell as soon as it is ready and the
// rest as it streams. A failure before the shell is ready comes back as the
// handler's error; nothing has been written yet, so the ErrorHandler can
// still answer:
//
//	func (h *Pages) home(c ssrkit.Context) error {
//	    return c.Document(http.StatusOK, views.Home())
//	}
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any function
// that expects a standard library context. The Deadline, Done, Err, and Value
// methods delegate to the underlying request context.
//
// # Adapters
//
// Run resolves one Adapter before listening. The production adapter sets
// hardened timeouts, accepts cleartext HTTP/2 and traces requests with
// otelhttp. The development adapter drops the write timeout and logs every
// request.
package internal
