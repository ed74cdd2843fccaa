package ssrkit

import (
	"context"
	"io/fs"
	"log/slog"
	"net"
	"time"

	"github.com/dmitrymomot/ssrkit/internal"
	"github.com/dmitrymomot/ssrkit/pkg/environment"
	"github.com/dmitrymomot/ssrkit/pkg/health"
	"github.com/dmitrymomot/ssrkit/pkg/logger"
	"github.com/dmitrymomot/ssrkit/pkg/render"
)

// Type aliases - public API
type (
	// App wires routes, middleware and the document renderer into one handler.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// Component is the interface for renderable templates.
	Component = internal.Component

	// LoadContext is the negotiated locale and route namespaces of a request.
	LoadContext = internal.LoadContext

	// Adapter turns the app into an http.Server for one environment.
	Adapter = internal.Adapter

	// ProductionAdapter: hardened timeouts, h2c and request tracing.
	ProductionAdapter = internal.ProductionAdapter

	// DevelopmentAdapter: no write timeout and an access log.
	DevelopmentAdapter = internal.DevelopmentAdapter

	// ResponseWriter wraps http.ResponseWriter with before-write hooks.
	ResponseWriter = internal.ResponseWriter

	// HTTPError is a handler error carrying a response status.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// ErrNoRenderer is returned by Context.Document without WithRenderer.
var ErrNoRenderer = internal.ErrNoRenderer

// New creates a new application with the given options.
//
// Example:
//
//	app := ssrkit.New(
//	    ssrkit.WithRenderer(render.New(table)),
//	    ssrkit.WithMiddleware(middlewares.I18n(i18n.NewNegotiator(table))),
//	    ssrkit.WithHandlers(handlers.NewPages()),
//	)
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// Run starts app and blocks until SIGINT, SIGTERM or the WithContext context
// ends. The adapter is chosen once from the Environment option.
//
// Example:
//
//	err := ssrkit.Run(app,
//	    ssrkit.Address(cfg.Addr),
//	    ssrkit.Environment(cfg.Env),
//	    ssrkit.Logger(log),
//	)
func Run(app *App, opts ...RunOption) error {
	return app.Run(opts...)
}

// GetLoadContext returns the request's LoadContext. Handlers thread it into
// anything that renders outside Context.Document.
func GetLoadContext(c Context) LoadContext {
	return internal.GetLoadContext(c)
}

// AdapterFor returns the adapter for env. Staging counts as production.
func AdapterFor(env environment.Environment) Adapter {
	return internal.AdapterFor(env)
}

// App options

// WithRenderer sets the renderer used by Context.Document.
func WithRenderer(r *render.Renderer) Option {
	return internal.WithRenderer(r)
}

// WithMiddleware adds global middleware to the application.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithStaticFiles mounts a static file handler at the given pattern.
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

// WithErrorHandler sets a custom error handler for handler errors.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables liveness and readiness endpoints.
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogger creates a logger with a component name and optional extractors.
func WithLogger(component string, cfg logger.Config, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, cfg, extractors...)
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// Health options

// WithLivenessPath sets a custom liveness endpoint path.
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath sets a custom readiness endpoint path.
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessTimeout bounds every readiness check.
func WithReadinessTimeout(d time.Duration) HealthOption {
	return internal.WithReadinessTimeout(d)
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options

// Address sets the HTTP server address. Defaults to ":8080".
func Address(addr string) RunOption {
	return internal.Address(addr)
}

// Environment selects the adapter. Defaults to development.
func Environment(env environment.Environment) RunOption {
	return internal.Environment(env)
}

// WithAdapter overrides the adapter chosen from the environment.
func WithAdapter(a Adapter) RunOption {
	return internal.WithAdapter(a)
}

// Logger sets the server logger.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function to run before the server accepts connections.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function to run during shutdown.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithListener serves on ln instead of listening on the address.
func WithListener(ln net.Listener) RunOption {
	return internal.WithListener(ln)
}

// WithContext sets a custom base context for signal handling.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// ContextValue returns the request-scoped value stored under key, or the
// zero value of T.
//
// Example:
//
//	id := ssrkit.ContextValue[string](c, requestIDKey{})
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// Errors

// NewHTTPError creates an HTTPError. An empty message uses the status text.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// ErrNotFound creates a 404 HTTPError.
func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

// ErrBadRequest creates a 400 HTTPError.
func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

// ErrInternal creates a 500 HTTPError.
func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

// ErrServiceUnavailable creates a 503 HTTPError.
func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrServiceUnavailable(message, opts...)
}

// IsHTTPError reports whether err wraps an HTTPError.
func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}

// AsHTTPError extracts the HTTPError from an error chain, or nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// WithError attaches the underlying error to an HTTPError.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// WithRequestID attaches the request ID to an HTTPError.
func WithRequestID(id string) HTTPErrorOption {
	return internal.WithRequestID(id)
}

// WithErrorCode attaches an application error code, usually a translation key.
func WithErrorCode(code string) HTTPErrorOption {
	return internal.WithErrorCode(code)
}
