package internal

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/ssrkit/pkg/logger"
	"github.com/dmitrymomot/ssrkit/pkg/render"
)

// Option configures the application.
type Option func(*App)

// WithRenderer sets the renderer used by Context.Document.
//
// Example:
//
//	ssrkit.New(
//	    ssrkit.WithRenderer(render.New(table, render.WithLogger(log))),
//	)
func WithRenderer(r *render.Renderer) Option {
	return func(a *App) {
		a.renderer = r
	}
}

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithStaticFiles mounts a static file handler at the given pattern.
// Directory listings are disabled. Files are served with default cache headers.
//
// Example:
//
//	//go:embed public
//	var assets embed.FS
//
//	ssrkit.New(
//	    ssrkit.WithStaticFiles("/static/", assets, "public"),
//	)
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return func(a *App) {
		subFS, err := fs.Sub(fsys, subDir)
		if err != nil {
			panic(err)
		}

		fileServer := http.StripPrefix(strings.TrimSuffix(pattern, "/"), http.FileServerFS(subFS))

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/") {
				http.NotFound(w, r)
				return
			}

			w.Header().Set("Cache-Control", "public, max-age=3600")
			w.Header().Set("X-Content-Type-Options", "nosniff")

			fileServer.ServeHTTP(w, r)
		})

		a.staticRoutes = append(a.staticRoutes, staticRoute{handler, pattern})
	}
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error and nothing was written yet.
//
// Example:
//
//	ssrkit.WithErrorHandler(func(c ssrkit.Context, err error) error {
//	    if errors.Is(err, render.ErrShell) {
//	        return c.String(http.StatusInternalServerError, c.T("errors.render"))
//	    }
//	    return c.String(http.StatusInternalServerError, err.Error())
//	})
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithNotFoundHandler sets a custom 404 handler.
//
// Example:
//
//	ssrkit.WithNotFoundHandler(func(c ssrkit.Context) error {
//	    return c.Document(http.StatusNotFound, views.NotFound())
//	})
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/health/live): Always returns OK if process is running.
// Readiness (/health/ready): Runs all configured checks.
//
// Example:
//
//	ssrkit.WithHealthChecks(
//	    ssrkit.WithReadinessCheck("translations", table.Check),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
// Extractors pull values from context (e.g., request_id, locale).
//
// Example:
//
//	ssrkit.New(
//	    ssrkit.WithLogger("web", logger.Config{Format: logger.FormatText},
//	        middlewares.RequestIDExtractor(),
//	        middlewares.LocaleExtractor(),
//	    ),
//	)
func WithLogger(component string, cfg logger.Config, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(cfg, extractors...).With(slog.String("component", component))
	}
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}
