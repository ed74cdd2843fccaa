package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/dmitrymomot/ssrkit/pkg/environment"
)

// Adapter turns the app handler into a configured http.Server.
// One adapter is chosen per process, before the server starts.
type Adapter interface {
	Name() string
	Server(addr string, h http.Handler, log *slog.Logger) *http.Server
}

// AdapterFor returns the adapter matching env. Staging counts as production.
func AdapterFor(env environment.Environment) Adapter {
	if env.IsProduction() {
		return ProductionAdapter{ExcludePaths: []string{defaultLivenessPath, defaultReadinessPath}}
	}
	return DevelopmentAdapter{}
}

// ProductionAdapter serves behind a reverse proxy: hardened timeouts,
// cleartext HTTP/2 and one trace span per request.
type ProductionAdapter struct {
	// ServiceName names request spans. Defaults to "ssrkit".
	ServiceName string
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
	// ExcludePaths are not traced, e.g. health probes.
	ExcludePaths []string
}

func (ProductionAdapter) Name() string { return "production" }

func (p ProductionAdapter) Server(addr string, h http.Handler, log *slog.Logger) *http.Server {
	name := p.ServiceName
	if name == "" {
		name = "ssrkit"
	}
	tp := p.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	exclude := make(map[string]struct{}, len(p.ExcludePaths))
	for _, path := range p.ExcludePaths {
		exclude[path] = struct{}{}
	}

	traced := otelhttp.NewHandler(h, name,
		otelhttp.WithTracerProvider(tp),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			_, excluded := exclude[r.URL.Path]
			return !excluded
		}),
	)

	return &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(traced, &http2.Server{IdleTimeout: defaultIdleTimeout}),
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
	}
}

// DevelopmentAdapter has no write timeout, so a stalled render can be
// inspected, and logs every request.
type DevelopmentAdapter struct{}

func (DevelopmentAdapter) Name() string { return "development" }

func (DevelopmentAdapter) Server(addr string, h http.Handler, log *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           accessLog(h, log),
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
	}
}

// accessLog logs one line per request once the response is finished.
func accessLog(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.InfoContext(r.Context(), "request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
