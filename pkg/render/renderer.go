package render

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/ssrkit/pkg/i18n"
	"github.com/dmitrymomot/ssrkit/pkg/logger"
	"github.com/dmitrymomot/ssrkit/pkg/useragent"
)

const (
	// DefaultTimeout is how long a render may stream before it is aborted.
	DefaultTimeout = 10 * time.Second
	// DefaultAbortGrace is added to the timeout before the abort fires.
	DefaultAbortGrace = time.Second

	// ContentType is set on every document response.
	ContentType = "text/html; charset=utf-8"

	tracerName = "github.com/dmitrymomot/ssrkit/pkg/render"
)

// Component is anything that renders HTML into a writer.
type Component = templ.Component

// Request describes one document render.
type Request struct {
	Component  Component
	Locale     string
	Namespaces []string
	UserAgent  string
	// Status is the initial response status; zero means 200.
	Status int
	// Header carries caller-supplied response headers. It is copied.
	Header http.Header
}

// Renderer turns components into streamed documents.
type Renderer struct {
	table    *i18n.Table
	logger   *slog.Logger
	timeout  time.Duration
	grace    time.Duration
	isBot    func(ua string) bool
	tracer   trace.Tracer
	observer func(*Session)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTimeout sets the streaming timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithAbortGrace sets the delay between the timeout and the abort.
func WithAbortGrace(d time.Duration) Option {
	return func(r *Renderer) {
		if d >= 0 {
			r.grace = d
		}
	}
}

// WithLogger sets the logger used for in-stream failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithBotDetector replaces the User-Agent classifier.
func WithBotDetector(fn func(ua string) bool) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.isBot = fn
		}
	}
}

// WithTracerProvider sets the provider for render spans.
// The global provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Renderer) {
		if tp != nil {
			r.tracer = tp.Tracer(tracerName)
		}
	}
}

// New creates a Renderer backed by the shared locale table.
func New(table *i18n.Table, opts ...Option) *Renderer {
	if table == nil {
		panic("render: locale table is not provided")
	}

	r := &Renderer{
		table:   table,
		logger:  logger.NewNope(),
		timeout: DefaultTimeout,
		grace:   DefaultAbortGrace,
		isBot:   useragent.IsBot,
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Table returns the locale table the renderer translates with.
func (r *Renderer) Table() *i18n.Table {
	return r.table
}

// Render starts rendering req.Component into a stream and returns once the
// stream may be handed to the client: when the whole document is ready for
// crawlers, or as soon as the shell is ready for browsers.
//
// A failure before the shell is ready is returned as an error wrapping
// ErrShell and no stream is produced. Render does not log it; the caller's
// error handler owns that log line. A failure afterwards sets the session
// status to 500, is logged once and terminates the stream with the bytes
// produced so far. Closing the stream early is not a failure and keeps the
// status.
func (r *Renderer) Render(ctx context.Context, req Request) (*Result, error) {
	if req.Component == nil {
		return nil, ErrNilComponent
	}

	status := req.Status
	if status == 0 {
		status = http.StatusOK
	}

	crawler := r.isBot(req.UserAgent)
	tr := i18n.NewTranslator(r.table, req.Locale, req.Namespaces...)

	ctx, span := r.tracer.Start(ctx, "render.document", trace.WithAttributes(
		attribute.String("render.locale", tr.Locale()),
		attribute.Bool("render.crawler", crawler),
	))

	s := newSession(ctx, r.timeout+r.grace, status, r.logger.With(slog.String("locale", tr.Locale())), span)
	if r.observer != nil {
		r.observer(s)
	}

	go s.run(i18n.WithTranslator(s.ctx, tr), req.Component)

	s.wait(crawler)

	status, err := s.handoff()
	if err != nil {
		return nil, err
	}

	header := req.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	header.Set("Content-Type", ContentType)

	return &Result{
		Status:  status,
		Header:  header,
		Body:    s.stream,
		Locale:  tr.Locale(),
		Session: s,
	}, nil
}
