package middlewares

import (
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/ssrkit/internal"
	"github.com/dmitrymomot/ssrkit/pkg/logger"
)

type requestIDKey struct{}

// DefaultRequestIDHeaders are checked in order for an upstream request ID.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

const maxRequestIDLength = 128

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Headers are checked in order; the first valid value wins.
	Headers []string
	// Generator creates an ID when no upstream one is usable.
	Generator func() string
	// ResponseHeader echoes the ID back to the client.
	ResponseHeader string
}

// RequestIDOption configures RequestIDConfig.
type RequestIDOption func(*RequestIDConfig)

// WithRequestIDHeaders replaces the headers checked for an upstream ID.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.Headers = headers
	}
}

// WithRequestIDGenerator replaces the UUID generator.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		if gen != nil {
			cfg.Generator = gen
		}
	}
}

// WithRequestIDResponseHeader sets the response header name.
func WithRequestIDResponseHeader(header string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.ResponseHeader = header
	}
}

// RequestID returns middleware that gives every request an ID.
//
// Upstream IDs are reused only when they are short printable tokens, so a
// client cannot inject arbitrary text into logs or response headers. The ID
// is stored in the request context, where RequestIDExtractor and render
// failure logs pick it up, set as an attribute on the active trace span, and
// echoed in the response header.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	cfg := &RequestIDConfig{
		Headers:        DefaultRequestIDHeaders,
		Generator:      uuid.NewString,
		ResponseHeader: "X-Request-ID",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			id := upstreamRequestID(c, cfg.Headers)
			if id == "" {
				id = cfg.Generator()
			}

			c.Set(requestIDKey{}, id)
			trace.SpanFromContext(c.Context()).SetAttributes(attribute.String("http.request_id", id))
			if cfg.ResponseHeader != "" {
				c.SetHeader(cfg.ResponseHeader, id)
			}

			return next(c)
		}
	}
}

func upstreamRequestID(c internal.Context, headers []string) string {
	for _, h := range headers {
		if v := c.Header(h); validRequestID(v) {
			return v
		}
	}
	return ""
}

// validRequestID accepts 1..128 characters of [A-Za-z0-9._:-].
func validRequestID(v string) bool {
	if v == "" || len(v) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(v); i++ {
		switch b := v[i]; {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		case b == '-', b == '_', b == '.', b == ':':
		default:
			return false
		}
	}
	return true
}

// GetRequestID returns the request ID, or "" without the middleware.
func GetRequestID(c internal.Context) string {
	id, _ := c.Get(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds "request_id" to log entries. Use it with WithLogger
// or logger.New.
func RequestIDExtractor() logger.ContextExtractor {
	return logger.StringExtractor("request_id", requestIDKey{})
}
