package internal

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ssrkit/pkg/i18n"
	"github.com/dmitrymomot/ssrkit/pkg/render"
)

// Component is the interface for renderable templates.
// It is the same type as templ.Component.
type Component = render.Component

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the underlying request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the underlying http.ResponseWriter.
	Response() http.ResponseWriter

	// ResponseWriter returns the hookable response wrapper.
	ResponseWriter() *ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the URL parameter value by name.
	// Returns empty string if the parameter doesn't exist.
	Param(name string) string

	// Query returns the query parameter value by name.
	// Returns empty string if the parameter doesn't exist.
	Query(name string) string

	// QueryDefault returns the query parameter value or a default.
	QueryDefault(name, defaultValue string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// Cookie returns the value of the named request cookie.
	Cookie(name string) (string, error)

	// SetCookie sets a first-party, HTTP-only, lax cookie on the response.
	// A negative maxAge deletes it.
	SetCookie(name, value string, maxAge int)

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Redirect redirects to the given URL with the given status code.
	Redirect(code int, url string) error

	// Error creates an HTTPError to return from a handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Render writes a component synchronously with the given status code.
	// Use it for fragments; full pages go through Document.
	Render(code int, component Component) error

	// Document streams a full page through the app's renderer using the
	// request's LoadContext and User-Agent. Errors raised before the shell
	// is ready are returned without writing anything.
	Document(code int, component Component) error

	// Written returns true if the response has been written.
	Written() bool

	// Logger returns the app logger.
	Logger() *slog.Logger

	// LogDebug logs at debug level with the request context.
	LogDebug(msg string, attrs ...any)

	// LogInfo logs at info level with the request context.
	LogInfo(msg string, attrs ...any)

	// LogWarn logs at warn level with the request context.
	LogWarn(msg string, attrs ...any)

	// LogError logs at error level with the request context.
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	Set(key, value any)

	// Get returns a value from the request context.
	Get(key any) any

	// T translates key with the request translator.
	// Returns the key when the I18n middleware did not run.
	T(key string, placeholders ...i18n.M) string

	// Tn is the plural form of T.
	Tn(key string, n int, placeholders ...i18n.M) string

	// Locale returns the negotiated locale, or "" without the I18n middleware.
	Locale() string
}

// requestContext implements the Context interface.
type requestContext struct {
	response       http.ResponseWriter
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
	renderer       *render.Renderer
}

// newContext creates a new context with the response wrapper.
func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw := NewResponseWriter(w)

	return &requestContext{
		request:        r,
		response:       rw,
		responseWriter: rw,
		logger:         app.logger,
		renderer:       app.renderer,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.response
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	v := c.request.URL.Query().Get(name)
	if v == "" {
		return defaultValue
	}
	return v
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) Cookie(name string) (string, error) {
	ck, err := c.request.Cookie(name)
	if err != nil {
		return "", err
	}
	return ck.Value, nil
}

func (c *requestContext) SetCookie(name, value string, maxAge int) {
	http.SetCookie(c.response, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.request.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *requestContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	http.Redirect(c.response, c.request, url, code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) Render(code int, component Component) error {
	c.response.Header().Set("Content-Type", render.ContentType)
	c.response.WriteHeader(code)
	return component.Render(c.request.Context(), c.response)
}

func (c *requestContext) Document(code int, component Component) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}

	lc := GetLoadContext(c)
	res, err := c.renderer.Render(c.request.Context(), render.Request{
		Component:  component,
		Locale:     lc.Locale,
		Namespaces: lc.Namespaces,
		UserAgent:  c.request.UserAgent(),
		Status:     code,
		Header:     c.response.Header(),
	})
	if err != nil {
		return err
	}

	if err := res.Serve(c.response); err != nil && !errors.Is(err, render.ErrStreamClosed) {
		c.LogDebug("document delivery interrupted", "error", err)
	}
	return nil
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) T(key string, placeholders ...i18n.M) string {
	return i18n.T(c.request.Context(), key, placeholders...)
}

func (c *requestContext) Tn(key string, n int, placeholders ...i18n.M) string {
	return i18n.Tn(c.request.Context(), key, n, placeholders...)
}

func (c *requestContext) Locale() string {
	if lc, ok := LoadContextFromContext(c.request.Context()); ok && lc.Locale != "" {
		return lc.Locale
	}
	return i18n.Locale(c.request.Context())
}
