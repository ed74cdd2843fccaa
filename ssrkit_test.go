package ssrkit_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ssrkit"
	"github.com/dmitrymomot/ssrkit/middlewares"
	"github.com/dmitrymomot/ssrkit/pkg/environment"
	"github.com/dmitrymomot/ssrkit/pkg/i18n"
	"github.com/dmitrymomot/ssrkit/pkg/render"
)

type routes func(r ssrkit.Router)

func (f routes) Routes(r ssrkit.Router) { f(r) }

type ctxKey struct{}

func newTable(t *testing.T) *i18n.Table {
	t.Helper()
	table, err := i18n.New(
		i18n.WithLocales("en", "sk"),
		i18n.WithTranslations("en", "common", map[string]any{"hello": "Hello"}),
		i18n.WithTranslations("sk", "common", map[string]any{"hello": "Ahoj"}),
		i18n.WithTranslations("sk", "home", map[string]any{"title": "Domov"}),
	)
	require.NoError(t, err)
	return table
}

func TestApp_Document(t *testing.T) {
	t.Parallel()

	table := newTable(t)
	var seen ssrkit.LoadContext

	page := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h1>"+i18n.T(ctx, "title")+"</h1>"); err != nil {
			return err
		}
		if err := render.Boundary().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "<p>"+i18n.T(ctx, "hello")+"</p>")
		return err
	})

	app := ssrkit.New(
		ssrkit.WithRenderer(render.New(table)),
		ssrkit.WithMiddleware(middlewares.I18n(i18n.NewNegotiator(table))),
		ssrkit.WithHandlers(routes(func(r ssrkit.Router) {
			r.GET("/", func(c ssrkit.Context) error {
				seen = ssrkit.GetLoadContext(c)
				return c.Document(http.StatusOK, page)
			}, middlewares.Namespaces("home"))
		})),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?lng=sk", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>Domov</h1><p>Ahoj</p>", w.Body.String())
	assert.Equal(t, "sk", seen.Locale)
	assert.Contains(t, seen.Namespaces, "home")
}

func TestApp_DocumentWithoutRenderer(t *testing.T) {
	t.Parallel()

	var got error
	app := ssrkit.New(
		ssrkit.WithErrorHandler(func(c ssrkit.Context, err error) error {
			got = err
			return c.String(http.StatusInternalServerError, "no renderer")
		}),
		ssrkit.WithHandlers(routes(func(r ssrkit.Router) {
			r.GET("/", func(c ssrkit.Context) error {
				return c.Document(http.StatusOK, templ.Raw("<p>x</p>"))
			})
		})),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.ErrorIs(t, got, ssrkit.ErrNoRenderer)
}

func TestContextValue(t *testing.T) {
	t.Parallel()

	var str string
	var missing int
	app := ssrkit.New(ssrkit.WithHandlers(routes(func(r ssrkit.Router) {
		r.GET("/", func(c ssrkit.Context) error {
			c.Set(ctxKey{}, "value")
			str = ssrkit.ContextValue[string](c, ctxKey{})
			missing = ssrkit.ContextValue[int](c, ctxKey{})
			return c.NoContent(http.StatusNoContent)
		})
	})))

	app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "value", str)
	assert.Zero(t, missing)
}

func TestHTTPErrors(t *testing.T) {
	t.Parallel()

	cause := errors.New("db down")
	err := error(ssrkit.ErrServiceUnavailable("", ssrkit.WithError(cause), ssrkit.WithErrorCode("errors.unavailable")))

	require.True(t, ssrkit.IsHTTPError(err))
	httpErr := ssrkit.AsHTTPError(err)
	require.NotNil(t, httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode())
	assert.Equal(t, "errors.unavailable", httpErr.ErrorCode)
	assert.ErrorIs(t, err, cause)

	assert.Nil(t, ssrkit.AsHTTPError(cause))
}

func TestAdapterFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "production", ssrkit.AdapterFor(environment.Staging).Name())
	assert.Equal(t, "development", ssrkit.AdapterFor(environment.Development).Name())
}
