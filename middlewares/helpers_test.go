package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ssrkit/internal"
	"github.com/dmitrymomot/ssrkit/pkg/i18n"
)

type routesFunc func(r internal.Router)

func (f routesFunc) Routes(r internal.Router) { f(r) }

// serveThrough runs req through an app with global middleware mw and a single
// GET route for req's path.
func serveThrough(t *testing.T, req *http.Request, mw []internal.Middleware, h internal.HandlerFunc, routeMW ...internal.Middleware) *httptest.ResponseRecorder {
	t.Helper()

	app := internal.New(
		internal.WithMiddleware(mw...),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET(req.URL.Path, h, routeMW...)
			r.POST(req.URL.Path, h, routeMW...)
		})),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func newTable(t *testing.T) *i18n.Table {
	t.Helper()
	table, err := i18n.New(
		i18n.WithLocales("en", "sk"),
		i18n.WithTranslations("en", "common", map[string]any{
			"hello":       "Hello",
			"items_one":   "{{count}} item",
			"items_other": "{{count}} items",
		}),
		i18n.WithTranslations("sk", "common", map[string]any{
			"hello":       "Ahoj",
			"items_one":   "{{count}} položka",
			"items_few":   "{{count}} položky",
			"items_other": "{{count}} položiek",
		}),
		i18n.WithTranslations("en", "home", map[string]any{"heading": "Home"}),
		i18n.WithTranslations("sk", "home", map[string]any{"heading": "Domov"}),
	)
	require.NoError(t, err)
	return table
}
