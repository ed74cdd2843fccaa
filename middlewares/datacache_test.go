package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ssrkit/internal"
	"github.com/dmitrymomot/ssrkit/middlewares"
	"github.com/dmitrymomot/ssrkit/pkg/prefetch"
)

func TestDataCache(t *testing.T) {
	t.Parallel()

	jsonHandler := func(c internal.Context) error {
		return c.JSON(http.StatusOK, map[string]int{"visits": 3})
	}

	tests := []struct {
		name    string
		method  string
		headers map[string]string
		handler internal.HandlerFunc
		want    string
	}{
		{
			name:    "sec-purpose prefetch gets short private cache",
			method:  http.MethodGet,
			headers: map[string]string{"Sec-Purpose": "prefetch"},
			handler: jsonHandler,
			want:    prefetch.CacheControl,
		},
		{
			name:    "purpose header",
			method:  http.MethodGet,
			headers: map[string]string{"Purpose": "prefetch"},
			handler: jsonHandler,
			want:    prefetch.CacheControl,
		},
		{
			name:    "first non-empty purpose header decides",
			method:  http.MethodGet,
			headers: map[string]string{"X-Purpose": "preview", "Sec-Purpose": "prefetch"},
			handler: jsonHandler,
			want:    "",
		},
		{
			name:    "handler cache-control is preserved",
			method:  http.MethodGet,
			headers: map[string]string{"Sec-Purpose": "prefetch"},
			handler: func(c internal.Context) error {
				c.SetHeader("Cache-Control", "no-store")
				return jsonHandler(c)
			},
			want: "no-store",
		},
		{
			name:    "regular request untouched",
			method:  http.MethodGet,
			handler: jsonHandler,
			want:    "",
		},
		{
			name:    "post prefetch untouched",
			method:  http.MethodPost,
			headers: map[string]string{"Sec-Purpose": "prefetch"},
			handler: jsonHandler,
			want:    "",
		},
		{
			name:    "html document untouched",
			method:  http.MethodGet,
			headers: map[string]string{"Sec-Purpose": "prefetch"},
			handler: func(c internal.Context) error {
				return c.Render(http.StatusOK, templ.Raw("<p>doc</p>"))
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/api/stats", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := serveThrough(t, req, []internal.Middleware{middlewares.DataCache()}, tt.handler)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Cache-Control"))
		})
	}
}

func TestDataCacheIsIdempotent(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Sec-Purpose", "prefetch")

	w := serveThrough(t, req, []internal.Middleware{middlewares.DataCache(), middlewares.DataCache()},
		func(c internal.Context) error {
			return c.String(http.StatusOK, "ok")
		})

	assert.Equal(t, []string{prefetch.CacheControl}, w.Header().Values("Cache-Control"))
}
