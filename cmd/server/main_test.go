package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ssrkit"
	"github.com/dmitrymomot/ssrkit/pkg/environment"
	"github.com/dmitrymomot/ssrkit/pkg/logger"
)

const googlebot = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"

func testApp(t *testing.T) *ssrkit.App {
	t.Helper()

	app, err := newApp(Config{
		Env:              environment.Development,
		DefaultLocale:    "en",
		RenderTimeout:    time.Second,
		RenderAbortGrace: 100 * time.Millisecond,
	}, logger.NewNope())
	require.NoError(t, err)
	return app
}

func do(t *testing.T, app http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func TestHome(t *testing.T) {
	t.Parallel()
	app := testApp(t)

	t.Run("browser in slovak", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?name=Jana", nil)
		req.Header.Set("Accept-Language", "sk-SK,sk;q=0.9,en;q=0.5")

		w := do(t, app, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Values("Vary"), "Accept-Language, Cookie")
		body := w.Body.String()
		assert.Contains(t, body, `<html lang="sk">`)
		assert.Contains(t, body, "<h1>Vitajte, Jana</h1>")
		assert.Contains(t, body, "<p><strong>Kostra</strong> tejto stránky")
		assert.Contains(t, body, "<h2>Najnovšie čísla</h2>")
		assert.True(t, strings.HasSuffix(body, "</html>"))
	})

	t.Run("crawler gets the full document", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?lng=en", nil)
		req.Header.Set("User-Agent", googlebot)

		w := do(t, app, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<h1>Welcome, guest</h1>")
		assert.Contains(t, w.Body.String(), "visitors today")
	})

	t.Run("name is escaped", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?name=%3Cb%3E", nil)

		w := do(t, app, req)

		assert.Contains(t, w.Body.String(), "Welcome, &lt;b&gt;")
		assert.NotContains(t, w.Body.String(), "<b>")
	})
}

func TestStatsAPI(t *testing.T) {
	t.Parallel()
	app := testApp(t)

	t.Run("prefetch is cached briefly", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		req.Header.Set("Sec-Purpose", "prefetch")

		w := do(t, app, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "private, max-age=10", w.Header().Get("Cache-Control"))

		var s Stats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
		assert.Equal(t, 128, s.Documents)
	})

	t.Run("regular fetch is not cached", func(t *testing.T) {
		t.Parallel()
		w := do(t, app, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Cache-Control"))
	})
}

func TestSwitchLanguage(t *testing.T) {
	t.Parallel()
	app := testApp(t)

	tests := []struct {
		name     string
		path     string
		code     int
		cookie   string
		location string
	}{
		{name: "supported", path: "/lang/sk?next=/about", code: http.StatusSeeOther, cookie: "lng=sk", location: "/about"},
		{name: "region is matched", path: "/lang/SK-sk", code: http.StatusSeeOther, cookie: "lng=sk", location: "/"},
		{name: "open redirect is refused", path: "/lang/en?next=//evil.example", code: http.StatusSeeOther, cookie: "lng=en", location: "/"},
		{name: "tab-smuggled redirect is refused", path: "/lang/sk?next=%2F%09%2Fevil.example", code: http.StatusSeeOther, cookie: "lng=sk", location: "/"},
		{name: "unsupported", path: "/lang/de", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := do(t, app, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.code, w.Code)
			if tt.cookie != "" {
				assert.Contains(t, w.Header().Get("Set-Cookie"), tt.cookie)
				assert.Equal(t, tt.location, w.Header().Get("Location"))
			}
		})
	}
}

func TestCookieLocaleIsNegotiated(t *testing.T) {
	t.Parallel()
	app := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lng", Value: "sk"})
	req.Header.Set("Accept-Language", "en")

	w := do(t, app, req)

	assert.Contains(t, w.Body.String(), "<h1>Vitajte, hosť</h1>")
}

func TestNotFound(t *testing.T) {
	t.Parallel()
	app := testApp(t)

	t.Run("document", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/missing?lng=sk", nil)
		req.Header.Set("Accept", "text/html")

		w := do(t, app, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Stránka sa nenašla")
	})

	t.Run("api client", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		req.Header.Set("Accept", "application/json")

		w := do(t, app, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Not Found", w.Body.String())
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()
	app := testApp(t)

	w := do(t, app, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSafeRedirect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", safeRedirect(""))
	assert.Equal(t, "/", safeRedirect("https://evil.example"))
	assert.Equal(t, "/", safeRedirect("//evil.example"))
	assert.Equal(t, "/", safeRedirect(`/\evil.example`))
	assert.Equal(t, "/", safeRedirect("/\t/evil.example"))
	assert.Equal(t, "/", safeRedirect("/\n/evil.example"))
	assert.Equal(t, "/", safeRedirect("/\r\n/evil.example"))
	assert.Equal(t, "/", safeRedirect("/docs\x7f"))
	assert.Equal(t, "/docs?x=1", safeRedirect("/docs?x=1"))
}

func TestDelayedStats(t *testing.T) {
	t.Parallel()

	t.Run("concurrent callers share a fetch", func(t *testing.T) {
		t.Parallel()
		src := &delayedStats{delay: 50 * time.Millisecond}

		var wg sync.WaitGroup
		results := make([]Stats, 4)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s, err := src.Stats(context.Background())
				assert.NoError(t, err)
				results[i] = s
			}()
		}
		wg.Wait()

		for _, s := range results[1:] {
			assert.Equal(t, results[0].UpdatedAt, s.UpdatedAt)
		}
	})

	t.Run("caller cancellation", func(t *testing.T) {
		t.Parallel()
		src := &delayedStats{delay: time.Second}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := src.Stats(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
