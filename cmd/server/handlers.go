package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/ssrkit"
	"github.com/dmitrymomot/ssrkit/middlewares"
	"github.com/dmitrymomot/ssrkit/pkg/i18n"
)

const localeCookieMaxAge = 365 * 24 * 60 * 60

// Stats is the data shown below the shell and served by /api/stats.
type Stats struct {
	Visitors  int       `json:"visitors"`
	Documents int       `json:"documents"`
	UpdatedAt time.Time `json:"updated_at"`
}

type statsSource interface {
	Stats(ctx context.Context) (Stats, error)
}

// delayedStats stands in for a slow backend. Concurrent callers share one
// fetch.
type delayedStats struct {
	delay time.Duration
	group singleflight.Group
}

func (s *delayedStats) Stats(ctx context.Context) (Stats, error) {
	ch := s.group.DoChan("stats", func() (any, error) {
		// Detached so one canceled caller does not fail the others.
		return s.fetch(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Stats{}, res.Err
		}
		return res.Val.(Stats), nil
	}
}

func (s *delayedStats) fetch(ctx context.Context) (Stats, error) {
	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	case <-t.C:
	}

	now := time.Now().UTC()
	return Stats{
		Visitors:  3 + now.Second()%40,
		Documents: 128,
		UpdatedAt: now,
	}, nil
}

type pages struct {
	table *i18n.Table
	stats statsSource
}

func (p *pages) Routes(r ssrkit.Router) {
	r.GET("/", p.home, middlewares.Namespaces("home"))
	r.GET("/lang/{locale}", p.switchLanguage)
	r.Route("/api", func(r ssrkit.Router) {
		r.GET("/stats", p.apiStats)
	})
}

func (p *pages) home(c ssrkit.Context) error {
	name := c.QueryDefault("name", "")
	return c.Document(http.StatusOK, homePage(name, p.stats))
}

func (p *pages) apiStats(c ssrkit.Context) error {
	s, err := p.stats.Stats(c.Context())
	if err != nil {
		return ssrkit.ErrServiceUnavailable("", ssrkit.WithError(err))
	}
	return c.JSON(http.StatusOK, s)
}

// switchLanguage stores the chosen locale in the cookie the negotiator reads
// and sends the user back to a local page.
func (p *pages) switchLanguage(c ssrkit.Context) error {
	locale, ok := p.table.Match(c.Param("locale"))
	if !ok {
		return ssrkit.ErrNotFound("", ssrkit.WithErrorCode("errors.not_found"))
	}

	c.SetCookie(i18n.DefaultCookieName, locale, localeCookieMaxAge)
	return c.Redirect(http.StatusSeeOther, safeRedirect(c.Query("next")))
}

func (p *pages) notFound(c ssrkit.Context) error {
	return ssrkit.ErrNotFound("", ssrkit.WithErrorCode("errors.not_found"))
}

// handleError answers document requests with a localized error page and
// everything else with plain text.
func (p *pages) handleError(c ssrkit.Context, err error) error {
	code := http.StatusInternalServerError
	key := "errors.internal"
	if httpErr := ssrkit.AsHTTPError(err); httpErr != nil {
		code = httpErr.StatusCode()
		if httpErr.ErrorCode != "" {
			key = httpErr.ErrorCode
		}
	}

	if code >= http.StatusInternalServerError {
		c.LogError("request failed",
			"error", err.Error(),
			"status", code,
		)
	}

	if !acceptsHTML(c.Request()) {
		return c.String(code, http.StatusText(code))
	}

	docErr := c.Document(code, errorPage(code, key))
	if errors.Is(docErr, ssrkit.ErrNoRenderer) {
		return c.String(code, http.StatusText(code))
	}
	return docErr
}

func acceptsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return accept == "" || strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
}

// safeRedirect keeps next only when it is a path on this site. Browsers drop
// tabs and newlines while parsing a URL, so "/\t/host" would become "//host";
// any control character is refused.
func safeRedirect(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	if strings.ContainsFunc(next, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return "/"
	}
	if u, err := url.Parse(next); err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
