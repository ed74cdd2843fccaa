package main

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/ssrkit/pkg/i18n"
	"github.com/dmitrymomot/ssrkit/pkg/render"
	"github.com/dmitrymomot/ssrkit/pkg/sanitizer"
	"github.com/dmitrymomot/ssrkit/resources"
)

// layout writes the document shell, flushes it, then renders body.
func layout(body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		locale := i18n.Locale(ctx)
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><title>%s</title>`+
				`<link rel="prefetch" href="/api/stats" as="fetch"></head><body><nav><a href="/">%s</a>`,
			templ.EscapeString(locale),
			templ.EscapeString(i18n.T(ctx, "common:title")),
			templ.EscapeString(i18n.T(ctx, "common:nav.home")),
		); err != nil {
			return err
		}

		for _, l := range resources.Languages() {
			if _, err := fmt.Fprintf(w, ` <a href="/lang/%s?next=%s" hreflang="%s">%s %s</a>`,
				templ.EscapeString(l.Code),
				url.QueryEscape("/"),
				templ.EscapeString(l.Code),
				l.Flag,
				templ.EscapeString(l.Name),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</nav><main>"); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `</main><footer>%s</footer></body></html>`,
			templ.EscapeString(i18n.T(ctx, "common:footer", i18n.M{"locale": locale})))
		return err
	})
}

func homePage(name string, stats statsSource) templ.Component {
	return layout(templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if name == "" {
			name = i18n.T(ctx, "guest")
		}
		if _, err := fmt.Fprintf(w, `<h1>%s</h1><p>%s</p>`,
			templ.EscapeString(i18n.T(ctx, "heading", i18n.M{"name": name})),
			sanitizer.Inline(i18n.T(ctx, "intro")),
		); err != nil {
			return err
		}

		if err := render.Boundary().Render(ctx, w); err != nil {
			return err
		}

		return statsSection(stats).Render(ctx, w)
	}))
}

// statsSection is the slow part of the home page. A failing source degrades
// to a message instead of breaking the stream.
func statsSection(stats statsSource) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s, err := stats.Stats(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			_, err = fmt.Fprintf(w, `<section><p>%s</p></section>`,
				templ.EscapeString(i18n.T(ctx, "stats_error")))
			return err
		}

		_, err = fmt.Fprintf(w, `<section><h2>%s</h2><p>%s</p><time datetime="%s"></time></section>`,
			templ.EscapeString(i18n.T(ctx, "stats_title")),
			templ.EscapeString(i18n.Tn(ctx, "visitors", s.Visitors)),
			s.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		)
		return err
	})
}

func errorPage(code int, key string) templ.Component {
	return layout(templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%d</h1><p>%s</p>`, code, templ.EscapeString(i18n.T(ctx, key)))
		return err
	}))
}
