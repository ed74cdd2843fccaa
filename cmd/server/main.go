// Command server runs the ssrkit demo: a localized page whose shell streams
// ahead of a slow section, plus a JSON endpoint fit for prefetching.
package main

import (
	"log/slog"
	"os"

	"github.com/dmitrymomot/ssrkit"
	"github.com/dmitrymomot/ssrkit/middlewares"
	"github.com/dmitrymomot/ssrkit/pkg/i18n"
	"github.com/dmitrymomot/ssrkit/pkg/logger"
	"github.com/dmitrymomot/ssrkit/pkg/render"
	"github.com/dmitrymomot/ssrkit/resources"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.loggerConfig(), cfg.Sentry,
		middlewares.RequestIDExtractor(),
		middlewares.LocaleExtractor(),
	).With(slog.String("env", cfg.Env.String()))

	app, err := newApp(cfg, log)
	if err != nil {
		log.Error("failed to build app", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := ssrkit.Run(app,
		ssrkit.Address(cfg.Addr),
		ssrkit.Environment(cfg.Env),
		ssrkit.Logger(log),
		ssrkit.ShutdownTimeout(cfg.ShutdownTimeout),
	); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newApp(cfg Config, log *slog.Logger) (*ssrkit.App, error) {
	table, err := resources.NewTable(i18n.WithDefaultLocale(cfg.DefaultLocale))
	if err != nil {
		return nil, err
	}

	renderer := render.New(table,
		render.WithTimeout(cfg.RenderTimeout),
		render.WithAbortGrace(cfg.RenderAbortGrace),
		render.WithLogger(log.With(slog.String("component", "render"))),
	)

	pages := &pages{
		table: table,
		stats: &delayedStats{delay: cfg.StatsDelay},
	}

	return ssrkit.New(
		ssrkit.WithCustomLogger(log),
		ssrkit.WithRenderer(renderer),
		ssrkit.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.I18n(i18n.NewNegotiator(table)),
			middlewares.DataCache(),
		),
		ssrkit.WithHandlers(pages),
		ssrkit.WithErrorHandler(pages.handleError),
		ssrkit.WithNotFoundHandler(pages.notFound),
		ssrkit.WithHealthChecks(ssrkit.WithReadinessCheck("translations", table.Check)),
	), nil
}
