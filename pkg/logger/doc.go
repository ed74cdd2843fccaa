// Package logger builds slog loggers with context extraction and optional
// Sentry reporting.
//
// A ContextExtractor turns a request-scoped value into a log attribute. The
// LogHandlerDecorator runs every extractor on each record, so request ids
// and negotiated locales show up without passing them around:
//
//	log := logger.New(logger.Config{
//		Level:  logger.ParseLevel(cfg.LogLevel),
//		Format: logger.FormatText,
//	}, middlewares.RequestIDExtractor(), middlewares.LocaleExtractor())
//
//	log.InfoContext(ctx, "document rendered", slog.Int("status", 200))
//
// NewWithSentry adds a Sentry handler next to the base one when a DSN is
// configured: errors create issues and warnings are stored as logs. Without a
// DSN it behaves like New.
//
// NewNope returns a logger that discards everything.
package logger
