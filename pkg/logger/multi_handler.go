package logger

import (
	"context"
	"errors"
	"log/slog"
)

// multiHandler fans records out to every handler enabled for their level.
type multiHandler []slog.Handler

func newMultiHandler(handlers ...slog.Handler) slog.Handler {
	return multiHandler(handlers)
}

func (h multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, next := range h {
		if next.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h multiHandler) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, next := range h {
		if next.Enabled(ctx, rec.Level) {
			errs = append(errs, next.Handle(ctx, rec.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(multiHandler, len(h))
	for i, next := range h {
		out[i] = next.WithAttrs(attrs)
	}
	return out
}

func (h multiHandler) WithGroup(name string) slog.Handler {
	out := make(multiHandler, len(h))
	for i, next := range h {
		out[i] = next.WithGroup(name)
	}
	return out
}
