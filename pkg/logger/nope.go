package logger

import "log/slog"

// NewNope returns a logger that discards everything. It is the default
// wherever a logger is optional.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
