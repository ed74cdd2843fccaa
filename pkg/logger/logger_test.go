package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ssrkit/pkg/logger"
)

type ctxKey struct{}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with extractor", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Output: &buf}, logger.StringExtractor("request_id", ctxKey{}), nil)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "hello", slog.Int("status", 200))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "req-1", rec["request_id"])
		assert.EqualValues(t, 200, rec["status"])
	})

	t.Run("extractor skips missing value", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Output: &buf}, logger.StringExtractor("request_id", ctxKey{}))
		log.Info("hello")
		assert.NotContains(t, buf.String(), "request_id")
	})

	t.Run("text format and level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Output: &buf, Format: logger.FormatText, Level: slog.LevelWarn})
		log.Info("hidden")
		log.With("k", "v").WithGroup("g").Warn("shown", "a", 1)

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.True(t, strings.Contains(out, "msg=shown"))
		assert.Contains(t, out, "k=v")
		assert.Contains(t, out, "g.a=1")
	})
}

func TestNewWithSentry_WithoutDSN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithSentry(logger.Config{Output: &buf}, logger.SentryConfig{})
	log.Error("failed")
	assert.Contains(t, buf.String(), `"msg":"failed"`)
}

func TestParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))

	assert.Equal(t, logger.FormatText, logger.ParseFormat("Text"))
	assert.Equal(t, logger.FormatJSON, logger.ParseFormat(""))
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
