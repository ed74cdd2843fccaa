package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ssrkit/pkg/health"
)

func ok(context.Context) error { return nil }

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("healthy json", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{"i18n": ok, "other": ok})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		req.Header.Set("Accept", "application/json")
		h(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, health.StatusHealthy, resp.Status)
		assert.Len(t, resp.Checks, 2)
	})

	t.Run("unhealthy plain text", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{
			"i18n": func(context.Context) error { return errors.New("missing bundle") },
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Service Unavailable", rec.Body.String())
	})

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.ReadinessHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		resp, err := health.Run(context.Background(), health.Checks{
			"good": ok,
			"bad":  func(context.Context) error { return errors.New("down") },
		})
		require.ErrorIs(t, err, health.ErrCheckFailed)
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, health.StatusHealthy, resp.Checks["good"].Status)
		assert.Contains(t, resp.Checks["bad"].Error, "down")
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		_, err := health.Run(context.Background(), health.Checks{
			"slow": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}, health.WithTimeout(10*time.Millisecond))
		require.ErrorIs(t, err, health.ErrCheckTimeout)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
