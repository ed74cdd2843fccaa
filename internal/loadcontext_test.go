package internal_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ssrkit/internal"
)

func TestLoadContextWithNamespaces(t *testing.T) {
	t.Parallel()

	base := internal.LoadContext{Locale: "sk", Namespaces: []string{"common"}}
	got := base.WithNamespaces("home", "", "common", "home")

	assert.Equal(t, []string{"common", "home"}, got.Namespaces)
	assert.Equal(t, "sk", got.Locale)
	assert.Equal(t, []string{"common"}, base.Namespaces, "original must not change")
}

func TestLoadContextFromContext(t *testing.T) {
	t.Parallel()

	_, ok := internal.LoadContextFromContext(context.Background())
	assert.False(t, ok)

	lc := internal.LoadContext{Locale: "en"}
	got, ok := internal.LoadContextFromContext(internal.ContextWithLoadContext(context.Background(), lc))
	assert.True(t, ok)
	assert.Equal(t, lc, got)
}

func TestGetLoadContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	requestVia(t, req, []internal.Option{
		internal.WithMiddleware(setLoadContext(internal.LoadContext{Locale: "sk", Namespaces: []string{"home"}})),
	}, func(c internal.Context) error {
		lc := internal.GetLoadContext(c)
		assert.Equal(t, "sk", lc.Locale)
		assert.Equal(t, []string{"home"}, lc.Namespaces)
		assert.Equal(t, "sk", c.Locale())
		return nil
	})

	requestVia(t, req, nil, func(c internal.Context) error {
		assert.Zero(t, internal.GetLoadContext(c))
		return nil
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	cause := context.DeadlineExceeded
	err := internal.ErrServiceUnavailable("", internal.WithError(cause), internal.WithErrorCode("errors.unavailable"), internal.WithRequestID("r1"))

	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), err.Error())
	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode())
	assert.Equal(t, "Service Unavailable", err.StatusText())
	assert.Equal(t, "errors.unavailable", err.ErrorCode)
	assert.Equal(t, "r1", err.RequestID)
	assert.ErrorIs(t, err, cause)

	assert.True(t, internal.IsHTTPError(err))
	assert.False(t, internal.IsHTTPError(cause))
	assert.Nil(t, internal.AsHTTPError(nil))
	assert.Same(t, err, internal.AsHTTPError(err))
	assert.Equal(t, http.StatusNotFound, internal.ErrNotFound("x").Code)
	assert.Equal(t, http.StatusInternalServerError, internal.ErrInternal("x").Code)
}
