package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ssrkit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{in: "production", want: environment.Production},
		{in: "PROD", want: environment.Production},
		{in: "staging", want: environment.Staging},
		{in: "stage", want: environment.Staging},
		{in: "dev", want: environment.Development},
		{in: "", want: environment.Development},
		{in: "qa", want: environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, environment.Parse(tt.in))
		})
	}
}

func TestEnvironment(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.True(t, environment.Staging.IsProduction())
	assert.False(t, environment.Development.IsProduction())
	assert.True(t, environment.Development.IsDevelopment())

	var env environment.Environment
	assert.NoError(t, env.UnmarshalText([]byte("prod")))
	assert.Equal(t, environment.Production, env)
	assert.Equal(t, "production", env.String())

	ctx := context.Background()
	assert.Equal(t, environment.Development, environment.FromContext(ctx))
	ctx = environment.WithContext(ctx, environment.Staging)
	assert.Equal(t, environment.Staging, environment.FromContext(ctx))
}
