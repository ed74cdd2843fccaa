package environment

import (
	"context"
	"strings"
)

// Environment is the deployment environment of the process.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Staging     Environment = "staging"
)

// Parse maps an APP_ENV value to an Environment. Short aliases (dev, prod,
// stage) are accepted; unknown or empty values mean Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

// UnmarshalText lets Environment be used directly in env-tagged config structs.
func (e *Environment) UnmarshalText(text []byte) error {
	*e = Parse(string(text))
	return nil
}

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether the environment serves real traffic with the
// hardened server settings. Staging counts as production.
func (e Environment) IsProduction() bool {
	return e == Production || e == Staging
}

// IsDevelopment reports whether e is Development.
func (e Environment) IsDevelopment() bool {
	return e == Development
}

type contextKey struct{}

// WithContext stores env in ctx.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or Development.
func FromContext(ctx context.Context) Environment {
	if env, ok := ctx.Value(contextKey{}).(Environment); ok {
		return env
	}
	return Development
}
