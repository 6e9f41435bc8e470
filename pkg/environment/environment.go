package environment

import "context"

// Environment represents the application environment.
type Environment string

const (
	// Development for local development.
	Development Environment = "development"
	// Staging for pre-production.
	Staging Environment = "staging"
	// Production for production.
	Production Environment = "production"
)

type contextKey struct{}

// WithContext stores the environment name in the context.
func WithContext(ctx context.Context, env string) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves the environment name from the context, or "" when absent.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(string)
	return env
}

// IsProduction reports whether the context environment is production.
func IsProduction(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == string(Production) || env == "prod"
}

// IsDevelopment reports whether the context environment is development.
func IsDevelopment(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == string(Development) || env == "dev"
}

// IsStaging reports whether the context environment is staging.
func IsStaging(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == string(Staging) || env == "stage"
}
