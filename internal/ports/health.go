package ports

import "context"

// HealthChecker is implemented by components that can report their own
// health, such as outbound API clients.
type HealthChecker interface {
	// Name identifies the component in readiness output
	// (e.g. "audit-api", "workflow-store").
	Name() string

	// HealthCheck returns nil when the component is healthy and an error
	// describing the failure otherwise. Implementations respect context
	// cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	// Register adds a checker.
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the results keyed
	// by checker name, nil meaning healthy.
	CheckAll(ctx context.Context) map[string]error
}
