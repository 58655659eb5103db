// Package health tracks the health of downstream dependencies. Components
// register themselves at startup and the readiness endpoint asks the registry
// whether the service should accept traffic.
package health

import (
	"context"
	"sync"

	"github.com/dkoleva/trackflow/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry implements [ports.HealthRegistry]. Register and CheckAll are safe
// for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a checker. Checkers registered under the same name overwrite
// each other's result in CheckAll, last registration winning.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check and returns the results keyed by
// checker name, nil meaning healthy. The checker slice is copied under the
// read lock so slow checks never block Register.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}
