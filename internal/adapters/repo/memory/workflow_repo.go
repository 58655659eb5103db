// Package memory provides tenant-scoped in-memory implementations of the
// persistence and directory ports. They exist so the engine runs and is
// tested without external infrastructure; a database-backed adapter would
// implement the same ports with the same version-check contract.
//
// Tenant isolation rule: anything belonging to another tenant is reported
// as domain.ErrNotFound, never as an authorization error, so cross-tenant
// probing cannot confirm existence.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dkoleva/trackflow/internal/domain"
	"github.com/dkoleva/trackflow/internal/domain/workflow"
	"github.com/dkoleva/trackflow/internal/ports"
)

// Compile-time check that WorkflowRepo implements ports.WorkflowRepository.
var _ ports.WorkflowRepository = (*WorkflowRepo)(nil)

// WorkflowRepo stores workflow aggregates keyed by (tenant, project).
// Saves are atomic over the whole aggregate and version-checked: a save
// carrying a stale version fails with domain.ErrConflict.
type WorkflowRepo struct {
	mu     sync.RWMutex
	graphs map[string]workflow.Snapshot // key: tenantID + "/" + projectID
}

// NewWorkflowRepo creates an empty workflow repository.
func NewWorkflowRepo() *WorkflowRepo {
	return &WorkflowRepo{graphs: make(map[string]workflow.Snapshot)}
}

func graphKey(tenantID, projectID string) string {
	return tenantID + "/" + projectID
}

// LoadByProject returns a deep copy of the project's graph.
func (r *WorkflowRepo) LoadByProject(_ context.Context, tenantID, projectID string) (*workflow.Graph, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.graphs[graphKey(tenantID, projectID)]
	if !ok {
		return nil, fmt.Errorf("workflow for project %s: %w", projectID, domain.ErrNotFound)
	}
	return workflow.FromSnapshot(snap), nil
}

// Save persists the whole aggregate. The stored version must match the
// graph's loaded version; on success the stored copy is bumped and the graph
// is returned rehydrated at the new version.
func (r *WorkflowRepo) Save(_ context.Context, g *workflow.Graph) (*workflow.Graph, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := graphKey(g.TenantID(), g.ProjectID())
	snap := g.Snapshot()

	if stored, ok := r.graphs[key]; ok {
		if stored.Version != snap.Version {
			return nil, fmt.Errorf("workflow for project %s: version %d is stale (stored %d): %w",
				g.ProjectID(), snap.Version, stored.Version, domain.ErrConflict)
		}
	} else if snap.Version != 0 {
		return nil, fmt.Errorf("workflow for project %s: version %d on first save: %w",
			g.ProjectID(), snap.Version, domain.ErrConflict)
	}

	snap.Version++
	r.graphs[key] = snap
	return workflow.FromSnapshot(snap), nil
}
