package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dkoleva/trackflow/internal/domain"
	"github.com/dkoleva/trackflow/internal/domain/task"
	"github.com/dkoleva/trackflow/internal/ports"
)

// Compile-time check that TaskRepo implements ports.TaskRepository.
var _ ports.TaskRepository = (*TaskRepo)(nil)

// TaskRepo stores task snapshots keyed by task id. Soft-deleted rows stay
// in the map forever; the standing not-deleted filter is applied by Load
// and ListByProject, while LoadAny is the audit escape hatch.
type TaskRepo struct {
	mu    sync.RWMutex
	tasks map[string]task.Snapshot
}

// NewTaskRepo creates an empty task repository.
func NewTaskRepo() *TaskRepo {
	return &TaskRepo{tasks: make(map[string]task.Snapshot)}
}

// Load returns a live task; deleted, cross-tenant and unknown ids all
// report domain.ErrNotFound.
func (r *TaskRepo) Load(_ context.Context, tenantID, taskID string) (*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.tasks[taskID]
	if !ok || snap.TenantID != tenantID || snap.Deleted {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	return task.FromSnapshot(snap), nil
}

// LoadAny returns the task regardless of its soft-delete flag. Tenant
// isolation still applies.
func (r *TaskRepo) LoadAny(_ context.Context, tenantID, taskID string) (*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.tasks[taskID]
	if !ok || snap.TenantID != tenantID {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	return task.FromSnapshot(snap), nil
}

// ListByProject returns the project's live tasks ordered by creation time.
func (r *TaskRepo) ListByProject(_ context.Context, tenantID, projectID string) ([]task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []task.Task
	for _, snap := range r.tasks {
		if snap.TenantID == tenantID && snap.ProjectID == projectID && !snap.Deleted {
			out = append(out, *task.FromSnapshot(snap))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().Before(out[j].CreatedAt())
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

// CountByState returns the number of live tasks currently in the state.
func (r *TaskRepo) CountByState(_ context.Context, tenantID, projectID, stateID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, snap := range r.tasks {
		if snap.TenantID == tenantID && snap.ProjectID == projectID &&
			snap.CurrentStateID == stateID && !snap.Deleted {
			n++
		}
	}
	return n, nil
}

// Save persists the task with the same version-check contract as the
// workflow repository.
func (r *TaskRepo) Save(_ context.Context, t *task.Task) (*task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := t.Snapshot()

	if stored, ok := r.tasks[snap.ID]; ok {
		if stored.TenantID != snap.TenantID {
			return nil, fmt.Errorf("task %s: %w", snap.ID, domain.ErrNotFound)
		}
		if stored.Version != snap.Version {
			return nil, fmt.Errorf("task %s: version %d is stale (stored %d): %w",
				snap.ID, snap.Version, stored.Version, domain.ErrConflict)
		}
	} else if snap.Version != 0 {
		return nil, fmt.Errorf("task %s: version %d on first save: %w",
			snap.ID, snap.Version, domain.ErrConflict)
	}

	snap.Version++
	r.tasks[snap.ID] = snap
	return task.FromSnapshot(snap), nil
}
