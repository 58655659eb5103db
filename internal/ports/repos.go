package ports

import (
	"context"

	"github.com/dkoleva/trackflow/internal/domain/task"
	"github.com/dkoleva/trackflow/internal/domain/workflow"
)

// WorkflowRepository defines the client port for workflow graph persistence.
// The graph aggregate (graph + states + transitions) is the unit of
// consistency: Save writes the whole aggregate atomically, never a partial
// view. Tenant ids are explicit parameters; a graph belonging to another
// tenant is reported as domain.ErrNotFound, never as an authorization error.
type WorkflowRepository interface {
	// LoadByProject returns the project's graph.
	// Returns domain.ErrNotFound when the project has no graph in the tenant.
	LoadByProject(ctx context.Context, tenantID, projectID string) (*workflow.Graph, error)

	// Save persists the aggregate with optimistic concurrency control: the
	// save succeeds only when the graph's version matches the stored
	// version, and returns the graph rehydrated at its new version.
	// A stale version fails with domain.ErrConflict; the caller must reload
	// and retry. Concurrent writers are never merged.
	Save(ctx context.Context, g *workflow.Graph) (*workflow.Graph, error)
}

// TaskRepository defines the client port for task persistence. Load and
// ListByProject apply the standing not-deleted filter; LoadAny is the audit
// escape hatch that sees soft-deleted rows.
type TaskRepository interface {
	// Load returns a live task. Soft-deleted, cross-tenant, and unknown
	// tasks all report domain.ErrNotFound.
	Load(ctx context.Context, tenantID, taskID string) (*task.Task, error)

	// LoadAny returns the task regardless of its soft-delete flag.
	// Cross-tenant and unknown tasks report domain.ErrNotFound.
	LoadAny(ctx context.Context, tenantID, taskID string) (*task.Task, error)

	// ListByProject returns the project's live tasks ordered by creation time.
	ListByProject(ctx context.Context, tenantID, projectID string) ([]task.Task, error)

	// CountByState returns the number of live tasks currently in the given
	// workflow state.
	CountByState(ctx context.Context, tenantID, projectID, stateID string) (int, error)

	// Save persists the task with the same version-check semantics as
	// WorkflowRepository.Save.
	Save(ctx context.Context, t *task.Task) (*task.Task, error)
}

// ProjectDirectory is the authorization/tenant collaborator: it answers
// project existence and role questions. Implemented by an outbound adapter;
// in production this fronts the identity service that also issues the JWTs
// consumed at the API boundary.
type ProjectDirectory interface {
	// ProjectExists reports whether the project exists within the tenant.
	ProjectExists(ctx context.Context, tenantID, projectID string) (bool, error)

	// IsProjectAdmin reports whether the user holds the admin role on the project.
	IsProjectAdmin(ctx context.Context, tenantID, projectID, userID string) (bool, error)

	// IsProjectMember reports whether the user is a member of the project.
	IsProjectMember(ctx context.Context, tenantID, projectID, userID string) (bool, error)

	// RolesOf returns the role names the user holds on the project.
	// An empty slice means the user is not a member.
	RolesOf(ctx context.Context, tenantID, projectID, userID string) ([]string, error)

	// KnownRoles returns the role names defined for the project. Transition
	// role sets are validated against this set at the service boundary.
	KnownRoles(ctx context.Context, tenantID, projectID string) ([]string, error)
}
