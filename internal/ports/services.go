package ports

import (
	"context"

	"github.com/dkoleva/trackflow/internal/domain/task"
	"github.com/dkoleva/trackflow/internal/domain/workflow"
)

// StateInput carries the caller-provided fields for a new workflow state.
type StateInput struct {
	Name    string
	Initial bool
	Final   bool
}

// TransitionInput carries the caller-provided fields for a new transition.
// Roles are free-form names; the service validates them against the
// project's known role set before the graph sees them.
type TransitionInput struct {
	FromStateID string
	ToStateID   string
	Roles       []string
}

// WorkflowService defines the service port for workflow graph operations.
// Implemented by the application layer; called by inbound adapters.
// Every call is tenant-scoped: tenantID is threaded explicitly so the engine
// never reads ambient per-request state.
type WorkflowService interface {
	// CreateWorkflow creates an empty graph for the project.
	// Returns domain.ErrNotFound if the project does not exist in the
	// tenant, and a RuleWorkflowExists business rule error if the project
	// already has a graph.
	CreateWorkflow(ctx context.Context, tenantID, projectID string) (*workflow.Graph, error)

	// GetWorkflow returns the project's graph.
	// Returns domain.ErrNotFound if no graph exists.
	GetWorkflow(ctx context.Context, tenantID, projectID string) (*workflow.Graph, error)

	// AddState adds a state to the project's graph and persists the whole
	// aggregate atomically. Returns the updated graph.
	AddState(ctx context.Context, tenantID, projectID string, in StateInput) (*workflow.Graph, error)

	// AddTransition adds a role-gated transition to the project's graph.
	// Role names are validated against the project's known role set; an
	// unknown name fails with RuleUnknownRole.
	AddTransition(ctx context.Context, tenantID, projectID string, in TransitionInput) (*workflow.Graph, error)

	// RemoveState removes a state. Beyond the graph's own guards, removal
	// fails with RuleStateHasTasks while any live task sits in the state.
	RemoveState(ctx context.Context, tenantID, projectID, stateID string) (*workflow.Graph, error)

	// RemoveTransition removes a transition, subject to the graph's
	// initial-state guard.
	RemoveTransition(ctx context.Context, tenantID, projectID, transitionID string) (*workflow.Graph, error)
}

// TaskInput carries the caller-provided fields for a new task.
type TaskInput struct {
	Title       string
	Description string
}

// TaskUpdate carries optional field updates for an existing task.
// Nil means "do not change this field".
type TaskUpdate struct {
	Title       *string
	Description *string
}

// TaskService defines the service port for task lifecycle operations.
// Actor authorization uses project roles resolved through the directory
// port; state changes are validated against the project's workflow graph.
type TaskService interface {
	// CreateTask creates a task in the graph's initial state.
	// Fails with RuleWorkflowNotConfigured when the project has no graph
	// or the graph has no initial state.
	CreateTask(ctx context.Context, tenantID, projectID string, in TaskInput) (*task.Task, error)

	// GetTask returns a live task. Soft-deleted tasks report
	// domain.ErrNotFound.
	GetTask(ctx context.Context, tenantID, taskID string) (*task.Task, error)

	// GetTaskForAudit returns the task regardless of its soft-delete flag.
	GetTaskForAudit(ctx context.Context, tenantID, taskID string) (*task.Task, error)

	// ListTasks returns the project's live tasks.
	ListTasks(ctx context.Context, tenantID, projectID string) ([]task.Task, error)

	// UpdateTask updates title/description of a live task.
	UpdateTask(ctx context.Context, tenantID, taskID string, in TaskUpdate) (*task.Task, error)

	// AssignTask sets the assignee. The actor must be a project admin and
	// the target user a project member.
	AssignTask(ctx context.Context, tenantID, taskID, targetUserID, actorID string) (*task.Task, error)

	// ChangeStatus moves the task along a graph edge the actor's roles are
	// allowed to traverse. On success a StatusChanged event is emitted
	// strictly after the durable commit. Fails with RuleInvalidTransition
	// when no authorized edge exists.
	ChangeStatus(ctx context.Context, tenantID, taskID, targetStateID, actorID string) (*task.Task, error)

	// DeleteTask soft-deletes the task. The actor must be a project admin.
	DeleteTask(ctx context.Context, tenantID, taskID, actorID string) error
}
