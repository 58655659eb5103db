package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dkoleva/trackflow/internal/domain"
	"github.com/dkoleva/trackflow/internal/domain/task"
	"github.com/dkoleva/trackflow/internal/domain/workflow"
	"github.com/dkoleva/trackflow/internal/events"
	"github.com/dkoleva/trackflow/internal/ports"
)

// changeStatusAttempts bounds the re-validate-and-retry loop that absorbs
// save conflicts from concurrent edits to the same task.
const changeStatusAttempts = 3

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService: task creation into the graph's
// initial state, guarded status changes validated against the graph, and
// soft deletion. Successful status changes publish a StatusChanged event
// strictly after the save has committed.
type TaskService struct {
	tasks     ports.TaskRepository
	workflows ports.WorkflowRepository
	directory ports.ProjectDirectory
	locks     *ProjectLocks
	publisher ports.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewTaskService creates a TaskService. Pass the same ProjectLocks instance
// given to the WorkflowService so status changes serialize against topology
// changes; a nil locks gets a private instance. The publisher may be nil,
// in which case status changes are not announced (useful in tests).
func NewTaskService(
	tasks ports.TaskRepository,
	workflows ports.WorkflowRepository,
	directory ports.ProjectDirectory,
	locks *ProjectLocks,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *TaskService {
	if locks == nil {
		locks = NewProjectLocks()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		tasks:     tasks,
		workflows: workflows,
		directory: directory,
		locks:     locks,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateTask creates a task in the initial state of the project's graph.
// Fails with RuleWorkflowNotConfigured when the project has no graph or the
// graph has no initial state yet. Runs under the project lock so the chosen
// initial state cannot be removed before the task is saved.
func (s *TaskService) CreateTask(ctx context.Context, tenantID, projectID string, in ports.TaskInput) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task",
		slog.String("project_id", projectID),
		slog.String("title", in.Title),
	)

	unlock := s.locks.Lock(tenantID, projectID)
	defer unlock()

	g, err := s.workflows.LoadByProject(ctx, tenantID, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewBusinessRuleError(domain.RuleWorkflowNotConfigured,
				"project %s has no workflow", projectID)
		}
		return nil, err
	}

	initial, ok := g.InitialState()
	if !ok {
		return nil, domain.NewBusinessRuleError(domain.RuleWorkflowNotConfigured,
			"workflow of project %s has no initial state", projectID)
	}

	t, err := task.New(domain.NewID(), tenantID, projectID, in.Title, in.Description, initial.ID(), s.now())
	if err != nil {
		return nil, err
	}

	saved, err := s.tasks.Save(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return saved, nil
}

// GetTask returns a live task; soft-deleted tasks report ErrNotFound.
func (s *TaskService) GetTask(ctx context.Context, tenantID, taskID string) (*task.Task, error) {
	return s.tasks.Load(ctx, tenantID, taskID)
}

// GetTaskForAudit returns the task even when soft-deleted.
func (s *TaskService) GetTaskForAudit(ctx context.Context, tenantID, taskID string) (*task.Task, error) {
	return s.tasks.LoadAny(ctx, tenantID, taskID)
}

// ListTasks returns the project's live tasks.
func (s *TaskService) ListTasks(ctx context.Context, tenantID, projectID string) ([]task.Task, error) {
	return s.tasks.ListByProject(ctx, tenantID, projectID)
}

// UpdateTask updates title/description of a live task.
func (s *TaskService) UpdateTask(ctx context.Context, tenantID, taskID string, in ports.TaskUpdate) (*task.Task, error) {
	t, err := s.tasks.Load(ctx, tenantID, taskID)
	if err != nil {
		return nil, err
	}

	title := t.Title()
	if in.Title != nil {
		title = *in.Title
	}
	description := t.Description()
	if in.Description != nil {
		description = *in.Description
	}

	if err := t.Rename(title, description, s.now()); err != nil {
		return nil, err
	}

	return s.tasks.Save(ctx, t)
}

// AssignTask sets the task's assignee. The actor must be a project admin;
// the target user must be a project member.
func (s *TaskService) AssignTask(ctx context.Context, tenantID, taskID, targetUserID, actorID string) (*task.Task, error) {
	s.logger.InfoContext(ctx, "assigning task",
		slog.String("task_id", taskID),
		slog.String("target_user_id", targetUserID),
	)

	t, err := s.tasks.Load(ctx, tenantID, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAdmin(ctx, tenantID, t.ProjectID(), actorID); err != nil {
		return nil, err
	}

	member, err := s.directory.IsProjectMember(ctx, tenantID, t.ProjectID(), targetUserID)
	if err != nil {
		return nil, fmt.Errorf("checking membership: %w", err)
	}
	if !member {
		return nil, domain.NewBusinessRuleError(domain.RuleNotProjectMember,
			"user %s is not a member of project %s", targetUserID, t.ProjectID())
	}

	if err := t.Assign(targetUserID, s.now()); err != nil {
		return nil, err
	}

	return s.tasks.Save(ctx, t)
}

// ChangeStatus moves the task along an edge of its project's graph that the
// actor's roles may traverse. The whole read-validate-write cycle runs under
// the project lock shared with the workflow mutators, so a topology change
// can never land between graph validation and the task save. Within the
// lock, a save conflict from a concurrent task edit (rename, assign) retries
// with a fresh load. The StatusChanged event is published only after the
// save has committed; publishing never blocks and cannot roll the commit
// back.
func (s *TaskService) ChangeStatus(ctx context.Context, tenantID, taskID, targetStateID, actorID string) (*task.Task, error) {
	s.logger.InfoContext(ctx, "changing task status",
		slog.String("task_id", taskID),
		slog.String("target_state_id", targetStateID),
	)

	t, err := s.tasks.Load(ctx, tenantID, taskID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(tenantID, t.ProjectID())
	defer unlock()

	var lastErr error
	for attempt := 0; attempt < changeStatusAttempts; attempt++ {
		saved, ev, err := s.tryChangeStatus(ctx, tenantID, taskID, targetStateID, actorID)
		if err == nil {
			if s.publisher != nil {
				s.publisher.Publish(ctx, ev)
			}
			return saved, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}

	s.logger.ErrorContext(ctx, "status change kept conflicting",
		slog.String("operation", "ChangeStatus"),
		slog.String("task_id", taskID),
		slog.Any("error", lastErr),
	)
	return nil, lastErr
}

// tryChangeStatus performs one load-validate-save attempt and builds the
// event to publish on success.
func (s *TaskService) tryChangeStatus(ctx context.Context, tenantID, taskID, targetStateID, actorID string) (*task.Task, events.StatusChanged, error) {
	var zero events.StatusChanged

	t, err := s.tasks.Load(ctx, tenantID, taskID)
	if err != nil {
		return nil, zero, err
	}

	g, err := s.workflows.LoadByProject(ctx, tenantID, t.ProjectID())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, zero, domain.NewBusinessRuleError(domain.RuleWorkflowNotConfigured,
				"project %s has no workflow", t.ProjectID())
		}
		return nil, zero, err
	}

	roles, err := s.directory.RolesOf(ctx, tenantID, t.ProjectID(), actorID)
	if err != nil {
		return nil, zero, fmt.Errorf("resolving actor roles: %w", err)
	}

	if !g.CanTransitionAny(t.CurrentStateID(), targetStateID, roles) {
		return nil, zero, domain.NewBusinessRuleError(domain.RuleInvalidTransition,
			"no authorized transition from %s to %s", t.CurrentStateID(), targetStateID)
	}

	fromName := stateName(g, t.CurrentStateID())
	toName := stateName(g, targetStateID)

	if err := t.MoveTo(targetStateID, s.now()); err != nil {
		return nil, zero, err
	}

	saved, err := s.tasks.Save(ctx, t)
	if err != nil {
		return nil, zero, err
	}

	return saved, events.StatusChanged{
		TaskID:        saved.ID(),
		TenantID:      tenantID,
		ProjectID:     saved.ProjectID(),
		FromStateName: fromName,
		ToStateName:   toName,
		ActorID:       actorID,
		OccurredAt:    s.now().UTC(),
	}, nil
}

// DeleteTask soft-deletes the task. The row stays for audit reads; default
// reads exclude it from then on.
func (s *TaskService) DeleteTask(ctx context.Context, tenantID, taskID, actorID string) error {
	s.logger.InfoContext(ctx, "deleting task", slog.String("task_id", taskID))

	t, err := s.tasks.Load(ctx, tenantID, taskID)
	if err != nil {
		return err
	}

	if err := s.requireAdmin(ctx, tenantID, t.ProjectID(), actorID); err != nil {
		return err
	}

	t.SoftDelete(actorID, s.now())

	if _, err := s.tasks.Save(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("task_id", taskID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func (s *TaskService) requireAdmin(ctx context.Context, tenantID, projectID, actorID string) error {
	admin, err := s.directory.IsProjectAdmin(ctx, tenantID, projectID, actorID)
	if err != nil {
		return fmt.Errorf("checking admin role: %w", err)
	}
	if !admin {
		return fmt.Errorf("user %s is not an admin of project %s: %w", actorID, projectID, domain.ErrUnauthorized)
	}
	return nil
}

func stateName(g *workflow.Graph, stateID string) string {
	if st, ok := g.StateByID(stateID); ok {
		return st.Name()
	}
	return stateID
}
