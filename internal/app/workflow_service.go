// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dkoleva/trackflow/internal/domain"
	"github.com/dkoleva/trackflow/internal/domain/workflow"
	"github.com/dkoleva/trackflow/internal/ports"
)

// Compile-time check that WorkflowService implements ports.WorkflowService.
var _ ports.WorkflowService = (*WorkflowService)(nil)

// WorkflowService implements ports.WorkflowService. Every mutation follows
// the same shape: take the project lock, load the aggregate, run the graph's
// own mutator, persist the whole aggregate atomically. Invariants live in
// the aggregate; this layer adds the checks that need collaborators (project
// existence, role validation, parked tasks).
type WorkflowService struct {
	workflows ports.WorkflowRepository
	tasks     ports.TaskRepository
	directory ports.ProjectDirectory
	locks     *ProjectLocks
	logger    *slog.Logger
}

// NewWorkflowService creates a WorkflowService. Pass the same ProjectLocks
// instance given to the TaskService so topology changes and status changes
// on one project serialize; a nil locks gets a private instance, which only
// orders this service's own mutations.
func NewWorkflowService(
	workflows ports.WorkflowRepository,
	tasks ports.TaskRepository,
	directory ports.ProjectDirectory,
	locks *ProjectLocks,
	logger *slog.Logger,
) *WorkflowService {
	if locks == nil {
		locks = NewProjectLocks()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &WorkflowService{
		workflows: workflows,
		tasks:     tasks,
		directory: directory,
		locks:     locks,
		logger:    logger,
	}
}

// CreateWorkflow creates an empty graph for the project. A project has at
// most one graph; a second create fails with RuleWorkflowExists.
func (s *WorkflowService) CreateWorkflow(ctx context.Context, tenantID, projectID string) (*workflow.Graph, error) {
	s.logger.InfoContext(ctx, "creating workflow", slog.String("project_id", projectID))

	exists, err := s.directory.ProjectExists(ctx, tenantID, projectID)
	if err != nil {
		return nil, fmt.Errorf("checking project: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	unlock := s.locks.Lock(tenantID, projectID)
	defer unlock()

	if _, err := s.workflows.LoadByProject(ctx, tenantID, projectID); err == nil {
		return nil, domain.NewBusinessRuleError(domain.RuleWorkflowExists,
			"project %s already has a workflow", projectID)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	g := workflow.New(domain.NewID(), tenantID, projectID)
	saved, err := s.workflows.Save(ctx, g)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create workflow",
			slog.String("operation", "CreateWorkflow"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return saved, nil
}

// GetWorkflow returns the project's graph. Read-only; no locking.
func (s *WorkflowService) GetWorkflow(ctx context.Context, tenantID, projectID string) (*workflow.Graph, error) {
	return s.workflows.LoadByProject(ctx, tenantID, projectID)
}

// AddState adds a state to the project's graph.
func (s *WorkflowService) AddState(ctx context.Context, tenantID, projectID string, in ports.StateInput) (*workflow.Graph, error) {
	s.logger.InfoContext(ctx, "adding workflow state",
		slog.String("project_id", projectID),
		slog.String("state_name", in.Name),
	)

	return s.mutate(ctx, tenantID, projectID, "AddState", func(g *workflow.Graph) error {
		state, err := workflow.NewState(domain.NewID(), in.Name, in.Initial, in.Final)
		if err != nil {
			return err
		}
		return g.AddState(state)
	})
}

// AddTransition adds a role-gated transition to the project's graph. Role
// names are free-form but must belong to the project's known role set; the
// graph itself never sees an unknown role. A project without a graph
// reports not found before any role is checked.
func (s *WorkflowService) AddTransition(ctx context.Context, tenantID, projectID string, in ports.TransitionInput) (*workflow.Graph, error) {
	s.logger.InfoContext(ctx, "adding workflow transition",
		slog.String("project_id", projectID),
		slog.String("from_state_id", in.FromStateID),
		slog.String("to_state_id", in.ToStateID),
	)

	return s.mutate(ctx, tenantID, projectID, "AddTransition", func(g *workflow.Graph) error {
		known, err := s.directory.KnownRoles(ctx, tenantID, projectID)
		if err != nil {
			return fmt.Errorf("resolving project roles: %w", err)
		}
		for _, role := range in.Roles {
			if !slices.Contains(known, role) {
				return domain.NewBusinessRuleError(domain.RuleUnknownRole,
					"role %q is not defined for project %s", role, projectID)
			}
		}

		t, err := workflow.NewTransition(domain.NewID(), in.FromStateID, in.ToStateID, in.Roles)
		if err != nil {
			return err
		}
		return g.AddTransition(t)
	})
}

// RemoveState removes a state from the project's graph. The graph blocks
// removal of the initial state and of states referenced by transitions;
// this layer additionally blocks removal while live tasks are parked in the
// state, which would otherwise leave them pointing at a missing state.
func (s *WorkflowService) RemoveState(ctx context.Context, tenantID, projectID, stateID string) (*workflow.Graph, error) {
	s.logger.InfoContext(ctx, "removing workflow state",
		slog.String("project_id", projectID),
		slog.String("state_id", stateID),
	)

	return s.mutate(ctx, tenantID, projectID, "RemoveState", func(g *workflow.Graph) error {
		parked, err := s.tasks.CountByState(ctx, tenantID, projectID, stateID)
		if err != nil {
			return fmt.Errorf("counting tasks in state: %w", err)
		}
		if parked > 0 {
			return domain.NewBusinessRuleError(domain.RuleStateHasTasks,
				"%d task(s) currently in state %s", parked, stateID)
		}
		return g.RemoveState(stateID)
	})
}

// RemoveTransition removes a transition from the project's graph.
func (s *WorkflowService) RemoveTransition(ctx context.Context, tenantID, projectID, transitionID string) (*workflow.Graph, error) {
	s.logger.InfoContext(ctx, "removing workflow transition",
		slog.String("project_id", projectID),
		slog.String("transition_id", transitionID),
	)

	return s.mutate(ctx, tenantID, projectID, "RemoveTransition", func(g *workflow.Graph) error {
		return g.RemoveTransition(transitionID)
	})
}

// mutate runs the load → mutate → save cycle shared by all graph mutations,
// holding the project lock across the whole cycle so no status change can
// validate against the pre-mutation graph and commit after the save. The
// save persists the whole aggregate; a version conflict surfaces as
// domain.ErrConflict for the caller to retry with a fresh load.
func (s *WorkflowService) mutate(ctx context.Context, tenantID, projectID, op string, fn func(*workflow.Graph) error) (*workflow.Graph, error) {
	unlock := s.locks.Lock(tenantID, projectID)
	defer unlock()

	g, err := s.workflows.LoadByProject(ctx, tenantID, projectID)
	if err != nil {
		return nil, err
	}

	if err := fn(g); err != nil {
		return nil, err
	}

	saved, err := s.workflows.Save(ctx, g)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save workflow",
			slog.String("operation", op),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return saved, nil
}
