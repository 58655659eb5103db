package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/dkoleva/trackflow/internal/domain"
	"github.com/dkoleva/trackflow/internal/domain/workflow"
	"github.com/dkoleva/trackflow/internal/ports"
	"github.com/dkoleva/trackflow/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(s string) *string { return &s }

// boardGraph builds the usual three-column board: Todo (initial) with an
// edge into In Progress open to admins and members, and In Progress with an
// admin-only edge into Done (final).
func boardGraph(t *testing.T) *workflow.Graph {
	t.Helper()

	g := workflow.New("wf-1", "tenant-1", "project-1")
	for _, s := range []struct {
		id, name       string
		initial, final bool
	}{
		{"st-todo", "Todo", true, false},
		{"st-prog", "In Progress", false, false},
		{"st-done", "Done", false, true},
	} {
		st, err := workflow.NewState(s.id, s.name, s.initial, s.final)
		if err != nil {
			t.Fatalf("NewState(%s) error = %v", s.name, err)
		}
		if err := g.AddState(st); err != nil {
			t.Fatalf("AddState(%s) error = %v", s.name, err)
		}
	}
	for _, tr := range []struct {
		id, from, to string
		roles        []string
	}{
		{"tr-start", "st-todo", "st-prog", []string{"admin", "member"}},
		{"tr-finish", "st-prog", "st-done", []string{"admin"}},
	} {
		edge, err := workflow.NewTransition(tr.id, tr.from, tr.to, tr.roles)
		if err != nil {
			t.Fatalf("NewTransition(%s) error = %v", tr.id, err)
		}
		if err := g.AddTransition(edge); err != nil {
			t.Fatalf("AddTransition(%s) error = %v", tr.id, err)
		}
	}
	return g
}

type workflowServiceMocks struct {
	workflows *mocks.MockWorkflowRepository
	tasks     *mocks.MockTaskRepository
	directory *mocks.MockProjectDirectory
}

func newWorkflowService(t *testing.T) (*WorkflowService, workflowServiceMocks) {
	t.Helper()
	m := workflowServiceMocks{
		workflows: mocks.NewMockWorkflowRepository(t),
		tasks:     mocks.NewMockTaskRepository(t),
		directory: mocks.NewMockProjectDirectory(t),
	}
	return NewWorkflowService(m.workflows, m.tasks, m.directory, nil, discardLogger()), m
}

// passthroughSave wires the repository mock to accept any save and echo the
// graph back, the way a healthy store behaves.
func passthroughSave(m *mocks.MockWorkflowRepository) {
	m.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, g *workflow.Graph) (*workflow.Graph, error) {
			return g, nil
		})
}

func TestNewWorkflowService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewWorkflowService(
		mocks.NewMockWorkflowRepository(t),
		mocks.NewMockTaskRepository(t),
		mocks.NewMockProjectDirectory(t),
		nil,
		nil,
	)
	if svc.logger == nil {
		t.Fatal("NewWorkflowService(nil logger) should create a no-op logger, got nil")
	}
	if svc.locks == nil {
		t.Fatal("NewWorkflowService(nil locks) should create a private lock table, got nil")
	}
}

func TestWorkflowService_CreateWorkflow(t *testing.T) {
	t.Parallel()

	t.Run("creates an empty graph", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.directory.EXPECT().ProjectExists(mock.Anything, "tenant-1", "project-1").Return(true, nil)
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(nil, domain.ErrNotFound)
		passthroughSave(m.workflows)

		g, err := svc.CreateWorkflow(context.Background(), "tenant-1", "project-1")
		if err != nil {
			t.Fatalf("CreateWorkflow() error = %v, want nil", err)
		}
		if g.ProjectID() != "project-1" {
			t.Errorf("ProjectID() = %q, want %q", g.ProjectID(), "project-1")
		}
		if len(g.States()) != 0 {
			t.Errorf("new graph has %d states, want 0", len(g.States()))
		}
	})

	t.Run("unknown project is not found", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.directory.EXPECT().ProjectExists(mock.Anything, "tenant-1", "project-x").Return(false, nil)

		_, err := svc.CreateWorkflow(context.Background(), "tenant-1", "project-x")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("CreateWorkflow() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("second create fails", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.directory.EXPECT().ProjectExists(mock.Anything, "tenant-1", "project-1").Return(true, nil)
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)

		_, err := svc.CreateWorkflow(context.Background(), "tenant-1", "project-1")
		if !domain.IsRule(err, domain.RuleWorkflowExists) {
			t.Errorf("CreateWorkflow() error = %v, want rule %s", err, domain.RuleWorkflowExists)
		}
	})
}

func TestWorkflowService_AddState(t *testing.T) {
	t.Parallel()

	t.Run("adds the state and saves the aggregate", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)
		passthroughSave(m.workflows)

		g, err := svc.AddState(context.Background(), "tenant-1", "project-1", ports.StateInput{Name: "In Review"})
		if err != nil {
			t.Fatalf("AddState() error = %v, want nil", err)
		}
		if _, ok := g.StateByName("In Review"); !ok {
			t.Error("saved graph is missing the new state")
		}
	})

	t.Run("blank name is a validation error", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)

		_, err := svc.AddState(context.Background(), "tenant-1", "project-1", ports.StateInput{Name: "   "})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("AddState() error = %v, want ErrValidation", err)
		}
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)

		_, err := svc.AddState(context.Background(), "tenant-1", "project-1", ports.StateInput{Name: "Todo"})
		if !domain.IsRule(err, domain.RuleDuplicateStateName) {
			t.Errorf("AddState() error = %v, want rule %s", err, domain.RuleDuplicateStateName)
		}
	})

	t.Run("second initial state is rejected", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)

		_, err := svc.AddState(context.Background(), "tenant-1", "project-1", ports.StateInput{Name: "Inbox", Initial: true})
		if !domain.IsRule(err, domain.RuleMultipleInitialStates) {
			t.Errorf("AddState() error = %v, want rule %s", err, domain.RuleMultipleInitialStates)
		}
	})
}

func TestWorkflowService_AddTransition(t *testing.T) {
	t.Parallel()

	t.Run("adds a role-gated edge", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.directory.EXPECT().KnownRoles(mock.Anything, "tenant-1", "project-1").Return([]string{"admin", "member"}, nil)
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)
		passthroughSave(m.workflows)

		g, err := svc.AddTransition(context.Background(), "tenant-1", "project-1", ports.TransitionInput{
			FromStateID: "st-prog",
			ToStateID:   "st-todo",
			Roles:       []string{"member"},
		})
		if err != nil {
			t.Fatalf("AddTransition() error = %v, want nil", err)
		}
		if !g.CanTransition("st-prog", "st-todo", "member") {
			t.Error("saved graph does not allow the new transition")
		}
	})

	t.Run("unknown role is rejected without a save", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)
		m.directory.EXPECT().KnownRoles(mock.Anything, "tenant-1", "project-1").Return([]string{"admin", "member"}, nil)

		_, err := svc.AddTransition(context.Background(), "tenant-1", "project-1", ports.TransitionInput{
			FromStateID: "st-todo",
			ToStateID:   "st-prog",
			Roles:       []string{"wizard"},
		})
		if !domain.IsRule(err, domain.RuleUnknownRole) {
			t.Errorf("AddTransition() error = %v, want rule %s", err, domain.RuleUnknownRole)
		}
	})

	t.Run("project without a workflow is not found, not an unknown role", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-x").Return(nil, domain.ErrNotFound)

		_, err := svc.AddTransition(context.Background(), "tenant-1", "project-x", ports.TransitionInput{
			FromStateID: "st-todo",
			ToStateID:   "st-prog",
			Roles:       []string{"wizard"},
		})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("AddTransition() error = %v, want ErrNotFound", err)
		}
		var ruleErr *domain.BusinessRuleError
		if errors.As(err, &ruleErr) {
			t.Errorf("AddTransition() error = %v, want a plain not-found, not rule %s", err, ruleErr.Rule)
		}
	})

	t.Run("unknown endpoint is rejected", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.directory.EXPECT().KnownRoles(mock.Anything, "tenant-1", "project-1").Return([]string{"admin", "member"}, nil)
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)

		_, err := svc.AddTransition(context.Background(), "tenant-1", "project-1", ports.TransitionInput{
			FromStateID: "st-todo",
			ToStateID:   "st-ghost",
			Roles:       []string{"admin"},
		})
		if !domain.IsRule(err, domain.RuleUnknownEndpoint) {
			t.Errorf("AddTransition() error = %v, want rule %s", err, domain.RuleUnknownEndpoint)
		}
	})
}

func TestWorkflowService_RemoveState(t *testing.T) {
	t.Parallel()

	t.Run("blocked while live tasks sit in the state", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)
		m.tasks.EXPECT().CountByState(mock.Anything, "tenant-1", "project-1", "st-done").Return(2, nil)

		_, err := svc.RemoveState(context.Background(), "tenant-1", "project-1", "st-done")
		if !domain.IsRule(err, domain.RuleStateHasTasks) {
			t.Errorf("RemoveState() error = %v, want rule %s", err, domain.RuleStateHasTasks)
		}
	})

	t.Run("initial state is protected", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.tasks.EXPECT().CountByState(mock.Anything, "tenant-1", "project-1", "st-todo").Return(0, nil)
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)

		_, err := svc.RemoveState(context.Background(), "tenant-1", "project-1", "st-todo")
		if !domain.IsRule(err, domain.RuleInitialStateProtected) {
			t.Errorf("RemoveState() error = %v, want rule %s", err, domain.RuleInitialStateProtected)
		}
	})

	t.Run("state referenced by a transition is in use", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.tasks.EXPECT().CountByState(mock.Anything, "tenant-1", "project-1", "st-done").Return(0, nil)
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)

		_, err := svc.RemoveState(context.Background(), "tenant-1", "project-1", "st-done")
		if !domain.IsRule(err, domain.RuleStateInUse) {
			t.Errorf("RemoveState() error = %v, want rule %s", err, domain.RuleStateInUse)
		}
	})

	t.Run("removes an unreferenced empty state", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		g := boardGraph(t)
		spare, err := workflow.NewState("st-spare", "Spare", false, false)
		if err != nil {
			t.Fatalf("NewState() error = %v", err)
		}
		if err := g.AddState(spare); err != nil {
			t.Fatalf("AddState() error = %v", err)
		}

		m.tasks.EXPECT().CountByState(mock.Anything, "tenant-1", "project-1", "st-spare").Return(0, nil)
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(g, nil)
		passthroughSave(m.workflows)

		saved, err := svc.RemoveState(context.Background(), "tenant-1", "project-1", "st-spare")
		if err != nil {
			t.Fatalf("RemoveState() error = %v, want nil", err)
		}
		if _, ok := saved.StateByID("st-spare"); ok {
			t.Error("state still present after removal")
		}
	})
}

func TestWorkflowService_RemoveTransition(t *testing.T) {
	t.Parallel()

	t.Run("cannot starve the initial state", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)

		_, err := svc.RemoveTransition(context.Background(), "tenant-1", "project-1", "tr-start")
		if !domain.IsRule(err, domain.RuleInitialStateStarved) {
			t.Errorf("RemoveTransition() error = %v, want rule %s", err, domain.RuleInitialStateStarved)
		}
	})

	t.Run("removes a non-critical edge", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)
		passthroughSave(m.workflows)

		saved, err := svc.RemoveTransition(context.Background(), "tenant-1", "project-1", "tr-finish")
		if err != nil {
			t.Fatalf("RemoveTransition() error = %v, want nil", err)
		}
		if _, ok := saved.TransitionByID("tr-finish"); ok {
			t.Error("transition still present after removal")
		}
	})

	t.Run("unknown transition is not found", func(t *testing.T) {
		t.Parallel()
		svc, m := newWorkflowService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)

		_, err := svc.RemoveTransition(context.Background(), "tenant-1", "project-1", "tr-ghost")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("RemoveTransition() error = %v, want ErrNotFound", err)
		}
	})
}

func TestWorkflowService_SaveConflictPropagates(t *testing.T) {
	t.Parallel()

	svc, m := newWorkflowService(t)

	m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)
	m.workflows.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, domain.ErrConflict)

	_, err := svc.AddState(context.Background(), "tenant-1", "project-1", ports.StateInput{Name: "In Review"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("AddState() error = %v, want ErrConflict", err)
	}
}
