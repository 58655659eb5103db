package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dkoleva/trackflow/internal/domain"
	"github.com/dkoleva/trackflow/internal/domain/task"
	"github.com/dkoleva/trackflow/internal/domain/workflow"
	"github.com/dkoleva/trackflow/internal/events"
	"github.com/dkoleva/trackflow/internal/ports"
	"github.com/dkoleva/trackflow/mocks"
)

var fixedNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

type taskServiceMocks struct {
	tasks     *mocks.MockTaskRepository
	workflows *mocks.MockWorkflowRepository
	directory *mocks.MockProjectDirectory
	publisher *mocks.MockEventPublisher
}

func newTaskService(t *testing.T) (*TaskService, taskServiceMocks) {
	t.Helper()
	m := taskServiceMocks{
		tasks:     mocks.NewMockTaskRepository(t),
		workflows: mocks.NewMockWorkflowRepository(t),
		directory: mocks.NewMockProjectDirectory(t),
		publisher: mocks.NewMockEventPublisher(t),
	}
	svc := NewTaskService(m.tasks, m.workflows, m.directory, nil, m.publisher, discardLogger())
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

// todoTask builds a live task parked in the board's Todo column.
func todoTask(t *testing.T) *task.Task {
	t.Helper()
	tk, err := task.New("task-1", "tenant-1", "project-1", "Ship it", "", "st-todo", fixedNow)
	if err != nil {
		t.Fatalf("task.New() error = %v", err)
	}
	return tk
}

// echoTaskSave accepts any task save and returns the task unchanged.
func echoTaskSave(m *mocks.MockTaskRepository) {
	m.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, tk *task.Task) (*task.Task, error) {
			return tk, nil
		})
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Parallel()

	t.Run("new task lands in the initial state", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)
		echoTaskSave(m.tasks)

		tk, err := svc.CreateTask(context.Background(), "tenant-1", "project-1", ports.TaskInput{Title: "Ship it"})
		if err != nil {
			t.Fatalf("CreateTask() error = %v, want nil", err)
		}
		if tk.CurrentStateID() != "st-todo" {
			t.Errorf("CurrentStateID() = %q, want %q", tk.CurrentStateID(), "st-todo")
		}
		if tk.ID() == "" {
			t.Error("created task has no id")
		}
	})

	t.Run("project without a workflow", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(nil, domain.ErrNotFound)

		_, err := svc.CreateTask(context.Background(), "tenant-1", "project-1", ports.TaskInput{Title: "Ship it"})
		if !domain.IsRule(err, domain.RuleWorkflowNotConfigured) {
			t.Errorf("CreateTask() error = %v, want rule %s", err, domain.RuleWorkflowNotConfigured)
		}
	})

	t.Run("workflow without an initial state", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		empty := workflow.New("wf-1", "tenant-1", "project-1")
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(empty, nil)

		_, err := svc.CreateTask(context.Background(), "tenant-1", "project-1", ports.TaskInput{Title: "Ship it"})
		if !domain.IsRule(err, domain.RuleWorkflowNotConfigured) {
			t.Errorf("CreateTask() error = %v, want rule %s", err, domain.RuleWorkflowNotConfigured)
		}
	})

	t.Run("blank title is a validation error", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)

		_, err := svc.CreateTask(context.Background(), "tenant-1", "project-1", ports.TaskInput{Title: "  "})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateTask() error = %v, want ErrValidation", err)
		}
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	t.Parallel()

	t.Run("updates only the provided fields", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		tk := todoTask(t)
		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").Return(tk, nil)
		echoTaskSave(m.tasks)

		got, err := svc.UpdateTask(context.Background(), "tenant-1", "task-1", ports.TaskUpdate{
			Title: strPtr("Ship it twice"),
		})
		if err != nil {
			t.Fatalf("UpdateTask() error = %v, want nil", err)
		}
		if got.Title() != "Ship it twice" {
			t.Errorf("Title() = %q, want %q", got.Title(), "Ship it twice")
		}
		if got.Description() != "" {
			t.Errorf("Description() = %q, want unchanged empty string", got.Description())
		}
	})

	t.Run("unknown task is not found", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-x").Return(nil, domain.ErrNotFound)

		_, err := svc.UpdateTask(context.Background(), "tenant-1", "task-x", ports.TaskUpdate{Title: strPtr("x")})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateTask() error = %v, want ErrNotFound", err)
		}
	})
}

func TestTaskService_AssignTask(t *testing.T) {
	t.Parallel()

	t.Run("admin assigns a member", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").Return(todoTask(t), nil)
		m.directory.EXPECT().IsProjectAdmin(mock.Anything, "tenant-1", "project-1", "user-admin").Return(true, nil)
		m.directory.EXPECT().IsProjectMember(mock.Anything, "tenant-1", "project-1", "user-member").Return(true, nil)
		echoTaskSave(m.tasks)

		got, err := svc.AssignTask(context.Background(), "tenant-1", "task-1", "user-member", "user-admin")
		if err != nil {
			t.Fatalf("AssignTask() error = %v, want nil", err)
		}
		if got.AssigneeID() != "user-member" {
			t.Errorf("AssigneeID() = %q, want %q", got.AssigneeID(), "user-member")
		}
	})

	t.Run("non-admin actor is rejected", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").Return(todoTask(t), nil)
		m.directory.EXPECT().IsProjectAdmin(mock.Anything, "tenant-1", "project-1", "user-member").Return(false, nil)

		_, err := svc.AssignTask(context.Background(), "tenant-1", "task-1", "user-member", "user-member")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("AssignTask() error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("target outside the project is rejected", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").Return(todoTask(t), nil)
		m.directory.EXPECT().IsProjectAdmin(mock.Anything, "tenant-1", "project-1", "user-admin").Return(true, nil)
		m.directory.EXPECT().IsProjectMember(mock.Anything, "tenant-1", "project-1", "user-stranger").Return(false, nil)

		_, err := svc.AssignTask(context.Background(), "tenant-1", "task-1", "user-stranger", "user-admin")
		if !domain.IsRule(err, domain.RuleNotProjectMember) {
			t.Errorf("AssignTask() error = %v, want rule %s", err, domain.RuleNotProjectMember)
		}
	})
}

func TestTaskService_ChangeStatus(t *testing.T) {
	t.Parallel()

	t.Run("member moves along an authorized edge", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").Return(todoTask(t), nil)
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)
		m.directory.EXPECT().RolesOf(mock.Anything, "tenant-1", "project-1", "user-member").Return([]string{"member"}, nil)
		echoTaskSave(m.tasks)

		var published events.StatusChanged
		m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Run(
			func(_ context.Context, ev events.StatusChanged) {
				published = ev
			}).Return()

		got, err := svc.ChangeStatus(context.Background(), "tenant-1", "task-1", "st-prog", "user-member")
		if err != nil {
			t.Fatalf("ChangeStatus() error = %v, want nil", err)
		}
		if got.CurrentStateID() != "st-prog" {
			t.Errorf("CurrentStateID() = %q, want %q", got.CurrentStateID(), "st-prog")
		}
		if published.FromStateName != "Todo" || published.ToStateName != "In Progress" {
			t.Errorf("published %q -> %q, want %q -> %q",
				published.FromStateName, published.ToStateName, "Todo", "In Progress")
		}
		if published.ActorID != "user-member" {
			t.Errorf("published.ActorID = %q, want %q", published.ActorID, "user-member")
		}
	})

	t.Run("skipping a column is not a transition", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").Return(todoTask(t), nil)
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)
		m.directory.EXPECT().RolesOf(mock.Anything, "tenant-1", "project-1", "user-member").Return([]string{"member"}, nil)

		_, err := svc.ChangeStatus(context.Background(), "tenant-1", "task-1", "st-done", "user-member")
		if !domain.IsRule(err, domain.RuleInvalidTransition) {
			t.Errorf("ChangeStatus() error = %v, want rule %s", err, domain.RuleInvalidTransition)
		}
	})

	t.Run("edge exists but role is not on it", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		inProgress, err := task.New("task-1", "tenant-1", "project-1", "Ship it", "", "st-prog", fixedNow)
		if err != nil {
			t.Fatalf("task.New() error = %v", err)
		}
		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").Return(inProgress, nil)
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)
		m.directory.EXPECT().RolesOf(mock.Anything, "tenant-1", "project-1", "user-member").Return([]string{"member"}, nil)

		_, err = svc.ChangeStatus(context.Background(), "tenant-1", "task-1", "st-done", "user-member")
		if !domain.IsRule(err, domain.RuleInvalidTransition) {
			t.Errorf("ChangeStatus() error = %v, want rule %s", err, domain.RuleInvalidTransition)
		}
	})

	t.Run("admin traverses the admin-only edge", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		inProgress, err := task.New("task-1", "tenant-1", "project-1", "Ship it", "", "st-prog", fixedNow)
		if err != nil {
			t.Fatalf("task.New() error = %v", err)
		}
		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").Return(inProgress, nil)
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").Return(boardGraph(t), nil)
		m.directory.EXPECT().RolesOf(mock.Anything, "tenant-1", "project-1", "user-admin").Return([]string{"admin"}, nil)
		echoTaskSave(m.tasks)
		m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

		got, err := svc.ChangeStatus(context.Background(), "tenant-1", "task-1", "st-done", "user-admin")
		if err != nil {
			t.Fatalf("ChangeStatus() error = %v, want nil", err)
		}
		if got.CurrentStateID() != "st-done" {
			t.Errorf("CurrentStateID() = %q, want %q", got.CurrentStateID(), "st-done")
		}
	})

	t.Run("retries once after a save conflict", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		// Every attempt reloads, so hand out a fresh copy each time.
		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").RunAndReturn(
			func(_ context.Context, _, _ string) (*task.Task, error) {
				return todoTask(t), nil
			})
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").RunAndReturn(
			func(_ context.Context, _, _ string) (*workflow.Graph, error) {
				return boardGraph(t), nil
			})
		m.directory.EXPECT().RolesOf(mock.Anything, "tenant-1", "project-1", "user-member").Return([]string{"member"}, nil)

		m.tasks.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, domain.ErrConflict).Once()
		m.tasks.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, tk *task.Task) (*task.Task, error) {
				return tk, nil
			}).Once()
		m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

		got, err := svc.ChangeStatus(context.Background(), "tenant-1", "task-1", "st-prog", "user-member")
		if err != nil {
			t.Fatalf("ChangeStatus() error = %v, want nil", err)
		}
		if got.CurrentStateID() != "st-prog" {
			t.Errorf("CurrentStateID() = %q, want %q", got.CurrentStateID(), "st-prog")
		}
	})

	t.Run("gives up after persistent conflicts", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").RunAndReturn(
			func(_ context.Context, _, _ string) (*task.Task, error) {
				return todoTask(t), nil
			})
		m.workflows.EXPECT().LoadByProject(mock.Anything, "tenant-1", "project-1").RunAndReturn(
			func(_ context.Context, _, _ string) (*workflow.Graph, error) {
				return boardGraph(t), nil
			})
		m.directory.EXPECT().RolesOf(mock.Anything, "tenant-1", "project-1", "user-member").Return([]string{"member"}, nil)
		m.tasks.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, domain.ErrConflict).Times(changeStatusAttempts)

		_, err := svc.ChangeStatus(context.Background(), "tenant-1", "task-1", "st-prog", "user-member")
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("ChangeStatus() error = %v, want ErrConflict", err)
		}
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	t.Parallel()

	t.Run("admin soft-deletes", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").Return(todoTask(t), nil)
		m.directory.EXPECT().IsProjectAdmin(mock.Anything, "tenant-1", "project-1", "user-admin").Return(true, nil)

		var saved *task.Task
		m.tasks.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, tk *task.Task) (*task.Task, error) {
				saved = tk
				return tk, nil
			})

		if err := svc.DeleteTask(context.Background(), "tenant-1", "task-1", "user-admin"); err != nil {
			t.Fatalf("DeleteTask() error = %v, want nil", err)
		}
		if saved == nil || !saved.IsDeleted() {
			t.Fatal("saved task is not marked deleted")
		}
		if saved.DeletedBy() != "user-admin" {
			t.Errorf("DeletedBy() = %q, want %q", saved.DeletedBy(), "user-admin")
		}
	})

	t.Run("non-admin actor is rejected", func(t *testing.T) {
		t.Parallel()
		svc, m := newTaskService(t)

		m.tasks.EXPECT().Load(mock.Anything, "tenant-1", "task-1").Return(todoTask(t), nil)
		m.directory.EXPECT().IsProjectAdmin(mock.Anything, "tenant-1", "project-1", "user-member").Return(false, nil)

		err := svc.DeleteTask(context.Background(), "tenant-1", "task-1", "user-member")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("DeleteTask() error = %v, want ErrUnauthorized", err)
		}
	})
}
