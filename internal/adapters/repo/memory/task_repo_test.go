package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dkoleva/trackflow/internal/domain"
	"github.com/dkoleva/trackflow/internal/domain/task"
)

func seedTask(t *testing.T, repo *TaskRepo, id, tenantID, projectID, stateID string, createdAt time.Time) *task.Task {
	t.Helper()

	tk, err := task.New(id, tenantID, projectID, "Title "+id, "", stateID, createdAt)
	if err != nil {
		t.Fatalf("task.New() error = %v", err)
	}
	saved, err := repo.Save(context.Background(), tk)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	return saved
}

func TestTaskRepo_Load(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := NewTaskRepo()
	seedTask(t, repo, "task-1", "tenant-1", "project-1", "st-1", now)

	t.Run("returns the stored task", func(t *testing.T) {
		t.Parallel()
		tk, err := repo.Load(context.Background(), "tenant-1", "task-1")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if tk.Title() != "Title task-1" {
			t.Errorf("Title() = %q", tk.Title())
		}
	})

	t.Run("unknown task is not found", func(t *testing.T) {
		t.Parallel()
		_, err := repo.Load(context.Background(), "tenant-1", "task-x")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Load() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("cross-tenant access is not found", func(t *testing.T) {
		t.Parallel()
		_, err := repo.Load(context.Background(), "tenant-2", "task-1")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Load() error = %v, want ErrNotFound (never unauthorized)", err)
		}
	})
}

func TestTaskRepo_SoftDeleteFiltering(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := NewTaskRepo()
	seeded := seedTask(t, repo, "task-1", "tenant-1", "project-1", "st-1", now)

	seeded.SoftDelete("user-admin", now.Add(time.Hour))
	if _, err := repo.Save(context.Background(), seeded); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	t.Run("Load hides deleted tasks", func(t *testing.T) {
		t.Parallel()
		_, err := repo.Load(context.Background(), "tenant-1", "task-1")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Load() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListByProject hides deleted tasks", func(t *testing.T) {
		t.Parallel()
		list, err := repo.ListByProject(context.Background(), "tenant-1", "project-1")
		if err != nil {
			t.Fatalf("ListByProject() error = %v", err)
		}
		if len(list) != 0 {
			t.Errorf("ListByProject() returned %d tasks, want 0", len(list))
		}
	})

	t.Run("LoadAny still returns the record", func(t *testing.T) {
		t.Parallel()
		tk, err := repo.LoadAny(context.Background(), "tenant-1", "task-1")
		if err != nil {
			t.Fatalf("LoadAny() error = %v", err)
		}
		if !tk.IsDeleted() {
			t.Error("IsDeleted() = false, want true")
		}
		if tk.DeletedBy() != "user-admin" {
			t.Errorf("DeletedBy() = %q, want %q", tk.DeletedBy(), "user-admin")
		}
	})

	t.Run("LoadAny is still tenant scoped", func(t *testing.T) {
		t.Parallel()
		_, err := repo.LoadAny(context.Background(), "tenant-2", "task-1")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("LoadAny() error = %v, want ErrNotFound", err)
		}
	})
}

func TestTaskRepo_ListByProject_Order(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := NewTaskRepo()
	seedTask(t, repo, "task-c", "tenant-1", "project-1", "st-1", base.Add(2*time.Minute))
	seedTask(t, repo, "task-a", "tenant-1", "project-1", "st-1", base)
	seedTask(t, repo, "task-b", "tenant-1", "project-1", "st-1", base)
	seedTask(t, repo, "task-other", "tenant-1", "project-2", "st-1", base)

	list, err := repo.ListByProject(context.Background(), "tenant-1", "project-1")
	if err != nil {
		t.Fatalf("ListByProject() error = %v", err)
	}

	got := make([]string, 0, len(list))
	for _, tk := range list {
		got = append(got, tk.ID())
	}
	want := []string{"task-a", "task-b", "task-c"}
	if len(got) != len(want) {
		t.Fatalf("ListByProject() ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListByProject() ids = %v, want %v", got, want)
		}
	}
}

func TestTaskRepo_CountByState(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := NewTaskRepo()
	seedTask(t, repo, "task-1", "tenant-1", "project-1", "st-todo", now)
	seedTask(t, repo, "task-2", "tenant-1", "project-1", "st-todo", now)
	seedTask(t, repo, "task-3", "tenant-1", "project-1", "st-done", now)
	deleted := seedTask(t, repo, "task-4", "tenant-1", "project-1", "st-todo", now)

	deleted.SoftDelete("user-admin", now)
	if _, err := repo.Save(context.Background(), deleted); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	n, err := repo.CountByState(context.Background(), "tenant-1", "project-1", "st-todo")
	if err != nil {
		t.Fatalf("CountByState() error = %v", err)
	}
	if n != 2 {
		t.Errorf("CountByState() = %d, want 2 (deleted tasks excluded)", n)
	}
}

func TestTaskRepo_Save_VersionCheck(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := NewTaskRepo()
	seedTask(t, repo, "task-1", "tenant-1", "project-1", "st-todo", now)

	first, err := repo.Load(context.Background(), "tenant-1", "task-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	second, err := repo.Load(context.Background(), "tenant-1", "task-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := first.MoveTo("st-prog", now.Add(time.Minute)); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}
	if _, err := repo.Save(context.Background(), first); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}

	if err := second.MoveTo("st-done", now.Add(time.Minute)); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}
	if _, err := repo.Save(context.Background(), second); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second Save() error = %v, want ErrConflict", err)
	}

	// The winner's move is what sticks.
	tk, err := repo.Load(context.Background(), "tenant-1", "task-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tk.CurrentStateID() != "st-prog" {
		t.Errorf("CurrentStateID() = %q, want %q", tk.CurrentStateID(), "st-prog")
	}
}
