// Package task implements the task lifecycle entity. A task belongs to a
// project, always sits in exactly one state of that project's workflow
// graph, and is only ever soft-deleted. All mutation goes through methods;
// the orchestration service validates transitions against the graph before
// calling MoveTo.
package task

import (
	"strings"
	"time"

	"github.com/dkoleva/trackflow/internal/domain"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// Task is a unit of work tracked within a project.
type Task struct {
	id             string
	tenantID       string
	projectID      string
	title          string
	description    string
	currentStateID string
	assigneeID     string
	deleted        bool
	deletedAt      time.Time
	deletedBy      string
	version        uint64
	createdAt      time.Time
	updatedAt      time.Time
}

// New creates a task entering the workflow at initialStateID.
// Returns a *domain.ValidationError when required fields are blank.
func New(id, tenantID, projectID, title, description, initialStateID string, now time.Time) (*Task, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(id) == "" {
		fields["id"] = msgRequired
	}
	if strings.TrimSpace(tenantID) == "" {
		fields["tenant_id"] = msgRequired
	}
	if strings.TrimSpace(projectID) == "" {
		fields["project_id"] = msgRequired
	}
	if strings.TrimSpace(title) == "" {
		fields["title"] = msgRequired
	}
	if strings.TrimSpace(initialStateID) == "" {
		fields["initial_state_id"] = msgRequired
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	now = now.UTC()
	return &Task{
		id:             id,
		tenantID:       tenantID,
		projectID:      projectID,
		title:          strings.TrimSpace(title),
		description:    description,
		currentStateID: initialStateID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ID returns the task's identifier.
func (t *Task) ID() string { return t.id }

// TenantID returns the owning tenant.
func (t *Task) TenantID() string { return t.tenantID }

// ProjectID returns the owning project.
func (t *Task) ProjectID() string { return t.projectID }

// Title returns the task title.
func (t *Task) Title() string { return t.title }

// Description returns the task description.
func (t *Task) Description() string { return t.description }

// CurrentStateID returns the id of the workflow state the task sits in.
func (t *Task) CurrentStateID() string { return t.currentStateID }

// AssigneeID returns the assigned user id, or "" when unassigned.
func (t *Task) AssigneeID() string { return t.assigneeID }

// IsDeleted reports whether the task has been soft-deleted.
func (t *Task) IsDeleted() bool { return t.deleted }

// DeletedAt returns when the task was soft-deleted; zero when live.
func (t *Task) DeletedAt() time.Time { return t.deletedAt }

// DeletedBy returns who soft-deleted the task; "" when live.
func (t *Task) DeletedBy() string { return t.deletedBy }

// Version returns the optimistic concurrency token loaded with the task.
func (t *Task) Version() uint64 { return t.version }

// CreatedAt returns the creation timestamp (UTC).
func (t *Task) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the last mutation timestamp (UTC).
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// Rename updates the title and description.
// Returns a *domain.ValidationError when title is blank; fails with
// RuleTaskDeleted on a soft-deleted task.
func (t *Task) Rename(title, description string, now time.Time) error {
	if t.deleted {
		return domain.NewBusinessRuleError(domain.RuleTaskDeleted, "task %s is deleted", t.id)
	}
	if strings.TrimSpace(title) == "" {
		return &domain.ValidationError{Fields: map[string]string{"title": msgRequired}}
	}
	t.title = strings.TrimSpace(title)
	t.description = description
	t.updatedAt = now.UTC()
	return nil
}

// Assign sets the assignee. Membership of the target user is checked by the
// orchestration service; the entity only guards its own lifecycle.
func (t *Task) Assign(userID string, now time.Time) error {
	if t.deleted {
		return domain.NewBusinessRuleError(domain.RuleTaskDeleted, "task %s is deleted", t.id)
	}
	if strings.TrimSpace(userID) == "" {
		return &domain.ValidationError{Fields: map[string]string{"user_id": msgRequired}}
	}
	t.assigneeID = userID
	t.updatedAt = now.UTC()
	return nil
}

// MoveTo points the task at a new workflow state. Transition legality is the
// orchestration service's responsibility; calling MoveTo without a prior
// CanTransition check bypasses the workflow.
func (t *Task) MoveTo(stateID string, now time.Time) error {
	if t.deleted {
		return domain.NewBusinessRuleError(domain.RuleTaskDeleted, "task %s is deleted", t.id)
	}
	if strings.TrimSpace(stateID) == "" {
		return &domain.ValidationError{Fields: map[string]string{"state_id": msgRequired}}
	}
	t.currentStateID = stateID
	t.updatedAt = now.UTC()
	return nil
}

// SoftDelete flags the task deleted. The row is never physically removed;
// default reads exclude it, audit reads still see it. Idempotent.
func (t *Task) SoftDelete(byUserID string, now time.Time) {
	if t.deleted {
		return
	}
	t.deleted = true
	t.deletedAt = now.UTC()
	t.deletedBy = byUserID
	t.updatedAt = now.UTC()
}

// Snapshot is the persistence/transport representation of a Task.
type Snapshot struct {
	ID             string
	TenantID       string
	ProjectID      string
	Title          string
	Description    string
	CurrentStateID string
	AssigneeID     string
	Deleted        bool
	DeletedAt      time.Time
	DeletedBy      string
	Version        uint64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Snapshot exports the task for persistence.
func (t *Task) Snapshot() Snapshot {
	return Snapshot{
		ID:             t.id,
		TenantID:       t.tenantID,
		ProjectID:      t.projectID,
		Title:          t.title,
		Description:    t.description,
		CurrentStateID: t.currentStateID,
		AssigneeID:     t.assigneeID,
		Deleted:        t.deleted,
		DeletedAt:      t.deletedAt,
		DeletedBy:      t.deletedBy,
		Version:        t.version,
		CreatedAt:      t.createdAt,
		UpdatedAt:      t.updatedAt,
	}
}

// FromSnapshot rehydrates a task from its persisted form.
func FromSnapshot(s Snapshot) *Task {
	return &Task{
		id:             s.ID,
		tenantID:       s.TenantID,
		projectID:      s.ProjectID,
		title:          s.Title,
		description:    s.Description,
		currentStateID: s.CurrentStateID,
		assigneeID:     s.AssigneeID,
		deleted:        s.Deleted,
		deletedAt:      s.DeletedAt,
		deletedBy:      s.DeletedBy,
		version:        s.Version,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}
