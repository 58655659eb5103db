package dto

import (
	"strings"

	"github.com/dkoleva/trackflow/internal/domain"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// CreateStateRequest represents the JSON body for adding a workflow state.
type CreateStateRequest struct {
	Name    string `json:"name"`
	Initial bool   `json:"initial,omitempty"`
	Final   bool   `json:"final,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateStateRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.Initial && r.Final {
		fields["final"] = "state cannot be both initial and final"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateTransitionRequest represents the JSON body for adding a workflow
// transition between two states.
type CreateTransitionRequest struct {
	FromStateID string   `json:"from_state_id"`
	ToStateID   string   `json:"to_state_id"`
	Roles       []string `json:"roles"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTransitionRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.FromStateID) == "" {
		fields["from_state_id"] = msgRequired
	}
	if strings.TrimSpace(r.ToStateID) == "" {
		fields["to_state_id"] = msgRequired
	}
	for _, role := range r.Roles {
		if strings.TrimSpace(role) == "" {
			fields["roles"] = msgMustNotEmpty
			break
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateTaskRequest represents the JSON body for creating a new task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTaskRequest represents the JSON body for updating an existing task.
// All fields are optional; nil means "do not change this field".
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// AssignTaskRequest represents the JSON body for assigning a task to a user.
type AssignTaskRequest struct {
	AssigneeID string `json:"assignee_id"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *AssignTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.AssigneeID) == "" {
		fields["assignee_id"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ChangeStatusRequest represents the JSON body for moving a task to a new
// workflow state.
type ChangeStatusRequest struct {
	TargetStateID string `json:"target_state_id"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *ChangeStatusRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.TargetStateID) == "" {
		fields["target_state_id"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
