// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/dkoleva/trackflow/internal/domain/task"
	"github.com/dkoleva/trackflow/internal/domain/workflow"
)

// StateResponse represents a single workflow state in HTTP responses.
type StateResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Initial bool   `json:"initial"`
	Final   bool   `json:"final"`
}

// TransitionResponse represents a single workflow transition in HTTP responses.
type TransitionResponse struct {
	ID          string   `json:"id"`
	FromStateID string   `json:"from_state_id"`
	ToStateID   string   `json:"to_state_id"`
	Roles       []string `json:"roles"`
}

// WorkflowResponse represents a project's workflow graph in HTTP responses.
type WorkflowResponse struct {
	ID          string               `json:"id"`
	ProjectID   string               `json:"project_id"`
	Version     uint64               `json:"version"`
	States      []StateResponse      `json:"states"`
	Transitions []TransitionResponse `json:"transitions"`
}

// ToWorkflowResponse converts a domain workflow graph to an HTTP response DTO.
func ToWorkflowResponse(g *workflow.Graph) WorkflowResponse {
	states := g.States()
	transitions := g.Transitions()

	resp := WorkflowResponse{
		ID:          g.ID(),
		ProjectID:   g.ProjectID(),
		Version:     g.Version(),
		States:      make([]StateResponse, len(states)),
		Transitions: make([]TransitionResponse, len(transitions)),
	}
	for i, s := range states {
		resp.States[i] = StateResponse{
			ID:      s.ID(),
			Name:    s.Name(),
			Initial: s.IsInitial(),
			Final:   s.IsFinal(),
		}
	}
	for i, t := range transitions {
		resp.Transitions[i] = TransitionResponse{
			ID:          t.ID(),
			FromStateID: t.FromStateID(),
			ToStateID:   t.ToStateID(),
			Roles:       t.Roles(),
		}
	}
	return resp
}

// TaskResponse represents a single task in HTTP responses.
// Deletion fields are populated only on the audit endpoint, which is the
// only surface that returns soft-deleted tasks.
type TaskResponse struct {
	ID             string `json:"id"`
	ProjectID      string `json:"project_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	CurrentStateID string `json:"current_state_id"`
	AssigneeID     string `json:"assignee_id,omitempty"`
	Version        uint64 `json:"version"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
	Deleted        bool   `json:"deleted,omitempty"`
	DeletedAt      string `json:"deleted_at,omitempty"`
	DeletedBy      string `json:"deleted_by,omitempty"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:             t.ID(),
		ProjectID:      t.ProjectID(),
		Title:          t.Title(),
		Description:    t.Description(),
		CurrentStateID: t.CurrentStateID(),
		AssigneeID:     t.AssigneeID(),
		Version:        t.Version(),
		CreatedAt:      t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:      t.UpdatedAt().Format(time.RFC3339),
	}
	if t.IsDeleted() {
		resp.Deleted = true
		resp.DeletedAt = t.DeletedAt().Format(time.RFC3339)
		resp.DeletedBy = t.DeletedBy()
	}
	return resp
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskListResponse converts a slice of domain Tasks to an HTTP list
// response DTO.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return TaskListResponse{
		Tasks: items,
		Count: len(items),
	}
}
