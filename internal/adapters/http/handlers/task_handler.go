package handlers

import (
	"net/http"

	"github.com/dkoleva/trackflow/internal/adapters/http/dto"
	"github.com/dkoleva/trackflow/internal/adapters/http/middleware"
	"github.com/dkoleva/trackflow/internal/ports"
)

// TaskHandler handles HTTP requests for task lifecycle operations.
type TaskHandler struct {
	service ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// CreateTask handles POST /api/v1/projects/{projectID}/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathParam(r, "projectID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tenantID := middleware.TenantIDFromContext(r.Context())
	created, err := h.service.CreateTask(r.Context(), tenantID, projectID, ports.TaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// ListTasks handles GET /api/v1/projects/{projectID}/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathParam(r, "projectID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tenantID := middleware.TenantIDFromContext(r.Context())
	tasks, err := h.service.ListTasks(r.Context(), tenantID, projectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// GetTask handles GET /api/v1/tasks/{taskID}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, "taskID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tenantID := middleware.TenantIDFromContext(r.Context())
	t, err := h.service.GetTask(r.Context(), tenantID, taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PATCH /api/v1/tasks/{taskID}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, "taskID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tenantID := middleware.TenantIDFromContext(r.Context())
	updated, err := h.service.UpdateTask(r.Context(), tenantID, taskID, ports.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// AssignTask handles PUT /api/v1/tasks/{taskID}/assignee.
func (h *TaskHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, "taskID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AssignTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	tenantID := middleware.TenantIDFromContext(ctx)
	actorID := middleware.UserIDFromContext(ctx)
	assigned, err := h.service.AssignTask(ctx, tenantID, taskID, req.AssigneeID, actorID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(assigned))
}

// ChangeStatus handles POST /api/v1/tasks/{taskID}/status.
func (h *TaskHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, "taskID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ChangeStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	tenantID := middleware.TenantIDFromContext(ctx)
	actorID := middleware.UserIDFromContext(ctx)
	moved, err := h.service.ChangeStatus(ctx, tenantID, taskID, req.TargetStateID, actorID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(moved))
}

// DeleteTask handles DELETE /api/v1/tasks/{taskID}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, "taskID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ctx := r.Context()
	tenantID := middleware.TenantIDFromContext(ctx)
	actorID := middleware.UserIDFromContext(ctx)
	if err := h.service.DeleteTask(ctx, tenantID, taskID, actorID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTaskForAudit handles GET /api/v1/audit/tasks/{taskID}. Unlike GetTask
// it returns soft-deleted tasks with their deletion metadata.
func (h *TaskHandler) GetTaskForAudit(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, "taskID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tenantID := middleware.TenantIDFromContext(r.Context())
	t, err := h.service.GetTaskForAudit(r.Context(), tenantID, taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}
