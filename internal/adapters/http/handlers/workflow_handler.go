package handlers

import (
	"net/http"

	"github.com/dkoleva/trackflow/internal/adapters/http/dto"
	"github.com/dkoleva/trackflow/internal/adapters/http/middleware"
	"github.com/dkoleva/trackflow/internal/ports"
)

// WorkflowHandler handles HTTP requests for per-project workflow graphs.
type WorkflowHandler struct {
	service ports.WorkflowService
}

// NewWorkflowHandler creates a new WorkflowHandler with the given service port.
func NewWorkflowHandler(service ports.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{service: service}
}

// CreateWorkflow handles POST /api/v1/projects/{projectID}/workflow.
func (h *WorkflowHandler) CreateWorkflow(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathParam(r, "projectID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tenantID := middleware.TenantIDFromContext(r.Context())
	g, err := h.service.CreateWorkflow(r.Context(), tenantID, projectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToWorkflowResponse(g))
}

// GetWorkflow handles GET /api/v1/projects/{projectID}/workflow.
func (h *WorkflowHandler) GetWorkflow(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathParam(r, "projectID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tenantID := middleware.TenantIDFromContext(r.Context())
	g, err := h.service.GetWorkflow(r.Context(), tenantID, projectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkflowResponse(g))
}

// AddState handles POST /api/v1/projects/{projectID}/workflow/states.
func (h *WorkflowHandler) AddState(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathParam(r, "projectID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateStateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tenantID := middleware.TenantIDFromContext(r.Context())
	g, err := h.service.AddState(r.Context(), tenantID, projectID, ports.StateInput{
		Name:    req.Name,
		Initial: req.Initial,
		Final:   req.Final,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToWorkflowResponse(g))
}

// RemoveState handles DELETE /api/v1/projects/{projectID}/workflow/states/{stateID}.
func (h *WorkflowHandler) RemoveState(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathParam(r, "projectID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	stateID, err := pathParam(r, "stateID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tenantID := middleware.TenantIDFromContext(r.Context())
	g, err := h.service.RemoveState(r.Context(), tenantID, projectID, stateID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkflowResponse(g))
}

// AddTransition handles POST /api/v1/projects/{projectID}/workflow/transitions.
func (h *WorkflowHandler) AddTransition(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathParam(r, "projectID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTransitionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tenantID := middleware.TenantIDFromContext(r.Context())
	g, err := h.service.AddTransition(r.Context(), tenantID, projectID, ports.TransitionInput{
		FromStateID: req.FromStateID,
		ToStateID:   req.ToStateID,
		Roles:       req.Roles,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToWorkflowResponse(g))
}

// RemoveTransition handles DELETE /api/v1/projects/{projectID}/workflow/transitions/{transitionID}.
func (h *WorkflowHandler) RemoveTransition(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathParam(r, "projectID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	transitionID, err := pathParam(r, "transitionID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tenantID := middleware.TenantIDFromContext(r.Context())
	g, err := h.service.RemoveTransition(r.Context(), tenantID, projectID, transitionID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkflowResponse(g))
}
