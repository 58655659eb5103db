// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkoleva/trackflow/internal/adapters/http/handlers"
	"github.com/dkoleva/trackflow/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// The given middlewares are applied globally in order; the API routes
// additionally require the tenant and user identity headers enforced by
// middleware.AuthContext. Health endpoints stay open so probes work without
// identity headers.
func NewRouter(
	workflowHandler *handlers.WorkflowHandler,
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AuthContext())

		// Per-project workflow graph.
		r.Route("/projects/{projectID}/workflow", func(r chi.Router) {
			r.Post("/", workflowHandler.CreateWorkflow)
			r.Get("/", workflowHandler.GetWorkflow)
			r.Post("/states", workflowHandler.AddState)
			r.Delete("/states/{stateID}", workflowHandler.RemoveState)
			r.Post("/transitions", workflowHandler.AddTransition)
			r.Delete("/transitions/{transitionID}", workflowHandler.RemoveTransition)
		})

		// Project-scoped task collection.
		r.Post("/projects/{projectID}/tasks", taskHandler.CreateTask)
		r.Get("/projects/{projectID}/tasks", taskHandler.ListTasks)

		// Task lifecycle.
		r.Get("/tasks/{taskID}", taskHandler.GetTask)
		r.Patch("/tasks/{taskID}", taskHandler.UpdateTask)
		r.Delete("/tasks/{taskID}", taskHandler.DeleteTask)
		r.Put("/tasks/{taskID}/assignee", taskHandler.AssignTask)
		r.Post("/tasks/{taskID}/status", taskHandler.ChangeStatus)

		// Audit view, includes soft-deleted tasks.
		r.Get("/audit/tasks/{taskID}", taskHandler.GetTaskForAudit)
	})

	return r
}
