package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/dkoleva/trackflow/internal/adapters/http"
	"github.com/dkoleva/trackflow/internal/adapters/http/handlers"
	"github.com/dkoleva/trackflow/internal/domain"
	"github.com/dkoleva/trackflow/internal/domain/task"
	"github.com/dkoleva/trackflow/mocks"
)

type testRouterMocks struct {
	workflows *mocks.MockWorkflowService
	tasks     *mocks.MockTaskService
	registry  *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T) (http.Handler, testRouterMocks) {
	t.Helper()
	m := testRouterMocks{
		workflows: mocks.NewMockWorkflowService(t),
		tasks:     mocks.NewMockTaskService(t),
		registry:  mocks.NewMockHealthRegistry(t),
	}

	wh := handlers.NewWorkflowHandler(m.workflows)
	th := handlers.NewTaskHandler(m.tasks)
	hh := handlers.NewHealthHandler(m.registry)

	router := adapthttp.NewRouter(wh, th, hh)
	return router, m
}

func authReq(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, http.NoBody)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	req.Header.Set("X-User-ID", "user-admin")
	return req
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/projects/{projectID}/workflow/"},
		{http.MethodGet, "/api/v1/projects/{projectID}/workflow/"},
		{http.MethodPost, "/api/v1/projects/{projectID}/workflow/states"},
		{http.MethodDelete, "/api/v1/projects/{projectID}/workflow/states/{stateID}"},
		{http.MethodPost, "/api/v1/projects/{projectID}/workflow/transitions"},
		{http.MethodDelete, "/api/v1/projects/{projectID}/workflow/transitions/{transitionID}"},
		{http.MethodPost, "/api/v1/projects/{projectID}/tasks"},
		{http.MethodGet, "/api/v1/projects/{projectID}/tasks"},
		{http.MethodGet, "/api/v1/tasks/{taskID}"},
		{http.MethodPatch, "/api/v1/tasks/{taskID}"},
		{http.MethodDelete, "/api/v1/tasks/{taskID}"},
		{http.MethodPut, "/api/v1/tasks/{taskID}/assignee"},
		{http.MethodPost, "/api/v1/tasks/{taskID}/status"},
		{http.MethodGet, "/api/v1/audit/tasks/{taskID}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	m := testRouterMocks{
		workflows: mocks.NewMockWorkflowService(t),
		tasks:     mocks.NewMockTaskService(t),
		registry:  mocks.NewMockHealthRegistry(t),
	}
	wh := handlers.NewWorkflowHandler(m.workflows)
	th := handlers.NewTaskHandler(m.tasks)
	hh := handlers.NewHealthHandler(m.registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(wh, th, hh, testMW)

	m.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_APIRequiresIdentityHeaders(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/task-1", http.NoBody)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status without identity headers = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRouter_HealthSkipsIdentityHeaders(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)

	m.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationListTasks(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)

	m.tasks.EXPECT().ListTasks(mock.Anything, "tenant-1", "project-1").Return([]task.Task{}, nil)

	rec := httptest.NewRecorder()
	req := authReq(http.MethodGet, "/api/v1/projects/project-1/tasks")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationGetWorkflow(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)

	m.workflows.EXPECT().GetWorkflow(mock.Anything, "tenant-1", "project-1").
		Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := authReq(http.MethodGet, "/api/v1/projects/project-1/workflow")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := authReq(http.MethodGet, "/nonexistent")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := authReq(http.MethodPut, "/api/v1/projects/project-1/tasks")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
