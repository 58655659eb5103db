package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dkoleva/trackflow/internal/adapters/http/middleware"
	"github.com/dkoleva/trackflow/internal/domain/task"
	"github.com/dkoleva/trackflow/internal/domain/workflow"
)

const (
	testTenantID = "tenant-1"
	testActorID  = "user-admin"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// withChiParams attaches chi URL parameters to the request context so
// handlers can be exercised without a full router.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withAuth attaches the tenant and actor identities the AuthContext
// middleware would normally provide.
func withAuth(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithAuthContext(r.Context(), testTenantID, testActorID))
}

func mustState(t *testing.T, id, name string, initial, final bool) workflow.State {
	t.Helper()
	s, err := workflow.NewState(id, name, initial, final)
	if err != nil {
		t.Fatalf("NewState(%q): %v", id, err)
	}
	return s
}

func mustTransition(t *testing.T, id, from, to string, roles []string) workflow.Transition {
	t.Helper()
	tr, err := workflow.NewTransition(id, from, to, roles)
	if err != nil {
		t.Fatalf("NewTransition(%q): %v", id, err)
	}
	return tr
}

// boardGraph builds a three-state graph: Todo -> In Progress -> Done.
func boardGraph(t *testing.T) *workflow.Graph {
	t.Helper()
	g := workflow.New("wf-1", testTenantID, "project-1")
	for _, s := range []workflow.State{
		mustState(t, "st-todo", "Todo", true, false),
		mustState(t, "st-prog", "In Progress", false, false),
		mustState(t, "st-done", "Done", false, true),
	} {
		if err := g.AddState(s); err != nil {
			t.Fatalf("AddState(%q): %v", s.ID(), err)
		}
	}
	for _, tr := range []workflow.Transition{
		mustTransition(t, "tr-start", "st-todo", "st-prog", []string{"admin", "member"}),
		mustTransition(t, "tr-finish", "st-prog", "st-done", []string{"admin"}),
	} {
		if err := g.AddTransition(tr); err != nil {
			t.Fatalf("AddTransition(%q): %v", tr.ID(), err)
		}
	}
	return g
}

func validTask(t *testing.T) *task.Task {
	t.Helper()
	tk, err := task.New("task-1", testTenantID, "project-1", "Fix login flow", "Session expires too early", "st-todo", testTime)
	if err != nil {
		t.Fatalf("task.New: %v", err)
	}
	return tk
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
