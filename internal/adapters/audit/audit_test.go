package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dkoleva/trackflow/internal/adapters/audit"
	"github.com/dkoleva/trackflow/internal/events"
	"github.com/dkoleva/trackflow/internal/platform/config"
	"github.com/dkoleva/trackflow/internal/platform/httpclient"
)

func sampleEvent() events.StatusChanged {
	return events.StatusChanged{
		TaskID:        "task-1",
		TenantID:      "tenant-1",
		ProjectID:     "project-1",
		FromStateName: "Todo",
		ToStateName:   "In Progress",
		ActorID:       "user-member",
		OccurredAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLogSink_Deliver(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	sink := audit.NewLogSink(logger, nil)

	if sink.Name() != "audit-log" {
		t.Errorf("Name() = %q, want %q", sink.Name(), "audit-log")
	}

	if err := sink.Deliver(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("Deliver() error = %v, want nil", err)
	}

	out := buf.String()
	for _, want := range []string{"task-1", "Todo", "In Progress", "user-member"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func webhookClient(baseURL string) *httpclient.Client {
	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, "audit-api", nil, slog.New(slog.DiscardHandler))
}

func TestWebhookSink_Deliver(t *testing.T) {
	t.Parallel()

	t.Run("posts the event as json", func(t *testing.T) {
		t.Parallel()

		var received events.StatusChanged
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if r.URL.Path != "/v1/audit/events" {
				t.Errorf("path = %s, want /v1/audit/events", r.URL.Path)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			body, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(body, &received); err != nil {
				t.Errorf("decoding body: %v", err)
			}
			w.WriteHeader(http.StatusAccepted)
		}))
		t.Cleanup(srv.Close)

		sink := audit.NewWebhookSink(webhookClient(srv.URL), "/v1/audit/events")

		if err := sink.Deliver(context.Background(), sampleEvent()); err != nil {
			t.Fatalf("Deliver() error = %v, want nil", err)
		}
		if received.TaskID != "task-1" || received.ToStateName != "In Progress" {
			t.Errorf("received event = %+v, want the published one", received)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		t.Cleanup(srv.Close)

		sink := audit.NewWebhookSink(webhookClient(srv.URL), "/v1/audit/events")

		if err := sink.Deliver(context.Background(), sampleEvent()); err == nil {
			t.Fatal("Deliver() error = nil, want non-nil for rejected event")
		}
	})
}
