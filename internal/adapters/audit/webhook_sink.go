package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dkoleva/trackflow/internal/events"
	"github.com/dkoleva/trackflow/internal/platform/httpclient"
)

// WebhookSink POSTs each status change to an external audit service. The
// underlying client carries the circuit breaker, retry, and tracing; a
// delivery that still fails is reported to the dispatcher, which logs and
// drops it. The audit service deduplicates on task id and occurred_at, so
// redelivery is safe.
type WebhookSink struct {
	client *httpclient.Client
	path   string
}

// NewWebhookSink creates a WebhookSink delivering to path on the client's
// base URL.
func NewWebhookSink(client *httpclient.Client, path string) *WebhookSink {
	return &WebhookSink{client: client, path: path}
}

func (s *WebhookSink) Name() string { return "audit-webhook" }

func (s *WebhookSink) Deliver(ctx context.Context, ev events.StatusChanged) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	url := s.client.BaseURL() + s.path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()
	}
	if err != nil {
		return fmt.Errorf("delivering event for task %s: %w", ev.TaskID, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("audit service rejected event for task %s: status %d", ev.TaskID, resp.StatusCode)
	}
	return nil
}
