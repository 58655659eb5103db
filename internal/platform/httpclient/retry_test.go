package httpclient

import (
	"context"
	"errors"
	"io"
	"math"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestBackoff_ExponentialGrowth(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     10 * time.Second,
		multiplier:      2.0,
	}

	// Sample repeatedly so jitter cannot mask an out-of-band delay.
	const samples = 100
	for attempt := 1; attempt <= 3; attempt++ {
		base := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
		lo := time.Duration(base * (1 - jitterFraction))
		hi := time.Duration(base * (1 + jitterFraction))

		for range samples {
			delay := backoff(attempt, cfg)
			if delay < lo || delay > hi {
				t.Errorf("attempt %d: delay %v outside [%v, %v]", attempt, delay, lo, hi)
			}
		}
	}
}

func TestBackoff_RespectsMaxInterval(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2.0,
	}

	// Attempt 10 would exceed 51s uncapped; the cap plus jitter bounds it.
	hi := time.Duration(float64(cfg.maxInterval) * (1 + jitterFraction))

	const samples = 100
	for range samples {
		if delay := backoff(10, cfg); delay > hi {
			t.Errorf("delay %v exceeds capped maximum %v", delay, hi)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "context canceled", err: context.Canceled, want: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: false},
		{name: "wrapped cancellation", err: errors.Join(errors.New("doing request"), context.Canceled), want: false},
		{name: "net error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "unknown error", err: errors.New("audit sink unreachable"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		want       bool
	}{
		{name: "200 OK", statusCode: http.StatusOK, want: false},
		{name: "202 Accepted", statusCode: http.StatusAccepted, want: false},
		{name: "400 Bad Request", statusCode: http.StatusBadRequest, want: false},
		{name: "422 Unprocessable Entity", statusCode: http.StatusUnprocessableEntity, want: false},
		{name: "429 Too Many Requests", statusCode: http.StatusTooManyRequests, want: true},
		{name: "500 Internal Server Error", statusCode: http.StatusInternalServerError, want: true},
		{name: "503 Service Unavailable", statusCode: http.StatusServiceUnavailable, want: true},
		{name: "504 Gateway Timeout", statusCode: http.StatusGatewayTimeout, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryableStatus(tt.statusCode); got != tt.want {
				t.Errorf("isRetryableStatus(%d) = %v, want %v", tt.statusCode, got, tt.want)
			}
		})
	}
}

func TestReadBodyForReplay(t *testing.T) {
	t.Parallel()

	t.Run("nil body", func(t *testing.T) {
		t.Parallel()

		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://audit-api/health", nil)
		if err != nil {
			t.Fatalf("building request: %v", err)
		}

		got, err := readBodyForReplay(req)
		if err != nil {
			t.Fatalf("readBodyForReplay() error = %v", err)
		}
		if got != nil {
			t.Errorf("readBodyForReplay() = %q, want nil", got)
		}
	})

	t.Run("buffers and rewinds", func(t *testing.T) {
		t.Parallel()

		const payload = `{"event":"task.status_changed"}`

		req, err := http.NewRequestWithContext(context.Background(),
			http.MethodPost, "http://audit-api/v1/audit/events", strings.NewReader(payload))
		if err != nil {
			t.Fatalf("building request: %v", err)
		}

		buffered, err := readBodyForReplay(req)
		if err != nil {
			t.Fatalf("readBodyForReplay() error = %v", err)
		}
		if string(buffered) != payload {
			t.Errorf("buffered body = %q, want %q", buffered, payload)
		}

		// Two rewinds must both replay the full payload.
		for i := range 2 {
			rewindBody(req, buffered)

			replayed, err := io.ReadAll(req.Body)
			if err != nil {
				t.Fatalf("rewind %d: reading body: %v", i, err)
			}
			if string(replayed) != payload {
				t.Errorf("rewind %d: body = %q, want %q", i, replayed, payload)
			}
			if req.ContentLength != int64(len(payload)) {
				t.Errorf("rewind %d: ContentLength = %d, want %d", i, req.ContentLength, len(payload))
			}
		}
	})
}

func TestRandFloat_InUnitInterval(t *testing.T) {
	t.Parallel()

	const samples = 1000
	for range samples {
		v := randFloat()
		if v < 0 || v >= 1 {
			t.Errorf("randFloat() = %v, want [0, 1)", v)
		}
	}
}
