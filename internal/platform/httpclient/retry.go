package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/dkoleva/trackflow/internal/platform/logging"
)

// jitterFraction bounds the jitter applied to each backoff delay (±25%).
const jitterFraction = 0.25

// doWithRetry runs the request with exponential backoff and jitter between
// attempts. The body is buffered once so every attempt replays the same
// bytes. The response is written through resp; the caller owns closing it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	bodyBytes, err := readBodyForReplay(req)
	if err != nil {
		return err
	}

	var lastErr error

	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			if err := c.sleepBeforeRetry(ctx, req, attempt, lastErr); err != nil {
				return err
			}
		}

		rewindBody(req, bodyBytes)

		r, err := c.hc.Do(req)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.name)

		// The last attempt hands the response back with its body intact.
		if attempt == c.retry.maxAttempts-1 {
			*resp = r
			return lastErr
		}

		drainAndClose(r)
	}

	return lastErr
}

// readBodyForReplay consumes and closes the request body, keeping the bytes
// for later attempts. Nil body yields nil bytes.
func readBodyForReplay(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return bodyBytes, nil
}

// rewindBody installs a fresh reader over the buffered bytes. No-op for a
// nil buffer.
func rewindBody(req *http.Request, bodyBytes []byte) {
	if bodyBytes == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	req.ContentLength = int64(len(bodyBytes))
}

// drainAndClose discards the response body so the connection can be reused
// by the next attempt.
func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// sleepBeforeRetry logs the upcoming attempt and waits out the backoff
// delay, honoring context cancellation.
func (c *Client) sleepBeforeRetry(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := backoff(attempt, c.retry)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff computes the delay before the given retry. attempt is 1-indexed;
// attempt 1 is the first retry. The exponential delay is capped at the max
// interval, then jittered so callers retrying the same outage spread out.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*randFloat() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// randFloat returns a random float64 in [0, 1) sourced from crypto/rand.
func randFloat() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable classifies transport errors. Context cancellation and deadline
// expiry stop the attempt loop; network errors (timeouts included) and
// anything unrecognized get another try.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return true
}

// isRetryableStatus reports whether the status warrants another attempt:
// 5xx and 429.
func isRetryableStatus(statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	return statusCode >= http.StatusInternalServerError
}
