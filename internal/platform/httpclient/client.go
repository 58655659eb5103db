// Package httpclient implements the instrumented HTTP client behind every
// outbound call this service makes, today only to the audit API. A request
// travels through a fixed pipeline before it hits the wire:
//
//	circuit breaker, then rate limiter, then ID forwarding, then a client
//	span, then the retry loop around http.Client.Do.
//
// Build one client per downstream:
//
//	client := httpclient.New(&cfg.Client, "audit-api", metrics, logger)
//
// and execute requests with a context that carries the IDs the inbound
// middleware recorded:
//
//	ctx = httpclient.WithRequestID(ctx, requestID)
//	ctx = httpclient.WithCorrelationID(ctx, correlationID)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/dkoleva/trackflow/internal/platform/config"
	"github.com/dkoleva/trackflow/internal/platform/telemetry"
)

// retryConfig is the subset of config.RetryConfig the retry loop needs,
// copied at construction so the config package stays out of this API.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is an outbound HTTP client bound to a single downstream service.
// The downstream's name appears in spans, metrics, breaker logs, and
// readiness output.
type Client struct {
	hc      *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil disables rate limiting
	retry   retryConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client for the named downstream. A nil metrics disables
// metric recording but changes nothing else.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: halfOpenLimit(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(breakerName string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", breakerName),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		hc:      &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		breaker: breaker,
		limiter: limiter,
		retry: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do sends the request through the full pipeline. Cancellation, tracing,
// and the forwarded IDs all come from ctx.
//
// On success resp is non-nil and its body is open; the caller closes it.
// When retries are exhausted on a retryable status, both resp (open body)
// and err are non-nil. On a breaker rejection or network error resp is nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if err := c.admit(ctx); err != nil {
			return struct{}{}, err
		}

		c.forwardIDs(ctx, req)

		spanCtx, span := c.openSpan(ctx, req)
		defer span.End()

		// The span context carries cancellation, deadline, and trace
		// propagation into http.Client.Do.
		req = req.WithContext(spanCtx)

		retryErr := c.doWithRetry(spanCtx, req, &resp)
		c.closeSpan(span, resp, retryErr)

		return struct{}{}, retryErr
	})

	c.observe(ctx, method, start, resp, err)

	return resp, err
}

// BaseURL returns the downstream's configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service identifier. Together with HealthCheck
// it lets Client satisfy ports.HealthChecker without importing it.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck reads the downstream's availability off the breaker state, no
// network involved: closed is healthy, half-open is degraded, open is
// failing.
//
// This reports downstream status, not service readiness; requests keep
// being served while a downstream is dark.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.name, state)
	}
}

// admit blocks until the rate limiter lets the request through or ctx is
// canceled. A nil limiter admits everything.
func (c *Client) admit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// forwardIDs copies the request and correlation IDs out of ctx into the
// outbound headers, skipping whichever is absent.
func (c *Client) forwardIDs(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

// openSpan starts a client span for the outbound request and injects W3C
// trace context into its headers.
func (c *Client) openSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	ctx, span := tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.name),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.name),
		),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

func (c *Client) closeSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// observe records client request metrics. It runs outside the breaker so
// circuit-open rejections are counted too, and is a no-op without metrics.
func (c *Client) observe(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	statusCode := 0
	result := "error"
	if resp != nil {
		statusCode = resp.StatusCode
		if statusCode < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// halfOpenLimit converts the configured half-open request cap to the
// uint32 gobreaker expects, clamping negatives to zero.
func halfOpenLimit(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
