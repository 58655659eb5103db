// Package audit delivers StatusChanged events to audit destinations: the
// service's own structured log and, when configured, an external audit
// service over HTTP.
package audit

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/dkoleva/trackflow/internal/events"
	"github.com/dkoleva/trackflow/internal/platform/telemetry"
)

// LogSink writes every status change to the structured log and counts it in
// the transitions metric. It never fails; the transition is already durable
// when the event reaches the sink.
type LogSink struct {
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewLogSink creates a LogSink. metrics may be nil, in which case only the
// log line is produced.
func NewLogSink(logger *slog.Logger, metrics *telemetry.Metrics) *LogSink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogSink{logger: logger, metrics: metrics}
}

func (s *LogSink) Name() string { return "audit-log" }

func (s *LogSink) Deliver(ctx context.Context, ev events.StatusChanged) error {
	s.logger.InfoContext(ctx, "task status changed",
		slog.String("task_id", ev.TaskID),
		slog.String("project_id", ev.ProjectID),
		slog.String("from_state", ev.FromStateName),
		slog.String("to_state", ev.ToStateName),
		slog.String("actor_id", ev.ActorID),
		slog.Time("occurred_at", ev.OccurredAt),
	)

	if s.metrics != nil {
		s.metrics.TransitionsTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrFromState.String(ev.FromStateName),
			telemetry.AttrToState.String(ev.ToStateName),
		))
	}
	return nil
}
