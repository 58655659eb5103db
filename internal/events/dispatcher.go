package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dkoleva/trackflow/internal/app/fanout"
)

// Sink receives dispatched events. Implementations must tolerate redelivery
// and must not assume ordering across tasks; events for a single task arrive
// in commit order.
type Sink interface {
	// Name identifies the sink in logs (e.g., "audit-log", "audit-webhook").
	Name() string

	// Deliver processes one event. Errors are logged by the dispatcher and
	// never propagate to the caller that published the event.
	Deliver(ctx context.Context, ev StatusChanged) error
}

// Dispatcher fans events out to its sinks from a single consumer goroutine.
// Publish is non-blocking: when the buffer is full the event is dropped with
// a warning rather than stalling the request that committed the change.
//
// The single consumer preserves publish order, which matches commit order
// because services publish only after a successful save.
type Dispatcher struct {
	logger     *slog.Logger
	sinks      []Sink
	ch         chan StatusChanged
	done       chan struct{}
	maxWorkers int
	timeout    time.Duration

	// mu orders Publish against Close: a publisher holding the read lock
	// can never send on a closed channel.
	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a dispatcher with the given buffer size, per-event
// delivery timeout, and sink fan-out width. Start must be called before
// events are consumed.
func NewDispatcher(logger *slog.Logger, buffer, maxWorkers int, timeout time.Duration, sinks ...Sink) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if buffer < 1 {
		buffer = 1
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Dispatcher{
		logger:     logger,
		sinks:      sinks,
		ch:         make(chan StatusChanged, buffer),
		done:       make(chan struct{}),
		maxWorkers: maxWorkers,
		timeout:    timeout,
	}
}

// Start launches the consumer goroutine. Call at most once.
func (d *Dispatcher) Start() {
	go d.run()
}

// Publish enqueues an event for delivery. It never blocks and never fails:
// when the buffer is full, or the dispatcher has been closed, the event is
// dropped and logged at warn level. Callers must invoke Publish only after
// their state change has been durably committed.
func (d *Dispatcher) Publish(ctx context.Context, ev StatusChanged) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.WarnContext(ctx, "dispatcher closed, dropping event",
			slog.String("operation", "Dispatcher.Publish"),
			slog.String("task_id", ev.TaskID),
			slog.String("to_state", ev.ToStateName),
		)
		return
	}

	select {
	case d.ch <- ev:
	default:
		d.logger.WarnContext(ctx, "event buffer full, dropping event",
			slog.String("operation", "Dispatcher.Publish"),
			slog.String("task_id", ev.TaskID),
			slog.String("to_state", ev.ToStateName),
		)
	}
}

// Close stops accepting events and waits for in-flight deliveries to finish
// or for ctx to expire. Safe to call more than once; events published after
// Close are dropped.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.ch)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for ev := range d.ch {
		d.deliver(ev)
	}
}

// deliver fans a single event out to all sinks with bounded concurrency.
// Sink failures are logged and swallowed; one sink failing never affects
// the others or the publisher.
func (d *Dispatcher) deliver(ev StatusChanged) {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	results := fanout.Run(ctx, d.maxWorkers, d.sinks, func(ctx context.Context, s Sink) (struct{}, error) {
		return struct{}{}, s.Deliver(ctx, ev)
	})

	for i, r := range results {
		if r.Err != nil {
			d.logger.ErrorContext(ctx, "event delivery failed",
				slog.String("operation", "Dispatcher.deliver"),
				slog.String("sink", d.sinks[i].Name()),
				slog.String("task_id", ev.TaskID),
				slog.Any("error", r.Err),
			)
		}
	}
}
