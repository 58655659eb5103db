package ports

import (
	"context"

	"github.com/dkoleva/trackflow/internal/events"
)

// EventPublisher is the application layer's view of the event pipeline.
// Publish must be called only after the state change it describes has been
// durably committed; implementations never block the caller and never
// surface delivery failures to it.
type EventPublisher interface {
	Publish(ctx context.Context, ev events.StatusChanged)
}
