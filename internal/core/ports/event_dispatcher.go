package ports

import (
	"context"

	"oms/internal/core/domain/events"
)

// EventDispatcher publishes domain events to the message broker.
// Dispatch is atomic per call: either all messages are handed to the
// broker or an error is returned.
type EventDispatcher interface {
	Dispatch(ctx context.Context, messages []events.EventMessage) error
}
