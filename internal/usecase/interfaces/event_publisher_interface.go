package interfaces

import "context"

// IEventPublisher publishes escrow lifecycle events for downstream consumers
// (notifications, reporting, reconciliation). Publishing is best effort from
// the orchestrator's point of view; a publish failure never fails the
// operation that produced the event.

type IEventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}
