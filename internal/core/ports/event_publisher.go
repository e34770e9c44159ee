package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events after the transaction that produced them committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
