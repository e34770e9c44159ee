// Package ports defines the contracts between the freight core and its adapters:
// repositories, the unit of work, the address resolver and the event publisher.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates. Orders are never updated in place.
type OrderRepository interface {
	// Add inserts a new order. A missing client or delivery type surfaces as
	// errs.ReferenceNotFoundError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order. The caller removes its delivery first.
	Delete(ctx context.Context, id kernel.UUID) error
}
