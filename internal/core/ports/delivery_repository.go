package ports

import (
	"context"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
)

// DeliveryRepository persists delivery aggregates.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update stores a status change.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate loads the delivery and locks its row until the surrounding
	// transaction ends, so concurrent status changes are applied one at a time.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// DeleteByOrderID removes the delivery of an order, if any, and reports whether one existed.
	DeleteByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error)
}
