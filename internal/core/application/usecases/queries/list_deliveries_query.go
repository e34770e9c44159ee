package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery returns every delivery, newest first.
type ListDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListDeliveriesQuery() ListDeliveriesQuery {
	return ListDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

type DeliveryResponse struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	DeliveryTypeID    int64
	DeliveryTypeLabel string
	Status            delivery.Status
	Cost              CostBreakdown
	CreatedAt         time.Time
}
