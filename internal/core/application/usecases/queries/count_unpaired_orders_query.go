package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrCountUnpairedOrdersQueryIsNotConstructed = errors.New(
	"CountUnpairedOrdersQuery must be created via NewCountUnpairedOrdersQuery constructor",
)

// CountUnpairedOrdersQuery counts the rows that break the one order, one
// delivery pairing. Both counts are zero on a healthy database.
type CountUnpairedOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewCountUnpairedOrdersQuery() CountUnpairedOrdersQuery {
	return CountUnpairedOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q CountUnpairedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountUnpairedOrdersQueryIsNotConstructed)
}

type UnpairedCounts struct {
	OrdersWithoutDelivery  int64
	DeliveriesWithoutOrder int64
}

func (c UnpairedCounts) IsZero() bool {
	return c.OrdersWithoutDelivery == 0 && c.DeliveriesWithoutOrder == 0
}
