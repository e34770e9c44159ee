package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery or NewListOrdersOfClientQuery constructor",
)

// ListOrdersQuery returns orders, newest first, optionally restricted to one client.
type ListOrdersQuery struct {
	clientID *kernel.UUID
	guard    guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func NewListOrdersOfClientQuery(clientID kernel.UUID) (ListOrdersQuery, error) {
	if err := clientID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{clientID: &clientID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ClientID is nil when the query is not filtered.
func (q ListOrdersQuery) ClientID() *kernel.UUID {
	return q.clientID
}

// OrderSummary is one order row with the headline of its delivery. The
// delivery fields are zero when the order has none.
type OrderSummary struct {
	ID                kernel.UUID
	ClientID          kernel.UUID
	DeliveryTypeID    int64
	DeliveryTypeLabel string
	Distance          decimal.Decimal
	DistanceRate      decimal.Decimal
	Weight            decimal.Decimal
	WeightRate        decimal.Decimal
	CreatedAt         time.Time
	DeliveryID        *kernel.UUID
	Status            delivery.Status
	FinalCost         decimal.NullDecimal
}
