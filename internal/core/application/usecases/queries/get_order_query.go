package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its full cost breakdown.
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderDetails is an order plus its delivery, which is nil when missing.
type OrderDetails struct {
	OrderSummary
	Delivery *DeliveryResponse
}

// CostBreakdown mirrors delivery.Cost as stored.
type CostBreakdown struct {
	DistanceCost decimal.Decimal
	WeightCost   decimal.Decimal
	Surcharge    decimal.Decimal
	ExtraFee     decimal.Decimal
	Discount     decimal.Decimal
	Final        decimal.Decimal
}
