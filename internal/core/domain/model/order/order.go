package order

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PlacedEventName is the routing name of the event recorded by NewOrder.
const PlacedEventName = "order.placed"

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Load describes what is shipped and how it is priced: distance in km,
// weight in kg and the per-unit rates.
type Load struct {
	Distance     decimal.Decimal
	DistanceRate decimal.Decimal
	Weight       decimal.Decimal
	WeightRate   decimal.Decimal
}

// Validate checks that every quantity and rate is strictly positive.
func (l Load) Validate() error {
	return errors.Join(
		kernel.RequirePositive("distance", l.Distance),
		kernel.RequirePositive("distanceRate", l.DistanceRate),
		kernel.RequirePositive("weight", l.Weight),
		kernel.RequirePositive("weightRate", l.WeightRate),
	)
}

// Order is the aggregate root for a freight request.
type Order struct {
	kernel.EventRecorder

	id             kernel.UUID
	clientID       kernel.UUID
	load           Load
	deliveryTypeID int64
	createdAt      time.Time
	isConstructed  bool
}

// PlacedEvent is recorded when a new order is created.
type PlacedEvent struct {
	OrderID        kernel.UUID     `json:"orderId"`
	ClientID       kernel.UUID     `json:"clientId"`
	DeliveryTypeID int64           `json:"deliveryTypeId"`
	Distance       decimal.Decimal `json:"distance"`
	Weight         decimal.Decimal `json:"weight"`
	At             time.Time       `json:"occurredAt"`
}

func (e PlacedEvent) EventName() string        { return PlacedEventName }
func (e PlacedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e PlacedEvent) OccurredAt() time.Time    { return e.At }

// NewOrder validates and creates an order, recording a PlacedEvent.
func NewOrder(id, clientID kernel.UUID, load Load, deliveryTypeID int64) (*Order, error) {
	o := &Order{
		createdAt:     time.Now().UTC().Truncate(time.Microsecond),
		isConstructed: true,
	}
	if err := o.set(id, clientID, load, deliveryTypeID); err != nil {
		return nil, err
	}

	o.Record(PlacedEvent{
		OrderID:        o.id,
		ClientID:       o.clientID,
		DeliveryTypeID: o.deliveryTypeID,
		Distance:       o.load.Distance,
		Weight:         o.load.Weight,
		At:             o.createdAt,
	})
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(id, clientID kernel.UUID, load Load, deliveryTypeID int64, createdAt time.Time) (*Order, error) {
	o := &Order{createdAt: createdAt, isConstructed: true}
	if err := o.set(id, clientID, load, deliveryTypeID); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) Load() Load {
	return o.load
}

func (o *Order) DeliveryTypeID() int64 {
	return o.deliveryTypeID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) set(id, clientID kernel.UUID, load Load, deliveryTypeID int64) error {
	var errID, errClient, errType error
	if errID = id.Validate(); errID == nil {
		o.id = id
	}
	if err := clientID.Validate(); err != nil {
		errClient = errs.NewValueIsRequiredErrorWithCause("clientId", err)
	} else {
		o.clientID = clientID
	}
	if deliveryTypeID <= 0 {
		errType = errs.NewValueIsOutOfRangeError("deliveryTypeId", deliveryTypeID, 1, "unbounded")
	} else {
		o.deliveryTypeID = deliveryTypeID
	}
	errLoad := load.Validate()
	if errLoad == nil {
		o.load = load
	}
	return errors.Join(errID, errClient, errLoad, errType)
}
