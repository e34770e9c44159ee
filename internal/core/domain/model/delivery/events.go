package delivery

import (
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const (
	CalculatedEventName    = "delivery.calculated"
	StatusChangedEventName = "delivery.status_changed"
)

type CalculatedEvent struct {
	DeliveryID     kernel.UUID     `json:"deliveryId"`
	OrderID        kernel.UUID     `json:"orderId"`
	DeliveryTypeID int64           `json:"deliveryTypeId"`
	FinalCost      decimal.Decimal `json:"finalCost"`
	At             time.Time       `json:"occurredAt"`
}

func (e CalculatedEvent) EventName() string        { return CalculatedEventName }
func (e CalculatedEvent) AggregateID() kernel.UUID { return e.DeliveryID }
func (e CalculatedEvent) OccurredAt() time.Time    { return e.At }

type StatusChangedEvent struct {
	DeliveryID kernel.UUID `json:"deliveryId"`
	OrderID    kernel.UUID `json:"orderId"`
	From       Status      `json:"from"`
	To         Status      `json:"to"`
	At         time.Time   `json:"occurredAt"`
}

func (e StatusChangedEvent) EventName() string        { return StatusChangedEventName }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.DeliveryID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.At }
