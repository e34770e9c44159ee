package delivery

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is the priced shipment of one order. It is created together with the
// order, in the same transaction, and afterwards only its status changes.
type Delivery struct {
	kernel.EventRecorder

	id             kernel.UUID
	orderID        kernel.UUID
	cost           Cost
	status         Status
	deliveryTypeID int64
	isConstructed  bool
}

// NewDelivery creates a delivery in the Calculated status and records a CalculatedEvent.
func NewDelivery(id, orderID kernel.UUID, cost Cost, deliveryTypeID int64) (*Delivery, error) {
	d := &Delivery{status: Calculated, isConstructed: true}
	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setCost(cost),
		d.setDeliveryTypeID(deliveryTypeID),
	); err != nil {
		return nil, err
	}

	d.Record(CalculatedEvent{
		DeliveryID:     d.id,
		OrderID:        d.orderID,
		DeliveryTypeID: d.deliveryTypeID,
		FinalCost:      d.cost.Final(),
		At:             time.Now().UTC(),
	})
	return d, nil
}

// RestoreDelivery rebuilds a delivery loaded from storage. No event is recorded.
func RestoreDelivery(id, orderID kernel.UUID, cost Cost, status Status, deliveryTypeID int64) (*Delivery, error) {
	d := &Delivery{isConstructed: true}
	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setCost(cost),
		d.setStatus(status),
		d.setDeliveryTypeID(deliveryTypeID),
	); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) Cost() Cost {
	return d.cost
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) DeliveryTypeID() int64 {
	return d.deliveryTypeID
}

// AdvanceTo moves the delivery exactly one step forward. Skipping a step,
// repeating the current status or moving backwards is rejected.
func (d *Delivery) AdvanceTo(target Status) error {
	if err := d.status.ValidateTransition(target); err != nil {
		return err
	}

	from := d.status
	d.status = target
	d.Record(StatusChangedEvent{
		DeliveryID: d.id,
		OrderID:    d.orderID,
		From:       from,
		To:         target,
		At:         time.Now().UTC(),
	})
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setCost(cost Cost) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	d.cost = cost
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setDeliveryTypeID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("deliveryTypeId", id, 1, "unbounded")
	}
	d.deliveryTypeID = id
	return nil
}
