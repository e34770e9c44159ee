package commands

import (
	"errors"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAdvanceDeliveryStatusCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryStatusCommand must be created via NewAdvanceDeliveryStatusCommand constructor",
)

// AdvanceDeliveryStatusCommand moves a delivery to its next status.
type AdvanceDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status

	guard guard.ConstructorGuard
}

func NewAdvanceDeliveryStatusCommand(deliveryID kernel.UUID, target delivery.Status) (AdvanceDeliveryStatusCommand, error) {
	cmd := AdvanceDeliveryStatusCommand{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceDeliveryStatusCommand{}, err
	}
	return cmd, nil
}

func (c AdvanceDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryStatusCommandIsNotConstructed)
}

func (c AdvanceDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AdvanceDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

func (c *AdvanceDeliveryStatusCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *AdvanceDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
