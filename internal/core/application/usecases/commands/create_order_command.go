package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks to place an order and price its delivery.
//
//	cmd, err := NewCreateOrderCommand(clientID,
//	    decimal.RequireFromString("2.50"), decimal.NewFromInt(100),
//	    decimal.NewFromInt(1), decimal.NewFromInt(60), deliverytype.UrgentID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientID       kernel.UUID
	load           order.Load
	deliveryTypeID int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks that every amount is strictly positive and both
// references are present, reporting all violations at once.
func NewCreateOrderCommand(
	clientID kernel.UUID,
	distanceRate, distance, weightRate, weight decimal.Decimal,
	deliveryTypeID int64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setLoad(order.Load{
			Distance:     distance,
			DistanceRate: distanceRate,
			Weight:       weight,
			WeightRate:   weightRate,
		}),
		cmd.setDeliveryTypeID(deliveryTypeID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c CreateOrderCommand) Load() order.Load {
	return c.load
}

func (c CreateOrderCommand) DeliveryTypeID() int64 {
	return c.deliveryTypeID
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setLoad(load order.Load) error {
	if err := load.Validate(); err != nil {
		return err
	}
	c.load = load
	return nil
}

func (c *CreateOrderCommand) setDeliveryTypeID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("deliveryTypeId")
	}
	c.deliveryTypeID = id
	return nil
}
