package commands

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/deliverytype"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// CreateOrderResult identifies the rows written and carries the computed cost.
type CreateOrderResult struct {
	OrderID    kernel.UUID
	DeliveryID kernel.UUID
	Cost       delivery.Cost
}

// CreateOrderCommandHandler places an order and its delivery atomically: either
// both rows are committed or neither is.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle looks up the delivery type label, prices the load, then inserts the
// order followed by its delivery in Calculated status. Any failure rolls the
// transaction back and is returned as is.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	label, err := h.resolveTypeLabel(ctx, uow.DeliveryTypeRepository(), cmd.DeliveryTypeID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	cost := services.NewShippingCostCalculator().Calculate(cmd.Load(), label)

	o, err := order.NewOrder(kernel.NewUUID(), cmd.ClientID(), cmd.Load(), cmd.DeliveryTypeID())
	if err != nil {
		return CreateOrderResult{}, err
	}
	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), cost, cmd.DeliveryTypeID())
	if err != nil {
		return CreateOrderResult{}, err
	}
	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{OrderID: o.ID(), DeliveryID: d.ID(), Cost: cost}, nil
}

// resolveTypeLabel falls back to the default label when the id has no row.
func (h *CreateOrderCommandHandler) resolveTypeLabel(
	ctx context.Context,
	repo ports.DeliveryTypeRepository,
	id int64,
) (string, error) {
	dt, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "unknown delivery type, pricing as default",
			"deliveryTypeId", id, "label", deliverytype.DefaultLabel)
		return deliverytype.DefaultLabel, nil
	}
	if err != nil {
		return "", err
	}
	return dt.Label(), nil
}
