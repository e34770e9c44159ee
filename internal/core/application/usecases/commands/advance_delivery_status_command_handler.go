package commands

import (
	"context"
)

type AdvanceDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewAdvanceDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) AdvanceDeliveryStatusCommandHandler {
	return AdvanceDeliveryStatusCommandHandler{uowFactory: uowFactory}
}

// Handle locks the delivery, applies the single-step transition and stores it.
// Concurrent calls on one delivery are serialized by the row lock, so the
// second one sees the first one's status and a repeated step is rejected.
func (h *AdvanceDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	d, err := repo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = d.AdvanceTo(cmd.Target()); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
