package commands_test

import (
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Load{
		Distance:     decimal.NewFromInt(10),
		DistanceRate: decimal.NewFromInt(1),
		Weight:       decimal.NewFromInt(1),
		WeightRate:   decimal.NewFromInt(1),
	}, 1)
	require.NoError(t, err)
	return o
}

func TestNewDeleteOrderCommand(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero commands.DeleteOrderCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrDeleteOrderCommandIsNotConstructed)
}

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t)
	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	deliveries := new(MockDeliveryRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveries).Once(),
		deliveries.On("DeleteByOrderID", ctx, o.ID()).Return(true, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Delete", ctx, o.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	orders.AssertExpectations(t)
	deliveries.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteOrderCommand(id)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "DeliveryRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_OrderDeleteFailsAfterDeliveryDeleted(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t)
	cmd, _ := commands.NewDeleteOrderCommand(o.ID())
	deleteErr := errs.NewStorageError("delete order", errors.New("lock timeout"))

	orders := new(MockOrderRepository)
	deliveries := new(MockDeliveryRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Twice()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("DeliveryRepository").Return(deliveries).Once()
	deliveries.On("DeleteByOrderID", ctx, o.ID()).Return(true, nil).Once()
	orders.On("Delete", ctx, o.ID()).Return(deleteErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	assert.Same(t, deleteErr, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
