package postgres_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	postgres_adapter "freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/pgtest"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

type orderUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

type deliveryUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f deliveryUoWFactory) Create() commands.DeliveryUoW {
	return f.factory.Create()
}

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg        *pgtest.Database
	publisher *MockEventPublisher
	factory   ports.UnitOfWorkFactory
	clientID  kernel.UUID
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.Reset(ctx))

	id, err := suite.pg.InsertClient(ctx, 7)
	suite.Require().NoError(err)
	suite.clientID, err = kernel.UUIDFromGoogle(id)
	suite.Require().NoError(err)

	suite.publisher = new(MockEventPublisher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.pg.DB, suite.publisher, logger)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), suite.clientID, order.Load{
		Distance:     decimal.NewFromInt(150),
		DistanceRate: decimal.RequireFromString("1.50"),
		Weight:       decimal.NewFromInt(40),
		WeightRate:   decimal.NewFromInt(2),
	}, 1)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) count(table string) int64 {
	n, err := suite.pg.Count(context.Background(), table)
	suite.Require().NoError(err)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.ClientRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.DeliveryRepository())
	suite.NotNil(uow1.DeliveryTypeRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Begin is idempotent")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Error(uow.Commit(ctx), "no active transaction")
	suite.Require().Error(uow.Rollback(ctx), "rollback after commit is a no-op error")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAndPublishesEvents() {
	ctx := context.Background()
	o := suite.newOrder()
	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), delivery.NewCost(
		decimal.NewFromInt(225), decimal.NewFromInt(80), decimal.Zero, decimal.Zero, decimal.Zero,
	), 1)
	suite.Require().NoError(err)

	suite.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		return len(events) == 2 &&
			events[0].EventName() == order.PlacedEventName &&
			events[1].EventName() == delivery.CalculatedEventName
	})).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.count("orders"))
	suite.Equal(int64(1), suite.count("deliveries"))
	suite.Empty(o.DomainEvents())
	suite.Empty(d.DomainEvents())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishFailureDoesNotFailCommit() {
	ctx := context.Background()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder()))

	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal(int64(1), suite.count("orders"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWritesAndEvents() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	_, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err, "visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolation_UncommittedWritesAreInvisible() {
	ctx := context.Background()
	o := suite.newOrder()

	writer := suite.factory.Create()
	suite.Require().NoError(writer.Begin(ctx))
	suite.Require().NoError(writer.OrderRepository().Add(ctx, o))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(writer.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateOrder_DeliveryInsertFailure_LeavesNoOrder() {
	ctx := context.Background()
	// Without the Calculated status row the delivery insert violates
	// deliveries_status_id_fkey after the order row was written.
	suite.Require().NoError(suite.pg.DB.Exec("DELETE FROM delivery_statuses WHERE id = 1").Error)

	handler := commands.NewCreateOrderCommandHandler(orderUoWFactory{suite.factory}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	cmd, err := commands.NewCreateOrderCommand(
		suite.clientID,
		decimal.RequireFromString("1.50"), decimal.NewFromInt(150),
		decimal.NewFromInt(2), decimal.NewFromInt(40),
		1,
	)
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, cmd)

	suite.Require().ErrorIs(err, errs.ErrReferenceNotFound)
	suite.Contains(err.Error(), "deliveries_status_id_fkey")
	suite.Equal(int64(0), suite.count("orders"))
	suite.Equal(int64(0), suite.count("deliveries"))
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateOrder_CommitsBothRows() {
	ctx := context.Background()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(orderUoWFactory{suite.factory}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	cmd, err := commands.NewCreateOrderCommand(
		suite.clientID,
		decimal.RequireFromString("1.50"), decimal.NewFromInt(150),
		decimal.NewFromInt(2), decimal.NewFromInt(40),
		2,
	)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, cmd)
	suite.Require().NoError(err)

	// base 225 + 80 = 305, urgent surcharge 61
	suite.True(result.Cost.Final().Equal(decimal.RequireFromString("366")))

	stored, err := suite.factory.Create().DeliveryRepository().GetByOrderID(ctx, result.OrderID)
	suite.Require().NoError(err)
	suite.Equal(result.DeliveryID, stored.ID())
	suite.True(stored.Cost().Surcharge().Equal(decimal.RequireFromString("61")))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAdvanceDeliveryStatus_ConcurrentSameStep_OnlyOneWins() {
	ctx := context.Background()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	create := commands.NewCreateOrderCommandHandler(orderUoWFactory{suite.factory}, logger)
	createCmd, err := commands.NewCreateOrderCommand(
		suite.clientID,
		decimal.NewFromInt(1), decimal.NewFromInt(10),
		decimal.NewFromInt(1), decimal.NewFromInt(1),
		1,
	)
	suite.Require().NoError(err)
	created, err := create.Handle(ctx, createCmd)
	suite.Require().NoError(err)

	advance := commands.NewAdvanceDeliveryStatusCommandHandler(deliveryUoWFactory{suite.factory})
	cmd, err := commands.NewAdvanceDeliveryStatusCommand(created.DeliveryID, delivery.InTransit)
	suite.Require().NoError(err)

	const workers = 4
	results := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = advance.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	}
	suite.Equal(1, succeeded)

	stored, err := suite.factory.Create().DeliveryRepository().Get(ctx, created.DeliveryID)
	suite.Require().NoError(err)
	suite.Equal(delivery.InTransit, stored.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
