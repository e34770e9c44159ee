package queries_test

import (
	"context"
	"testing"

	"freight/internal/adapters/out/postgres/deliveryrepo"
	"freight/internal/adapters/out/postgres/orderrepo"
	"freight/internal/adapters/out/postgres/pgtest"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	pg *pgtest.Database
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset(context.Background()))
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *QueryHandlersIntegrationTestSuite) insertClient(seq int) kernel.UUID {
	raw, err := suite.pg.InsertClient(context.Background(), seq)
	suite.Require().NoError(err)
	id, err := kernel.UUIDFromGoogle(raw)
	suite.Require().NoError(err)
	return id
}

// placeOrder stores an order priced as label and, when withDelivery is set, its delivery.
func (suite *QueryHandlersIntegrationTestSuite) placeOrder(
	clientID kernel.UUID,
	typeID int64,
	label string,
	withDelivery bool,
) (*order.Order, *delivery.Delivery) {
	ctx := context.Background()
	load := order.Load{
		Distance:     decimal.NewFromInt(100),
		DistanceRate: decimal.RequireFromString("2.50"),
		Weight:       decimal.NewFromInt(60),
		WeightRate:   decimal.NewFromInt(1),
	}
	o, err := order.NewOrder(kernel.NewUUID(), clientID, load, typeID)
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.pg.DB, noopTracker{}).Add(ctx, o))

	if !withDelivery {
		return o, nil
	}

	cost := services.NewShippingCostCalculator().Calculate(load, label)
	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), cost, typeID)
	suite.Require().NoError(err)
	suite.Require().NoError(deliveryrepo.NewGormDeliveryRepository(suite.pg.DB, noopTracker{}).Add(ctx, d))
	return o, d
}

func (suite *QueryHandlersIntegrationTestSuite) TestListClients() {
	suite.insertClient(1)
	suite.insertClient(2)

	clients, err := queries.NewListClientsQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewListClientsQuery())

	suite.Require().NoError(err)
	suite.Len(clients, 2)
	suite.Equal("SP", clients[0].State)
	suite.Equal("01001000", clients[0].PostalCode)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListClients_Empty() {
	clients, err := queries.NewListClientsQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewListClientsQuery())

	suite.Require().NoError(err)
	suite.NotNil(clients)
	suite.Empty(clients)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListOrders_FilterByClient() {
	first := suite.insertClient(1)
	second := suite.insertClient(2)
	suite.placeOrder(first, 2, "urgent", true)
	suite.placeOrder(first, 1, "normal", false)
	suite.placeOrder(second, 1, "normal", true)

	handler := queries.NewListOrdersQueryHandler(suite.pg.DB)

	all, err := handler.Handle(context.Background(), queries.NewListOrdersQuery())
	suite.Require().NoError(err)
	suite.Len(all, 3)

	q, err := queries.NewListOrdersOfClientQuery(first)
	suite.Require().NoError(err)
	mine, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Len(mine, 2)
	for _, o := range mine {
		suite.Equal(first, o.ClientID)
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_WithDeliveryBreakdown() {
	clientID := suite.insertClient(1)
	o, d := suite.placeOrder(clientID, 2, "urgent", true)

	q, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)
	details, err := queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(context.Background(), q)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), details.ID)
	suite.Equal("urgent", details.DeliveryTypeLabel)
	suite.Require().NotNil(details.Delivery)
	suite.Equal(d.ID(), details.Delivery.ID)
	suite.Equal(delivery.Calculated, details.Delivery.Status)
	suite.True(details.Delivery.Cost.DistanceCost.Equal(decimal.RequireFromString("250")))
	suite.True(details.Delivery.Cost.Surcharge.Equal(decimal.RequireFromString("62")))
	suite.True(details.Delivery.Cost.ExtraFee.Equal(decimal.RequireFromString("15")))
	suite.True(details.Delivery.Cost.Final.Equal(decimal.RequireFromString("387")))
	suite.True(details.FinalCost.Valid)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_WithoutDelivery() {
	clientID := suite.insertClient(1)
	o, _ := suite.placeOrder(clientID, 1, "normal", false)

	q, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)
	details, err := queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(context.Background(), q)

	suite.Require().NoError(err)
	suite.Nil(details.Delivery)
	suite.Nil(details.DeliveryID)
	suite.False(details.FinalCost.Valid)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_Missing() {
	q, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(context.Background(), q)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListDeliveries() {
	clientID := suite.insertClient(1)
	suite.placeOrder(clientID, 1, "normal", true)
	suite.placeOrder(clientID, 2, "urgent", true)
	suite.placeOrder(clientID, 1, "normal", false)

	deliveries, err := queries.NewListDeliveriesQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewListDeliveriesQuery())

	suite.Require().NoError(err)
	suite.Len(deliveries, 2)
	for _, d := range deliveries {
		suite.True(d.Cost.Final.Equal(
			d.Cost.DistanceCost.Add(d.Cost.WeightCost).Add(d.Cost.Surcharge).Add(d.Cost.ExtraFee).Sub(d.Cost.Discount),
		))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestCountUnpairedOrders() {
	clientID := suite.insertClient(1)
	suite.placeOrder(clientID, 1, "normal", true)

	handler := queries.NewCountUnpairedOrdersQueryHandler(suite.pg.DB)

	counts, err := handler.Handle(context.Background(), queries.NewCountUnpairedOrdersQuery())
	suite.Require().NoError(err)
	suite.True(counts.IsZero())

	suite.placeOrder(clientID, 1, "normal", false)

	counts, err = handler.Handle(context.Background(), queries.NewCountUnpairedOrdersQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts.OrdersWithoutDelivery)
	suite.Equal(int64(0), counts.DeliveriesWithoutOrder)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
