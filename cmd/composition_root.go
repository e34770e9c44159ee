package cmd

import (
	"log/slog"

	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	resolver   ports.AddressResolver
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	resolver ports.AddressResolver,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		resolver:   resolver,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
	}
}

func (c *CompositionRoot) CreateRegisterClientCommandHandler() *commands.RegisterClientCommandHandler {
	h := commands.NewRegisterClientCommandHandler(c.clientUoWFactory(), c.resolver)
	return &h
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() *commands.DeleteClientCommandHandler {
	h := commands.NewDeleteClientCommandHandler(c.clientUoWFactory())
	return &h
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAdvanceDeliveryStatusCommandHandler() *commands.AdvanceDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewAdvanceDeliveryStatusCommandHandler(f)
	return &h
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateListClientsQueryHandler() queries.ListClientsQueryHandler {
	return queries.NewListClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountUnpairedOrdersQueryHandler() queries.CountUnpairedOrdersQueryHandler {
	return queries.NewCountUnpairedOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer binds every use case to its REST operation.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		RegisterClient:        c.CreateRegisterClientCommandHandler(),
		DeleteClient:          c.CreateDeleteClientCommandHandler(),
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		DeleteOrder:           c.CreateDeleteOrderCommandHandler(),
		AdvanceDeliveryStatus: c.CreateAdvanceDeliveryStatusCommandHandler(),
		ListClients:           c.CreateListClientsQueryHandler(),
		ListOrders:            c.CreateListOrdersQueryHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		ListDeliveries:        c.CreateListDeliveriesQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewPairingAuditJob(c.CreateCountUnpairedOrdersQueryHandler(), c.config.AuditSchedule, c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
