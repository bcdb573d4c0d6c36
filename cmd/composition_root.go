package cmd

import (
	"log/slog"

	httpadapter "boozebuddies/internal/adapters/in/http"
	"boozebuddies/internal/adapters/out/notification"
	"boozebuddies/internal/adapters/out/paymentledger"
	"boozebuddies/internal/adapters/out/postgres"
	"boozebuddies/internal/adapters/out/postgres/directory"
	"boozebuddies/internal/adapters/out/postgres/paymentrepo"
	"boozebuddies/internal/core/application/usecases/commands"
	"boozebuddies/internal/core/application/usecases/queries"
	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/services"
	"boozebuddies/internal/core/ports"
	"boozebuddies/internal/jobs"
	"boozebuddies/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config        Config
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	clock         clock.System
	payments      ports.PaymentOrchestrator
	notifications ports.NotificationSink
	validator     services.OrderValidator
	matcher       services.OrderMatcher
	merchants     ports.MerchantDirectory
	users         ports.UserDirectory
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	clk := clock.NewSystem()
	users := directory.NewGormUserDirectory(gormDB)
	catalog := directory.NewGormProductCatalog(gormDB)

	// The ledger writes through its own connection rather than the command's
	// unit of work; a failed command rolls the order back while the attempted
	// ledger row check still sees committed state only.
	payments := paymentledger.NewLedgerOrchestrator(
		paymentrepo.NewGormPaymentRepository(gormDB, noopTracker{}),
		clk,
	)

	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:         clk,
		payments:      payments,
		notifications: notification.NewSlogSink(logger),
		validator:     services.NewOrderValidator(catalog, users, clk),
		matcher:       services.NewOrderMatcher(),
		merchants:     directory.NewGormMerchantDirectory(gormDB),
		users:         users,
		logger:        logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.validator, c.payments, c.notifications, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.users, c.notifications, c.clock, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.payments, c.notifications, c.clock)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateDispatchOrdersCommandHandler() commands.DispatchOrdersCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrdersCommandHandler(f, c.merchants, c.matcher, c.clock)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateAgeVerificationCommandHandler() commands.UpdateAgeVerificationCommandHandler {
	return commands.NewUpdateAgeVerificationCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateDeliveryLocationCommandHandler() commands.UpdateDeliveryLocationCommandHandler {
	return commands.NewUpdateDeliveryLocationCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetOrdersWithinRadiusQueryHandler() queries.GetOrdersWithinRadiusQueryHandler {
	return queries.NewGetOrdersWithinRadiusQueryHandler(c.gormDB, c.matcher)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTotalRevenueQueryHandler() queries.GetTotalRevenueQueryHandler {
	return queries.NewGetTotalRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateUpdateAgeVerificationCommandHandler(),
		c.CreateUpdateDeliveryLocationCommandHandler(),
		c.CreateCancelDeliveryCommandHandler(),
		c.CreateGetOrdersWithinRadiusQueryHandler(),
		c.CreateGetActiveDeliveriesQueryHandler(),
		c.CreateGetTotalRevenueQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateDispatchOrdersCommandHandler(),
		c.config.DispatchRadiusKm,
		logger,
	)
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderDeliveryUoWFactory func() commands.OrderDeliveryUoW

func (f FuncOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

// noopTracker satisfies the ledger repository's tracker outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}
