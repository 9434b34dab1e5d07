package cmd

import (
	"log/slog"

	httpin "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/postgres"
	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/adapters/out/postgres/permissionrepo"
	"commerce/internal/core/application/access"
	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
	"commerce/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	catalog    *order.Catalog
	uowFactory postgres.GormUnitOfWorkFactory
	lifecycle  commands.Lifecycle
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	sender ports.NotificationSender,
	logger *slog.Logger,
) (CompositionRoot, error) {
	catalog, err := order.NewCatalog(
		order.DefaultStatuses(),
		order.DefaultEditableStatuses(),
		config.OrderNumberPrefix,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		catalog:    catalog,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, catalog),
		lifecycle:  commands.NewLifecycle(catalog, sender, logger),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Catalog() *order.Catalog {
	return c.catalog
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.catalog, c.lifecycle)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.lifecycle)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.lifecycle)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.lifecycle)
}

func (c *CompositionRoot) CreateRepairOrderNumbersCommandHandler() commands.RepairOrderNumbersCommandHandler {
	return commands.NewRepairOrderNumbersCommandHandler(c.orderUoWFactory(), c.lifecycle)
}

func (c *CompositionRoot) CreateGetOrderTotalsQueryHandler() queries.GetOrderTotalsQueryHandler {
	return queries.NewGetOrderTotalsQueryHandler(c.gormDB, c.catalog, services.NewValuator())
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

// CreateGate wires the authorization gate to the capability store and the
// session actor resolver. Override hooks, if any, are registered by the
// caller before first use.
func (c *CompositionRoot) CreateGate() *access.Gate {
	permissions := permissionrepo.NewGormPermissionRepository(c.gormDB)
	return access.NewGate(permissions, httpin.ContextActorResolver{}, c.logger)
}

// CreateOrderRepository returns a repository outside any unit of work, for
// reads that precede a permission decision.
func (c *CompositionRoot) CreateOrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, c.catalog)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRepairOrderNumbersCommandHandler(), c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
