package cmd

import (
	"log/slog"

	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs      Config
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	activeOrders *queries.GetActiveOrdersQueryHandler
}

// NewCompositionRoot wires the application graph. The active orders handler is
// created once and shared: the command handlers invalidate the same snapshot
// the query side serves.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:      configs,
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		activeOrders: queries.NewGetActiveOrdersQueryHandler(gormDB, configs.ActiveOrdersTTL),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.activeOrders)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.activeOrders)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersForReportQueryHandler() queries.GetOrdersForReportQueryHandler {
	return queries.NewGetOrdersForReportQueryHandler(c.gormDB, c.configs.ReportRowCap)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() *queries.GetActiveOrdersQueryHandler {
	return c.activeOrders
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrdersForReportQueryHandler(),
		c.activeOrders,
		logger,
	)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
