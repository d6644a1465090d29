package cmd

import (
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	domainService *services.OrderDomainService
	publisher     ports.EventPublisher
	logger        *zap.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		domainService: services.NewOrderDomainService(logger),
		publisher:     publisher,
		logger:        logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f, c.domainService)
	return &h
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() *commands.PayOrderCommandHandler {
	h := commands.NewPayOrderCommandHandler(c.orderUoWFactory(), c.domainService)
	return &h
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() *commands.ApproveOrderCommandHandler {
	h := commands.NewApproveOrderCommandHandler(c.orderUoWFactory(), c.domainService)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderPaymentCommandHandler() *commands.CancelOrderPaymentCommandHandler {
	h := commands.NewCancelOrderPaymentCommandHandler(c.orderUoWFactory(), c.domainService)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.domainService)
	return &h
}

func (c *CompositionRoot) CreatePublishOutboxCommandHandler() *commands.PublishOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewPublishOutboxCommandHandler(f, c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
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

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
