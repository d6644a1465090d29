package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/metrics"

	"github.com/go-faster/errors"
)

// CreateOrderResult identifies the order that was placed.
type CreateOrderResult struct {
	OrderID    kernel.UUID
	TrackingID kernel.UUID
}

// CreateOrderCommandHandler places orders. The restaurant snapshot, the new order and the
// OrderCreated outbox message are read and written in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewOrderDomainService(logger))
//	result, err := handler.Handle(ctx, cmd)
//	if errs.IsKind(err, errs.KindRestaurantNotActive) {
//	    // tell the customer to try later
//	}
type CreateOrderCommandHandler struct {
	uowFactory    PlaceOrderUoWFactory
	domainService *services.OrderDomainService
}

func NewCreateOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	domainService *services.OrderDomainService,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		domainService: domainService,
	}
}

// Handle builds the order from the command, validates it against the restaurant and
// persists it. Nothing is written when any step fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	o, err := newOrderFromCommand(cmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, errors.Wrap(err, "begin transaction")
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return CreateOrderResult{}, errors.Wrap(err, "load restaurant")
	}

	created, err := h.domainService.ValidateAndInitiateOrder(o, r)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, errors.Wrap(err, "add order")
	}

	if err = addToOutbox(ctx, uow, created); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, errors.Wrap(err, "commit transaction")
	}
	metrics.OrderTransitionsTotal.WithLabelValues(metrics.TransitionCreate).Inc()

	return CreateOrderResult{
		OrderID:    o.ID(),
		TrackingID: o.TrackingID(),
	}, nil
}

func newOrderFromCommand(cmd CreateOrderCommand) (*order.Order, error) {
	cmdItems := cmd.Items()
	items := make([]*order.OrderItem, 0, len(cmdItems))
	for _, it := range cmdItems {
		p, err := product.NewProductReference(it.ProductID)
		if err != nil {
			return nil, err
		}

		item, err := order.NewOrderItem(p, it.Quantity, it.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.New(order.Params{
		CustomerID:      cmd.CustomerID(),
		RestaurantID:    cmd.RestaurantID(),
		DeliveryAddress: cmd.DeliveryAddress(),
		Price:           cmd.Price(),
		Items:           items,
	})
}
