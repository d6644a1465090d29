package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/metrics"
)

// CancelOrderCommandHandler cancels pending or cancelling orders. No outbox message is stored.
type CancelOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	domainService *services.OrderDomainService
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, domainService *services.OrderDomainService) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:    uowFactory,
		domainService: domainService,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), metrics.TransitionCancel,
		func(o *order.Order) (order.Event, error) {
			return nil, h.domainService.CancelOrder(o, cmd.FailureMessages())
		})
}
