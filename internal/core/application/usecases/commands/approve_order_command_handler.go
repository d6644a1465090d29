package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/metrics"
)

// ApproveOrderCommandHandler approves paid orders. Approval stores no outbox message.
type ApproveOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	domainService *services.OrderDomainService
}

func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory, domainService *services.OrderDomainService) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory:    uowFactory,
		domainService: domainService,
	}
}

func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), metrics.TransitionApprove,
		func(o *order.Order) (order.Event, error) {
			return nil, h.domainService.ApproveOrder(o)
		})
}
