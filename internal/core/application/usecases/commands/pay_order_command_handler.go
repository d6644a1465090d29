package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/metrics"
)

// PayOrderCommandHandler moves a pending order to paid and stores OrderPaid in the outbox.
type PayOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	domainService *services.OrderDomainService
}

func NewPayOrderCommandHandler(uowFactory OrderUoWFactory, domainService *services.OrderDomainService) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory:    uowFactory,
		domainService: domainService,
	}
}

func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), metrics.TransitionPay,
		func(o *order.Order) (order.Event, error) {
			paid, err := h.domainService.PayOrder(o)
			if err != nil {
				return nil, err
			}
			return paid, nil
		})
}
