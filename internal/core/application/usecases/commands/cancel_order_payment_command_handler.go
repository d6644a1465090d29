package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/metrics"
)

// CancelOrderPaymentCommandHandler moves a paid order to cancelling and stores
// OrderCancelled in the outbox so the payment gets rolled back.
type CancelOrderPaymentCommandHandler struct {
	uowFactory    OrderUoWFactory
	domainService *services.OrderDomainService
}

func NewCancelOrderPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	domainService *services.OrderDomainService,
) CancelOrderPaymentCommandHandler {
	return CancelOrderPaymentCommandHandler{
		uowFactory:    uowFactory,
		domainService: domainService,
	}
}

func (h *CancelOrderPaymentCommandHandler) Handle(ctx context.Context, cmd CancelOrderPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), metrics.TransitionCancelPayment,
		func(o *order.Order) (order.Event, error) {
			cancelled, err := h.domainService.CancelOrderPayment(o, cmd.FailureMessages())
			if err != nil {
				return nil, err
			}
			return cancelled, nil
		})
}
