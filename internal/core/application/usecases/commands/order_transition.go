package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/metrics"

	"github.com/go-faster/errors"
)

// transitionFunc applies one lifecycle step. It returns the raised event, or nil when the
// step raises none.
type transitionFunc func(o *order.Order) (order.Event, error)

// transitionOrder loads and locks the order, applies the step, and persists the order and
// its event in one transaction.
func transitionOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	transition string,
	apply transitionFunc,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errors.Wrap(err, "begin transaction")
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "load order")
	}

	event, err := apply(o)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return errors.Wrap(err, "update order")
	}

	if event != nil {
		if err = addToOutbox(ctx, uow, event); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	metrics.OrderTransitionsTotal.WithLabelValues(transition).Inc()

	return nil
}
