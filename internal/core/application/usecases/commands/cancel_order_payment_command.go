package commands

import (
	"errors"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCancelOrderPaymentCommandIsNotConstructed = errors.New(
	"CancelOrderPaymentCommand must be created via NewCancelOrderPaymentCommand constructor",
)

// CancelOrderPaymentCommand starts the compensation of a paid order, e.g. after the
// restaurant rejected it.
type CancelOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewCancelOrderPaymentCommand keeps failureMessages as given, nil included.
func NewCancelOrderPaymentCommand(orderID kernel.UUID, failureMessages []string) (CancelOrderPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderPaymentCommand{}, err
	}

	return CancelOrderPaymentCommand{
		orderID:         orderID,
		failureMessages: slices.Clone(failureMessages),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderPaymentCommandIsNotConstructed)
}

func (c CancelOrderPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderPaymentCommand) FailureMessages() []string {
	return slices.Clone(c.failureMessages)
}
