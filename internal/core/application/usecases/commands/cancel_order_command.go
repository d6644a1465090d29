package commands

import (
	"errors"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand finishes a cancellation: a pending order whose payment failed or a
// cancelling order whose payment was rolled back.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand keeps failureMessages as given, nil included.
func NewCancelOrderCommand(orderID kernel.UUID, failureMessages []string) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID:         orderID,
		failureMessages: slices.Clone(failureMessages),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderCommand) FailureMessages() []string {
	return slices.Clone(c.failureMessages)
}
