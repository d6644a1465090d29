package commands

import (
	"errors"
	"fmt"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// CreateOrderItem is one line of an order being placed. The price is the unit price the
// customer saw; it is checked against the restaurant menu.
type CreateOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
	Price     kernel.Money
}

// CreateOrderCommand represents a customer placing an order with a restaurant.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID, address, total, []CreateOrderItem{
//	    {ProductID: pizzaID, Quantity: 2, Price: pizzaPrice},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress kernel.StreetAddress
	price           kernel.Money
	items           []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers, the address and every item. An order must
// contain at least one item.
func NewCreateOrderCommand(
	customerID, restaurantID kernel.UUID,
	deliveryAddress kernel.StreetAddress,
	price kernel.Money,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.price = price

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateOrderCommand) DeliveryAddress() kernel.StreetAddress {
	return c.deliveryAddress
}

// Price returns the total the customer expects to pay.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

func (c CreateOrderCommand) Items() []CreateOrderItem {
	return slices.Clone(c.items)
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address kernel.StreetAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item #%d: %w", i, err))
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("item #%d: quantity %d is not greater than 0", i, item.Quantity))
		}
	}

	c.items = slices.Clone(items)
	return nil
}
