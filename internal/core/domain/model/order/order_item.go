package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned for OrderItem values not built by a constructor.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem constructor")

// ItemID numbers the items of one order, starting at 1. Zero means unassigned.
type ItemID int64

// OrderItem is an entity owned by exactly one Order.
type OrderItem struct {
	id       ItemID
	orderID  kernel.UUID
	product  *product.Product
	quantity int
	price    kernel.Money
	subTotal kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderItem creates an item for an order being placed. The sub-total is quantity × price.
func NewOrderItem(p *product.Product, quantity int, price kernel.Money) (*OrderItem, error) {
	item := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(item.setProduct(p), item.setQuantity(quantity)); err != nil {
		return nil, err
	}
	item.price = price
	item.subTotal = price.Multiply(quantity)

	return item, nil
}

// RestoreOrderItem rebuilds an item of a persisted order.
func RestoreOrderItem(id ItemID, orderID kernel.UUID, p *product.Product, quantity int, price kernel.Money) (*OrderItem, error) {
	item, err := NewOrderItem(p, quantity, price)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(item.setID(id), orderID.Validate()); err != nil {
		return nil, err
	}
	item.orderID = orderID

	return item, nil
}

func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i *OrderItem) ID() ItemID {
	return i.id
}

// OrderID returns the owning order id, zero until the order is initialized.
func (i *OrderItem) OrderID() kernel.UUID {
	return i.orderID
}

func (i *OrderItem) Product() *product.Product {
	return i.product
}

func (i *OrderItem) Quantity() int {
	return i.quantity
}

func (i *OrderItem) Price() kernel.Money {
	return i.price
}

func (i *OrderItem) SubTotal() kernel.Money {
	return i.subTotal
}

// IsPriceValid reports whether the item's unit price is positive, matches its product's
// price and the sub-total equals price × quantity.
func (i *OrderItem) IsPriceValid() bool {
	return i.price.IsGreaterThanZero() &&
		i.price.IsEqual(i.product.Price()) &&
		i.price.Multiply(i.quantity).IsEqual(i.subTotal)
}

func (i *OrderItem) initialize(orderID kernel.UUID, id ItemID) {
	i.orderID = orderID
	i.id = id
}

func (i *OrderItem) setID(id ItemID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemID", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *OrderItem) setProduct(p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i.product = p
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
