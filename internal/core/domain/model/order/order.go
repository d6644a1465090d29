package order

import (
	"errors"
	"fmt"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through New.
var ErrOrderIsNotConstructed = errors.New("Order must be created via New constructor")

// Params carries every field an Order can be built from. A new order being placed leaves
// ID, TrackingID, Status and FailureMessages empty; an order restored from storage sets them.
type Params struct {
	ID              *kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	DeliveryAddress kernel.StreetAddress
	Price           kernel.Money
	Items           []*OrderItem
	TrackingID      *kernel.UUID
	Status          Status
	FailureMessages []string
}

// Order is the aggregate root of the ordering domain. It owns its items and guards the
// invariants that tie the declared price to them, and the status state machine.
//
// Order follows these invariants:
//   - It is initialized exactly once: identity, tracking id and Pending status are
//     assigned together
//   - Its price is positive and equals the sum of its item sub-totals
//   - Every item price matches the price of the product it references
//   - Status changes only along the transitions defined by Status
//
// An Order is not safe for concurrent mutation; callers serialize writes per order.
type Order struct {
	root kernel.AggregateRoot[kernel.UUID]

	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress kernel.StreetAddress
	price           kernel.Money
	items           []*OrderItem
	trackingID      kernel.UUID
	status          Status
	failureMessages []string

	guard guard.ConstructorGuard
}

// New builds an Order from p after checking the structural validity of every field.
// Business validation happens later in ValidateOrder.
//
// Example:
//
//	item, _ := order.NewOrderItem(productRef, 2, unitPrice)
//	o, err := order.New(order.Params{
//	    CustomerID:      customerID,
//	    RestaurantID:    restaurantID,
//	    DeliveryAddress: address,
//	    Price:           total,
//	    Items:           []*order.OrderItem{item},
//	})
func New(p Params) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCustomerID(p.CustomerID),
		o.setRestaurantID(p.RestaurantID),
		o.setDeliveryAddress(p.DeliveryAddress),
		o.setItems(p.Items),
		o.setTrackingID(p.TrackingID),
		o.setStatus(p.Status),
	); err != nil {
		return nil, err
	}
	o.price = p.Price
	o.failureMessages = slices.Clone(p.FailureMessages)

	return o, nil
}

// Validate ensures the Order instance was properly constructed through New.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity. Orders without identity are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.HasID() && other.HasID() && o.ID().IsEqual(other.ID())
}

// ID returns the order identity, zero before initialization.
func (o *Order) ID() kernel.UUID {
	id, _ := o.root.ID()
	return id
}

// HasID reports whether the order has been assigned an identity.
func (o *Order) HasID() bool {
	return o.root.HasID()
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

func (o *Order) DeliveryAddress() kernel.StreetAddress {
	return o.deliveryAddress
}

func (o *Order) Price() kernel.Money {
	return o.price
}

// Items returns the order items in list order. The slice is a copy; the items are shared.
func (o *Order) Items() []*OrderItem {
	return slices.Clone(o.items)
}

// TrackingID returns the externally shareable id, zero before initialization.
func (o *Order) TrackingID() kernel.UUID {
	return o.trackingID
}

func (o *Order) Status() Status {
	return o.status
}

// FailureMessages returns a copy of the accumulated cancellation reasons. A nil result
// means no list has ever been recorded.
func (o *Order) FailureMessages() []string {
	return slices.Clone(o.failureMessages)
}

// InitializeOrder assigns a fresh identity, a fresh tracking id, the Pending status and
// item ids 1..N in list order. It fails when the order already has an identity or status.
func (o *Order) InitializeOrder() error {
	if err := o.validateInitialOrder(); err != nil {
		return err
	}

	id := kernel.NewUUID()
	if err := o.root.SetID(id); err != nil {
		return err
	}
	o.trackingID = kernel.NewUUID()
	o.status = Pending
	o.initializeOrderItems(id)
	return nil
}

// ValidateOrder runs, in order, the initial state check, the total price check and the
// items price check, and returns the first violation.
func (o *Order) ValidateOrder() error {
	if err := o.validateInitialOrder(); err != nil {
		return err
	}
	if err := o.validateTotalPrice(); err != nil {
		return err
	}
	return o.validateItemsPrice()
}

// Pay moves a Pending order to Paid.
func (o *Order) Pay() error {
	next, err := o.status.Pay()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Approve moves a Paid order to Approved.
func (o *Order) Approve() error {
	next, err := o.status.Approve()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// InitCancel moves a Paid order to Cancelling and records why.
func (o *Order) InitCancel(failureMessages []string) error {
	next, err := o.status.InitCancel()
	if err != nil {
		return err
	}
	o.status = next
	o.updateFailureMessages(failureMessages)
	return nil
}

// Cancel moves a Cancelling or Pending order to Cancelled and records why.
func (o *Order) Cancel(failureMessages []string) error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	o.updateFailureMessages(failureMessages)
	return nil
}

// updateFailureMessages appends the non-empty incoming messages to an existing list. When
// no list exists yet the incoming list is taken as is, empty strings included.
func (o *Order) updateFailureMessages(failureMessages []string) {
	if o.failureMessages != nil && failureMessages != nil {
		for _, message := range failureMessages {
			if message != "" {
				o.failureMessages = append(o.failureMessages, message)
			}
		}
	}
	if o.failureMessages == nil {
		o.failureMessages = slices.Clone(failureMessages)
	}
}

func (o *Order) validateInitialOrder() error {
	if o.status != Unknown || o.HasID() {
		return errs.NewDomainError(errs.KindOrderNotInitialState)
	}
	return nil
}

func (o *Order) validateTotalPrice() error {
	if !o.price.IsGreaterThanZero() {
		return errs.NewDomainError(errs.KindPriceNotPositive)
	}
	return nil
}

func (o *Order) validateItemsPrice() error {
	itemsTotal := kernel.Zero
	for _, item := range o.items {
		if !item.IsPriceValid() {
			return errs.NewDomainError(errs.KindItemPriceInvalid, item.Price(), item.Product().ID())
		}
		itemsTotal = itemsTotal.Add(item.SubTotal())
	}

	if !o.price.IsEqual(itemsTotal) {
		return errs.NewDomainError(errs.KindTotalPriceMismatch, o.price, itemsTotal)
	}
	return nil
}

func (o *Order) initializeOrderItems(orderID kernel.UUID) {
	for i, item := range o.items {
		item.initialize(orderID, ItemID(i+1))
	}
}

func (o *Order) setID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	return o.root.SetID(*id)
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address kernel.StreetAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item #%d: %w", i, err))
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setTrackingID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("trackingID", err)
	}
	o.trackingID = *id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
