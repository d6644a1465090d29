package order

import "time"

// Event type names used when events leave the domain.
const (
	EventTypeCreated   = "OrderCreated"
	EventTypePaid      = "OrderPaid"
	EventTypeCancelled = "OrderCancelled"
)

// Event describes a committed order transition. Events reference the mutated order and
// carry the UTC time they were raised.
type Event interface {
	Type() string
	Order() *Order
	CreatedAt() time.Time
}

type event struct {
	order     *Order
	createdAt time.Time
}

func (e event) Order() *Order {
	return e.order
}

func (e event) CreatedAt() time.Time {
	return e.createdAt
}

// CreatedEvent is raised when an order passes validation and is initialized.
type CreatedEvent struct {
	event
}

// NewCreatedEvent creates the event; createdAt is normalized to UTC.
func NewCreatedEvent(o *Order, createdAt time.Time) *CreatedEvent {
	return &CreatedEvent{event{order: o, createdAt: createdAt.UTC()}}
}

func (*CreatedEvent) Type() string {
	return EventTypeCreated
}

// PaidEvent is raised when payment for a pending order completes.
type PaidEvent struct {
	event
}

// NewPaidEvent creates the event; createdAt is normalized to UTC.
func NewPaidEvent(o *Order, createdAt time.Time) *PaidEvent {
	return &PaidEvent{event{order: o, createdAt: createdAt.UTC()}}
}

func (*PaidEvent) Type() string {
	return EventTypePaid
}

// CancelledEvent is raised when a paid order starts cancelling and its payment must be
// rolled back.
type CancelledEvent struct {
	event
}

// NewCancelledEvent creates the event; createdAt is normalized to UTC.
func NewCancelledEvent(o *Order, createdAt time.Time) *CancelledEvent {
	return &CancelledEvent{event{order: o, createdAt: createdAt.UTC()}}
}

func (*CancelledEvent) Type() string {
	return EventTypeCancelled
}
