// Package ports defines the contracts between the ordering core and its infrastructure:
// repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists an initialized order together with its items and delivery address.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable part of an order: status and failure messages.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads the complete order and locks it until the surrounding transaction ends,
	// so concurrent transitions of the same order are applied one after another.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
