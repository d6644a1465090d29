// Package order provides the Order aggregate of the ordering system: its items, its
// lifecycle state machine and the domain events raised by its transitions.
//
// The package includes:
//   - Order: The aggregate root that owns identity, items, price, delivery address,
//     status and failure messages
//   - OrderItem: An entity owned by one order, referencing a product
//   - Status: The state machine Pending -> Paid -> Approved, with the cancellation paths
//     Paid -> Cancelling -> Cancelled and Pending -> Cancelled
//   - CreatedEvent, PaidEvent, CancelledEvent: snapshots handed to event publishing
//
// Key business rules:
//   - An order is initialized once, after ValidateOrder succeeds
//   - The declared price is positive and equals the sum of item sub-totals exactly
//   - Each item price equals the price of its product
//   - Every rejected operation returns an *errs.DomainError and leaves the order unchanged
package order
