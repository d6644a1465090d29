// Package kernel provides the shared primitives of the ordering domain model.
//
// The package includes:
//   - UUID: identifier value object used for orders, tracking numbers, customers,
//     restaurants and products
//   - Money: immutable decimal amount with exact equality
//   - StreetAddress: validated delivery address value object
//   - AggregateRoot: a write-once identity slot embedded by aggregates
//
// Value objects are immutable once constructed and safe for concurrent reads.
package kernel
