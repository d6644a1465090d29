// Package services provides domain services that coordinate the Order aggregate with the
// other aggregates it depends on.
//
// The package includes:
//   - OrderDomainService: checks the restaurant, reconciles item prices against its menu,
//     drives the order lifecycle and raises the order events
package services
