package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
)

// RestaurantRepository reads restaurant snapshots maintained by the restaurant service.
type RestaurantRepository interface {
	// Get returns the restaurant with the products it currently offers.
	// Returns errs.ErrObjectNotFound when the restaurant is unknown.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
