// Package restaurant provides the Restaurant snapshot the ordering domain validates orders
// against: whether the restaurant is accepting orders and its current menu.
package restaurant

import (
	"errors"
	"fmt"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed is returned for Restaurant values not built by NewRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is a read-only snapshot owned by the restaurant service. Ordering never
// changes it; it only reads the active flag and the authoritative product list.
type Restaurant struct {
	id       kernel.UUID
	active   bool
	products []*product.Product

	guard guard.ConstructorGuard
}

// NewRestaurant creates a snapshot. Every product must be a valid Product.
func NewRestaurant(id kernel.UUID, active bool, products []*product.Product) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("products", fmt.Errorf("product #%d: %w", i, err))
		}
	}

	return &Restaurant{
		id:       id,
		active:   active,
		products: slices.Clone(products),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// IsActive reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsActive() bool {
	return r.active
}

// Products returns the menu. The slice is a copy; the products themselves are shared.
func (r *Restaurant) Products() []*product.Product {
	return slices.Clone(r.products)
}
