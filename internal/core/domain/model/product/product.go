// Package product provides the Product entity shared by restaurant menus and order items.
//
// A Product referenced by an order item may carry stale or missing name and price data
// until it is reconciled against the restaurant's authoritative menu.
package product

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned for Product values not built by a constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or NewProductReference constructor")

// Product is identity-compared by its product id.
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewProduct creates a fully described menu product.
func NewProduct(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setName(name)); err != nil {
		return nil, err
	}
	p.price = price

	return p, nil
}

// NewProductReference creates a product known only by id, as sent by a client placing
// an order. Name and price are filled in by UpdateWithConfirmedNameAndPrice.
func NewProductReference(id kernel.UUID) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setID(id); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares products by id.
func (p *Product) IsEqual(other *Product) bool {
	return p != nil && other != nil && p.id.IsEqual(other.id)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() kernel.Money {
	return p.price
}

// UpdateWithConfirmedNameAndPrice overwrites the product data with the restaurant's
// current values.
func (p *Product) UpdateWithConfirmedNameAndPrice(name string, price kernel.Money) {
	p.name = name
	p.price = price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
