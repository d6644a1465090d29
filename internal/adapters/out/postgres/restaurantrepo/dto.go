// Package restaurantrepo reads the restaurant snapshots the ordering service validates
// orders against. The tables are filled from restaurant service data.
package restaurantrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RestaurantDTO struct {
	ID       uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Name     string                 `gorm:"type:varchar(255);not null"`
	Active   bool                   `gorm:"not null"`
	Products []RestaurantProductDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// RestaurantProductDTO is one menu entry. The same product may be offered by several
// restaurants at different prices.
type RestaurantProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric;not null"`
	Available    bool            `gorm:"not null"`
}

func (RestaurantProductDTO) TableName() string {
	return "restaurant_products"
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dto.Products))
	for _, productDTO := range dto.Products {
		productID, idErr := kernel.UUIDFromBytes(productDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		p, productErr := product.NewProduct(productID, productDTO.Name, kernel.NewMoney(productDTO.Price))
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, p)
	}

	return restaurant.NewRestaurant(id, dto.Active, products)
}
