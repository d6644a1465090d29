package http

import (
	"errors"
	"fmt"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
)

type Address struct {
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

type NewOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// NewOrder is the body of POST /api/v1/orders. Amounts are decimal strings.
type NewOrder struct {
	CustomerID   string         `json:"customer_id"`
	RestaurantID string         `json:"restaurant_id"`
	Price        string         `json:"price"`
	Address      Address        `json:"address"`
	Items        []NewOrderItem `json:"items"`
}

type OrderCreated struct {
	OrderID    string `json:"order_id"`
	TrackingID string `json:"tracking_id"`
}

type OrderStatus struct {
	TrackingID      string   `json:"tracking_id"`
	Status          string   `json:"status"`
	FailureMessages []string `json:"failure_messages"`
}

type Cancellation struct {
	FailureMessages []string `json:"failure_messages"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (b NewOrder) toCommand() (commands.CreateOrderCommand, error) {
	customerID, customerErr := kernel.UUIDFromString(b.CustomerID)
	restaurantID, restaurantErr := kernel.UUIDFromString(b.RestaurantID)
	price, priceErr := kernel.NewMoneyFromString(b.Price)
	address, addressErr := kernel.NewStreetAddress(b.Address.Street, b.Address.PostalCode, b.Address.City)
	if err := errors.Join(customerErr, restaurantErr, priceErr, addressErr); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]commands.CreateOrderItem, 0, len(b.Items))
	for i, it := range b.Items {
		productID, idErr := kernel.UUIDFromString(it.ProductID)
		itemPrice, itemPriceErr := kernel.NewMoneyFromString(it.Price)
		if err := errors.Join(idErr, itemPriceErr); err != nil {
			return commands.CreateOrderCommand{}, fmt.Errorf("item #%d: %w", i, err)
		}
		items = append(items, commands.CreateOrderItem{
			ProductID: productID,
			Quantity:  it.Quantity,
			Price:     itemPrice,
		})
	}

	return commands.NewCreateOrderCommand(customerID, restaurantID, address, price, items)
}
