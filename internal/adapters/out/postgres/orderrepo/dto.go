// Package orderrepo persists Order aggregates with GORM. An order is stored in three
// tables: orders, order_addresses and order_items.
package orderrepo

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// A NULL failure_messages column means no list was ever recorded, which the
// aggregate distinguishes from an empty list.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	TrackingID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Price           decimal.Decimal `gorm:"type:numeric;not null"`
	Status          string          `gorm:"type:varchar(16);not null;index"`
	FailureMessages pq.StringArray  `gorm:"type:text[]"`
	Address         OrderAddressDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderAddressDTO is the delivery address of one order.
type OrderAddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Street     string    `gorm:"type:varchar(255);not null"`
	PostalCode string    `gorm:"type:varchar(32);not null"`
	City       string    `gorm:"type:varchar(255);not null"`
}

func (OrderAddressDTO) TableName() string {
	return "order_addresses"
}

// OrderItemDTO is keyed by (order id, item number).
type OrderItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement:false"`
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity  int             `gorm:"not null"`
	SubTotal  decimal.Decimal `gorm:"type:numeric;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

var errOrderIsNotInitialized = errors.New("order must be initialized before it is stored")

func fromDomain(o *order.Order) (OrderDTO, error) {
	if !o.HasID() {
		return OrderDTO{}, errOrderIsNotInitialized
	}

	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:        int64(item.ID()),
			OrderID:   orderID,
			ProductID: item.Product().ID().Bytes(),
			Price:     item.Price().Amount(),
			Quantity:  item.Quantity(),
			SubTotal:  item.SubTotal().Amount(),
		})
	}

	address := o.DeliveryAddress()
	return OrderDTO{
		ID:              orderID,
		CustomerID:      o.CustomerID().Bytes(),
		RestaurantID:    o.RestaurantID().Bytes(),
		TrackingID:      o.TrackingID().Bytes(),
		Price:           o.Price().Amount(),
		Status:          o.Status().String(),
		FailureMessages: failureMessagesToColumn(o.FailureMessages()),
		Address: OrderAddressDTO{
			ID:         address.ID().Bytes(),
			OrderID:    orderID,
			Street:     address.Street(),
			PostalCode: address.PostalCode(),
			City:       address.City(),
		},
		Items: items,
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	trackingID, err := kernel.UUIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.Address.ID[:])
	if err != nil {
		return nil, err
	}
	address, err := kernel.RestoreStreetAddress(addressID, dto.Address.Street, dto.Address.PostalCode, dto.Address.City)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(id, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.New(order.Params{
		ID:              &id,
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		DeliveryAddress: address,
		Price:           kernel.NewMoney(dto.Price),
		Items:           items,
		TrackingID:      &trackingID,
		Status:          status,
		FailureMessages: failureMessagesFromColumn(dto.FailureMessages),
	})
}

// itemToDomain restores an item. Its product is a reference: the name is not stored and
// the price is the one confirmed when the order was placed.
func itemToDomain(orderID kernel.UUID, dto OrderItemDTO) (*order.OrderItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	p, err := product.NewProductReference(productID)
	if err != nil {
		return nil, err
	}
	price := kernel.NewMoney(dto.Price)
	p.UpdateWithConfirmedNameAndPrice("", price)

	return order.RestoreOrderItem(order.ItemID(dto.ID), orderID, p, dto.Quantity, price)
}

func failureMessagesToColumn(messages []string) pq.StringArray {
	if messages == nil {
		return nil
	}
	return pq.StringArray(messages)
}

func failureMessagesFromColumn(column pq.StringArray) []string {
	if column == nil {
		return nil
	}
	return []string(column)
}
