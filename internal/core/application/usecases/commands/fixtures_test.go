package commands_test

import (
	"encoding/json"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func deliveryAddress(t *testing.T) kernel.StreetAddress {
	t.Helper()
	a, err := kernel.NewStreetAddress("Baker Street 221b", "NW1 6XE", "London")
	require.NoError(t, err)
	return a
}

func newRestaurant(t *testing.T, id kernel.UUID, active bool, productID kernel.UUID, price string) *restaurant.Restaurant {
	t.Helper()
	p, err := product.NewProduct(productID, "Fish and chips", money(t, price))
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant(id, active, []*product.Product{p})
	require.NoError(t, err)
	return r
}

func persistedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	id, trackingID := kernel.NewUUID(), kernel.NewUUID()
	o, err := order.New(order.Params{
		ID:              &id,
		CustomerID:      kernel.NewUUID(),
		RestaurantID:    kernel.NewUUID(),
		DeliveryAddress: deliveryAddress(t),
		Price:           money(t, "12.00"),
		TrackingID:      &trackingID,
		Status:          status,
	})
	require.NoError(t, err)
	return o
}

func decodePayload(t *testing.T, message ports.OutboxMessage) commands.OrderEventPayload {
	t.Helper()
	var payload commands.OrderEventPayload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))
	return payload
}
