package services_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func menu(t *testing.T, active bool, products ...*product.Product) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), active, products)
	require.NoError(t, err)
	return r
}

func menuProduct(t *testing.T, id kernel.UUID, name, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, name, money(t, price))
	require.NoError(t, err)
	return p
}

type line struct {
	product  *product.Product
	quantity int
	price    string
}

func placeOrder(t *testing.T, restaurantID kernel.UUID, price string, lines ...line) *order.Order {
	t.Helper()
	address, err := kernel.NewStreetAddress("Rua Augusta 10", "1100-053", "Lisbon")
	require.NoError(t, err)

	items := make([]*order.OrderItem, 0, len(lines))
	for _, l := range lines {
		item, err := order.NewOrderItem(l.product, l.quantity, money(t, l.price))
		require.NoError(t, err)
		items = append(items, item)
	}

	o, err := order.New(order.Params{
		CustomerID:      kernel.NewUUID(),
		RestaurantID:    restaurantID,
		DeliveryAddress: address,
		Price:           money(t, price),
		Items:           items,
	})
	require.NoError(t, err)
	return o
}

func reference(t *testing.T, id kernel.UUID) *product.Product {
	t.Helper()
	p, err := product.NewProductReference(id)
	require.NoError(t, err)
	return p
}

func TestOrderDomainService_ValidateAndInitiateOrder(t *testing.T) {
	pizzaID, sodaID := kernel.NewUUID(), kernel.NewUUID()

	t.Run("should reconcile products, initialize the order and raise created event", func(t *testing.T) {
		// Given
		core, logs := observer.New(zapcore.InfoLevel)
		svc := services.NewOrderDomainService(zap.New(core))
		r := menu(t, true,
			menuProduct(t, pizzaID, "Pizza", "10.00"),
			menuProduct(t, sodaID, "Soda", "2.50"))
		o := placeOrder(t, r.ID(), "22.50",
			line{reference(t, pizzaID), 2, "10.00"},
			line{reference(t, sodaID), 1, "2.50"})
		before := time.Now().UTC()

		// When
		event, err := svc.ValidateAndInitiateOrder(o, r)

		// Then
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Same(t, o, event.Order())
		assert.Equal(t, order.EventTypeCreated, event.Type())
		assert.Equal(t, time.UTC, event.CreatedAt().Location())
		assert.False(t, event.CreatedAt().Before(before))

		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.HasID())
		assert.False(t, o.TrackingID().IsZero())
		items := o.Items()
		assert.Equal(t, "Pizza", items[0].Product().Name())
		assert.Equal(t, "Soda", items[1].Product().Name())
		assert.Equal(t, "2.50", items[1].Product().Price().String())

		require.Equal(t, 1, logs.FilterMessage("order initiated").Len())
		fields := logs.FilterMessage("order initiated").All()[0].ContextMap()
		assert.Equal(t, o.ID().String(), fields["order_id"])
	})

	t.Run("inactive restaurant fails before any mutation", func(t *testing.T) {
		// Given
		svc := services.NewOrderDomainService(nil)
		r := menu(t, false, menuProduct(t, pizzaID, "Pizza", "10.00"))
		ref := reference(t, pizzaID)
		o := placeOrder(t, r.ID(), "10.00", line{ref, 1, "10.00"})

		// When
		event, err := svc.ValidateAndInitiateOrder(o, r)

		// Then
		require.Error(t, err)
		assert.Nil(t, event)
		assert.True(t, errs.IsKind(err, errs.KindRestaurantNotActive))
		assert.Equal(t, "Restaurant with id "+r.ID().String()+" is currently not active!", err.Error())

		assert.False(t, o.HasID())
		assert.Equal(t, order.Unknown, o.Status())
		assert.Empty(t, ref.Name(), "product was not reconciled")
		assert.False(t, ref.Price().IsGreaterThanZero())
	})

	t.Run("unmatched product is left unchanged and validates on its own price", func(t *testing.T) {
		svc := services.NewOrderDomainService(nil)
		r := menu(t, true, menuProduct(t, pizzaID, "Pizza", "10.00"))
		offMenu := menuProduct(t, kernel.NewUUID(), "Special", "4.00")
		o := placeOrder(t, r.ID(), "4.00", line{offMenu, 1, "4.00"})

		_, err := svc.ValidateAndInitiateOrder(o, r)

		require.NoError(t, err)
		assert.Equal(t, "Special", offMenu.Name())
		assert.Equal(t, "4.00", offMenu.Price().String())
	})

	t.Run("unmatched product with mismatching item price fails validation", func(t *testing.T) {
		svc := services.NewOrderDomainService(nil)
		r := menu(t, true, menuProduct(t, pizzaID, "Pizza", "10.00"))
		offMenu := menuProduct(t, kernel.NewUUID(), "Special", "4.00")
		o := placeOrder(t, r.ID(), "5.00", line{offMenu, 1, "5.00"})

		_, err := svc.ValidateAndInitiateOrder(o, r)

		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindItemPriceInvalid))
		assert.Equal(t, order.Unknown, o.Status())
	})

	t.Run("stale client price is rejected after reconciliation", func(t *testing.T) {
		svc := services.NewOrderDomainService(nil)
		r := menu(t, true, menuProduct(t, pizzaID, "Pizza", "11.00"))
		stale := menuProduct(t, pizzaID, "Pizza", "10.00")
		o := placeOrder(t, r.ID(), "10.00", line{stale, 1, "10.00"})

		_, err := svc.ValidateAndInitiateOrder(o, r)

		require.Error(t, err)
		assert.Equal(t, "Order item price: 10.00 is not valid for product "+pizzaID.String(), err.Error())
		assert.Equal(t, "11.00", stale.Price().String(), "reconciliation happens before validation")
		assert.False(t, o.HasID())
	})

	t.Run("total mismatch fails without initializing", func(t *testing.T) {
		svc := services.NewOrderDomainService(nil)
		r := menu(t, true, menuProduct(t, pizzaID, "Pizza", "10.00"))
		o := placeOrder(t, r.ID(), "25.00", line{reference(t, pizzaID), 2, "10.00"})

		_, err := svc.ValidateAndInitiateOrder(o, r)

		require.Error(t, err)
		assert.Equal(t, "Total price: 25.00 is not equal to Order items total: 20.00!", err.Error())
		assert.False(t, o.HasID())
	})

	t.Run("already initialized order is rejected", func(t *testing.T) {
		svc := services.NewOrderDomainService(nil)
		r := menu(t, true, menuProduct(t, pizzaID, "Pizza", "10.00"))
		o := placeOrder(t, r.ID(), "10.00", line{reference(t, pizzaID), 1, "10.00"})
		_, err := svc.ValidateAndInitiateOrder(o, r)
		require.NoError(t, err)
		id := o.ID()

		_, err = svc.ValidateAndInitiateOrder(o, r)

		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindOrderNotInitialState))
		assert.True(t, o.ID().IsEqual(id))
	})

	t.Run("should reject unconstructed arguments", func(t *testing.T) {
		svc := services.NewOrderDomainService(nil)
		r := menu(t, true)

		_, err := svc.ValidateAndInitiateOrder(nil, r)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)

		o := placeOrder(t, r.ID(), "10.00")
		_, err = svc.ValidateAndInitiateOrder(o, nil)
		require.ErrorIs(t, err, restaurant.ErrRestaurantIsNotConstructed)
	})
}

func initiated(t *testing.T, svc *services.OrderDomainService) *order.Order {
	t.Helper()
	pizzaID := kernel.NewUUID()
	r := menu(t, true, menuProduct(t, pizzaID, "Pizza", "10.00"))
	o := placeOrder(t, r.ID(), "10.00", line{reference(t, pizzaID), 1, "10.00"})
	_, err := svc.ValidateAndInitiateOrder(o, r)
	require.NoError(t, err)
	return o
}

func TestOrderDomainService_Lifecycle(t *testing.T) {
	t.Run("pay then approve", func(t *testing.T) {
		svc := services.NewOrderDomainService(nil)
		o := initiated(t, svc)

		paid, err := svc.PayOrder(o)
		require.NoError(t, err)
		assert.Equal(t, order.EventTypePaid, paid.Type())
		assert.Same(t, o, paid.Order())
		assert.Equal(t, time.UTC, paid.CreatedAt().Location())

		require.NoError(t, svc.ApproveOrder(o))
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("second payment fails and keeps paid status", func(t *testing.T) {
		svc := services.NewOrderDomainService(nil)
		o := initiated(t, svc)
		_, err := svc.PayOrder(o)
		require.NoError(t, err)

		event, err := svc.PayOrder(o)

		require.Error(t, err)
		assert.Nil(t, event)
		assert.Equal(t, "Order is not in correct state for pay operation!", err.Error())
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("paid order is compensated through cancelling", func(t *testing.T) {
		svc := services.NewOrderDomainService(nil)
		o := initiated(t, svc)
		_, err := svc.PayOrder(o)
		require.NoError(t, err)

		cancelled, err := svc.CancelOrderPayment(o, []string{"restaurant rejected the order"})
		require.NoError(t, err)
		assert.Equal(t, order.EventTypeCancelled, cancelled.Type())
		assert.Equal(t, order.Cancelling, o.Status())

		require.NoError(t, svc.CancelOrder(o, []string{"", "payment rolled back"}))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, []string{"restaurant rejected the order", "payment rolled back"}, o.FailureMessages())
	})

	t.Run("pending order is cancelled directly", func(t *testing.T) {
		svc := services.NewOrderDomainService(nil)
		o := initiated(t, svc)

		require.NoError(t, svc.CancelOrder(o, []string{"payment failed"}))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("invalid transitions return domain errors", func(t *testing.T) {
		svc := services.NewOrderDomainService(nil)
		o := initiated(t, svc)

		require.ErrorIs(t, svc.ApproveOrder(o), errs.ErrDomainValidation)
		_, err := svc.CancelOrderPayment(o, nil)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
		assert.Equal(t, order.Pending, o.Status())

		_, err = svc.PayOrder(nil)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, svc.CancelOrder(nil, nil), order.ErrOrderIsNotConstructed)
	})
}
