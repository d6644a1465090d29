package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type createOrderFixture struct {
	cmd          commands.CreateOrderCommand
	restaurantID kernel.UUID
	productID    kernel.UUID
	uow          *MockUoW
	orders       *MockOrderRepository
	restaurants  *MockRestaurantRepository
	outbox       *MockOutboxRepository
	handler      commands.CreateOrderCommandHandler
}

func newCreateOrderFixture(t *testing.T, total string) *createOrderFixture {
	t.Helper()
	f := &createOrderFixture{
		restaurantID: kernel.NewUUID(),
		productID:    kernel.NewUUID(),
		uow:          new(MockUoW),
		orders:       new(MockOrderRepository),
		restaurants:  new(MockRestaurantRepository),
		outbox:       new(MockOutboxRepository),
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), f.restaurantID, deliveryAddress(t), money(t, total),
		[]commands.CreateOrderItem{{ProductID: f.productID, Quantity: 2, Price: money(t, "6.00")}})
	require.NoError(t, err)
	f.cmd = cmd

	f.handler = commands.NewCreateOrderCommandHandler(
		MockPlaceOrderUoWFactory{uow: f.uow}, services.NewOrderDomainService(nil))
	return f
}

func (f *createOrderFixture) assertExpectations(t *testing.T) {
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.restaurants.AssertExpectations(t)
	f.outbox.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	f := newCreateOrderFixture(t, "12.00")
	r := newRestaurant(t, f.restaurantID, true, f.productID, "6.00")

	var stored ports.OutboxMessage
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("RestaurantRepository").Return(f.restaurants).Once(),
		f.restaurants.On("Get", ctx, f.restaurantID).Return(r, nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Pending && o.HasID()
		})).Return(nil).Once(),
		f.uow.On("OutboxRepository").Return(f.outbox).Once(),
		f.outbox.On("Add", ctx, mock.AnythingOfType("ports.OutboxMessage")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(ports.OutboxMessage) }).
			Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// When
	result, err := f.handler.Handle(ctx, f.cmd)

	// Then
	require.NoError(t, err)
	require.NoError(t, result.OrderID.Validate())
	require.NoError(t, result.TrackingID.Validate())
	f.assertExpectations(t)

	assert.Equal(t, order.EventTypeCreated, stored.EventType)
	assert.True(t, stored.AggregateID.IsEqual(result.OrderID))
	payload := decodePayload(t, stored)
	assert.Equal(t, order.EventTypeCreated, payload.Type)
	assert.Equal(t, result.TrackingID.String(), payload.TrackingID)
	assert.Equal(t, "PENDING", payload.Status)
	assert.Equal(t, "12.00", payload.Price)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewCreateOrderCommandHandler(MockPlaceOrderUoWFactory{uow: new(MockUoW)}, services.NewOrderDomainService(nil))

	_, err := h.Handle(ctx, commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t, "12.00")
	f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	_, err := f.handler.Handle(ctx, f.cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin transaction")
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t, "12.00")
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("RestaurantRepository").Return(f.restaurants).Once(),
		f.restaurants.On("Get", ctx, f.restaurantID).
			Return(nil, errs.NewObjectNotFoundError("restaurant", f.restaurantID)).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, f.cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InactiveRestaurant(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t, "12.00")
	r := newRestaurant(t, f.restaurantID, false, f.productID, "6.00")
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("RestaurantRepository").Return(f.restaurants).Once(),
		f.restaurants.On("Get", ctx, f.restaurantID).Return(r, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, f.cmd)

	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindRestaurantNotActive))
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PriceMismatch(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t, "15.00")
	r := newRestaurant(t, f.restaurantID, true, f.productID, "6.00")
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("RestaurantRepository").Return(f.restaurants).Once(),
		f.restaurants.On("Get", ctx, f.restaurantID).Return(r, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, f.cmd)

	require.Error(t, err)
	assert.Equal(t, "Total price: 15.00 is not equal to Order items total: 12.00!", err.Error())
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_OutboxError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t, "12.00")
	r := newRestaurant(t, f.restaurantID, true, f.productID, "6.00")
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("RestaurantRepository").Return(f.restaurants).Once(),
		f.restaurants.On("Get", ctx, f.restaurantID).Return(r, nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("Add", ctx, mock.Anything).Return(nil).Once(),
		f.uow.On("OutboxRepository").Return(f.outbox).Once(),
		f.outbox.On("Add", ctx, mock.Anything).Return(errors.New("disk full")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, f.cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "store OrderCreated in outbox")
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t, "12.00")
	r := newRestaurant(t, f.restaurantID, true, f.productID, "6.00")
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("RestaurantRepository").Return(f.restaurants).Once(),
		f.restaurants.On("Get", ctx, f.restaurantID).Return(r, nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("Add", ctx, mock.Anything).Return(nil).Once(),
		f.uow.On("OutboxRepository").Return(f.outbox).Once(),
		f.outbox.On("Add", ctx, mock.Anything).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	result, err := f.handler.Handle(ctx, f.cmd)

	require.Error(t, err)
	assert.Equal(t, commands.CreateOrderResult{}, result)
	f.assertExpectations(t)
}
