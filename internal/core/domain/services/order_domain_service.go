package services

import (
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"

	"go.uber.org/zap"
)

// OrderDomainService sequences the checks that span the Order aggregate and the Restaurant
// snapshot, delegates to the order's own transitions and raises the resulting events.
//
// The service holds no per-order state and is safe for concurrent use on different orders.
// Calls on the same order must be serialized by the caller.
//
// Example usage:
//
//	svc := services.NewOrderDomainService(logger)
//	created, err := svc.ValidateAndInitiateOrder(o, r)
//	if errs.IsKind(err, errs.KindRestaurantNotActive) {
//	    // reject the request, nothing was changed
//	}
type OrderDomainService struct {
	logger *zap.Logger
}

// NewOrderDomainService creates the service. A nil logger disables logging.
func NewOrderDomainService(logger *zap.Logger) *OrderDomainService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderDomainService{
		logger: logger.Named("order_domain_service"),
	}
}

// ValidateAndInitiateOrder accepts a freshly built order for restaurant r.
//
// Steps, in order:
//   - an inactive restaurant fails before anything is touched
//   - every item whose product id matches a restaurant product takes that product's
//     name and price
//   - the order is validated and initialized
func (s *OrderDomainService) ValidateAndInitiateOrder(o *order.Order, r *restaurant.Restaurant) (*order.CreatedEvent, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if !r.IsActive() {
		return nil, errs.NewDomainError(errs.KindRestaurantNotActive, r.ID())
	}

	setOrderProductInformation(o, r)

	if err := o.ValidateOrder(); err != nil {
		return nil, err
	}
	if err := o.InitializeOrder(); err != nil {
		return nil, err
	}

	s.logger.Info("order initiated",
		zap.Stringer("order_id", o.ID()),
		zap.Stringer("tracking_id", o.TrackingID()),
		zap.Stringer("restaurant_id", r.ID()))

	return order.NewCreatedEvent(o, time.Now()), nil
}

// PayOrder marks a pending order as paid.
func (s *OrderDomainService) PayOrder(o *order.Order) (*order.PaidEvent, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.Pay(); err != nil {
		return nil, err
	}

	s.logger.Info("order paid", zap.Stringer("order_id", o.ID()))
	return order.NewPaidEvent(o, time.Now()), nil
}

// ApproveOrder approves a paid order. Approval raises no event.
func (s *OrderDomainService) ApproveOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.Approve(); err != nil {
		return err
	}

	s.logger.Info("order approved", zap.Stringer("order_id", o.ID()))
	return nil
}

// CancelOrderPayment starts cancelling a paid order. The returned event asks for the
// payment to be rolled back.
func (s *OrderDomainService) CancelOrderPayment(o *order.Order, failureMessages []string) (*order.CancelledEvent, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.InitCancel(failureMessages); err != nil {
		return nil, err
	}

	s.logger.Info("order payment cancelling",
		zap.Stringer("order_id", o.ID()),
		zap.Strings("failure_messages", failureMessages))
	return order.NewCancelledEvent(o, time.Now()), nil
}

// CancelOrder cancels a pending or cancelling order. Cancellation raises no event.
func (s *OrderDomainService) CancelOrder(o *order.Order, failureMessages []string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.Cancel(failureMessages); err != nil {
		return err
	}

	s.logger.Info("order cancelled",
		zap.Stringer("order_id", o.ID()),
		zap.Strings("failure_messages", failureMessages))
	return nil
}

func setOrderProductInformation(o *order.Order, r *restaurant.Restaurant) {
	products := r.Products()
	for _, item := range o.Items() {
		current := item.Product()
		for _, confirmed := range products {
			if current.IsEqual(confirmed) {
				current.UpdateWithConfirmedNameAndPrice(confirmed.Name(), confirmed.Price())
			}
		}
	}
}
