package commands

import (
	"context"
	"encoding/json"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/go-faster/errors"
)

// OrderEventPayload is the JSON document published for every order event.
type OrderEventPayload struct {
	Type            string    `json:"type"`
	OrderID         string    `json:"order_id"`
	TrackingID      string    `json:"tracking_id"`
	CustomerID      string    `json:"customer_id"`
	RestaurantID    string    `json:"restaurant_id"`
	Status          string    `json:"status"`
	Price           string    `json:"price"`
	FailureMessages []string  `json:"failure_messages"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewOrderEventMessage snapshots the event's order into an outbox message.
func NewOrderEventMessage(event order.Event) (ports.OutboxMessage, error) {
	o := event.Order()
	payload, err := json.Marshal(OrderEventPayload{
		Type:            event.Type(),
		OrderID:         o.ID().String(),
		TrackingID:      o.TrackingID().String(),
		CustomerID:      o.CustomerID().String(),
		RestaurantID:    o.RestaurantID().String(),
		Status:          o.Status().String(),
		Price:           o.Price().String(),
		FailureMessages: o.FailureMessages(),
		CreatedAt:       event.CreatedAt(),
	})
	if err != nil {
		return ports.OutboxMessage{}, errors.Wrapf(err, "marshal %s", event.Type())
	}

	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		EventType:   event.Type(),
		AggregateID: o.ID(),
		Payload:     payload,
		OccurredAt:  event.CreatedAt(),
	}, nil
}

func addToOutbox(ctx context.Context, uow OutboxRepoFactory, event order.Event) error {
	message, err := NewOrderEventMessage(event)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return errors.Wrapf(err, "store %s in outbox", event.Type())
	}
	return nil
}
