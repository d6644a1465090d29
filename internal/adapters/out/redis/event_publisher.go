// Package redis publishes order events from the outbox to a Redis pub/sub channel.
package redis

import (
	"context"
	"time"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/metrics"

	"github.com/go-faster/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Client is the part of *goredis.Client the publisher needs.
type Client interface {
	Publish(ctx context.Context, channel string, message any) *goredis.IntCmd
}

// BreakerSettings tunes the circuit breaker around the broker.
type BreakerSettings struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval clears the failure counts while closed.
	Interval time.Duration
	// Timeout is how long the breaker stays open.
	Timeout time.Duration
	// ConsecutiveFailures that trip the breaker.
	ConsecutiveFailures uint32
}

// DefaultBreakerSettings trips after five failures in a row and probes again after 30s.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// EventPublisher implements ports.EventPublisher. Every message goes to one channel; the
// payload carries the event type. Publishing stops for a while once the breaker opens.
type EventPublisher struct {
	client  Client
	channel string
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

const breakerName = "redis_event_publisher"

func NewEventPublisher(client Client, channel string, settings BreakerSettings, logger *zap.Logger) (*EventPublisher, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if channel == "" {
		return nil, errors.New("redis channel is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("redis_event_publisher")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			logger.Warn("circuit breaker state changed",
				zap.String("circuit", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(stateValue(gobreaker.StateClosed))

	return &EventPublisher{
		client:  client,
		channel: channel,
		breaker: breaker,
		logger:  logger,
	}, nil
}

// Publish sends the message payload. It fails fast with gobreaker.ErrOpenState while the
// breaker is open.
func (p *EventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	_, err := p.breaker.Execute(func() (any, error) {
		return nil, p.client.Publish(ctx, p.channel, message.Payload).Err()
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s %s", message.EventType, message.ID)
	}

	p.logger.Debug("event published",
		zap.String("event_type", message.EventType),
		zap.Stringer("message_id", message.ID),
		zap.Stringer("order_id", message.AggregateID),
	)
	return nil
}

// State reports the breaker state, for health checks.
func (p *EventPublisher) State() gobreaker.State {
	return p.breaker.State()
}

// stateValue maps breaker states to the gauge: 0 closed, 1 open, 2 half-open.
func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
