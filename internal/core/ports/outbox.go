package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized order event stored in the same transaction as the order
// change that raised it and published afterwards.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository stores events until they have been handed to the EventPublisher.
type OutboxRepository interface {
	Add(ctx context.Context, message OutboxMessage) error

	// GetUnpublished returns up to limit messages in occurrence order. Rows returned are
	// locked for the current transaction and skipped by concurrent readers.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error
}

// EventPublisher delivers outbox messages to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
