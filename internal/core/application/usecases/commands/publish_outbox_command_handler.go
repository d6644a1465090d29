package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/metrics"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// PublishOutboxCommandHandler drains the outbox into the EventPublisher.
//
// Messages are published in occurrence order. The first failure stops the batch: the
// messages published before it are marked and committed, the failed one stays pending
// and is retried by the next run. Delivery is therefore at least once.
type PublishOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

func NewPublishOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) PublishOutboxCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return PublishOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.Named("outbox"),
	}
}

// Handle publishes one batch and returns how many messages were marked published.
func (h *PublishOutboxCommandHandler) Handle(ctx context.Context, cmd PublishOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, errors.Wrap(err, "begin transaction")
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	messages, err := outbox.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, errors.Wrap(err, "get unpublished messages")
	}
	if len(messages) == 0 {
		return 0, nil
	}

	var (
		published  = make([]kernel.UUID, 0, len(messages))
		eventTypes = make([]string, 0, len(messages))
		publishErr error
	)
	for _, message := range messages {
		if err = h.publisher.Publish(ctx, message); err != nil {
			metrics.OutboxPublishFailuresTotal.WithLabelValues(message.EventType).Inc()
			h.logger.Warn("publish outbox message",
				zap.Stringer("message_id", message.ID),
				zap.String("event_type", message.EventType),
				zap.Error(err))
			publishErr = errors.Wrapf(err, "publish message %s", message.ID)
			break
		}
		published = append(published, message.ID)
		eventTypes = append(eventTypes, message.EventType)
	}

	if len(published) > 0 {
		if err = outbox.MarkPublished(ctx, published, time.Now().UTC()); err != nil {
			return 0, errors.Wrap(err, "mark messages published")
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, errors.Wrap(err, "commit transaction")
	}

	for _, eventType := range eventTypes {
		metrics.OutboxPublishedTotal.WithLabelValues(eventType).Inc()
	}
	h.logger.Debug("outbox batch published", zap.Int("published", len(published)))

	return len(published), publishErr
}
