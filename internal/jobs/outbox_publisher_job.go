package jobs

import (
	"context"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/go-faster/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultOutboxSchedule runs the publisher every two seconds.
const DefaultOutboxSchedule = "*/2 * * * * *"

// OutboxPublisher is the use case the job drives.
type OutboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error)
}

// OutboxPublisherJob periodically sends stored order events to the broker. A run that is
// still going when the next tick fires makes that tick skip.
type OutboxPublisherJob struct {
	handler  OutboxPublisher
	cmd      commands.PublishOutboxCommand
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewOutboxPublisherJob creates the job. An empty schedule means DefaultOutboxSchedule.
func NewOutboxPublisherJob(
	handler OutboxPublisher,
	schedule string,
	batchSize int,
	logger *zap.Logger,
) (*OutboxPublisherJob, error) {
	cmd, err := commands.NewPublishOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultOutboxSchedule
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &OutboxPublisherJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.Named("outbox_publisher_job"),
	}, nil
}

// Start registers the schedule and starts the scheduler.
func (j *OutboxPublisherJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return errors.Wrapf(err, "schedule %q", j.schedule)
	}

	j.cron.Start()
	j.logger.Info("outbox publisher job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running publish to finish.
func (j *OutboxPublisherJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("outbox publisher job stopped")
}

// RunOnce publishes one batch.
func (j *OutboxPublisherJob) RunOnce(ctx context.Context) (int, error) {
	return j.handler.Handle(ctx, j.cmd)
}

func (j *OutboxPublisherJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	published, err := j.RunOnce(ctx)
	if err != nil {
		j.logger.Error("outbox publish failed", zap.Int("published", published), zap.Error(err))
		return
	}
	if published > 0 {
		j.logger.Debug("outbox batch published", zap.Int("published", published))
	}
}
