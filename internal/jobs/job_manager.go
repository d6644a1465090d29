package jobs

import (
	"github.com/go-faster/errors"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxPublisherJob *OutboxPublisherJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(outboxPublisherJob *OutboxPublisherJob) *JobManager {
	return &JobManager{
		outboxPublisherJob: outboxPublisherJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxPublisherJob.Start(); err != nil {
		return errors.Wrap(err, "start outbox publisher job")
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxPublisherJob.Stop()
}
