// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxPublisherJob - sends order events stored in the outbox to the broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	publisherJob, err := jobs.NewOutboxPublisherJob(publishHandler, cfg.OutboxSchedule, cfg.OutboxBatchSize, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(publisherJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds. The default "*/2 * * * * *"
// publishes every two seconds. Overlapping runs are skipped.
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Messages that were not published
// stay in the outbox, so delivery is at least once.
package jobs
