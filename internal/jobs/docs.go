// Package jobs provides scheduled background tasks for the pizza service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second and publishes committed order events
// from the outbox table to the configured broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(logger, jobs.NewOutboxRelayJob(relayHandler, logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay uses the cron expression "* * * * * *" (every second). A run that
// is still in progress when the next tick fires causes that tick to be
// skipped, so runs never overlap within one process.
//
// # Error Handling
//
// - Relay failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
