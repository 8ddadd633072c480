// Package jobs provides scheduled background tasks for the delivery backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. CashoutReminderJob - Runs hourly to log riders holding delivered but
// unsettled parcels, together with their pending earning totals
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pendingCashoutTotalsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reminder job is read-only; query failures are logged and the next
// tick retries from scratch. Failed job starts report the error to the
// caller so startup can abort.
package jobs
