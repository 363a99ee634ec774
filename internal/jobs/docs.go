// Package jobs provides scheduled background tasks for the food order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// (with a seconds field) for the periodic maintenance the service needs.
//
// # Available Jobs
//
// 1. LoyaltyExpiryJob - Runs hourly to forfeit earned coins whose expiry has passed
// 2. CapacityReconciliationJob - Runs every minute to recompute restaurant order counters
//
// # Usage
//
// Jobs are managed through JobManager, which starts them in the order given and
// stops them in reverse:
//
//	jobManager := jobs.NewJobManager(logger,
//		jobs.NewCapacityReconciliationJob(reconcileHandler, logger),
//		jobs.NewLoyaltyExpiryJob(expireHandler, 500, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs never stop on failure: errors are logged and the next run retries.
// Entries already expired and counters already correct are left untouched, so
// a rerun after a partial failure is safe.
package jobs
