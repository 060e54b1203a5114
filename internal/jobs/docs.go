// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CartCleanupJob - Periodically drops carts that have been idle longer
// than the configured expiry, so abandoned sessions do not pile up in the
// cart store.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cartStore, cartExpiry, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job runs once a minute. Stores whose backend expires entries
// natively (Redis TTL) report zero removals and the sweep is a no-op.
package jobs
