// Package jobs provides scheduled background tasks for the restaurant system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order processing.
//
// # Available Jobs
//
// 1. DailySummaryJob - Runs shortly after midnight to compute and log the previous day's order report
// 2. ActiveOrdersRefreshJob - Runs every two seconds to keep the on-screen orders snapshot warm
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reportHandler, activeOrdersHandler, logger)
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
// - Summary job logs failures and retries on the next schedule; a report over the row cap is logged as a warning
// - Refresh job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
