package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailySummaryJob        *DailySummaryJob
	activeOrdersRefreshJob *ActiveOrdersRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	reportHandler queries.GetOrdersForReportQueryHandler,
	activeOrdersHandler *queries.GetActiveOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailySummaryJob:        NewDailySummaryJob(reportHandler, logger),
		activeOrdersRefreshJob: NewActiveOrdersRefreshJob(activeOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dailySummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily summary job: %w", err)
	}

	if err := jm.activeOrdersRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dailySummaryJob.Stop()
		return fmt.Errorf("failed to start active orders refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailySummaryJob.Stop()
	jm.activeOrdersRefreshJob.Stop()
}
