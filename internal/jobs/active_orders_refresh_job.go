package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ActiveOrdersRefreshJob keeps the on-screen orders snapshot warm. Running at
// the snapshot's expiry cadence means the kitchen displays always read a
// precomputed view instead of paying the recompute on a request.
type ActiveOrdersRefreshJob struct {
	handler *queries.GetActiveOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewActiveOrdersRefreshJob creates a new job for refreshing the active orders snapshot.
func NewActiveOrdersRefreshJob(handler *queries.GetActiveOrdersQueryHandler, logger *slog.Logger) *ActiveOrdersRefreshJob {
	return &ActiveOrdersRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "active_orders_refresh_job"),
	}
}

// Start begins the refresh job, running every two seconds.
func (j *ActiveOrdersRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/2 * * * * *", func() {
		ctx := context.Background()

		if _, err := j.handler.Handle(ctx, queries.NewGetActiveOrdersQuery()); err != nil {
			j.logger.ErrorContext(ctx, "Active orders refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Active orders refresh job started (running every two seconds)")
	return nil
}

// Stop stops the refresh job.
func (j *ActiveOrdersRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Active orders refresh job stopped")
}
