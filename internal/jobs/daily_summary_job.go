package jobs

import (
	"context"
	"errors"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DailySummaryJob computes the previous day's order report shortly after
// midnight and writes its headline statistics to the log.
type DailySummaryJob struct {
	handler queries.GetOrdersForReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailySummaryJob creates a new job for logging the daily order summary.
func NewDailySummaryJob(handler queries.GetOrdersForReportQueryHandler, logger *slog.Logger) *DailySummaryJob {
	return &DailySummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_summary_job"),
	}
}

// Start schedules the summary job five minutes past midnight every day, so
// late status changes from the closing shift still land in the report.
func (j *DailySummaryJob) Start() error {
	_, err := j.cron.AddFunc("0 5 0 * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily summary job started (running at 00:05)")
	return nil
}

// Stop stops the daily summary job.
func (j *DailySummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily summary job stopped")
}

func (j *DailySummaryJob) run(ctx context.Context) {
	day := kernel.Today().AddDays(-1)

	query, err := queries.NewGetOrdersForReportQuery(queries.OrderFilters{
		DateFrom: &day,
		DateTo:   &day,
	})
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily summary query is invalid", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, query)
	if err != nil {
		var limitErr *errs.RowLimitExceededError
		if errors.As(err, &limitErr) {
			j.logger.WarnContext(ctx, "Daily summary skipped, too many orders",
				"day", day.String(), "limit", limitErr.Limit, "actual", limitErr.Actual)
			return
		}
		j.logger.ErrorContext(ctx, "Daily summary job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily order summary",
		"day", day.String(),
		"orders", report.Stats.OrderCount,
		"total_value", report.Stats.TotalValue,
		"average_order_value", report.Stats.AverageOrderValue,
		"best_selling_item", report.Stats.BestSellingItem,
		"average_service_time", report.Stats.AverageServiceTime,
	)
}
