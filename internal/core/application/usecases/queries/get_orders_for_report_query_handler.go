package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultReportRowCap bounds how many orders a single report may cover.
// Reports are built fully in memory, so a runaway filter has to be rejected
// up front rather than loaded.
const DefaultReportRowCap = 10_000

// GetOrdersForReportQueryHandler loads the filtered order set and shapes it
// into a report via the domain report builder.
type GetOrdersForReportQueryHandler struct {
	db     *gorm.DB
	rowCap int64
}

// NewGetOrdersForReportQueryHandler creates a handler for report data queries.
// A non-positive rowCap falls back to DefaultReportRowCap.
func NewGetOrdersForReportQueryHandler(db *gorm.DB, rowCap int64) GetOrdersForReportQueryHandler {
	if rowCap <= 0 {
		rowCap = DefaultReportRowCap
	}
	return GetOrdersForReportQueryHandler{db: db, rowCap: rowCap}
}

// Handle counts the filtered set, rejects it when it exceeds the row cap,
// and otherwise loads every matching order and builds the report.
// Returns errs.RowLimitExceededError carrying the cap and the actual count;
// no partial report is ever produced.
func (h GetOrdersForReportQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForReportQuery,
) (services.Report, error) {
	if err := query.Validate(); err != nil {
		return services.Report{}, err
	}

	base := query.filters.apply(h.db.WithContext(ctx).Table("orders")).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return services.Report{}, err
	}
	if total > h.rowCap {
		return services.Report{}, errs.NewRowLimitExceededError("report", h.rowCap, total)
	}

	var rows []orderRow
	if err := base.Order("order_date ASC, order_number ASC").Find(&rows).Error; err != nil {
		return services.Report{}, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	itemsByOrder, err := loadItems(h.db.WithContext(ctx), ids)
	if err != nil {
		return services.Report{}, err
	}

	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		aggregate, restoreErr := rowsToAggregate(row, itemsByOrder[row.ID])
		if restoreErr != nil {
			return services.Report{}, restoreErr
		}
		orders = append(orders, aggregate)
	}

	filters := query.Filters()
	return services.NewReportBuilder().Build(orders, services.ReportPeriod{
		DateFrom: filters.DateFrom,
		DateTo:   filters.DateTo,
		TimeFrom: filters.TimeFrom,
		TimeTo:   filters.TimeTo,
	}), nil
}
