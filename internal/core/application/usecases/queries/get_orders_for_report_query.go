package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetOrdersForReportQueryIsNotConstructed = errors.New(
	"GetOrdersForReportQuery must be created via NewGetOrdersForReportQuery constructor",
)

// GetOrdersForReportQuery loads the complete filtered order set for report
// generation. Unlike the order search it is not paginated; a row cap in the
// handler protects against unbounded result sets instead.
type GetOrdersForReportQuery struct {
	raw     OrderFilters
	filters parsedFilters

	guard guard.ConstructorGuard
}

// NewGetOrdersForReportQuery creates a report data query.
// Rejects an unrecognized status filter; the time-of-day bounds are kept raw
// as well, because the report builder re-applies them itself.
func NewGetOrdersForReportQuery(filters OrderFilters) (GetOrdersForReportQuery, error) {
	parsed, err := parseFilters(filters)
	if err != nil {
		return GetOrdersForReportQuery{}, err
	}

	// The builder owns the time-of-day refilter; dropping the bounds here
	// keeps the store query from filtering the same thing twice.
	parsed.timeFrom = nil
	parsed.timeTo = nil

	return GetOrdersForReportQuery{
		raw:     filters,
		filters: parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersForReportQueryIsNotConstructed if validation fails.
func (q GetOrdersForReportQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForReportQueryIsNotConstructed)
}

// Filters returns the raw filter bounds the query was created with.
func (q GetOrdersForReportQuery) Filters() OrderFilters {
	return q.raw
}
