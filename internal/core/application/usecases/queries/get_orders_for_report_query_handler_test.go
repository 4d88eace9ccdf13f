package queries_test

import (
	"context"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

func (suite *QueryHandlersTestSuite) TestReport_BuildsRowsAndStats() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	first := base.Add(15 * time.Minute)
	second := base.Add(20 * time.Minute)
	suite.seedOrder(1, base, order.DineIn, order.Completed, &first, burger(2), fries(1))
	suite.seedOrder(2, base, order.Takeout, order.Completed, &second, fries(1))

	handler := queries.NewGetOrdersForReportQueryHandler(suite.db, 0)
	query, err := queries.NewGetOrdersForReportQuery(queries.OrderFilters{})
	suite.Require().NoError(err)

	report, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 2)
	suite.Equal(int64(1), report.Rows[0].Number)
	suite.Equal("58.50", report.Rows[0].Total)
	suite.Equal("15 min 00 s", report.Rows[0].ServiceTime)
	suite.Equal(2, report.Stats.OrderCount)
	suite.Equal("17 min 30 s", report.Stats.AverageServiceTime)
	suite.Equal("67.00", report.Stats.TotalValue)
}

func (suite *QueryHandlersTestSuite) TestReport_RowCapExceeded() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		suite.seedOrder(int64(i+1), base.Add(time.Duration(i)*time.Minute), order.DineIn, order.Pending, nil, burger(1))
	}

	handler := queries.NewGetOrdersForReportQueryHandler(suite.db, 3)
	query, err := queries.NewGetOrdersForReportQuery(queries.OrderFilters{})
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrRowLimitExceeded)

	var limitErr *errs.RowLimitExceededError
	suite.Require().ErrorAs(err, &limitErr)
	suite.Equal(int64(3), limitErr.Limit)
	suite.Equal(int64(4), limitErr.Actual)
}

func (suite *QueryHandlersTestSuite) TestReport_TimeOfDayRefilter() {
	morning := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 15, 19, 0, 0, 0, time.UTC)
	suite.seedOrder(1, morning, order.DineIn, order.Pending, nil, burger(1))
	suite.seedOrder(1, evening, order.DineIn, order.Pending, nil, fries(1))

	handler := queries.NewGetOrdersForReportQueryHandler(suite.db, 0)
	query, err := queries.NewGetOrdersForReportQuery(queries.OrderFilters{
		TimeFrom: "09:00",
		TimeTo:   "11:00",
	})
	suite.Require().NoError(err)

	report, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.Equal(1, report.Stats.OrderCount)
	suite.Equal("09:00:00 - 11:00:00", report.TimeRangeLabel)
}
