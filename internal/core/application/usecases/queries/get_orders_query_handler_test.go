package queries_test

import (
	"context"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

func (suite *QueryHandlersTestSuite) TestGetOrders_EmptyDatabase() {
	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(queries.OrderFilters{}, 0, 10)
	suite.Require().NoError(err)

	page, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(page.Content)
	suite.Zero(page.TotalElements)
	suite.Zero(page.TotalPages)
}

func (suite *QueryHandlersTestSuite) TestGetOrders_DefaultSortIsNewestFirst() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	suite.seedOrder(1, base, order.DineIn, order.Pending, nil, burger(1))
	suite.seedOrder(2, base.Add(time.Hour), order.DineIn, order.Pending, nil, burger(1))
	suite.seedOrder(1, base.AddDate(0, 0, 1), order.DineIn, order.Pending, nil, burger(1))

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(queries.OrderFilters{}, 0, 10)
	suite.Require().NoError(err)

	page, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 3)
	// Newest date first; within a date the higher number first.
	suite.Equal(kernel.DayOf(base.AddDate(0, 0, 1)), page.Content[0].OrderDate)
	suite.Equal(int64(2), page.Content[1].Number)
	suite.Equal(int64(1), page.Content[2].Number)
}

func (suite *QueryHandlersTestSuite) TestGetOrders_FiltersByStatusAndType() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	completedAt := base.Add(20 * time.Minute)
	suite.seedOrder(1, base, order.DineIn, order.Pending, nil, burger(1))
	suite.seedOrder(2, base, order.Takeout, order.Completed, &completedAt, fries(2))
	suite.seedOrder(3, base, order.Takeout, order.Pending, nil, fries(1))

	handler := queries.NewGetOrdersQueryHandler(suite.db)

	query, err := queries.NewGetOrdersQuery(queries.OrderFilters{Status: "Zrealizowane"}, 0, 10)
	suite.Require().NoError(err)
	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 1)
	suite.Equal(int64(2), page.Content[0].Number)
	suite.Equal("Completed", page.Content[0].Status)

	query, err = queries.NewGetOrdersQuery(queries.OrderFilters{OrderType: "na wynos"}, 0, 10)
	suite.Require().NoError(err)
	page, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(page.Content, 2)
}

func (suite *QueryHandlersTestSuite) TestGetOrders_FiltersByDateAndTimeOfDay() {
	march14 := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	march15 := time.Date(2026, 3, 15, 19, 0, 0, 0, time.UTC)
	march16 := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	suite.seedOrder(1, march14, order.DineIn, order.Pending, nil, burger(1))
	suite.seedOrder(1, march15, order.DineIn, order.Pending, nil, burger(1))
	suite.seedOrder(1, march16, order.DineIn, order.Pending, nil, burger(1))

	handler := queries.NewGetOrdersQueryHandler(suite.db)

	from, err := kernel.DayFromString("2026-03-15")
	suite.Require().NoError(err)
	query, err := queries.NewGetOrdersQuery(queries.OrderFilters{DateFrom: &from}, 0, 10)
	suite.Require().NoError(err)
	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(page.Content, 2)

	// The 09:00-11:00 window matches that time of day on every date.
	query, err = queries.NewGetOrdersQuery(queries.OrderFilters{TimeFrom: "09:00", TimeTo: "11:00"}, 0, 10)
	suite.Require().NoError(err)
	page, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 2)
	for _, response := range page.Content {
		hour := response.CreatedAt.UTC().Hour()
		suite.LessOrEqual(hour, 10)
	}
}

func (suite *QueryHandlersTestSuite) TestGetOrders_IncludesItemsAndTotal() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	suite.seedOrder(1, base, order.Takeout, order.Pending, nil, burger(2), fries(1))

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(queries.OrderFilters{}, 0, 10)
	suite.Require().NoError(err)

	page, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 1)
	response := page.Content[0]
	suite.Len(response.Items, 2)
	suite.True(decimal.RequireFromString("58.50").Equal(response.Total))
	suite.Equal("takeout", response.OrderType)
}

func (suite *QueryHandlersTestSuite) TestGetOrders_PaginationRoundTrip() {
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		suite.seedOrder(int64(i+1), base.Add(time.Duration(i)*time.Minute), order.DineIn, order.Pending, nil, burger(1))
	}

	handler := queries.NewGetOrdersQueryHandler(suite.db)

	full, err := queries.NewGetOrdersQuery(queries.OrderFilters{}, 0, 100)
	suite.Require().NoError(err)
	fullPage, err := handler.Handle(context.Background(), full)
	suite.Require().NoError(err)
	suite.Require().Len(fullPage.Content, 7)

	// Concatenating all pages at size 3 must reproduce the full result
	// in order, with no duplicates or omissions.
	var paged []queries.OrderResponse
	for pageIndex := 0; ; pageIndex++ {
		query, queryErr := queries.NewGetOrdersQuery(queries.OrderFilters{}, pageIndex, 3)
		suite.Require().NoError(queryErr)
		page, pageErr := handler.Handle(context.Background(), query)
		suite.Require().NoError(pageErr)
		suite.Equal(int64(7), page.TotalElements)
		suite.Equal(3, page.TotalPages)
		paged = append(paged, page.Content...)
		if pageIndex >= page.TotalPages-1 {
			break
		}
	}

	suite.Require().Len(paged, 7)
	for i := range paged {
		suite.True(fullPage.Content[i].ID.IsEqual(paged[i].ID), "page concatenation diverged at index %d", i)
	}
}

func (suite *QueryHandlersTestSuite) TestGetOrder_DetailsWithHistory() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	aggregate := suite.seedOrder(1, base, order.DineIn, order.Pending, nil, burger(1))

	_, err := aggregate.ChangeStatus(order.Ready, base.Add(5*time.Minute))
	suite.Require().NoError(err)
	_, err = aggregate.ChangeStatus(order.Completed, base.Add(15*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), aggregate))

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	details, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Completed", details.Status)
	suite.Require().Len(details.History, 2)
	suite.Equal("Ready", details.History[0].Status)
	suite.Equal("Completed", details.History[1].Status)
	suite.True(details.History[0].ChangedAt.Before(details.History[1].ChangedAt))
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ItemsKeepPlacementOrder() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	// Fries placed before Burger: name order and placement order disagree.
	aggregate := suite.seedOrder(1, base, order.DineIn, order.Pending, nil, fries(1), burger(2))

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	details, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(details.Items, 2)
	suite.Equal("Fries", details.Items[0].Name)
	suite.Equal("Burger", details.Items[1].Name)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_NotFound() {
	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}
