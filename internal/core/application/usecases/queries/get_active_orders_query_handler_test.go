package queries_test

import (
	"context"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func (suite *QueryHandlersTestSuite) TestActiveOrders_ProjectsOnScreenOrdersOldestFirst() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	completedAt := base.Add(30 * time.Minute)
	suite.seedOrder(1, base, order.DineIn, order.Pending, nil, burger(1))
	suite.seedOrder(2, base.Add(time.Minute), order.DineIn, order.Ready, nil, fries(1))
	suite.seedOrder(3, base.Add(2*time.Minute), order.DineIn, order.Completed, &completedAt, burger(1))
	suite.seedOrder(4, base.Add(3*time.Minute), order.DineIn, order.Cancelled, nil, fries(1))

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db, 0)

	snapshot, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(snapshot.Orders, 2)
	suite.Equal(int64(1), snapshot.Orders[0].Number)
	suite.Equal("Pending", snapshot.Orders[0].Status)
	suite.Equal(int64(2), snapshot.Orders[1].Number)
	suite.Equal("Ready", snapshot.Orders[1].Status)
	suite.NotEmpty(snapshot.ConsistencyToken)
}

func (suite *QueryHandlersTestSuite) TestActiveOrders_FreshSnapshotIsServedFromCache() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	suite.seedOrder(1, base, order.DineIn, order.Pending, nil, burger(1))

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db, time.Minute)

	first, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)

	// A mutation the cache has not been told about stays invisible within
	// the freshness window.
	suite.seedOrder(2, base.Add(time.Minute), order.DineIn, order.Pending, nil, fries(1))

	second, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)

	suite.Equal(first.ConsistencyToken, second.ConsistencyToken)
	suite.Len(second.Orders, 1)
}

func (suite *QueryHandlersTestSuite) TestActiveOrders_InvalidateForcesRecompute() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	suite.seedOrder(1, base, order.DineIn, order.Pending, nil, burger(1))

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db, time.Minute)

	first, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)

	suite.seedOrder(2, base.Add(time.Minute), order.DineIn, order.Pending, nil, fries(1))
	handler.Invalidate()

	second, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)

	suite.NotEqual(first.ConsistencyToken, second.ConsistencyToken)
	suite.Len(second.Orders, 2)
}

func (suite *QueryHandlersTestSuite) TestActiveOrders_TokenIsStableForUnchangedData() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	suite.seedOrder(1, base, order.DineIn, order.Pending, nil, burger(1))

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db, time.Minute)

	first, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)

	// Recomputing over identical data yields an identical token.
	handler.Invalidate()
	second, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)

	suite.Equal(first.ConsistencyToken, second.ConsistencyToken)
}

func (suite *QueryHandlersTestSuite) TestActiveOrders_InvalidateDuringRecomputeIsNotLost() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	suite.seedOrder(1, base, order.DineIn, order.Pending, nil, burger(1))

	// A dedicated connection so the injected callback cannot leak into other
	// tests.
	db, err := gorm.Open(gorm_postgres.Open(suite.dsn), &gorm.Config{})
	suite.Require().NoError(err)

	handler := queries.NewGetActiveOrdersQueryHandler(db, time.Minute)

	// Mutate and invalidate after the recompute has read its rows but before
	// the handler stores them, the window a command handler's Invalidate can
	// land in.
	fired := false
	err = db.Callback().Query().After("gorm:query").Register("inject_midflight_mutation", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "orders" {
			return
		}
		fired = true
		suite.seedOrder(2, base.Add(time.Minute), order.DineIn, order.Pending, nil, fries(1))
		handler.Invalidate()
	})
	suite.Require().NoError(err)

	snapshot, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)

	// The snapshot served and cached after the invalidation must include the
	// mutation; a stale one would hide order 2 for a full freshness window.
	suite.Require().Len(snapshot.Orders, 2)

	cached, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)
	suite.Equal(snapshot.ConsistencyToken, cached.ConsistencyToken)
	suite.Len(cached.Orders, 2)
}

func (suite *QueryHandlersTestSuite) TestActiveOrders_ConcurrentReadsShareOneSnapshot() {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	suite.seedOrder(1, base, order.DineIn, order.Pending, nil, burger(1))

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db, time.Minute)

	const readers = 16
	tokens := make(chan string, readers)
	for i := 0; i < readers; i++ {
		go func() {
			snapshot, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
			suite.NoError(err)
			tokens <- snapshot.ConsistencyToken
		}()
	}

	first := <-tokens
	for i := 1; i < readers; i++ {
		suite.Equal(first, <-tokens)
	}
}
