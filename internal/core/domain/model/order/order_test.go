package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, price string, quantity int) order.Item {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), name, decimal.RequireFromString(price), quantity)
	require.NoError(t, err)
	return item
}

func mustOrder(t *testing.T, createdAt time.Time, items ...order.Item) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		1,
		kernel.DayOf(createdAt),
		createdAt,
		order.DineIn,
		items,
	)
	require.NoError(t, err)
	return aggregate
}

func TestNewOrder(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

	t.Run("starts pending with no history and no completion stamp", func(t *testing.T) {
		aggregate := mustOrder(t, createdAt, mustItem(t, "Burger", "25.00", 2))

		assert.Equal(t, order.Pending, aggregate.Status())
		assert.Nil(t, aggregate.CompletedAt())
		assert.Empty(t, aggregate.History())
		assert.Equal(t, int64(1), aggregate.Number())
		assert.Equal(t, kernel.DayOf(createdAt), aggregate.Date())
		assert.Equal(t, order.DineIn, aggregate.Type())
		assert.NoError(t, aggregate.Validate())
	})

	t.Run("rejects an order with no items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), 1, kernel.DayOf(createdAt), createdAt, order.DineIn, nil)

		assert.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("rejects a non-positive order number", func(t *testing.T) {
		for _, number := range []int64{0, -5} {
			_, err := order.NewOrder(
				kernel.NewUUID(),
				number,
				kernel.DayOf(createdAt),
				createdAt,
				order.DineIn,
				[]order.Item{mustItem(t, "Burger", "25.00", 1)},
			)

			require.Error(t, err, "number %d", number)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects a zero creation time", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			1,
			kernel.DayOf(createdAt),
			time.Time{},
			order.DineIn,
			[]order.Item{mustItem(t, "Burger", "25.00", 1)},
		)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder_CompletionStampInvariant(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	completedAt := createdAt.Add(15 * time.Minute)
	items := []order.Item{mustItem(t, "Burger", "25.00", 1)}

	t.Run("completed order requires a stamp", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), 1, kernel.DayOf(createdAt), createdAt,
			order.DineIn, order.Completed, nil, items, nil,
		)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non-completed order must not carry a stamp", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), 1, kernel.DayOf(createdAt), createdAt,
			order.DineIn, order.Ready, &completedAt, items, nil,
		)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("completed order with a stamp restores", func(t *testing.T) {
		aggregate, err := order.RestoreOrder(
			kernel.NewUUID(), 1, kernel.DayOf(createdAt), createdAt,
			order.Takeout, order.Completed, &completedAt, items, nil,
		)

		require.NoError(t, err)
		require.NotNil(t, aggregate.CompletedAt())
		assert.True(t, aggregate.CompletedAt().Equal(completedAt))
	})
}

func TestOrder_Total(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	aggregate := mustOrder(t, createdAt,
		mustItem(t, "Burger", "25.00", 2),
		mustItem(t, "Fries", "8.50", 1),
	)

	assert.True(t, decimal.RequireFromString("58.50").Equal(aggregate.Total()))
}

func TestOrder_ChangeStatus(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

	t.Run("appends a history record", func(t *testing.T) {
		aggregate := mustOrder(t, createdAt, mustItem(t, "Burger", "25.00", 1))
		at := createdAt.Add(5 * time.Minute)

		change, err := aggregate.ChangeStatus(order.Ready, at)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, aggregate.Status())
		assert.Equal(t, order.Ready, change.Status())
		assert.True(t, aggregate.ID().IsEqual(change.OrderID()))
		assert.True(t, change.ChangedAt().Equal(at))
		require.Len(t, aggregate.History(), 1)
		assert.Equal(t, change, aggregate.History()[0])
	})

	t.Run("completing stamps the completion time", func(t *testing.T) {
		aggregate := mustOrder(t, createdAt, mustItem(t, "Burger", "25.00", 1))
		at := createdAt.Add(15 * time.Minute)

		_, err := aggregate.ChangeStatus(order.Completed, at)

		require.NoError(t, err)
		require.NotNil(t, aggregate.CompletedAt())
		assert.True(t, aggregate.CompletedAt().Equal(at))
	})

	t.Run("leaving completed clears the stamp", func(t *testing.T) {
		aggregate := mustOrder(t, createdAt, mustItem(t, "Burger", "25.00", 1))

		_, err := aggregate.ChangeStatus(order.Completed, createdAt.Add(15*time.Minute))
		require.NoError(t, err)

		_, err = aggregate.ChangeStatus(order.Pending, createdAt.Add(20*time.Minute))
		require.NoError(t, err)

		assert.Equal(t, order.Pending, aggregate.Status())
		assert.Nil(t, aggregate.CompletedAt())
		assert.Len(t, aggregate.History(), 2)
	})

	t.Run("pending jumps straight to completed", func(t *testing.T) {
		aggregate := mustOrder(t, createdAt, mustItem(t, "Burger", "25.00", 1))

		_, err := aggregate.ChangeStatus(order.Completed, createdAt.Add(2*time.Minute))

		require.NoError(t, err)
		assert.Equal(t, order.Completed, aggregate.Status())
	})

	t.Run("rejects an unrecognized status and leaves the order untouched", func(t *testing.T) {
		aggregate := mustOrder(t, createdAt, mustItem(t, "Burger", "25.00", 1))

		_, err := aggregate.ChangeStatus(order.UnknownStatus, createdAt.Add(time.Minute))

		require.Error(t, err)
		assert.Equal(t, order.Pending, aggregate.Status())
		assert.Empty(t, aggregate.History())
		assert.Nil(t, aggregate.CompletedAt())
	})
}

func TestOrder_ServiceDuration(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

	t.Run("undefined while not completed", func(t *testing.T) {
		aggregate := mustOrder(t, createdAt, mustItem(t, "Burger", "25.00", 1))

		_, ok := aggregate.ServiceDuration()

		assert.False(t, ok)
	})

	t.Run("measures creation to completion", func(t *testing.T) {
		aggregate := mustOrder(t, createdAt, mustItem(t, "Burger", "25.00", 1))

		_, err := aggregate.ChangeStatus(order.Completed, createdAt.Add(17*time.Minute+30*time.Second))
		require.NoError(t, err)

		duration, ok := aggregate.ServiceDuration()

		require.True(t, ok)
		assert.Equal(t, 17*time.Minute+30*time.Second, duration)
	})

	t.Run("undefined when the stamp precedes creation", func(t *testing.T) {
		completedAt := createdAt.Add(-time.Minute)
		aggregate, err := order.RestoreOrder(
			kernel.NewUUID(), 1, kernel.DayOf(createdAt), createdAt,
			order.DineIn, order.Completed, &completedAt,
			[]order.Item{mustItem(t, "Burger", "25.00", 1)}, nil,
		)
		require.NoError(t, err)

		_, ok := aggregate.ServiceDuration()

		assert.False(t, ok)
	})
}

func TestOrder_Validate(t *testing.T) {
	var aggregate order.Order

	assert.ErrorIs(t, aggregate.Validate(), order.ErrOrderIsNotConstructed)
}
