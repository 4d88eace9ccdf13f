package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_PaginationClamps(t *testing.T) {
	testCases := []struct {
		name         string
		page, size   int
		expectedPage int
		expectedSize int
	}{
		{"defaults", 0, 0, 0, queries.DefaultPageSize},
		{"negative page", -3, 20, 0, 20},
		{"negative size", 0, -1, 0, queries.DefaultPageSize},
		{"oversized page", 2, 9000, 2, queries.MaxPageSize},
		{"in range", 4, 100, 4, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := queries.NewGetOrdersQuery(queries.OrderFilters{}, tc.page, tc.size)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedPage, query.Page())
			assert.Equal(t, tc.expectedSize, query.Size())
		})
	}
}

func TestNewGetOrdersQuery_StatusFilter(t *testing.T) {
	t.Run("accepts legacy status names", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(queries.OrderFilters{Status: "w realizacji"}, 0, 0)

		assert.NoError(t, err)
	})

	t.Run("rejects an unrecognized status", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(queries.OrderFilters{Status: "Done"}, 0, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewGetOrdersQuery_LenientBounds(t *testing.T) {
	// Unparsable time bounds and unknown order types are normalized, not
	// rejected.
	_, err := queries.NewGetOrdersQuery(queries.OrderFilters{
		TimeFrom:  "noonish",
		TimeTo:    "99:99",
		OrderType: "drive-through",
	}, 0, 0)

	assert.NoError(t, err)
}

func TestGetOrdersQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetOrdersQuery

	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
}
