package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the kitchen display snapshot: every order in
// an on-screen status, oldest first.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db, 0)
//	query := NewGetActiveOrdersQuery()
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//	if snapshot.ConsistencyToken == lastSeenToken {
//	    return nil // nothing changed since the last poll
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve the active-orders snapshot.
// This is a parameterless query; the on-screen status set is fixed.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// ActiveOrderView is the minimal public projection of one on-screen order.
// Prices, items, and other internals deliberately stay out: the view feeds a
// customer-facing display.
type ActiveOrderView struct {
	ID     kernel.UUID
	Number int64
	Status string
}

// ActiveOrdersSnapshot is the cached active-orders projection together with
// its consistency token. Two snapshots with equal tokens hold identical data,
// so callers can skip retransmitting an unchanged payload.
type ActiveOrdersSnapshot struct {
	Orders           []ActiveOrderView
	ConsistencyToken string
}
