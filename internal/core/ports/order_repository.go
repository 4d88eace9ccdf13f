// Package ports defines repository interfaces for the restaurant domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An aggregate is always stored and loaded whole: the order row, its line
// items, and its status-change history move together.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order row, all line items, and any history rows are written in the
	// surrounding transaction; the (orderDate, orderNumber) pair must be unique.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Newly appended history rows are inserted; existing rows are never
	// rewritten, keeping the history append-only.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// line items and the status-change history ordered by time ascending.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
