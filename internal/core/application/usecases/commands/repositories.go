// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DailyCounterRepoFactory provides access to the daily counter within a transaction.
	DailyCounterRepoFactory interface {
		DailyCounterRepository() ports.DailyCounterRepository
	}

	// MenuItemRepoFactory provides access to the menu catalog within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages the order creation transaction: the counter
	// reservation, the menu lookups, and the order insert must commit or
	// roll back as one unit.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		DailyCounterRepoFactory
		MenuItemRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}
)

// ActiveOrdersInvalidator marks the cached active-orders snapshot stale.
// Handlers signal it after a successful commit so the next display poll
// recomputes instead of serving pre-mutation data.
type ActiveOrdersInvalidator interface {
	Invalidate()
}
