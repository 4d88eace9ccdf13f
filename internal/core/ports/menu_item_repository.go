package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository provides read access to the menu catalog. Order creation
// uses it to validate references and snapshot names and prices; this layer
// never writes to menu state.
type MenuItemRepository interface {
	// Get retrieves a menu item by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such item exists.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAllByIDs retrieves the menu items for the given identifiers.
	// Missing identifiers are simply absent from the result; the caller
	// decides whether that is an error.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error)
}
