package order

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem or RestoreItem")

// Item is an order line holding a point-in-time snapshot of a menu item.
// The name and price are captured when the order is created and never track
// later menu edits; the menu item reference may become nil if the source
// item is deleted afterwards.
type Item struct {
	id         kernel.UUID
	menuItemID *kernel.UUID
	name       string
	price      decimal.Decimal
	quantity   int

	isConstructed bool
}

// NewItem creates an order line snapshotting the given menu item data.
// Quantity must be at least 1 and the snapshot price must not be negative.
func NewItem(id kernel.UUID, menuItemID kernel.UUID, name string, price decimal.Decimal, quantity int) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	return RestoreItem(id, &menuItemID, name, price, quantity)
}

// RestoreItem reconstructs an order line from persistence.
// Unlike NewItem it tolerates a missing menu item reference, which occurs
// when the source menu item was deleted after the order was placed.
func RestoreItem(id kernel.UUID, menuItemID *kernel.UUID, name string, price decimal.Decimal, quantity int) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if price.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item price",
			fmt.Errorf("%s is negative", price),
		)
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsOutOfRangeError("item quantity", quantity, 1, maxItemQuantity)
	}
	if quantity > maxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("item quantity", quantity, 1, maxItemQuantity)
	}

	return Item{
		id:            id,
		menuItemID:    menuItemID,
		name:          name,
		price:         price,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// maxItemQuantity caps a single order line. Orders above this are almost
// certainly client bugs rather than a real party ordering 1000 soups.
const maxItemQuantity = 999

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the order line's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the source menu item reference, or nil when the source
// item no longer exists.
func (i Item) MenuItemID() *kernel.UUID {
	return i.menuItemID
}

// Name returns the item name captured at order time.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price captured at order time.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Quantity returns how many units of the item were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
