// Package menu provides the read model for menu items consumed by the order
// core. Menu management (CRUD, images) is owned by an external collaborator;
// the order core only reads items to validate references and snapshot the
// name and price into order lines at creation time.
package menu

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
	// through the NewMenuItem factory method.
	ErrMenuItemIsNotConstructed = errs.NewValueIsRequiredError("MenuItem must be created via NewMenuItem")

	errNameIsRequired  = errs.NewValueIsRequiredError("menu item name")
	errPriceIsNegative = errs.NewValueIsInvalidError("menu item price must not be negative")
)

// LocalizedText holds a text in the restaurant's primary language with an
// optional English translation. The primary text is what gets snapshotted
// into order lines.
type LocalizedText struct {
	primary string
	english string
}

// NewLocalizedText creates a localized text pair. The English translation may
// be empty.
func NewLocalizedText(primary, english string) LocalizedText {
	return LocalizedText{primary: primary, english: english}
}

// Primary returns the text in the restaurant's primary language.
func (t LocalizedText) Primary() string {
	return t.primary
}

// English returns the English translation, or "" when none exists.
func (t LocalizedText) English() string {
	return t.english
}

// MenuItem is the order core's view of a menu entry: identity, localized
// name and description, current price, category, image reference and the
// active flag that gates whether new orders may reference it.
type MenuItem struct {
	id          kernel.UUID
	name        LocalizedText
	description LocalizedText
	price       decimal.Decimal
	category    string
	imageURL    string
	active      bool

	isConstructed bool
}

// NewMenuItem creates a validated MenuItem read model.
// The name's primary text is required and the price must not be negative.
func NewMenuItem(
	id kernel.UUID,
	name LocalizedText,
	description LocalizedText,
	price decimal.Decimal,
	category string,
	imageURL string,
	active bool,
) (*MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name.Primary() == "" {
		return nil, errNameIsRequired
	}
	if price.IsNegative() {
		return nil, errPriceIsNegative
	}

	return &MenuItem{
		id:            id,
		name:          name,
		description:   description,
		price:         price,
		category:      category,
		imageURL:      imageURL,
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the MenuItem was created through NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the localized item name.
func (m *MenuItem) Name() LocalizedText {
	return m.name
}

// Description returns the localized item description.
func (m *MenuItem) Description() LocalizedText {
	return m.description
}

// Price returns the item's current price.
func (m *MenuItem) Price() decimal.Decimal {
	return m.price
}

// Category returns the menu category the item belongs to.
func (m *MenuItem) Category() string {
	return m.category
}

// ImageURL returns the item's image reference.
func (m *MenuItem) ImageURL() string {
	return m.imageURL
}

// IsActive reports whether new orders may reference this item.
func (m *MenuItem) IsActive() bool {
	return m.active
}
