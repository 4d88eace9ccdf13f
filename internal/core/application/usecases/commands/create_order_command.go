package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem is one requested line of a new order: which menu item and
// how many. The name and price are not part of the request; they are
// snapshotted from the menu catalog inside the handler.
type CreateOrderItem struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a request to place a new order.
// The order type is accepted as free text ("dine-in", "takeout" and their
// aliases) and unrecognized values fall back to dine-in, so the command never
// rejects a request over the type field.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "takeout", []CreateOrderItem{
//	    {MenuItemID: burgerID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, cache)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orderType order.Type
	items     []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, at least one item is requested, and
// every item references a menu item with a positive quantity.
func NewCreateOrderCommand(orderID kernel.UUID, orderType string, items []CreateOrderItem) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.orderType = order.ParseType(orderType)
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType returns the parsed order type.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].menuItemID", i), err)
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidError(fmt.Sprintf("items[%d].quantity", i))
		}
	}

	c.items = items
	return nil
}
