package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Reserves the next daily sequence number, validates and snapshots the
// referenced menu items, and persists the order atomically. On success it
// invalidates the active-orders snapshot so displays pick the order up on
// their next poll.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	cache      ActiveOrdersInvalidator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence and the
// active-orders cache to invalidate after a successful creation.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	cache ActiveOrdersInvalidator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the order creation command.
// The counter reservation, menu validation, and order insert run in a single
// transaction: a failure at any point rolls everything back, including the
// reserved sequence number, so the daily sequence stays gapless.
// Returns errs.ObjectNotFoundError when a referenced menu item does not exist
// and errs.ObjectUnavailableError when it exists but is inactive.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	day := kernel.DayOf(now)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := h.snapshotItems(ctx, uow.MenuItemRepository(), cmd.Items())
	if err != nil {
		return err
	}

	number, err := uow.DailyCounterRepository().NextNumber(ctx, day)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), number, day, now, cmd.OrderType(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Invalidate()
	return nil
}

// snapshotItems resolves every requested menu reference and captures its
// current name and price into order lines. The primary menu name is the one
// printed on tickets, so that is what gets snapshotted.
func (h CreateOrderCommandHandler) snapshotItems(
	ctx context.Context,
	menuRepo ports.MenuItemRepository,
	requested []CreateOrderItem,
) ([]order.Item, error) {
	ids := make([]kernel.UUID, 0, len(requested))
	for _, line := range requested {
		ids = append(ids, line.MenuItemID)
	}

	menuItems, err := menuRepo.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*menu.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID().String()] = m
	}

	items := make([]order.Item, 0, len(requested))
	for _, line := range requested {
		menuItem, ok := byID[line.MenuItemID.String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu item", line.MenuItemID)
		}
		if !menuItem.IsActive() {
			return nil, errs.NewObjectUnavailableError("menu item", line.MenuItemID)
		}

		item, err := order.NewItem(
			kernel.NewUUID(),
			menuItem.ID(),
			menuItem.Name().Primary(),
			menuItem.Price(),
			line.Quantity,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
