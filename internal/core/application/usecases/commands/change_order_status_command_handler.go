package commands

import (
	"context"
	"time"
)

// ChangeOrderStatusCommandHandler handles the business logic for status
// transitions. Loads the aggregate, applies the change (which stamps or
// clears the completion time and appends the history row), and persists the
// order and its new history row in one transaction. On success it invalidates
// the active-orders snapshot.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ActiveOrdersInvalidator
}

// NewChangeOrderStatusCommandHandler creates a handler for status change operations.
// Requires an OrderUoWFactory for transactional persistence and the
// active-orders cache to invalidate after a successful change.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	cache ActiveOrdersInvalidator,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the status change command.
// Returns errs.ObjectNotFoundError when the order does not exist. The order
// row and the appended history row become visible together or not at all.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = aggregate.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Invalidate()
	return nil
}
