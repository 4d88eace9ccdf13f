package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when an order would be created without
	// a single line item.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// Order is the aggregate root of the order-processing core.
//
// Invariants:
//   - (orderDate, orderNumber) is unique across all orders; the number is
//     issued by the daily counter, 1-based per calendar date
//   - at least one line item, all captured at creation and immutable after
//   - the completion timestamp is set if and only if the status is Completed
//   - status history is append-only, ordered by timestamp ascending
//
// After creation an order only mutates through ChangeStatus.
type Order struct {
	id          kernel.UUID
	orderNumber int64
	orderDate   kernel.Day
	createdAt   time.Time
	orderType   Type
	status      Status
	completedAt *time.Time
	items       []Item
	history     []StatusChange

	isConstructed bool
}

// NewOrder creates a new order in Pending status with no history and no
// completion timestamp. The items are the immutable menu snapshots captured
// by the creation flow; there must be at least one.
//
// Example:
//
//	aggregate, err := order.NewOrder(
//	    kernel.NewUUID(), number, kernel.DayOf(now), now, order.DineIn, items)
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id kernel.UUID,
	orderNumber int64,
	orderDate kernel.Day,
	createdAt time.Time,
	orderType Type,
	items []Item,
) (*Order, error) {
	return restore(id, orderNumber, orderDate, createdAt, orderType, Pending, nil, items, nil)
}

// RestoreOrder reconstructs an order from persistence, including its status,
// optional completion timestamp and history. It re-checks the aggregate
// invariants so corrupted rows surface as errors instead of invalid objects.
func RestoreOrder(
	id kernel.UUID,
	orderNumber int64,
	orderDate kernel.Day,
	createdAt time.Time,
	orderType Type,
	status Status,
	completedAt *time.Time,
	items []Item,
	history []StatusChange,
) (*Order, error) {
	return restore(id, orderNumber, orderDate, createdAt, orderType, status, completedAt, items, history)
}

func restore(
	id kernel.UUID,
	orderNumber int64,
	orderDate kernel.Day,
	createdAt time.Time,
	orderType Type,
	status Status,
	completedAt *time.Time,
	items []Item,
	history []StatusChange,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderNumber < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%d is not a positive sequence number", orderNumber),
		)
	}
	if err := orderDate.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if (completedAt != nil) != (status == Completed) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"completedAt",
			fmt.Errorf("completion timestamp must be set exactly when status is %s, got status %s", Completed, status),
		)
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	for _, change := range history {
		if err := change.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		orderDate:     orderDate,
		createdAt:     createdAt,
		orderType:     orderType,
		status:        status,
		completedAt:   completedAt,
		items:         items,
		history:       history,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the per-day sequence number, 1-based per calendar date.
func (o *Order) Number() int64 {
	return o.orderNumber
}

// Date returns the calendar date the order belongs to.
func (o *Order) Date() kernel.Day {
	return o.orderDate
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Type returns whether the order is dine-in or takeout.
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CompletedAt returns the completion timestamp, or nil unless the order is
// currently Completed.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Items returns the order's line items in creation order.
func (o *Order) Items() []Item {
	return o.items
}

// History returns the status-change records applied so far, oldest first.
func (o *Order) History() []StatusChange {
	return o.history
}

// Total returns the sum of all line subtotals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ServiceDuration returns the time from creation to completion.
// It is undefined (ok == false) unless the order carries a completion
// timestamp that is not earlier than the creation timestamp.
func (o *Order) ServiceDuration() (time.Duration, bool) {
	if o.completedAt == nil || o.completedAt.Before(o.createdAt) {
		return 0, false
	}
	return o.completedAt.Sub(o.createdAt), true
}

// ChangeStatus applies a status transition at the given instant.
//
// On success the order's status is updated, a new history record is appended
// and returned, and the completion timestamp is stamped for Completed or
// cleared for any other status (so re-opening or cancelling removes a stale
// completion stamp). An unrecognized status leaves the order untouched.
func (o *Order) ChangeStatus(newStatus Status, at time.Time) (StatusChange, error) {
	if err := o.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := newStatus.Validate(); err != nil {
		return StatusChange{}, err
	}

	change, err := NewStatusChange(o.id, newStatus, at)
	if err != nil {
		return StatusChange{}, err
	}

	o.status = newStatus
	if newStatus == Completed {
		completedAt := at
		o.completedAt = &completedAt
	} else {
		o.completedAt = nil
	}
	o.history = append(o.history, change)

	return change, nil
}
