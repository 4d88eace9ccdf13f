package order

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrStatusChangeIsNotConstructed is returned when a StatusChange was not
// created through NewStatusChange or RestoreStatusChange.
var ErrStatusChangeIsNotConstructed = errs.NewValueIsRequiredError("StatusChange must be created via NewStatusChange or RestoreStatusChange")

// StatusChange is one append-only audit record of an order status transition.
// Records are never mutated or deleted; an order's history is the ordered
// sequence of its StatusChange records by timestamp ascending.
type StatusChange struct {
	id        kernel.UUID
	orderID   kernel.UUID
	status    Status
	changedAt time.Time

	isConstructed bool
}

// NewStatusChange creates an audit record for a transition of the given order.
func NewStatusChange(orderID kernel.UUID, status Status, changedAt time.Time) (StatusChange, error) {
	return RestoreStatusChange(kernel.NewUUID(), orderID, status, changedAt)
}

// RestoreStatusChange reconstructs an audit record from persistence.
func RestoreStatusChange(id, orderID kernel.UUID, status Status, changedAt time.Time) (StatusChange, error) {
	if err := id.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := orderID.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := status.Validate(); err != nil {
		return StatusChange{}, err
	}
	if changedAt.IsZero() {
		return StatusChange{}, errs.NewValueIsRequiredError("changedAt")
	}

	return StatusChange{
		id:            id,
		orderID:       orderID,
		status:        status,
		changedAt:     changedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the StatusChange was created through a constructor.
func (c StatusChange) Validate() error {
	if !c.isConstructed {
		return ErrStatusChangeIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (c StatusChange) ID() kernel.UUID {
	return c.id
}

// OrderID returns the order this record belongs to.
func (c StatusChange) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status value the order transitioned to.
func (c StatusChange) Status() Status {
	return c.status
}

// ChangedAt returns when the transition happened.
func (c StatusChange) ChangedAt() time.Time {
	return c.changedAt
}
