package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Nominal flow:
//
//	Pending ──> Ready ──> Completed
//	    │         │
//	    └────┬────┘
//	         v
//	     Cancelled
//
// Completed and Cancelled are terminal for the kitchen display, but a status
// may still be overwritten by staff (e.g. re-opening a mistakenly completed
// order); the completion timestamp rules in Order.ChangeStatus keep the
// aggregate consistent in that case. Cancellation never deletes anything:
// it is an ordinary status value with full history retained.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status set at creation: the order is queued
	// for the kitchen.
	Pending

	// Ready indicates the kitchen has finished the order and it awaits pickup.
	Ready

	// Completed indicates the order was handed over. Terminal; the only
	// status that carries a completion timestamp.
	Completed

	// Cancelled indicates the order was withdrawn. Terminal; the order and
	// its items remain stored for auditability.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "Pending",
		Ready:         "Ready",
		Completed:     "Completed",
		Cancelled:     "Cancelled",
	}
}

// statusAliases maps lower-cased wire values to statuses. Besides the
// canonical English names this accepts the Polish values used by the
// restaurant's historical clients.
func statusAliases() map[string]Status {
	return map[string]Status{
		"pending":      Pending,
		"w realizacji": Pending,
		"ready":        Ready,
		"gotowe":       Ready,
		"completed":    Completed,
		"zrealizowane": Completed,
		"cancelled":    Cancelled,
		"anulowane":    Cancelled,
	}
}

// ParseStatus resolves a wire value to a Status, case-insensitively.
// Unrecognized values yield a validation error so callers can reject the
// request without mutating anything.
func ParseStatus(s string) (Status, error) {
	if status, ok := statusAliases()[strings.ToLower(strings.TrimSpace(s))]; ok {
		return status, nil
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized order status", s),
	)
}

// AllStatuses returns the recognized statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Ready, Completed, Cancelled}
}

// OnScreenStatuses returns the statuses shown on the live kitchen and
// front-of-house displays.
func OnScreenStatuses() []Status {
	return []Status{Pending, Ready}
}

// Validate checks that the Status is one of the four recognized values.
func (s Status) Validate() error {
	switch s {
	case Pending, Ready, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
}

// String returns the canonical English name of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the nominal lifecycle.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsOnScreen reports whether orders in this status appear on the live
// kitchen/front-of-house display.
func (s Status) IsOnScreen() bool {
	return s == Pending || s == Ready
}
