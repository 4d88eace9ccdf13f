package order

import (
	"strings"

	"restaurant/internal/pkg/errs"
)

var errTypeIsInvalid = errs.NewValueIsInvalidError("order type")

// Type distinguishes dine-in from takeout orders.
type Type int

const (
	// UnknownType represents an undefined order type.
	UnknownType Type = iota

	// DineIn is an order consumed on the premises. It is also the default
	// when a creation request omits the type or sends an unrecognized value.
	DineIn

	// Takeout is an order packed to go.
	Takeout
)

// typeAliases maps lower-cased wire values to order types, including the
// Polish values used by the restaurant's historical clients.
func typeAliases() map[string]Type {
	return map[string]Type{
		"dine-in":    DineIn,
		"dinein":     DineIn,
		"na miejscu": DineIn,
		"takeout":    Takeout,
		"take-out":   Takeout,
		"na wynos":   Takeout,
	}
}

// ParseType resolves a wire value to a Type, case-insensitively.
// Absent or unrecognized values default to DineIn; a creation request is
// never rejected over its order type.
func ParseType(s string) Type {
	if t, ok := typeAliases()[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t
	}
	return DineIn
}

// String returns the canonical wire value of the type.
func (t Type) String() string {
	switch t {
	case DineIn:
		return "dine-in"
	case Takeout:
		return "takeout"
	default:
		return "unknown"
	}
}

// Validate checks that the Type is one of the recognized values.
func (t Type) Validate() error {
	switch t {
	case DineIn, Takeout:
		return nil
	default:
		return errTypeIsInvalid
	}
}
