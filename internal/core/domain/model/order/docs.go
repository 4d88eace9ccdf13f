// Package order provides domain entities and business logic for order
// management in the restaurant system. It implements the Order aggregate root
// with its per-day numbering, line-item snapshots and status lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding identity, per-day number, items,
//     status, completion timestamp and status history
//   - Status: the lifecycle value (Pending, Ready, Completed, Cancelled)
//     with case-insensitive parsing of English and legacy Polish wire values
//   - Type: dine-in vs. takeout, defaulting to dine-in for unknown input
//   - Item: an order line with the menu snapshot captured at creation
//   - StatusChange: an append-only audit record of one status transition
//
// Key business rules:
//   - (order date, order number) is unique; numbers restart at 1 each day
//   - items are fixed at creation; only the status may change afterwards
//   - the completion timestamp is set exactly when the status is Completed
//   - every transition appends a history record; history is never pruned
//   - cancellation is an ordinary status value, not a deletion
package order
