// Package kernel provides core domain primitives for the restaurant order system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison capabilities
//   - Day: a value object for a calendar date, the key of the daily order counter
//   - TimeOfDay: a value object for the time-of-day component of a timestamp,
//     used by the business-hours filter
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
