// Package services provides domain services that operate on collections of
// aggregates rather than a single aggregate root.
//
// The package includes:
//   - ReportBuilder: a pure domain service shaping a set of orders into
//     per-order report rows and an aggregate statistics summary
//
// Domain services here perform no I/O; they receive already-loaded aggregates
// and return plain data structures for the presentation layer to render.
package services
