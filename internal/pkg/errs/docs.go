// Package errs provides standardized error types for the restaurant order core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the order core:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures, reported to the caller as a rejected request
//   - ObjectNotFoundError: a referenced order or menu item does not exist
//   - ObjectAlreadyExistsError: an insert collided with an existing object,
//     e.g. an already-taken order number
//   - ObjectUnavailableError: the object exists but cannot be used right now,
//     e.g. a deactivated menu item
//   - RowLimitExceededError: a report query matched more rows than the
//     configured cap allows
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Infrastructure failures (database, driver) are not modeled here; they
// propagate as-is and any error that does not unwrap to one of these
// sentinels is treated as infrastructural and retryable.
package errs
