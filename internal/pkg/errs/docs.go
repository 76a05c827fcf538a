// Package errs provides standardized error types for the pizza ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: the primary target of an operation does not exist
//   - ReferenceNotFoundError: an id referenced by a write does not exist
//   - ConstraintViolationError: the store rejected a write because of dependent rows
//   - StorageUnavailableError: the store failed or is unreachable
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
package errs
