// Package errs provides standardized error types for the food-ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value fails validation
//   - ObjectNotFoundError: for when an object cannot be resolved
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The request boundary relies on errors.Is against these sentinels (and the
// domain-level ones built on top of them) to map failures to HTTP responses,
// so every error produced inside the core should either be one of these
// types or wrap one.
package errs
