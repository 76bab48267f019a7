// Package errs provides standardized error types for the fastfood application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when a concurrent change won the race for an object
//   - ForbiddenError: For when the acting identity may not perform an operation
//   - StorageError: For when the persistent store fails
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf folds every error produced by the application into one of the stable
// kinds (InvalidInput, NotFound, Conflict, Forbidden, Storage) that callers,
// such as the HTTP adapter, use to decide how to report a failure.
package errs
