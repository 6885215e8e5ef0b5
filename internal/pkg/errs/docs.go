// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the codebase.
//
// The package includes error types for common validation scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// and for the domain failures of the order workflow:
//   - UnauthorizedError: For failed role or ownership checks
//   - InvalidTransitionError: For rejected order status changes
//   - AlreadyAssignedError: For the loser of a take-order race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers can classify
//     failures with errors.Is at the transport boundary
//
// All of these represent expected, recoverable conditions. Unexpected faults
// (storage connectivity, serialization bugs) are not modeled here and
// propagate unwrapped to the caller.
package errs
