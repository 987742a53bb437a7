// Package errs provides standardized error types for the restaurant application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ResourceIsExhaustedError: For when a bounded resource (the order queue) is full
//   - ResourceIsUnavailableError: For when a claimed resource could not be handed out
//   - PreconditionIsNotMetError: For when an object is not in a state that allows the operation
//   - InvariantIsViolatedError: For internal accounting violations (e.g. a release without acquire)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Adapters classify errors with errors.Is against the sentinels and translate them
// into transport status codes.
package errs
