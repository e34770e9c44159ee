// Package errs provides the error taxonomy of the freight application.
// Every error kind a caller may branch on is declared here as a sentinel plus a
// typed error carrying the details, so that adapters can map failures to
// transport codes with errors.Is and errors.As.
//
// Kinds:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//     (grouped by IsValidation)
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - ObjectAlreadyExistsError: a uniqueness rule was violated
//   - ReferenceNotFoundError: a foreign key points at a missing row
//   - StorageError: the datastore or the transaction failed
//
// Each type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details and an optional Cause
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
package errs
