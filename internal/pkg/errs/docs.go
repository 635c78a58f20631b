// Package errs provides the standardized error types used across the service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct carrying the offending parameter name and an optional cause
//   - constructor functions with and without cause
//   - Error() formatting and Unwrap() pointing at the sentinel
//
// Business code returns these as values; they are expected outcomes, not
// panics. The HTTP layer maps them onto status codes (validation to 400,
// not-found to 404, guard violations to 409).
package errs
