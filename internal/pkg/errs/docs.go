// Package errs provides the error taxonomy shared by the restaurant core and
// its adapters.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value or a state transition is not allowed
//   - ValueIsOutOfRangeError: an index or number falls outside its bounds
//   - ObjectNotFoundError: an entity is not where the caller expected it
//
// Each error type follows the same pattern:
//   - a sentinel error variable usable with errors.Is
//   - a struct with the offending parameter and an optional cause
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Precondition violations in the domain (advancing a served item, removing an
// item that is not in its order, asking for a seat that does not exist) are
// reported with these types instead of panics, so adapters can decide how to
// surface them.
package errs
