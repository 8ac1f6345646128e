// Package queries contains read operations over the restaurant model.
// Implements the Query pattern for read operations in the CQRS architecture:
// each handler runs on the executor that owns the model and returns a
// snapshot read model, so callers never hold references into live state.
package queries
