package ports

import "context"

// Executor runs closures against the restaurant model one at a time.
// Every read or write of the model from outside the core goes through it.
type Executor interface {
	// Do runs fn and returns its error. It blocks until fn has run or ctx is done.
	Do(ctx context.Context, fn func() error) error
}
