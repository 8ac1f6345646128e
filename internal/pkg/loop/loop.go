// Package loop provides a single-threaded executor. Every closure submitted
// through Do runs on the goroutine that called Run, one at a time, in
// submission order.
package loop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrStopped is returned by Do once Run has returned, or before it started
// when the context gives up first.
var ErrStopped = errors.New("loop is stopped")

type task struct {
	fn     func() error
	result chan error
}

// Loop serializes access to state that has no locks of its own.
//
// Do must not be called from inside a closure running on the loop: the loop
// would wait for itself.
type Loop struct {
	tasks  chan task
	done   chan struct{}
	logger *slog.Logger
}

// New creates a loop. It does nothing until Run is called.
func New(logger *slog.Logger) *Loop {
	return &Loop{
		tasks:  make(chan task),
		done:   make(chan struct{}),
		logger: logger.With("component", "Loop"),
	}
}

// Run executes submitted closures until ctx is done. It must be called once.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)

	l.logger.Debug("loop started")
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped", "reason", ctx.Err())
			return
		case t := <-l.tasks:
			t.result <- l.execute(t.fn)
		}
	}
}

// Do runs fn on the loop and returns its error. It blocks until fn has
// returned, ctx is done or the loop has stopped. When ctx ends after fn was
// handed over, fn still runs to completion.
func (l *Loop) Do(ctx context.Context, fn func() error) error {
	t := task{fn: fn, result: make(chan error, 1)}

	select {
	case l.tasks <- t:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrStopped
	}

	select {
	case err := <-t.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) execute(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("task panicked", "panic", r)
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	return fn()
}
