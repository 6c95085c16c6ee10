// Package deferred runs a function once after a delay and exposes its result as a
// future that can be awaited or cancelled.
package deferred

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrCanceled is returned by Wait when the task was cancelled before it ran.
var ErrCanceled = errors.New("deferred task canceled")

// Task is a pending result of type T.
type Task[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc

	// written once before done is closed
	value T
	err   error
}

// After schedules fn to run once delay has elapsed. The task is cancelled when
// parent is done or Cancel is called, whichever comes first; fn then never runs.
func After[T any](parent context.Context, delay time.Duration, fn func(context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(parent)
	t := &Task[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go t.run(ctx, delay, fn)
	return t
}

func (t *Task[T]) run(ctx context.Context, delay time.Duration, fn func(context.Context) (T, error)) {
	defer close(t.done)
	defer t.cancel()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		t.err = fmt.Errorf("%w: %w", ErrCanceled, context.Cause(ctx))
		return
	case <-timer.C:
	}

	t.value, t.err = fn(ctx)
}

// Cancel abandons the task. It is safe to call more than once and after completion.
func (t *Task[T]) Cancel() {
	t.cancel()
}

// Done is closed once the task has resolved or been cancelled.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Pending reports whether the task has not resolved yet.
func (t *Task[T]) Pending() bool {
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// Wait blocks until the task resolves or ctx is done.
// Giving up on ctx does not cancel the task itself.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
