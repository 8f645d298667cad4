// Package async provides small concurrency utilities shared by the pipeline.
package async

import (
	"context"
	"time"
)

// Result is the tagged outcome of a bounded wait. Exactly one of the three
// shapes holds: a value (Err nil, TimedOut false), a failure (Err set), or
// a timeout (TimedOut true).
type Result[T any] struct {
	Value    T
	Err      error
	TimedOut bool
}

// Ok reports whether the operation settled successfully within the deadline.
func (r Result[T]) Ok() bool {
	return r.Err == nil && !r.TimedOut
}

// WithDeadline races op against the given timeout. The operation runs with the
// caller's context, not a derived one: on timeout the in-flight call is
// abandoned rather than cancelled, and a late result is discarded. Resource
// reclamation on the losing side is bounded only by the operation itself.
//
// A done parent context settles the race immediately with the context error.
func WithDeadline[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) Result[T] {
	type settled struct {
		value T
		err   error
	}

	// Buffered so the goroutine never blocks after the race is lost.
	ch := make(chan settled, 1)
	go func() {
		v, err := op(ctx)
		ch <- settled{value: v, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case s := <-ch:
		return Result[T]{Value: s.value, Err: s.err}
	case <-timer.C:
		return Result[T]{TimedOut: true}
	case <-ctx.Done():
		return Result[T]{Err: ctx.Err()}
	}
}
