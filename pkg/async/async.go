package async

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout. The computation keeps running.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed once the future has settled.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Async executes fn in its own goroutine and returns a Future.
// fn is always invoked, even with a canceled ctx; honoring cancellation is up to fn.
// A panic inside fn settles the future with a *PanicError instead of crashing the process.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.result = zero
				f.err = &PanicError{Value: r, Stack: debug.Stack()}
			}
		}()

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll waits for all futures and returns their results in input order.
// It returns early with the first error to complete; results collected so far
// are returned alongside it and the remaining futures are left running.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	if len(futures) == 0 {
		return results, nil
	}

	// Buffered so that notifiers never block after an early return
	settled := make(chan int, len(futures))
	for i, future := range futures {
		go func() {
			<-future.done
			settled <- i
		}()
	}

	for range futures {
		i := <-settled
		if err := futures[i].err; err != nil {
			return results, err
		}
		results[i] = futures[i].result
	}

	return results, nil
}

// WaitAny waits for any of the futures to complete and returns the index of the completed future,
// its result, and any error it might have returned.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	settled := make(chan int, len(futures))
	for i, future := range futures {
		go func() {
			<-future.done
			settled <- i
		}()
	}

	i := <-settled
	return i, futures[i].result, futures[i].err
}

// PanicError carries a value recovered from a panicking asynchronous function.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPanic.Error(), e.Value)
}

func (e *PanicError) Unwrap() error {
	return ErrPanic
}

// Recover converts a panic raised by fn into a *PanicError.
// Synchronous callers use it to get the same fault shape Async produces.
func Recover[U any](fn func() (U, error)) (result U, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero U
			result = zero
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}
