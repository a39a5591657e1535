// Package async provides simple, generic helpers for running computations asynchronously and
// waiting for their completion.
//
// The package is centred around the generic type Future that represents the eventual result of an
// asynchronous operation. A Future is obtained by calling Async, which starts the supplied function
// in its own goroutine and immediately returns. The caller waits with Await, blocks with a deadline
// using AwaitWithTimeout, or polls with IsComplete.
//
// WaitAll and WaitAny coordinate several futures. WaitAll keeps results in input order but reports
// the first error to complete, so a stalled future never hides a failure in a later one.
//
// # Usage
//
//	ctx := context.Background()
//	future := async.Async(ctx, "alice", func(ctx context.Context, name string) (bool, error) {
//	    return directory.Taken(ctx, name)
//	})
//
//	taken, err := future.Await()
//
// # Error Handling
//
// Functions return the error produced by the user callback. A callback that panics settles its
// future with a *PanicError wrapping ErrPanic; use errors.Is(err, async.ErrPanic) to detect it.
// Recover gives synchronous callers the same conversion.
//
// # Performance Considerations
//
// Futures are lightweight wrappers around goroutines and channels. Avoid spawning an excessive
// number of goroutines if the workload could be better handled by a worker pool.
package async
