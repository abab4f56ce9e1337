// Package async provides generic helpers for running computations in their
// own goroutines and collecting the results in a deterministic order.
//
// Async starts the supplied function and immediately returns a *Future. The
// caller waits with Await, bounds the wait with AwaitContext, or polls with
// IsComplete. WaitAll collects the results of several futures in argument
// order, which is what the validator package relies on to keep error
// ordering identical between sequential and concurrent validation.
//
// # Usage
//
//	futures := make([]*async.Future[int], len(inputs))
//	for i, in := range inputs {
//	    futures[i] = async.Async(ctx, in, func(_ context.Context, v string) (int, error) {
//	        return len(v), nil
//	    })
//	}
//	lengths, err := async.WaitAll(ctx, futures...)
//
// # Cancellation
//
// If the context is cancelled before a computation starts, the function is
// not called and the Future completes with the context error. A computation
// that already started is not interrupted; AwaitContext and WaitAll simply
// stop waiting for it.
//
// # Performance Considerations
//
// Futures are thin wrappers around a goroutine and a channel. For large
// fan-outs prefer a worker pool.
package async
