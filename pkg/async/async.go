package async

import (
	"context"
	"sync"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Await blocks until the computation completes and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext is Await bounded by ctx. When ctx is done first it returns the
// zero value and ctx.Err(); the computation itself keeps running to completion.
// A computation that has already finished always yields its own result.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	res, _, err := f.wait(ctx)
	return res, err
}

// wait reports whether the computation finished before ctx was done.
func (f *Future[U]) wait(ctx context.Context) (U, bool, error) {
	select {
	case <-f.done:
		return f.result, true, f.err
	default:
	}

	select {
	case <-f.done:
		return f.result, true, f.err
	case <-ctx.Done():
		var zero U
		return zero, false, ctx.Err()
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn(ctx, param) in its own goroutine and returns a Future for the result.
// If ctx is already done, fn is not called and the Future completes with ctx.Err().
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		res, err := fn(ctx, param)

		f.once.Do(func() {
			f.result = res
			f.err = err
		})
	}()

	return f
}

// WaitAll waits for every future and returns their results in the order the
// futures were given, regardless of completion order.
//
// The returned error is the first non-nil error in argument order, or
// ctx.Err() if ctx is done while a future is still running. Futures that have
// completed count as completed even when ctx is done too. Results of futures
// that completed are filled in either way.
func WaitAll[U any](ctx context.Context, futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	var firstErr error
	for i, future := range futures {
		result, completed, err := future.wait(ctx)
		if !completed {
			return results, err
		}
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}
