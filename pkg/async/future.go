package async

import (
	"context"
	"time"
)

// Future represents the eventual result of a computation started with Go.
type Future[R any] struct {
	result R
	err    error
	done   chan struct{}
}

// Go starts fn in its own goroutine and returns a Future for its result.
// If ctx is already canceled the future completes immediately with the
// context error and fn never runs.
func Go[R any](ctx context.Context, fn func(context.Context) (R, error)) *Future[R] {
	f := &Future[R]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the computation finishes and returns its result.
func (f *Future[R]) Await() (R, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks up to timeout. When the deadline passes first it
// returns ErrTimeout; the underlying computation keeps running and can still
// be awaited later.
func (f *Future[R]) AwaitWithTimeout(timeout time.Duration) (R, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero R
		return zero, ErrTimeout
	}
}

// Done exposes the completion channel for use in select statements.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports, without blocking, whether the computation finished.
func (f *Future[R]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAll awaits every future in order and collects the results. The first
// error encountered is returned together with the results gathered so far.
func WaitAll[R any](futures ...*Future[R]) ([]R, error) {
	results := make([]R, len(futures))
	for i, f := range futures {
		r, err := f.Await()
		results[i] = r
		if err != nil {
			return results[:i+1], err
		}
	}
	return results, nil
}

// WaitAny returns the index and result of the first future to complete.
// One goroutine is spawned per future; all of them exit once their future
// finishes.
func WaitAny[R any](futures ...*Future[R]) (int, R, error) {
	if len(futures) == 0 {
		var zero R
		return -1, zero, ErrNoFutures
	}

	type completion struct {
		index  int
		result R
		err    error
	}
	first := make(chan completion, 1)

	for i, f := range futures {
		go func(index int, f *Future[R]) {
			r, err := f.Await()
			select {
			case first <- completion{index, r, err}:
			default:
			}
		}(i, f)
	}

	c := <-first
	return c.index, c.result, c.err
}
