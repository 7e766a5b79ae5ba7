package async

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/gokit/pkg/outcome"
)

// CodeTaskFailed is the code carried by failed task outcomes from Settle.
const CodeTaskFailed outcome.Code = "task_failed"

// Parallel runs fn over every item with at most limit tasks in flight at
// once (limit < 1 means no bound). Results are ordered by input index
// regardless of completion order. The first error cancels the remaining
// tasks' context and is returned; partial results are discarded.
func Parallel[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			r, err := fn(ctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Settle runs fn over every item like Parallel but never fails as a whole:
// each task's result is captured as an Outcome in input order. Failed tasks
// yield a failure outcome with code CodeTaskFailed, the input index in the
// details and the task error as cause.
func Settle[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []outcome.Outcome[R] {
	outcomes := make([]outcome.Outcome[R], len(items))

	g := new(errgroup.Group)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			r, err := fn(ctx, item)
			if err != nil {
				oerr := outcome.NewError(CodeTaskFailed, "task failed", map[string]any{"index": i}).WithCause(err)
				outcomes[i] = outcome.Failure[R](oerr)
				return nil
			}
			outcomes[i] = outcome.Success(r)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// Race runs fn over every item concurrently and returns the result of the
// first task to finish, success or failure. The remaining tasks' context is
// canceled once a winner exists.
func Race[T, R any](ctx context.Context, items []T, fn func(context.Context, T) (R, error)) (R, error) {
	if len(items) == 0 {
		var zero R
		return zero, ErrNoTasks
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type completion struct {
		result R
		err    error
	}
	first := make(chan completion, 1)

	for _, item := range items {
		go func(item T) {
			r, err := fn(ctx, item)
			select {
			case first <- completion{r, err}:
				cancel()
			default:
			}
		}(item)
	}

	c := <-first
	return c.result, c.err
}
