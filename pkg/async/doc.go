// Package async provides generic helpers for running computations
// concurrently: single-task futures and slice-level combinators with a
// concurrency bound.
//
// # Futures
//
// Go starts a function in its own goroutine and returns a Future that can be
// awaited, polled, or waited on with a timeout:
//
//	f := async.Go(ctx, func(ctx context.Context) (string, error) {
//	    return fetch(ctx, url)
//	})
//	body, err := f.Await()
//
// WaitAll and WaitAny coordinate several futures, collecting every result or
// returning the first completion.
//
// # Combinators
//
// Parallel, Settle and Race apply a function to every element of a slice
// concurrently. Parallel and Settle accept a limit on simultaneously
// in-flight tasks and always order results by input index, never by
// completion order:
//
//	bodies, err := async.Parallel(ctx, 4, urls, fetch)
//
// Parallel propagates the first task error and cancels the rest. Settle
// never fails as a whole: every task's result is captured as an
// outcome.Outcome, failed ones carrying code CodeTaskFailed with the task's
// index and underlying error. Race returns whichever task finishes first.
//
// All helpers are context-aware; canceling the context stops tasks that
// honor it. No state is shared between tasks beyond the per-index results
// buffer.
package async
