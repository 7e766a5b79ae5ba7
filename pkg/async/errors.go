package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the future does not
	// complete in time.
	ErrTimeout = errors.New("async: operation timed out waiting for future completion")

	// ErrNoFutures is returned by WaitAny when called without futures.
	ErrNoFutures = errors.New("async: WaitAny called with empty futures slice")

	// ErrNoTasks is returned by Race when called with no work items.
	ErrNoTasks = errors.New("async: Race called with no tasks")
)
