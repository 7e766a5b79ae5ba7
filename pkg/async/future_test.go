package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gokit/pkg/async"
)

func TestGoAndAwait(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns the computed value", func(t *testing.T) {
		f := async.Go(ctx, func(context.Context) (int, error) {
			return 42, nil
		})
		v, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("propagates the computation error", func(t *testing.T) {
		boom := errors.New("boom")
		f := async.Go(ctx, func(context.Context) (int, error) {
			return 0, boom
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("pre-canceled context skips the work", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		ran := false
		f := async.Go(canceled, func(context.Context) (int, error) {
			ran = true
			return 1, nil
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ran)
	})
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("completes before deadline", func(t *testing.T) {
		f := async.Go(ctx, func(context.Context) (string, error) {
			return "done", nil
		})
		v, err := f.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, "done", v)
	})

	t.Run("deadline passes first", func(t *testing.T) {
		release := make(chan struct{})
		f := async.Go(ctx, func(context.Context) (string, error) {
			<-release
			return "late", nil
		})
		_, err := f.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)

		close(release)
		v, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, "late", v, "future still completes after a timeout")
	})
}

func TestIsComplete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	release := make(chan struct{})
	f := async.Go(ctx, func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	assert.False(t, f.IsComplete())
	close(release)
	<-f.Done()
	assert.True(t, f.IsComplete())
}

func TestWaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("collects results in order", func(t *testing.T) {
		futures := make([]*async.Future[int], 3)
		for i := range futures {
			futures[i] = async.Go(ctx, func(context.Context) (int, error) {
				return i * 10, nil
			})
		}
		got, err := async.WaitAll(futures...)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 10, 20}, got)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		boom := errors.New("boom")
		futures := []*async.Future[int]{
			async.Go(ctx, func(context.Context) (int, error) { return 1, nil }),
			async.Go(ctx, func(context.Context) (int, error) { return 0, boom }),
			async.Go(ctx, func(context.Context) (int, error) { return 3, nil }),
		}
		got, err := async.WaitAll(futures...)
		assert.ErrorIs(t, err, boom)
		assert.Len(t, got, 2)
	})
}

func TestWaitAny(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns the fastest future", func(t *testing.T) {
		slow := make(chan struct{})
		defer close(slow)

		futures := []*async.Future[string]{
			async.Go(ctx, func(context.Context) (string, error) {
				<-slow
				return "slow", nil
			}),
			async.Go(ctx, func(context.Context) (string, error) {
				return "fast", nil
			}),
		}
		idx, v, err := async.WaitAny(futures...)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Equal(t, "fast", v)
	})

	t.Run("no futures", func(t *testing.T) {
		idx, _, err := async.WaitAny[int]()
		assert.ErrorIs(t, err, async.ErrNoFutures)
		assert.Equal(t, -1, idx)
	})
}
