package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gokit/pkg/async"
)

func TestParallel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("results keep input order", func(t *testing.T) {
		items := []int{5, 1, 4, 2, 3}
		got, err := async.Parallel(ctx, 2, items, func(_ context.Context, n int) (string, error) {
			// Finish roughly in reverse order to prove ordering is by index.
			time.Sleep(time.Duration(6-n) * time.Millisecond)
			return fmt.Sprintf("n=%d", n), nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"n=5", "n=1", "n=4", "n=2", "n=3"}, got)
	})

	t.Run("respects the concurrency bound", func(t *testing.T) {
		var mu sync.Mutex
		inFlight, peak := 0, 0

		items := make([]int, 20)
		_, err := async.Parallel(ctx, 3, items, func(_ context.Context, _ int) (struct{}, error) {
			mu.Lock()
			inFlight++
			if inFlight > peak {
				peak = inFlight
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return struct{}{}, nil
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, peak, 3)
	})

	t.Run("first error wins and cancels the rest", func(t *testing.T) {
		boom := errors.New("boom")
		var canceled atomic.Int32

		items := []int{0, 1, 2, 3, 4}
		_, err := async.Parallel(ctx, 5, items, func(ctx context.Context, n int) (int, error) {
			if n == 0 {
				return 0, boom
			}
			select {
			case <-ctx.Done():
				canceled.Add(1)
				return 0, ctx.Err()
			case <-time.After(time.Second):
				return n, nil
			}
		})
		assert.ErrorIs(t, err, boom)
		assert.Positive(t, canceled.Load())
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := async.Parallel(ctx, 2, []int{}, func(context.Context, int) (int, error) {
			return 0, nil
		})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no limit when non-positive", func(t *testing.T) {
		got, err := async.Parallel(ctx, 0, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
			return n * 2, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4, 6}, got)
	})
}

func TestSettle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("captures every task outcome", func(t *testing.T) {
		boom := errors.New("boom")
		items := []int{1, 2, 3, 4}
		outcomes := async.Settle(ctx, 2, items, func(_ context.Context, n int) (int, error) {
			if n%2 == 0 {
				return 0, boom
			}
			return n * 10, nil
		})

		require.Len(t, outcomes, 4)
		assert.Equal(t, 10, outcomes[0].MustValue())
		assert.Equal(t, 30, outcomes[2].MustValue())

		for _, i := range []int{1, 3} {
			require.True(t, outcomes[i].IsFailure(), "index %d", i)
			oerr := outcomes[i].Err()
			assert.Equal(t, async.CodeTaskFailed, oerr.Code)
			assert.Equal(t, i, oerr.Details["index"])
			assert.ErrorIs(t, oerr, boom)
		}
	})

	t.Run("one failure does not stop the others", func(t *testing.T) {
		var completed atomic.Int32
		items := []int{0, 1, 2, 3, 4}
		outcomes := async.Settle(ctx, 0, items, func(_ context.Context, n int) (int, error) {
			if n == 0 {
				return 0, errors.New("early failure")
			}
			completed.Add(1)
			return n, nil
		})
		assert.Len(t, outcomes, 5)
		assert.Equal(t, int32(4), completed.Load())
	})

	t.Run("empty input", func(t *testing.T) {
		outcomes := async.Settle(ctx, 1, []int{}, func(context.Context, int) (int, error) {
			return 0, nil
		})
		assert.Empty(t, outcomes)
	})
}

func TestRace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("fastest success wins", func(t *testing.T) {
		items := []time.Duration{50 * time.Millisecond, time.Millisecond, 30 * time.Millisecond}
		got, err := async.Race(ctx, items, func(ctx context.Context, d time.Duration) (time.Duration, error) {
			select {
			case <-time.After(d):
				return d, nil
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		})
		require.NoError(t, err)
		assert.Equal(t, time.Millisecond, got)
	})

	t.Run("fastest failure wins too", func(t *testing.T) {
		boom := errors.New("boom")
		items := []int{0, 1}
		_, err := async.Race(ctx, items, func(ctx context.Context, n int) (int, error) {
			if n == 0 {
				return 0, boom
			}
			select {
			case <-time.After(time.Second):
				return n, nil
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no tasks", func(t *testing.T) {
		_, err := async.Race(ctx, []int{}, func(context.Context, int) (int, error) {
			return 0, nil
		})
		assert.ErrorIs(t, err, async.ErrNoTasks)
	})
}
