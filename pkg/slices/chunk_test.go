package slices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gokit/pkg/outcome"
	"github.com/dmitrymomot/gokit/pkg/slices"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	t.Run("splits with remainder", func(t *testing.T) {
		got, err := slices.Chunk([]int{1, 2, 3, 4, 5}, slices.ChunkSize(2))
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
	})

	t.Run("default size is one", func(t *testing.T) {
		got, err := slices.Chunk([]string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a"}, {"b"}}, got)
	})

	t.Run("size larger than data yields one chunk", func(t *testing.T) {
		got, err := slices.Chunk([]int{1, 2}, slices.ChunkSize(10))
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}}, got)
	})

	t.Run("empty data yields no chunks", func(t *testing.T) {
		got, err := slices.Chunk([]int{}, slices.ChunkSize(3))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("zero size fails with invalid_size", func(t *testing.T) {
		_, err := slices.Chunk([]int{1, 2, 3}, slices.ChunkSize(0))
		require.Error(t, err)
		assert.True(t, outcome.HasCode(err, slices.CodeInvalidChunkSize))
	})

	t.Run("negative size reports offending value", func(t *testing.T) {
		_, err := slices.Chunk([]int{1}, slices.ChunkSize(-3))
		require.Error(t, err)
		var oerr *outcome.Error
		require.ErrorAs(t, err, &oerr)
		assert.Equal(t, -3, oerr.Details["size"])
	})

	t.Run("chunks do not alias beyond their bounds", func(t *testing.T) {
		data := []int{1, 2, 3, 4}
		got, err := slices.Chunk(data, slices.ChunkSize(2))
		require.NoError(t, err)

		got[0] = append(got[0], 99)
		assert.Equal(t, []int{1, 2, 3, 4}, data)
	})
}

func TestTryChunk(t *testing.T) {
	t.Parallel()

	t.Run("success wraps the chunks", func(t *testing.T) {
		res := slices.TryChunk([]int{1, 2, 3, 4, 5}, slices.ChunkSize(2))
		require.True(t, res.IsSuccess())
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, res.Value())
	})

	t.Run("failure carries the same code as Chunk", func(t *testing.T) {
		res := slices.TryChunk([]int{1, 2, 3}, slices.ChunkSize(0))
		require.True(t, res.IsFailure())
		assert.Equal(t, slices.CodeInvalidChunkSize, res.Err().Code)

		_, err := slices.Chunk([]int{1, 2, 3}, slices.ChunkSize(0))
		assert.Equal(t, res.Err().Code, outcome.CodeOf(err))
	})
}

func TestChunkWith(t *testing.T) {
	t.Parallel()

	t.Run("curried call equals data-first call", func(t *testing.T) {
		data := []int{1, 2, 3, 4, 5, 6, 7}
		for _, size := range []int{-1, 0, 1, 3, 8} {
			direct, directErr := slices.Chunk(data, slices.ChunkSize(size))
			bound, boundErr := slices.ChunkWith[int](slices.ChunkSize(size))(data)

			assert.Equal(t, direct, bound, "size=%d", size)
			assert.Equal(t, outcome.CodeOf(directErr), outcome.CodeOf(boundErr), "size=%d", size)
		}
	})

	t.Run("try curried call equals try call", func(t *testing.T) {
		data := []int{1, 2, 3}
		assert.Equal(t,
			slices.TryChunk(data, slices.ChunkSize(2)),
			slices.TryChunkWith[int](slices.ChunkSize(2))(data),
		)
	})
}
