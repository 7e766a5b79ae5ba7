package slices_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gokit/pkg/slices"
)

func TestShuffle(t *testing.T) {
	t.Parallel()

	t.Run("keeps all elements", func(t *testing.T) {
		data := []int{1, 2, 3, 4, 5, 6, 7, 8}
		got := slices.Shuffle(data)
		require.Len(t, got, len(data))

		sorted := append([]int(nil), got...)
		sort.Ints(sorted)
		assert.Equal(t, data, sorted)
	})

	t.Run("does not modify input", func(t *testing.T) {
		data := []int{1, 2, 3, 4, 5}
		_ = slices.Shuffle(data)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, data)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, slices.Shuffle([]int{}))
	})
}

func TestSample(t *testing.T) {
	t.Parallel()

	t.Run("returns an element of the input", func(t *testing.T) {
		data := []string{"a", "b", "c"}
		v, ok := slices.Sample(data)
		require.True(t, ok)
		assert.Contains(t, data, v)
	})

	t.Run("empty input reports false", func(t *testing.T) {
		v, ok := slices.Sample([]string{})
		assert.False(t, ok)
		assert.Empty(t, v)
	})
}

func TestSampleSize(t *testing.T) {
	t.Parallel()

	t.Run("returns distinct elements", func(t *testing.T) {
		data := []int{1, 2, 3, 4, 5}
		got := slices.SampleSize(data, 3)
		require.Len(t, got, 3)
		assert.Len(t, slices.Unique(got), 3)
		for _, v := range got {
			assert.Contains(t, data, v)
		}
	})

	t.Run("n beyond length returns everything", func(t *testing.T) {
		got := slices.SampleSize([]int{1, 2}, 10)
		assert.ElementsMatch(t, []int{1, 2}, got)
	})

	t.Run("non-positive n returns empty", func(t *testing.T) {
		assert.Empty(t, slices.SampleSize([]int{1, 2}, 0))
		assert.Empty(t, slices.SampleSize([]int{1, 2}, -1))
	})
}

func TestUnique(t *testing.T) {
	t.Parallel()

	t.Run("removes duplicates keeping first occurrence", func(t *testing.T) {
		assert.Equal(t, []int{3, 1, 2}, slices.Unique([]int{3, 1, 3, 2, 1}))
	})

	t.Run("by derived key", func(t *testing.T) {
		data := []record{{Type: "a", N: 1}, {Type: "a", N: 2}, {Type: "b", N: 3}}
		got := slices.UniqueBy(data, func(r record) string { return r.Type })
		assert.Equal(t, []record{{Type: "a", N: 1}, {Type: "b", N: 3}}, got)
	})
}

func TestSetOperations(t *testing.T) {
	t.Parallel()

	t.Run("difference", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, slices.Difference([]int{1, 2, 3, 4}, []int{2, 4, 5}))
	})

	t.Run("difference with empty exclusion", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, slices.Difference([]int{1, 2}, nil))
	})

	t.Run("intersection", func(t *testing.T) {
		assert.Equal(t, []int{2, 4}, slices.Intersection([]int{1, 2, 3, 4}, []int{4, 2, 9}))
	})

	t.Run("intersection deduplicates", func(t *testing.T) {
		assert.Equal(t, []int{2}, slices.Intersection([]int{2, 2, 2}, []int{2}))
	})
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Flatten([][]int{{1, 2}, {3, 4}, {5}}))
	assert.Empty(t, slices.Flatten([][]int{}))
}

func TestCompact(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{1, 2, 3}, slices.Compact([]int{0, 1, 0, 2, 3, 0}))
	assert.Equal(t, []string{"a"}, slices.Compact([]string{"", "a", ""}))
}

func TestPartition(t *testing.T) {
	t.Parallel()
	even, odd := slices.Partition([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []int{1, 3, 5}, odd)
}

func TestCountBy(t *testing.T) {
	t.Parallel()
	got := slices.CountBy([]string{"apple", "fig", "pear"}, func(s string) int { return len(s) })
	assert.Equal(t, map[int]int{5: 1, 3: 1, 4: 1}, got)
}

func TestKeyBy(t *testing.T) {
	t.Parallel()
	data := []record{{Type: "a", N: 1}, {Type: "b", N: 2}, {Type: "a", N: 3}}
	got := slices.KeyBy(data, func(r record) string { return r.Type })
	assert.Equal(t, map[string]record{
		"a": {Type: "a", N: 3},
		"b": {Type: "b", N: 2},
	}, got)
}
