package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqkit/seqs"
)

func TestBatch(t *testing.T) {
	sizes := func(n, size int) []int {
		var out []int
		for group := range seqs.Batch(seqs.Range(0, n, 1), size).Values() {
			out = append(out, seqs.Count[int](group))
		}
		return out
	}
	assert.Equal(t, []int{3, 3, 3}, sizes(9, 3))
	assert.Equal(t, []int{3, 3, 3, 1}, sizes(10, 3))
	assert.Equal(t, []int{1, 1}, sizes(2, 1))
	assert.Nil(t, sizes(0, 3))

	chunks := seqs.Collect(seqs.Chunk(seqs.Range(0, 5, 1), 2))
	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4}}, chunks)
}

func TestBatch_GroupsReplay(t *testing.T) {
	c := seqs.Batch(seqs.Of("a", "b", "c", "d", "e"), 2).Cursor()

	first, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, seqs.Collect[string](first))
	// walking a group again replays it rather than skipping ahead
	assert.Equal(t, []string{"a", "b"}, seqs.Collect[string](first))

	second, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, seqs.Collect[string](second))
	assert.Equal(t, []string{"a", "b"}, seqs.Collect[string](first))
}

func TestBatch_Laziness(t *testing.T) {
	src, pulls := counted(-1)
	c := seqs.Batch(src, 4).Cursor()
	assert.Equal(t, 0, *pulls)
	require.True(t, c.HasNext())
	assert.Equal(t, 4, *pulls, "one group is pulled at a time")
}

func TestCycle(t *testing.T) {
	src := seqs.Of(1, 2, 3)
	got := seqs.Collect(seqs.Take(seqs.Cycle(src), 9))
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1, 2, 3}, got)

	assert.Empty(t, seqs.Collect(seqs.Cycle(seqs.Empty[int]())))
	assert.Equal(t, []int{7, 7, 7, 7}, seqs.Collect(seqs.Take(seqs.Cycle(seqs.Of(7)), 4)))

	t.Run("Laziness", func(t *testing.T) {
		src, pulls := counted(3)
		c := seqs.Cycle(src).Cursor()
		assert.Equal(t, 0, *pulls, "cycle must not pull at cursor creation")
		_, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, 1, *pulls)
	})
}

func TestPartition(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	matched, unmatched := seqs.Partition(seqs.Range(0, 7, 1), even)
	assert.Equal(t, []int{0, 2, 4, 6}, seqs.Collect(matched))
	assert.Equal(t, []int{1, 3, 5}, seqs.Collect(unmatched))

	t.Run("EachHalfWalksSource", func(t *testing.T) {
		src, pulls := counted(4)
		calls := 0
		matched, unmatched := seqs.Partition(src, func(v int) bool {
			calls++
			return even(v)
		})
		assert.Equal(t, []int{0, 2}, seqs.Collect(matched))
		assert.Equal(t, []int{1, 3}, seqs.Collect(unmatched))
		assert.Equal(t, 8, *pulls)
		assert.Equal(t, 8, calls)
	})

	t.Run("Infinite", func(t *testing.T) {
		src, pulls := counted(-1)
		matched, _ := seqs.Partition(src, even)
		assert.Equal(t, []int{0, 2, 4}, seqs.Collect(seqs.Take(matched, 3)))
		assert.Equal(t, 5, *pulls, "pulling one half must not drain the other")
	})
}

func TestGrouping_InvalidArguments(t *testing.T) {
	requireInvalidArgument(t, func() { seqs.Batch(seqs.Of(1), 0) })
	requireInvalidArgument(t, func() { seqs.Batch(seqs.Of(1), -3) })
	requireInvalidArgument(t, func() { seqs.Partition(seqs.Of(1), nil) })
	requireInvalidArgument(t, func() { seqs.Cycle[int](nil) })
}
