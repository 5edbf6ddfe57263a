package eager_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqkit/eager"
	"seqkit/seqs"
)

func TestTransform(t *testing.T) {
	src := seqs.Range(1, 7, 1)
	odd := func(v int) bool { return v%2 != 0 }

	assert.Equal(t, []int{2, 4, 6, 8, 10, 12}, eager.Map(src, func(v int) int { return v * 2 }))
	assert.Equal(t, []int{1, 3, 5}, eager.Filter(src, odd))
	assert.Equal(t, []int{2, 4, 6}, eager.Reject(src, odd))
	assert.Equal(t, 21, eager.Reduce(src, 0, func(acc, v int) int { return acc + v }))

	var seen []int
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, eager.Each(src, func(v int) { seen = append(seen, v) }))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, seen)
}

func TestZipEnumerate(t *testing.T) {
	got := eager.Zip(seqs.Of(1, 2, 3, 4), seqs.Of("a", "b"))
	want := []seqs.Pair[int, string]{{V1: 1, V2: "a"}, {V1: 2, V2: "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Zip mismatch (-want +got):\n%s", diff)
	}

	e := eager.Enumerate(seqs.Of("x", "y"))
	assert.Equal(t, []seqs.Pair[int, string]{{V1: 0, V2: "x"}, {V1: 1, V2: "y"}}, e)
}

func TestFlowControl(t *testing.T) {
	src := seqs.Of(1, 2, 3, 10, 4)
	small := func(v int) bool { return v < 5 }

	assert.Equal(t, []int{1, 2}, eager.Take(src, 2))
	assert.Equal(t, []int{10, 4}, eager.Drop(src, 3))
	assert.Equal(t, []int{1, 2, 3}, eager.TakeWhile(src, small))
	assert.Equal(t, []int{1, 2, 3}, eager.TakeUntil(src, func(v int) bool { return v == 10 }))
	assert.Equal(t, []int{10, 4}, eager.DropWhile(src, small))
	assert.Equal(t, []int{3, 10, 4}, eager.DropUntil(src, func(v int) bool { return v == 3 }))
}

func TestBatch(t *testing.T) {
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}, eager.Batch(seqs.Range(0, 9, 1), 3))
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9}}, eager.Batch(seqs.Range(0, 10, 1), 3))
	assert.Nil(t, eager.Batch(seqs.Empty[int](), 3))
}

func TestCycle(t *testing.T) {
	src := seqs.Of("a", "b")
	assert.Equal(t, []string{"a", "b", "a", "b", "a", "b"}, eager.Cycle(src, 3))
	assert.Empty(t, eager.Cycle(src, 0))
	assert.Empty(t, eager.Cycle(seqs.Empty[string](), 5))
}

func TestPartition(t *testing.T) {
	calls := 0
	matched, unmatched := eager.Partition(seqs.Range(0, 6, 1), func(v int) bool {
		calls++
		return v < 2
	})
	assert.Equal(t, []int{0, 1}, matched)
	assert.Equal(t, []int{2, 3, 4, 5}, unmatched)
	assert.Equal(t, 6, calls, "predicate runs once per element")

	matched, unmatched = eager.Partition(seqs.Empty[int](), func(int) bool { return true })
	assert.Empty(t, matched)
	assert.Empty(t, unmatched)
}

func TestSlice(t *testing.T) {
	letters := seqs.FromSlice(strings.Split("abcdefghijk", ""))
	b := seqs.Bound
	tests := []struct {
		spec seqs.SliceSpec
		want string
	}{
		{seqs.SliceSpec{Stop: b(6), Step: b(2)}, "ace"},
		{seqs.SliceSpec{Start: b(4), Step: b(2)}, "egik"},
		{seqs.SliceSpec{}, "abcdefghijk"},
		{seqs.SliceSpec{Start: b(2), Stop: b(-2), Step: b(1)}, "cdefghi"},
		{seqs.SliceSpec{Start: b(7), Stop: b(1), Step: b(-2)}, "hfd"},
		{seqs.SliceSpec{Start: b(-3), Stop: b(3), Step: b(1)}, ""},
	}
	for _, tt := range tests {
		got := strings.Join(eager.Slice(letters, tt.spec), "")
		assert.Equal(t, tt.want, got, "Slice%s", tt.spec)
		// the lazy path agrees
		assert.Equal(t, tt.want, strings.Join(seqs.Collect(seqs.Slice(letters, tt.spec)), ""), "lazy Slice%s", tt.spec)
	}

	assert.Empty(t, eager.Slice(seqs.Empty[string](), seqs.SliceSpec{Start: b(0)}))
}

func TestSlice_ZeroStepFailsBeforePulling(t *testing.T) {
	pulled := false
	src := seqs.Each(seqs.Of(1, 2), func(int) { pulled = true })
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
		assert.False(t, pulled)
	}()
	eager.Slice(src, seqs.SliceSpec{Step: seqs.Bound(0)})
}

func TestContainers(t *testing.T) {
	src := seqs.Range(0, 4, 1)

	al := eager.ToArrayList(src)
	assert.Equal(t, 4, al.Size())
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(al.Values()))

	ll := eager.ToLinkedList(src)
	assert.Equal(t, "[0, 1, 2, 3]", ll.String())

	// containers are sequences themselves
	assert.Equal(t, []int{0, 2}, eager.Filter(ll, func(v int) bool { return v%2 == 0 }))
	assert.Equal(t, []int{0, 1, 2, 3}, eager.ToSlice(al))
}

func TestInvalidArguments(t *testing.T) {
	assertInvalid := func(name string, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			err, ok := r.(error)
			if assert.True(t, ok, "%s: expected an error panic, got %v", name, r) {
				assert.ErrorIs(t, err, seqs.ErrInvalidArgument, name)
			}
		}()
		fn()
	}
	src := seqs.Of(1)
	assertInvalid("Take", func() { eager.Take(src, -1) })
	assertInvalid("Drop", func() { eager.Drop(src, -1) })
	assertInvalid("Batch", func() { eager.Batch(src, 0) })
	assertInvalid("Cycle", func() { eager.Cycle(src, -1) })
	assertInvalid("Partition", func() { eager.Partition(src, nil) })
	assertInvalid("Map", func() { eager.Map[int, int](src, nil) })
}
