package eager

import (
	"seqkit/lists"
	"seqkit/seqs"
)

// Batch splits src into groups of size elements; the last group may be shorter.
func Batch[T any](src seqs.Sequence[T], size int) [][]T {
	return seqs.Collect[[]T](seqs.Chunk(src, size))
}

// Cycle returns laps consecutive copies of src.
// src is walked once and the copies are made from that snapshot.
func Cycle[T any](src seqs.Sequence[T], laps int) []T {
	if laps < 0 {
		panic(seqs.InvalidArgument("eager.Cycle", "laps must be >= 0, got %d", laps))
	}
	once := seqs.Collect(src)
	res := make([]T, 0, len(once)*laps)
	for range laps {
		res = append(res, once...)
	}
	return res
}

// Partition splits src in a single pass into the elements satisfying predicate and the rest.
func Partition[T any](src seqs.Sequence[T], predicate func(T) bool) (matched, unmatched []T) {
	if predicate == nil {
		panic(seqs.InvalidArgument("eager.Partition", "predicate cannot be nil"))
	}
	matched, unmatched = []T{}, []T{}
	seqs.ForEach(src, func(v T) {
		if predicate(v) {
			matched = append(matched, v)
		} else {
			unmatched = append(unmatched, v)
		}
	})
	return matched, unmatched
}

// Slice materializes src once and returns the elements selected by spec.
// It panics if spec has a zero step.
func Slice[T any](src seqs.Sequence[T], spec seqs.SliceSpec) []T {
	// reject a zero step before touching src
	if _, err := spec.Resolve(0); err != nil {
		panic(err)
	}
	data := seqs.Collect(src)
	r, _ := spec.Resolve(len(data))
	return seqs.Pick(data, r)
}

// ==========================================
//  Containers
// ==========================================

// ToSlice drains src into a new slice.
func ToSlice[T any](src seqs.Sequence[T]) []T {
	return seqs.Collect(src)
}

// ToArrayList drains src into a new ArrayList.
func ToArrayList[T any](src seqs.Sequence[T]) *lists.ArrayList[T] {
	data := seqs.Collect(src)
	l := lists.NewArrayList[T](len(data))
	l.Add(data...)
	return l
}

// ToLinkedList drains src into a new LinkedList.
func ToLinkedList[T any](src seqs.Sequence[T]) *lists.LinkedList[T] {
	l := lists.NewLinkedList[T]()
	seqs.ForEach(src, func(v T) { l.Add(v) })
	return l
}
