package eager

import "seqkit/seqs"

// ==========================================
//  Transformations
// ==========================================

// Map transforms every element of src.
func Map[T, R any](src seqs.Sequence[T], mapper func(T) R) []R {
	return seqs.Collect[R](seqs.Map(src, mapper))
}

// Filter returns the elements of src satisfying predicate.
func Filter[T any](src seqs.Sequence[T], predicate func(T) bool) []T {
	return seqs.Collect[T](seqs.Filter(src, predicate))
}

// Reject returns the elements of src not satisfying predicate.
func Reject[T any](src seqs.Sequence[T], predicate func(T) bool) []T {
	return seqs.Collect[T](seqs.Reject(src, predicate))
}

// Each calls action on every element of src and returns the elements.
func Each[T any](src seqs.Sequence[T], action func(T)) []T {
	return seqs.Collect[T](seqs.Each(src, action))
}

// Zip pairs up the elements of a and b, truncated to the shorter of the two.
func Zip[T1, T2 any](a seqs.Sequence[T1], b seqs.Sequence[T2]) []seqs.Pair[T1, T2] {
	return seqs.Collect[seqs.Pair[T1, T2]](seqs.Zip(a, b))
}

// Enumerate pairs every element of src with its zero-based position.
func Enumerate[T any](src seqs.Sequence[T]) []seqs.Pair[int, T] {
	return seqs.Collect[seqs.Pair[int, T]](seqs.Enumerate(src))
}

// Reduce aggregates the elements of src using the reducer function, starting from the initial value.
func Reduce[T, R any](src seqs.Sequence[T], initial R, reducer func(R, T) R) R {
	return seqs.Reduce(src, initial, reducer)
}

// ==========================================
//  Flow Control
// ==========================================

func Take[T any](src seqs.Sequence[T], n int) []T {
	return seqs.Collect[T](seqs.Take(src, n))
}

func Drop[T any](src seqs.Sequence[T], n int) []T {
	return seqs.Collect[T](seqs.Drop(src, n))
}

func TakeWhile[T any](src seqs.Sequence[T], predicate func(T) bool) []T {
	return seqs.Collect[T](seqs.TakeWhile(src, predicate))
}

func TakeUntil[T any](src seqs.Sequence[T], predicate func(T) bool) []T {
	return seqs.Collect[T](seqs.TakeUntil(src, predicate))
}

func DropWhile[T any](src seqs.Sequence[T], predicate func(T) bool) []T {
	return seqs.Collect[T](seqs.DropWhile(src, predicate))
}

func DropUntil[T any](src seqs.Sequence[T], predicate func(T) bool) []T {
	return seqs.Collect[T](seqs.DropUntil(src, predicate))
}
