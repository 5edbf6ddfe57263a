package seqs

// Collect pulls a fresh cursor over src to completion and returns the elements in order.
// It never returns on an infinite source.
func Collect[T any](src Sequence[T]) []T {
	return AppendTo(nil, src)
}

// AppendTo appends every element of src to dst and returns the extended slice.
func AppendTo[T any](dst []T, src Sequence[T]) []T {
	mustSource("seqs.Collect", src)
	c := src.Cursor()
	for {
		v, ok := pull(c)
		if !ok {
			return dst
		}
		dst = append(dst, v)
	}
}

// ForEach calls action on every element of src.
func ForEach[T any](src Sequence[T], action func(T)) {
	mustFunc("seqs.ForEach", "action", action == nil)
	for v := range Values(src) {
		action(v)
	}
}

// Reduce aggregates the elements of src using the reducer function, starting from the initial value.
func Reduce[T, R any](src Sequence[T], initial R, reducer func(R, T) R) R {
	mustFunc("seqs.Reduce", "reducer", reducer == nil)
	acc := initial
	for v := range Values(src) {
		acc = reducer(acc, v)
	}
	return acc
}

// First returns the first element of src, pulling nothing beyond it.
func First[T any](src Sequence[T]) (T, bool) {
	mustSource("seqs.First", src)
	return pull(src.Cursor())
}

// Last walks src to the end and returns its final element.
func Last[T any](src Sequence[T]) (T, bool) {
	var last T
	found := false
	for v := range Values(src) {
		last = v
		found = true
	}
	return last, found
}

// Any reports whether some element satisfies predicate, stopping at the first that does.
func Any[T any](src Sequence[T], predicate func(T) bool) bool {
	mustFunc("seqs.Any", "predicate", predicate == nil)
	for v := range Values(src) {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies predicate. It is true for an empty src.
func All[T any](src Sequence[T], predicate func(T) bool) bool {
	mustFunc("seqs.All", "predicate", predicate == nil)
	for v := range Values(src) {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Count walks src and returns the number of elements.
func Count[T any](src Sequence[T]) int {
	count := 0
	for range Values(src) {
		count++
	}
	return count
}
