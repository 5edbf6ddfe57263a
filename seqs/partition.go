package seqs

// Partition splits src into the elements satisfying predicate and those that do not.
//
// Both halves are lazy and independent: pulling from one never buffers elements for
// the other. The price is that predicate runs once per element for each half walked,
// and each half walks src on its own: a side-effecting source repeats its effects per half.
// Use eager.Partition when src must be read exactly once.
func Partition[T any](src Sequence[T], predicate func(T) bool) (matched, unmatched Seq[T]) {
	mustSource("seqs.Partition", src)
	mustFunc("seqs.Partition", "predicate", predicate == nil)
	return Filter(src, predicate), Reject(src, predicate)
}
