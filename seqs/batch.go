package seqs

// Batch groups consecutive elements of src into sequences of size elements.
// The last group may be smaller if there are not enough elements.
//
// A group is pulled from src in full when it is reached, so every group is an
// ordinary re-iterable sequence that can be walked any number of times.
func Batch[T any](src Sequence[T], size int) Seq[Seq[T]] {
	mustSource("seqs.Batch", src)
	if size <= 0 {
		invalidArgument("seqs.Batch", "size must be > 0, got %d", size)
	}
	return func() Cursor[Seq[T]] {
		c := src.Cursor()
		return &noRemove[Seq[T]]{
			Cursor: newLookahead(func() (Seq[T], bool) {
				group := make([]T, 0, size)
				for len(group) < size {
					v, ok := pull(c)
					if !ok {
						break
					}
					group = append(group, v)
				}
				if len(group) == 0 {
					return nil, false
				}
				return FromSlice(group), true
			}),
			op: "seqs.Batch: Remove",
		}
	}
}

// Chunk is Batch with every group already collected into a slice.
func Chunk[T any](src Sequence[T], size int) Seq[[]T] {
	mustSource("seqs.Chunk", src)
	return Map(Batch(src, size), func(group Seq[T]) []T {
		return Collect[T](group)
	})
}
