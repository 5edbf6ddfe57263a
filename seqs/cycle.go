package seqs

// Cycle replays src indefinitely by opening a fresh source cursor for every lap.
// An empty src gives an empty cycle, and so does a source whose later laps come up empty.
func Cycle[T any](src Sequence[T]) Seq[T] {
	mustSource("seqs.Cycle", src)
	return func() Cursor[T] {
		var (
			lap     Cursor[T]
			yielded bool
		)
		return &noRemove[T]{
			Cursor: newLookahead(func() (T, bool) {
				for {
					if lap == nil {
						lap = src.Cursor()
						yielded = false
					}
					if v, ok := pull(lap); ok {
						yielded = true
						return v, true
					}
					if !yielded {
						var zero T
						return zero, false
					}
					lap = nil
				}
			}),
			op: "seqs.Cycle: Remove",
		}
	}
}
