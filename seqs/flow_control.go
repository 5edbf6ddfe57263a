package seqs

// Take yields at most the first n elements of src.
func Take[T any](src Sequence[T], n int) Seq[T] {
	mustSource("seqs.Take", src)
	if n < 0 {
		invalidArgument("seqs.Take", "count must be >= 0, got %d", n)
	}
	return func() Cursor[T] {
		return &takeCursor[T]{src: src.Cursor(), remaining: n}
	}
}

type takeCursor[T any] struct {
	src       Cursor[T]
	remaining int
}

func (c *takeCursor[T]) HasNext() bool {
	// check remaining first so a spent cursor never touches its source
	return c.remaining > 0 && c.src.HasNext()
}

func (c *takeCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return exhausted[T]("seqs.Take: Next")
	}
	c.remaining--
	return c.src.Next()
}

func (c *takeCursor[T]) Remove() error {
	return unsupported("seqs.Take: Remove")
}

// Drop skips the first n elements of src and yields the rest.
// The skipped elements are pulled on the first HasNext or Next, not when the cursor is created.
func Drop[T any](src Sequence[T], n int) Seq[T] {
	mustSource("seqs.Drop", src)
	if n < 0 {
		invalidArgument("seqs.Drop", "count must be >= 0, got %d", n)
	}
	return func() Cursor[T] {
		return &dropCursor[T]{src: src.Cursor(), skip: n}
	}
}

type dropCursor[T any] struct {
	src  Cursor[T]
	skip int
}

func (c *dropCursor[T]) HasNext() bool {
	for c.skip > 0 {
		if _, ok := pull(c.src); !ok {
			c.skip = 0
			break
		}
		c.skip--
	}
	return c.src.HasNext()
}

func (c *dropCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return exhausted[T]("seqs.Drop: Next")
	}
	return c.src.Next()
}

func (c *dropCursor[T]) Remove() error {
	return unsupported("seqs.Drop: Remove")
}

// TakeWhile continues to yield elements from the sequence
// as long as the predicate returns true.
// The first element failing the predicate is consumed but not yielded.
func TakeWhile[T any](src Sequence[T], predicate func(T) bool) Seq[T] {
	mustSource("seqs.TakeWhile", src)
	mustFunc("seqs.TakeWhile", "predicate", predicate == nil)
	return takeWhile(src, predicate, true)
}

// TakeUntil yields elements until the first one satisfying predicate, which is not yielded.
func TakeUntil[T any](src Sequence[T], predicate func(T) bool) Seq[T] {
	mustSource("seqs.TakeUntil", src)
	mustFunc("seqs.TakeUntil", "predicate", predicate == nil)
	return takeWhile(src, predicate, false)
}

func takeWhile[T any](src Sequence[T], predicate func(T) bool, want bool) Seq[T] {
	return func() Cursor[T] {
		c := src.Cursor()
		return &noRemove[T]{
			Cursor: newLookahead(func() (T, bool) {
				v, ok := pull(c)
				if !ok || predicate(v) != want {
					// Condition not met, terminate the stream
					var zero T
					return zero, false
				}
				return v, true
			}),
			op: "seqs.TakeWhile: Remove",
		}
	}
}

// DropWhile skips elements from the sequence
// as long as the predicate returns true, then yields the rest.
func DropWhile[T any](src Sequence[T], predicate func(T) bool) Seq[T] {
	mustSource("seqs.DropWhile", src)
	mustFunc("seqs.DropWhile", "predicate", predicate == nil)
	return dropWhile(src, predicate, true)
}

// DropUntil skips elements until the first one satisfying predicate, then yields
// that element and everything after it.
func DropUntil[T any](src Sequence[T], predicate func(T) bool) Seq[T] {
	mustSource("seqs.DropUntil", src)
	mustFunc("seqs.DropUntil", "predicate", predicate == nil)
	return dropWhile(src, predicate, false)
}

func dropWhile[T any](src Sequence[T], predicate func(T) bool, want bool) Seq[T] {
	return func() Cursor[T] {
		c := src.Cursor()
		dropping := true
		return &noRemove[T]{
			Cursor: newLookahead(func() (T, bool) {
				for {
					v, ok := pull(c)
					if !ok {
						return v, false
					}
					if dropping {
						if predicate(v) == want {
							continue
						}
						dropping = false
					}
					return v, true
				}
			}),
			op: "seqs.DropWhile: Remove",
		}
	}
}
