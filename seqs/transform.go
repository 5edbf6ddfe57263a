package seqs

// Map applies mapper to each element of src, yielding the mapped elements.
// Remove is forwarded to the source cursor.
func Map[T, R any](src Sequence[T], mapper func(T) R) Seq[R] {
	mustSource("seqs.Map", src)
	mustFunc("seqs.Map", "mapper", mapper == nil)
	return func() Cursor[R] {
		return &mapCursor[T, R]{src: src.Cursor(), mapper: mapper}
	}
}

type mapCursor[T, R any] struct {
	src    Cursor[T]
	mapper func(T) R
}

func (c *mapCursor[T, R]) HasNext() bool {
	return c.src.HasNext()
}

func (c *mapCursor[T, R]) Next() (R, error) {
	v, err := c.src.Next()
	if err != nil {
		var zero R
		return zero, err
	}
	return c.mapper(v), nil
}

func (c *mapCursor[T, R]) Remove() error {
	return c.src.Remove()
}

// Each invokes action on every element as it is pulled, yielding the element unchanged.
// It is useful for debugging (e.g., logging) or side effects.
// Remove is forwarded to the source cursor.
func Each[T any](src Sequence[T], action func(T)) Seq[T] {
	mustSource("seqs.Each", src)
	mustFunc("seqs.Each", "action", action == nil)
	return Map(src, func(v T) T {
		action(v)
		return v
	})
}

// Filter yields only the elements of src that satisfy predicate.
func Filter[T any](src Sequence[T], predicate func(T) bool) Seq[T] {
	mustSource("seqs.Filter", src)
	mustFunc("seqs.Filter", "predicate", predicate == nil)
	return func() Cursor[T] {
		return newFilterCursor(src.Cursor(), predicate)
	}
}

// Reject yields only the elements of src that do not satisfy predicate.
func Reject[T any](src Sequence[T], predicate func(T) bool) Seq[T] {
	mustSource("seqs.Reject", src)
	mustFunc("seqs.Reject", "predicate", predicate == nil)
	return func() Cursor[T] {
		return newFilterCursor(src.Cursor(), func(v T) bool { return !predicate(v) })
	}
}

type filterCursor[T any] struct {
	*lookahead[T]
	src Cursor[T]
}

func newFilterCursor[T any](src Cursor[T], keep func(T) bool) *filterCursor[T] {
	c := &filterCursor[T]{src: src}
	c.lookahead = newLookahead(func() (T, bool) {
		for {
			v, ok := pull(c.src)
			if !ok || keep(v) {
				return v, ok
			}
		}
	})
	return c
}

// Remove forwards to the source cursor, unless HasNext has already pulled past
// the element last returned by Next.
func (c *filterCursor[T]) Remove() error {
	if c.pending() {
		return illegalState("seqs.Filter: Remove after HasNext")
	}
	return c.src.Remove()
}

// Distinct yields the first occurrence of every element.
// Each cursor keeps its own set of seen elements, so memory grows with the number of unique elements.
func Distinct[T comparable](src Sequence[T]) Seq[T] {
	mustSource("seqs.Distinct", src)
	return func() Cursor[T] {
		seen := make(map[T]struct{})
		return newFilterCursor(src.Cursor(), func(v T) bool {
			if _, ok := seen[v]; ok {
				return false
			}
			seen[v] = struct{}{}
			return true
		})
	}
}

// Scan is similar to Reduce, but it yields the accumulated result at each step.
func Scan[T, R any](src Sequence[T], initial R, reducer func(R, T) R) Seq[R] {
	mustSource("seqs.Scan", src)
	mustFunc("seqs.Scan", "reducer", reducer == nil)
	return func() Cursor[R] {
		acc := initial
		c := &mapCursor[T, R]{src: src.Cursor(), mapper: func(v T) R {
			acc = reducer(acc, v)
			return acc
		}}
		return &noRemove[R]{Cursor: c, op: "seqs.Scan: Remove"}
	}
}

// FlatMap maps each element of src to a sequence and yields the elements of those sequences in order.
// A nil sequence from mapper counts as empty.
func FlatMap[T, R any](src Sequence[T], mapper func(T) Sequence[R]) Seq[R] {
	mustSource("seqs.FlatMap", src)
	mustFunc("seqs.FlatMap", "mapper", mapper == nil)
	return func() Cursor[R] {
		outer := src.Cursor()
		var inner Cursor[R]
		return newLookahead(func() (R, bool) {
			for {
				if inner != nil {
					if v, ok := pull(inner); ok {
						return v, true
					}
					inner = nil
				}
				s, ok := pull(outer)
				if !ok {
					var zero R
					return zero, false
				}
				if next := mapper(s); !isNil(next) {
					inner = next.Cursor()
				}
			}
		})
	}
}

// Concat yields the elements of every source in turn.
func Concat[T any](srcs ...Sequence[T]) Seq[T] {
	for _, src := range srcs {
		mustSource("seqs.Concat", src)
	}
	return FlatMap(FromSlice(srcs), func(s Sequence[T]) Sequence[T] { return s })
}

// noRemove hides the Remove of a wrapped cursor whose elements are not 1:1 with the source.
type noRemove[T any] struct {
	Cursor[T]
	op string
}

func (c *noRemove[T]) Remove() error {
	return unsupported(c.op)
}
