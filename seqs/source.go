package seqs

import "iter"

// Of returns a sequence over the given values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// FromSlice returns a sequence over s.
// The slice is not copied: cursors observe later writes to its elements.
func FromSlice[T any](s []T) Seq[T] {
	return func() Cursor[T] {
		return &sliceCursor[T]{data: s}
	}
}

// Empty returns a sequence with no elements.
func Empty[T any]() Seq[T] {
	return FromSlice[T](nil)
}

type sliceCursor[T any] struct {
	data []T
	pos  int
}

func (c *sliceCursor[T]) HasNext() bool {
	return c.pos < len(c.data)
}

func (c *sliceCursor[T]) Next() (T, error) {
	if c.pos >= len(c.data) {
		return exhausted[T]("seqs.FromSlice: Next")
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

func (c *sliceCursor[T]) Remove() error {
	return unsupported("seqs.FromSlice: Remove")
}

// FromIter returns a sequence backed by a standard Go iterator.
// Every cursor restarts seq from the beginning, so seq itself must be re-iterable.
//
// The iterator is driven through iter.Pull. A cursor that is dropped before it is
// exhausted keeps that coroutine alive until Stop is called on it, see [IterCursor].
func FromIter[T any](seq iter.Seq[T]) Seq[T] {
	mustFunc("seqs.FromIter", "iterator", seq == nil)
	return func() Cursor[T] {
		return &IterCursor[T]{seq: seq}
	}
}

// IterCursor is the cursor type produced by FromIter.
type IterCursor[T any] struct {
	seq   iter.Seq[T]
	next  func() (T, bool)
	stop  func()
	buf   T
	state lookState
}

func (c *IterCursor[T]) HasNext() bool {
	if c.state != stateUnknown {
		return c.state == stateReady
	}
	if c.next == nil {
		c.next, c.stop = iter.Pull(c.seq)
	}
	v, ok := c.next()
	if !ok {
		c.Stop()
		c.state = stateDone
		return false
	}
	c.buf = v
	c.state = stateReady
	return true
}

func (c *IterCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return exhausted[T]("seqs.FromIter: Next")
	}
	v := c.buf
	var zero T
	c.buf = zero
	c.state = stateUnknown
	return v, nil
}

func (c *IterCursor[T]) Remove() error {
	return unsupported("seqs.FromIter: Remove")
}

// Stop releases the underlying iterator. Further calls to HasNext report false.
func (c *IterCursor[T]) Stop() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.state = stateDone
}
