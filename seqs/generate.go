package seqs

import "golang.org/x/exp/constraints"

// Iota returns the infinite sequence start, start+1, start+2, ...
// It wraps around silently on overflow.
func Iota[N constraints.Integer](start N) Seq[N] {
	return func() Cursor[N] {
		return &counterCursor[N]{cur: start, step: 1}
	}
}

// Range returns the arithmetic progression from start towards end (exclusive) by step.
// A zero step panics.
func Range[N constraints.Integer](start, end, step N) Seq[N] {
	if step == 0 {
		invalidArgument("seqs.Range", "step cannot be zero")
	}
	return func() Cursor[N] {
		return &counterCursor[N]{cur: start, end: end, step: step, bounded: true}
	}
}

type counterCursor[N constraints.Integer] struct {
	cur, end, step N
	bounded        bool
	done           bool
}

func (c *counterCursor[N]) HasNext() bool {
	if c.done {
		return false
	}
	if !c.bounded {
		return true
	}
	return c.step > 0 && c.cur < c.end || c.step < 0 && c.cur > c.end
}

func (c *counterCursor[N]) Next() (N, error) {
	if !c.HasNext() {
		return exhausted[N]("seqs.Range: Next")
	}
	v := c.cur
	next := c.cur + c.step
	// stepping past the type's limits ends a bounded range instead of wrapping
	if c.bounded && (c.step > 0 && next < c.cur || c.step < 0 && next > c.cur) {
		c.done = true
	}
	c.cur = next
	return v, nil
}

func (c *counterCursor[N]) Remove() error {
	return unsupported("seqs.Range: Remove")
}

// Repeat returns a sequence yielding value count times.
func Repeat[T any](value T, count int) Seq[T] {
	if count < 0 {
		invalidArgument("seqs.Repeat", "count must be >= 0, got %d", count)
	}
	return Take(Map(Iota(0), func(int) T { return value }), count)
}
