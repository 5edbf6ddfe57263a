package seqs

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// SliceSpec holds the optional start:stop:step bounds of a slice.
// A nil field means the bound was omitted. Negative indices count from the end.
type SliceSpec struct {
	Start *int
	Stop  *int
	Step  *int
}

// Bound returns a pointer to i, for filling SliceSpec fields inline.
func Bound(i int) *int {
	return &i
}

func (s SliceSpec) String() string {
	show := func(p *int) string {
		if p == nil {
			return ""
		}
		return fmt.Sprint(*p)
	}
	return fmt.Sprintf("[%s:%s:%s]", show(s.Start), show(s.Stop), show(s.Step))
}

// ResolvedSlice is a SliceSpec normalized against a concrete length.
// Step is never zero, and the selected indices are Start, Start+Step, ... up to Stop (exclusive).
type ResolvedSlice struct {
	Start int
	Stop  int
	Step  int
}

// Resolve normalizes s against a sequence of length n.
//
// An omitted start resolves to 0 and an omitted stop to n, whatever the sign of the step.
// Negative indices count from the end. Out of range indices are clamped: a start to the
// first or last index, a stop to one before the first or one past the last index.
func (s SliceSpec) Resolve(n int) (ResolvedSlice, error) {
	if n < 0 {
		return ResolvedSlice{}, errors.Wrapf(ErrInvalidArgument, "seqs.Resolve: negative length %d", n)
	}
	step := 1
	if s.Step != nil {
		if *s.Step == 0 {
			return ResolvedSlice{}, errors.Wrap(ErrInvalidArgument, "seqs.Resolve: step size cannot be zero")
		}
		step = *s.Step
	}
	return ResolvedSlice{
		Start: resolveIndex(s.Start, n, 0, 0),
		Stop:  resolveIndex(s.Stop, n, n, 1),
		Step:  step,
	}, nil
}

// resolveIndex applies the shared normalization rule. spread is 0 for a start
// and 1 for a stop, widening the clamps by one slot on either side.
func resolveIndex(i *int, n, defaultIndex, spread int) int {
	switch {
	case i == nil:
		return defaultIndex
	case *i < -n:
		return 0 - spread
	case *i < 0:
		return *i + n
	case *i >= n:
		return n - 1 + spread
	default:
		return *i
	}
}

// Len returns the number of indices r selects.
func (r ResolvedSlice) Len() int {
	span := r.Stop - r.Start
	if r.Step < 0 {
		span = -span
	}
	if span <= 0 {
		return 0
	}
	return int(uint(span-1)/r.stride()) + 1
}

// stride is the magnitude of Step, which for math.MinInt does not fit in an int.
func (r ResolvedSlice) stride() uint {
	if r.Step < 0 {
		return uint(-(r.Step + 1)) + 1
	}
	return uint(r.Step)
}

// at returns the k-th selected index, for k < Len.
func (r ResolvedSlice) at(k int) int {
	return r.Start + k*r.Step
}

// Indices yields the selected indices in order.
func (r ResolvedSlice) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for k := range r.Len() {
			if !yield(r.at(k)) {
				return
			}
		}
	}
}

// Pick returns the elements of data at the indices r selects.
// Indices outside data, which only arise for an empty data, are skipped.
func Pick[T any](data []T, r ResolvedSlice) []T {
	res := make([]T, 0, r.Len())
	for i := range r.Indices() {
		if i >= 0 && i < len(data) {
			res = append(res, data[i])
		}
	}
	return res
}

// Slice returns the elements of src selected by spec, with Python-like start:stop:step semantics
// except that out of range bounds clamp as described on [SliceSpec.Resolve].
//
// A positive step with non-negative (or omitted) start and stop streams straight from the source,
// so an infinite source may be sliced as long as Stop is set. Any other spec needs the length
// up front: each cursor then collects its own copy of src on the first pull.
func Slice[T any](src Sequence[T], spec SliceSpec) Seq[T] {
	mustSource("seqs.Slice", src)
	if _, err := spec.Resolve(0); err != nil {
		panic(errors.Wrap(err, "seqs.Slice"))
	}
	start, hasStart := deref(spec.Start)
	stop, hasStop := deref(spec.Stop)
	step, hasStep := deref(spec.Step)
	if !hasStep {
		step = 1
	}
	// copy the bounds so later writes through the caller's pointers have no effect
	frozen := SliceSpec{Step: Bound(step)}
	if hasStart {
		frozen.Start = Bound(start)
	}
	if hasStop {
		frozen.Stop = Bound(stop)
	}

	if step > 0 && start >= 0 && stop >= 0 {
		return func() Cursor[T] {
			c := &streamSliceCursor[T]{src: src.Cursor(), start: start, stop: stop, hasStop: hasStop, step: step}
			return &noRemove[T]{Cursor: newLookahead(c.fetch), op: "seqs.Slice: Remove"}
		}
	}
	return func() Cursor[T] {
		var (
			data   []T
			loaded bool
			r      ResolvedSlice
			k, n   int
		)
		return &noRemove[T]{
			Cursor: newLookahead(func() (T, bool) {
				if !loaded {
					data = Collect(src)
					r, _ = frozen.Resolve(len(data))
					n = r.Len()
					loaded = true
				}
				for k < n {
					i := r.at(k)
					k++
					if i >= 0 && i < len(data) {
						return data[i], true
					}
				}
				var zero T
				return zero, false
			}),
			op: "seqs.Slice: Remove",
		}
	}
}

func deref(p *int) (int, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// streamSliceCursor walks the source once, keeping the last element seen so that a start
// lying past the end can still resolve to the final element, as Resolve clamps it.
type streamSliceCursor[T any] struct {
	src      Cursor[T]
	start    int
	stop     int
	hasStop  bool
	step     int
	pos      int
	last     T
	tailDone bool
}

func (c *streamSliceCursor[T]) fetch() (T, bool) {
	for !c.hasStop || c.pos < c.stop {
		v, ok := pull(c.src)
		if !ok {
			return c.clampedTail()
		}
		i := c.pos
		c.pos++
		c.last = v
		if i >= c.start && (i-c.start)%c.step == 0 {
			return v, true
		}
	}
	// Stop reached with start never reached. The source length decides:
	// exactly stop elements clamps start onto the last one, anything longer selects nothing.
	if c.start >= c.stop && c.stop > 0 && !c.src.HasNext() {
		return c.clampedTail()
	}
	var zero T
	return zero, false
}

func (c *streamSliceCursor[T]) clampedTail() (T, bool) {
	if c.pos > 0 && c.start >= c.pos && !c.tailDone {
		c.tailDone = true
		return c.last, true
	}
	var zero T
	return zero, false
}
