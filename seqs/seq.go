package seqs

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is wrapped by every construction-time panic.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrExhausted is returned by Next when the cursor has no more elements.
	ErrExhausted = errors.New("sequence exhausted")
	// ErrUnsupported is returned by Remove on cursors that cannot map removal onto their source.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrIllegalState is returned by Remove when the source cursor no longer sits on the
	// element last returned by Next.
	ErrIllegalState = errors.New("illegal cursor state")
)

// Cursor is a single forward traversal over a sequence.
type Cursor[T any] interface {
	// HasNext reports whether Next will return an element.
	// It may be called any number of times without advancing the cursor.
	HasNext() bool

	// Next returns the next element, or an error wrapping ErrExhausted.
	Next() (T, error)

	// Remove deletes the element last returned by Next from the underlying source.
	Remove() error
}

// Sequence is a re-iterable source of elements.
// Every call to Cursor must return a cursor that is independent of all others.
type Sequence[T any] interface {
	Cursor() Cursor[T]
}

// Seq is the Sequence implementation returned by every constructor and adapter in this package.
type Seq[T any] func() Cursor[T]

// Cursor returns a fresh cursor over s.
func (s Seq[T]) Cursor() Cursor[T] {
	return s()
}

// Values adapts s to a standard Go iterator, so it can be used with range.
func (s Seq[T]) Values() iter.Seq[T] {
	return Values[T](s)
}

// Values adapts any Sequence to a standard Go iterator.
// Each range loop over the result opens its own cursor.
func Values[T any](src Sequence[T]) iter.Seq[T] {
	mustSource("seqs.Values", src)
	return func(yield func(T) bool) {
		c := src.Cursor()
		for c.HasNext() {
			v, err := c.Next()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// pull fetches one element from c, reporting false once c is exhausted.
func pull[T any](c Cursor[T]) (T, bool) {
	if !c.HasNext() {
		var zero T
		return zero, false
	}
	v, err := c.Next()
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

func exhausted[T any](op string) (T, error) {
	var zero T
	return zero, errors.Wrap(ErrExhausted, op)
}

func unsupported(op string) error {
	return errors.Wrap(ErrUnsupported, op)
}

func illegalState(op string) error {
	return errors.Wrap(ErrIllegalState, op)
}

// InvalidArgument builds the error that construction-time contract violations panic with.
func InvalidArgument(op string, format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: %s", op, fmt.Sprintf(format, args...))
}

func invalidArgument(op string, format string, args ...any) {
	panic(InvalidArgument(op, format, args...))
}

func mustSource[T any](op string, src Sequence[T]) {
	if isNil(src) {
		invalidArgument(op, "source is nil")
	}
}

// isNil also catches a nil Seq stored in a non-nil Sequence interface.
func isNil[T any](src Sequence[T]) bool {
	if src == nil {
		return true
	}
	s, ok := src.(Seq[T])
	return ok && s == nil
}

func mustFunc(op, name string, isNil bool) {
	if isNil {
		invalidArgument(op, "%s cannot be nil", name)
	}
}
