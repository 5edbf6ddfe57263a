package lists

import (
	"iter"

	"github.com/pkg/errors"

	"seqkit/seqs"
)

var ErrIndexOutOfBounds = errors.New("index out of bounds")

// List is a mutable ordered container that is also a seqs.Sequence.
// Cursors obtained from a List support Remove, which deletes the element last
// returned by Next from the list itself.
type List[T any] interface {
	seqs.Sequence[T]

	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Insert inserts an element at the specified index
	// Returns an error if index < 0 or index > Size()
	Insert(index int, value T) error

	// Remove removes and returns the element at the specified index
	// Returns an error if index is out of bounds
	Remove(index int) (T, error)

	// Set modifies the element at the specified index
	Set(index int, value T) error

	// Get retrieves the element at the specified index
	Get(index int) (T, error)

	Size() int
	IsEmpty() bool
	Clear()

	// RemoveIf removes all elements satisfying the predicate and returns how many were removed.
	RemoveIf(predicate func(T) bool) int

	// Values iterates the list without going through a cursor.
	Values() iter.Seq[T]
}

func outOfBounds(op string, index, size int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "lists.%s: index %d, size %d", op, index, size)
}

func noElement(op string) error {
	return errors.Wrapf(seqs.ErrIllegalState, "lists.%s: Remove without a preceding Next", op)
}
