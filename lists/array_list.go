package lists

import (
	"fmt"
	"iter"
	"slices"

	"github.com/pkg/errors"

	"seqkit/seqs"
)

type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return outOfBounds("ArrayList.Insert", index, len(al.data))
	}
	al.data = slices.Insert(al.data, index, value)
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, outOfBounds("ArrayList.Get", index, len(al.data))
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return outOfBounds("ArrayList.Set", index, len(al.data))
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, outOfBounds("ArrayList.Remove", index, len(al.data))
	}
	removed := al.data[index]
	// slices.Delete zeroes the vacated tail slot, letting it be GCed
	al.data = slices.Delete(al.data, index, index+1)
	return removed, nil
}

func (al *ArrayList[T]) RemoveIf(predicate func(T) bool) int {
	before := len(al.data)
	al.data = slices.DeleteFunc(al.data, predicate)
	return before - len(al.data)
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	clear(al.data)
	al.data = al.data[:0]
}

// ToSlice returns a copy of the elements.
func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

// Cursor returns a cursor over the list. Its Remove deletes the element last
// returned by Next, after which iteration continues with the element that followed it.
func (al *ArrayList[T]) Cursor() seqs.Cursor[T] {
	return &arrayCursor[T]{list: al, last: -1}
}

type arrayCursor[T any] struct {
	list *ArrayList[T]
	next int
	last int
}

func (c *arrayCursor[T]) HasNext() bool {
	return c.next < len(c.list.data)
}

func (c *arrayCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, errors.Wrap(seqs.ErrExhausted, "lists.ArrayList: Next")
	}
	c.last = c.next
	c.next++
	return c.list.data[c.last], nil
}

func (c *arrayCursor[T]) Remove() error {
	if c.last < 0 {
		return noElement("ArrayList")
	}
	if _, err := c.list.Remove(c.last); err != nil {
		return err
	}
	c.next = c.last
	c.last = -1
	return nil
}
