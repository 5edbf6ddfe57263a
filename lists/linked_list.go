package lists

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"

	"seqkit/seqs"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// insertAfter links newNode right after at.
func (ll *LinkedList[T]) insertAfter(at, newNode *node[T]) {
	newNode.prev = at
	newNode.next = at.next
	at.next.prev = newNode
	at.next = newNode
	ll.size++
}

// findNodeAt returns the node at index, or the tail sentinel when index == size.
// Bounds checking should be done by the caller.
func (ll *LinkedList[T]) findNodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tailSentinel
	}
	// walk from whichever end is closer
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// unlink removes n from the list and returns its value.
// The node's pointers are cleared so a cursor can tell it has been removed.
func (ll *LinkedList[T]) unlink(n *node[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	res := n.val
	var zero T
	n.prev, n.next, n.val = nil, nil, zero
	ll.size--
	return res
}

func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.insertAfter(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

func (ll *LinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index > ll.size {
		return outOfBounds("LinkedList.Insert", index, ll.size)
	}
	ll.insertAfter(ll.findNodeAt(index).prev, &node[T]{val: value})
	return nil
}

func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, outOfBounds("LinkedList.Get", index, ll.size)
	}
	return ll.findNodeAt(index).val, nil
}

func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return outOfBounds("LinkedList.Set", index, ll.size)
	}
	ll.findNodeAt(index).val = value
	return nil
}

func (ll *LinkedList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= ll.size {
		var zero T
		return zero, outOfBounds("LinkedList.Remove", index, ll.size)
	}
	return ll.unlink(ll.findNodeAt(index)), nil
}

// RemoveIf removes all elements satisfying the predicate in a single pass.
func (ll *LinkedList[T]) RemoveIf(predicate func(T) bool) int {
	removed := 0
	for current := ll.headSentinel.next; current != ll.tailSentinel; {
		next := current.next
		if predicate(current.val) {
			ll.unlink(current)
			removed++
		}
		current = next
	}
	return removed
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	for current := ll.headSentinel.next; current != ll.tailSentinel; {
		next := current.next
		ll.unlink(current)
		current = next
	}
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		if current != ll.headSentinel.next {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", current.val)
	}
	sb.WriteString("]")
	return sb.String()
}

// Cursor returns a cursor over the list whose Remove unlinks the node last returned by Next.
func (ll *LinkedList[T]) Cursor() seqs.Cursor[T] {
	return &linkedCursor[T]{list: ll, next: ll.headSentinel.next}
}

type linkedCursor[T any] struct {
	list *LinkedList[T]
	next *node[T]
	last *node[T]
}

func (c *linkedCursor[T]) HasNext() bool {
	// a nil next means the node the cursor stood on was removed behind its back
	return c.next != nil && c.next != c.list.tailSentinel
}

func (c *linkedCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, errors.Wrap(seqs.ErrExhausted, "lists.LinkedList: Next")
	}
	c.last = c.next
	c.next = c.next.next
	return c.last.val, nil
}

func (c *linkedCursor[T]) Remove() error {
	// unlink clears next, so a node removed elsewhere is caught here too
	if c.last == nil || c.last.next == nil {
		return noElement("LinkedList")
	}
	c.list.unlink(c.last)
	c.last = nil
	return nil
}
