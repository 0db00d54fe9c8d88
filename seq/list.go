package seq

import (
	"container/list"

	"github.com/dshills/partseq/internal/check"
)

// ListCursor is a bidirectional cursor over a container/list.List.
// A nil element marks the one-past-end position.
type ListCursor[T any] struct {
	list *list.List
	elem *list.Element
}

// ListRange returns cursors at the front and one-past-end of l.
// Every element of l must hold a T.
func ListRange[T any](l *list.List) (begin, end ListCursor[T]) {
	return ListCursor[T]{list: l, elem: l.Front()}, ListCursor[T]{list: l}
}

// Next returns the cursor advanced by one element.
func (c ListCursor[T]) Next() ListCursor[T] {
	check.Precondition(c.elem != nil, "list cursor stepped past the end")
	return ListCursor[T]{list: c.list, elem: c.elem.Next()}
}

// Prev returns the cursor moved back by one element.
func (c ListCursor[T]) Prev() ListCursor[T] {
	if c.elem == nil {
		back := c.list.Back()
		check.Precondition(back != nil, "list cursor stepped before the start")
		return ListCursor[T]{list: c.list, elem: back}
	}
	prev := c.elem.Prev()
	check.Precondition(prev != nil, "list cursor stepped before the start")
	return ListCursor[T]{list: c.list, elem: prev}
}

// Equal reports whether both cursors mark the same position.
func (c ListCursor[T]) Equal(other ListCursor[T]) bool {
	return c.elem == other.elem
}

// At returns the element under the cursor.
func (c ListCursor[T]) At() T {
	check.Precondition(c.elem != nil, "list cursor dereferenced at the end")
	return c.elem.Value.(T)
}

// Set stores v at the cursor's position.
func (c ListCursor[T]) Set(v T) {
	check.Precondition(c.elem != nil, "list cursor written at the end")
	c.elem.Value = v
}

// SwapWith exchanges the elements under c and other.
func (c ListCursor[T]) SwapWith(other ListCursor[T]) {
	a, b := c.At(), other.At()
	c.Set(b)
	other.Set(a)
}
