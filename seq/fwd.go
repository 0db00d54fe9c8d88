package seq

import "github.com/dshills/partseq/internal/check"

// FwdList is a minimal singly linked list. It exists to give the module
// a genuinely forward-only sequence: its cursors cannot step backward,
// so code compiled against them exercises the weakest capability tier.
type FwdList[T any] struct {
	head *fwdNode[T]
}

type fwdNode[T any] struct {
	value T
	next  *fwdNode[T]
}

// FwdListOf builds a list holding vals in order.
func FwdListOf[T any](vals ...T) *FwdList[T] {
	l := &FwdList[T]{}
	tail := &l.head
	for _, v := range vals {
		n := &fwdNode[T]{value: v}
		*tail = n
		tail = &n.next
	}
	return l
}

// Range returns cursors at the start and one-past-end of l.
func (l *FwdList[T]) Range() (begin, end FwdCursor[T]) {
	return FwdCursor[T]{node: l.head}, FwdCursor[T]{}
}

// Values returns the list's contents as a slice.
func (l *FwdList[T]) Values() []T {
	var vals []T
	for n := l.head; n != nil; n = n.next {
		vals = append(vals, n.value)
	}
	return vals
}

// FwdCursor is a forward-only cursor over a FwdList.
// A nil node marks the one-past-end position.
type FwdCursor[T any] struct {
	node *fwdNode[T]
}

// Next returns the cursor advanced by one element.
func (c FwdCursor[T]) Next() FwdCursor[T] {
	check.Precondition(c.node != nil, "forward cursor stepped past the end")
	return FwdCursor[T]{node: c.node.next}
}

// Equal reports whether both cursors mark the same position.
func (c FwdCursor[T]) Equal(other FwdCursor[T]) bool {
	return c.node == other.node
}

// At returns the element under the cursor.
func (c FwdCursor[T]) At() T {
	check.Precondition(c.node != nil, "forward cursor dereferenced at the end")
	return c.node.value
}

// Set stores v at the cursor's position.
func (c FwdCursor[T]) Set(v T) {
	check.Precondition(c.node != nil, "forward cursor written at the end")
	c.node.value = v
}

// SwapWith exchanges the elements under c and other.
func (c FwdCursor[T]) SwapWith(other FwdCursor[T]) {
	a, b := c.At(), other.At()
	c.Set(b)
	other.Set(a)
}
