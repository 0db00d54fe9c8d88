package seq

import "github.com/dshills/partseq/internal/check"

// SliceCursor is a random-access cursor over a slice.
// All cursors over one range must come from the same SliceRange call
// (or be derived from its results); only then is Equal meaningful.
type SliceCursor[T any] struct {
	data []T
	idx  int
}

// SliceRange returns cursors at the start and one-past-end of s.
func SliceRange[T any](s []T) (begin, end SliceCursor[T]) {
	return SliceCursor[T]{data: s}, SliceCursor[T]{data: s, idx: len(s)}
}

// Next returns the cursor advanced by one element.
func (c SliceCursor[T]) Next() SliceCursor[T] {
	check.Precondition(c.idx < len(c.data), "slice cursor stepped past the end")
	return SliceCursor[T]{data: c.data, idx: c.idx + 1}
}

// Prev returns the cursor moved back by one element.
func (c SliceCursor[T]) Prev() SliceCursor[T] {
	check.Precondition(c.idx > 0, "slice cursor stepped before the start")
	return SliceCursor[T]{data: c.data, idx: c.idx - 1}
}

// Seek returns the cursor moved by n elements; n may be negative.
func (c SliceCursor[T]) Seek(n int) SliceCursor[T] {
	idx := c.idx + n
	check.Precondition(0 <= idx && idx <= len(c.data), "slice cursor sought to %d, range is [0,%d]", idx, len(c.data))
	return SliceCursor[T]{data: c.data, idx: idx}
}

// Distance returns the number of forward steps to other.
func (c SliceCursor[T]) Distance(other SliceCursor[T]) int {
	return other.idx - c.idx
}

// Equal reports whether both cursors mark the same position.
func (c SliceCursor[T]) Equal(other SliceCursor[T]) bool {
	return c.idx == other.idx
}

// At returns the element under the cursor.
func (c SliceCursor[T]) At() T {
	check.Precondition(c.idx < len(c.data), "slice cursor dereferenced at the end")
	return c.data[c.idx]
}

// Set stores v at the cursor's position.
func (c SliceCursor[T]) Set(v T) {
	check.Precondition(c.idx < len(c.data), "slice cursor written at the end")
	c.data[c.idx] = v
}

// SwapWith exchanges the elements under c and other.
func (c SliceCursor[T]) SwapWith(other SliceCursor[T]) {
	a, b := c.At(), other.At()
	c.Set(b)
	other.Set(a)
}
