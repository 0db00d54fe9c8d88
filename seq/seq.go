package seq

// Forward is the weakest cursor tier: a position that can step toward
// the end of its sequence and be compared with positions from the same
// range.
type Forward[C any] interface {
	// Next returns the cursor one position closer to the end.
	// The cursor must not already be at the end.
	Next() C

	// Equal reports whether both cursors mark the same position.
	// Comparing cursors from different ranges is undefined.
	Equal(C) bool
}

// Bidirectional cursors can also step backward.
type Bidirectional[C any] interface {
	Forward[C]

	// Prev returns the cursor one position closer to the start.
	// The cursor must not already be at the start.
	Prev() C
}

// RandomAccess cursors can jump by an offset and measure distances in
// constant time.
type RandomAccess[C any] interface {
	Bidirectional[C]

	// Seek returns the cursor moved by n positions; n may be negative.
	// The result must stay inside the range (one-past-end included).
	Seek(n int) C

	// Distance returns the number of forward steps from the cursor to
	// other, which must not precede it.
	Distance(other C) int
}

// Swapper is the element-exchange capability consumed by the algo
// package. Both cursors must point at elements, not at the end.
type Swapper[C any] interface {
	SwapWith(other C)
}

// Advance returns c stepped forward n times.
func Advance[C Forward[C]](c C, n int) C {
	for ; n > 0; n-- {
		c = c.Next()
	}
	return c
}

// Span counts the forward steps from one cursor to another by walking.
// It never terminates if to is not reachable from from.
func Span[C Forward[C]](from, to C) int {
	n := 0
	for !from.Equal(to) {
		from = from.Next()
		n++
	}
	return n
}
