package cursor

import "github.com/dshills/partseq/seq"

// Cursor is a positionless handle: a reference to the shared Arena plus
// the one slot it owns. The zero value is not a valid handle; handles
// come from NewRange or Clone.
type Cursor[C seq.Forward[C]] struct {
	arena *Arena[C]
	slot  Slot
}

// NewRange builds the shared arena for [begin, end) and returns handles
// at its start and one-past-end. All further handles over the range must
// come from Clone, so that every handle shares the one arena.
func NewRange[C seq.Forward[C]](begin, end C) (first, last Cursor[C]) {
	a := NewArena(begin, end)
	return Cursor[C]{arena: a, slot: a.NewBegin()}, Cursor[C]{arena: a, slot: a.NewEnd()}
}

// Clone returns an independent handle at the same logical position.
// The clone compares equal to c until either of them moves.
func (c Cursor[C]) Clone() Cursor[C] {
	return Cursor[C]{arena: c.arena, slot: c.arena.Dup(c.slot)}
}

// Release frees the handle's slot. The handle, and any plain copy of
// it, must not be used afterwards. Releasing is optional: it lets a
// later Clone reuse the slot, nothing more.
func (c Cursor[C]) Release() {
	c.arena.Free(c.slot)
}

// Base returns the underlying sequence cursor at the handle's position.
// Reads go through it: c.Base().At().
func (c Cursor[C]) Base() C {
	return c.arena.Base(c.slot)
}

// Advance moves the handle forward one element. The handle must not be
// at the end of the range.
func (c Cursor[C]) Advance() {
	c.arena.Inc(c.slot)
}

// AdvanceBy moves the handle forward n elements, one step at a time.
func (c Cursor[C]) AdvanceBy(n int) {
	c.arena.IncBy(c.slot, n)
}

// Equal reports whether both handles sit at the same position of the
// same range.
func (c Cursor[C]) Equal(other Cursor[C]) bool {
	return c.arena == other.arena && c.Base().Equal(other.Base())
}

// Retreat moves the handle back one element. The handle must not be at
// the start of the range.
func Retreat[C seq.Bidirectional[C]](c Cursor[C]) {
	Dec(c.arena, c.slot)
}

// RetreatBy moves the handle back n elements, one step at a time.
func RetreatBy[C seq.Bidirectional[C]](c Cursor[C], n int) {
	DecBy(c.arena, c.slot, n)
}
