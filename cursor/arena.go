package cursor

import (
	"fmt"
	"strings"

	"github.com/dshills/partseq/internal/check"
	"github.com/dshills/partseq/partition"
	"github.com/dshills/partseq/seq"
)

// Slot identifies one entry in an Arena's slot table.
type Slot int

// tombstone marks a freed slot, eligible for reuse by a later Dup.
const tombstone = -1

// Reserved sentinel slots tracking the fixed bounds of the range. They
// are created at construction, never handed out, never freed, and never
// part of the tombstone-reuse pool.
const (
	beginSlot = Slot(0)
	endSlot   = Slot(1)

	firstReusable = 2
)

// Arena is the bookkeeping shared by every handle over one range. It
// owns the partitioning plus the table mapping each slot to the index of
// the part whose begin boundary is that slot's logical position. A slot
// mapped to Count() sits at the one-past-end position; only the end
// sentinel ever does.
//
// Invariant: live slots own pairwise distinct part indices, one for each
// value in [0, Count()]. The table has exactly one owner per index.
type Arena[C seq.Forward[C]] struct {
	parts *partition.Partitioning[C]
	slots []int
}

// NewArena builds the arena for [begin, end): one part covering the
// whole range, the begin sentinel owning it, and the end sentinel at the
// one-past-end position.
func NewArena[C seq.Forward[C]](begin, end C) *Arena[C] {
	return &Arena[C]{
		parts: partition.New(begin, end),
		slots: []int{0, 1},
	}
}

// NewBegin allocates a slot at the start of the range.
func (a *Arena[C]) NewBegin() Slot { return a.Dup(beginSlot) }

// NewEnd allocates a slot at the one-past-end position.
func (a *Arena[C]) NewEnd() Slot { return a.Dup(endSlot) }

// part returns the slot's part index, validating the slot.
func (a *Arena[C]) part(s Slot) int {
	check.Precondition(0 <= s && int(s) < len(a.slots), "slot %d out of range [0,%d)", s, len(a.slots))
	p := a.slots[s]
	check.Precondition(p != tombstone, "slot %d used after release", s)
	return p
}

// Base returns the sequence cursor at the slot's logical position.
func (a *Arena[C]) Base(s Slot) C {
	p := a.part(s)
	if p == a.parts.Count() {
		_, end := a.parts.Part(p - 1)
		return end
	}
	begin, _ := a.parts.Part(p)
	return begin
}

// Dup allocates a new slot at the same logical position as s by
// splitting the partitioning: a fresh empty part is inserted in front of
// s's part and the new slot takes it, so the two slots own adjacent
// parts sharing one boundary. They compare equal and move independently
// from here on.
//
// The new slot reuses the first tombstoned table entry if there is one.
func (a *Arena[C]) Dup(s Slot) Slot {
	p := a.part(s)
	if p == a.parts.Count() {
		// One-past-end: there is no part p to insert in front of, so the
		// empty part goes after the last real part. Same topology: the
		// new part's begin boundary is the range's end.
		a.parts.AddPartEnd(p - 1)
	} else {
		a.parts.AddPartBegin(p)
	}

	// The insertion renumbered parts p and above, s's own included.
	for i, v := range a.slots {
		if v != tombstone && v >= p {
			a.slots[i] = v + 1
		}
	}

	for i := firstReusable; i < len(a.slots); i++ {
		if a.slots[i] == tombstone {
			a.slots[i] = p
			return Slot(i)
		}
	}
	a.slots = append(a.slots, p)
	return Slot(len(a.slots) - 1)
}

// Free tombstones the slot. Its dead empty part is not compacted away;
// it lingers until a later Dup reuses the table entry.
func (a *Arena[C]) Free(s Slot) {
	check.Precondition(s >= firstReusable, "slot %d is a reserved sentinel", s)
	a.part(s)
	a.slots[s] = tombstone
}

// Inc advances the slot's logical position by one element. The slot
// must not be at the end of the range.
func (a *Arena[C]) Inc(s Slot) {
	p := a.part(s)
	check.Precondition(!a.Base(s).Equal(a.Base(endSlot)), "slot %d advanced past the end", s)

	if !a.parts.IsEmpty(p) {
		// The slot's position is the boundary in front of part p;
		// growing part p-1 moves exactly that boundary forward.
		a.parts.Grow(p - 1)
		return
	}

	// Part p is empty: other slots' boundaries coincide here with
	// nothing between. Trade part indices with the owner of the next
	// non-empty part q, then grow as in the simple case. Both slots keep
	// their logical positions, since every boundary from p through q is
	// the same cursor.
	q := p + 1
	for q < a.parts.Count() && a.parts.IsEmpty(q) {
		q++
	}
	check.Precondition(q < a.parts.Count(), "slot %d advanced past the end", s)
	a.swapOwner(s, q)
	a.parts.Grow(q - 1)
}

// IncBy advances the slot n times. Advancing by 0 is a no-op.
func (a *Arena[C]) IncBy(s Slot, n int) {
	check.Precondition(n >= 0, "advance: negative count %d", n)
	for ; n > 0; n-- {
		a.Inc(s)
	}
}

// Dec moves the slot's logical position back by one element. The slot
// must not be at the start of the range.
func Dec[C seq.Bidirectional[C]](a *Arena[C], s Slot) {
	p := a.part(s)
	check.Precondition(!a.Base(s).Equal(a.Base(beginSlot)), "slot %d moved before the start", s)

	if !a.parts.IsEmpty(p - 1) {
		partition.Shrink(a.parts, p-1)
		return
	}

	// Mirror of the empty-part case in Inc: trade indices with the owner
	// of the part right after the nearest non-empty part before p, then
	// shrink that non-empty part.
	q := p - 1
	for q > 0 && a.parts.IsEmpty(q) {
		q--
	}
	check.Precondition(!a.parts.IsEmpty(q), "slot %d moved before the start", s)
	a.swapOwner(s, q+1)
	partition.Shrink(a.parts, q)
}

// DecBy moves the slot back n times. Moving by 0 is a no-op.
func DecBy[C seq.Bidirectional[C]](a *Arena[C], s Slot, n int) {
	check.Precondition(n >= 0, "retreat: negative count %d", n)
	for ; n > 0; n-- {
		Dec(a, s)
	}
}

// swapOwner trades part indices between s and the slot owning part q.
// By the ownership invariant exactly one such slot exists.
func (a *Arena[C]) swapOwner(s Slot, q int) {
	for i, v := range a.slots {
		if v == q {
			a.slots[i], a.slots[s] = a.slots[s], a.slots[i]
			return
		}
	}
	check.Precondition(false, "no slot owns part %d", q)
}

// String renders the slot table and part sizes, for debugging.
func (a *Arena[C]) String() string {
	var b strings.Builder
	b.WriteString("arena{parts: [")
	for i := 0; i < a.parts.Count(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", a.parts.Size(i))
	}
	b.WriteString("], slots: [")
	for i, v := range a.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		if v == tombstone {
			b.WriteByte('x')
		} else {
			fmt.Fprintf(&b, "%d", v)
		}
	}
	b.WriteString("]}")
	return b.String()
}
