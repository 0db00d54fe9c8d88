package partition

import (
	"slices"

	"github.com/dshills/partseq/internal/check"
	"github.com/dshills/partseq/seq"
)

// Partitioning divides the range [begin, end) into Count() contiguous
// parts. Part i is the half-open range between boundary i and boundary
// i+1; the first boundary is the fixed start of the range and the last
// is its fixed end.
//
// The underlying sequence must stay valid, and the cursors given to New
// must not be invalidated, for the lifetime of the Partitioning.
type Partitioning[C seq.Forward[C]] struct {
	bounds []C
}

// New returns a partitioning of [begin, end) with a single part.
func New[C seq.Forward[C]](begin, end C) *Partitioning[C] {
	bounds := make([]C, 0, 10)
	bounds = append(bounds, begin, end)
	return &Partitioning[C]{bounds: bounds}
}

// Count returns the number of parts, always at least 1.
func (p *Partitioning[C]) Count() int {
	return len(p.bounds) - 1
}

// Part returns the cursors delimiting part i.
func (p *Partitioning[C]) Part(i int) (begin, end C) {
	check.Precondition(0 <= i && i < p.Count(), "part index %d out of range [0,%d)", i, p.Count())
	return p.bounds[i], p.bounds[i+1]
}

// IsEmpty reports whether part i holds no elements.
func (p *Partitioning[C]) IsEmpty(i int) bool {
	begin, end := p.Part(i)
	return begin.Equal(end)
}

// Size returns the number of elements in part i.
// O(1) for random-access cursors, O(size) otherwise.
func (p *Partitioning[C]) Size(i int) int {
	begin, end := p.Part(i)
	if ra, ok := any(begin).(seq.RandomAccess[C]); ok {
		return ra.Distance(end)
	}
	return seq.Span(begin, end)
}

// Grow moves the end boundary of part i forward one element, taking the
// first element of part i+1. Part i+1 must not be empty.
func (p *Partitioning[C]) Grow(i int) {
	check.Precondition(0 <= i && i+1 < p.Count(), "grow: part index %d out of range [0,%d)", i, p.Count()-1)
	check.Precondition(!p.IsEmpty(i+1), "grow: part %d has no element to give", i+1)
	p.bounds[i+1] = p.bounds[i+1].Next()
}

// GrowBy moves the end boundary of part i forward n elements. Part i+1
// must hold at least n elements. Growing by 0 is a no-op.
// O(1) for random-access cursors, O(n) otherwise.
func (p *Partitioning[C]) GrowBy(i, n int) {
	check.Precondition(0 <= i && i+1 < p.Count(), "grow: part index %d out of range [0,%d)", i, p.Count()-1)
	check.Precondition(n >= 0, "grow: negative count %d", n)
	if ra, ok := any(p.bounds[i+1]).(seq.RandomAccess[C]); ok {
		check.Precondition(ra.Distance(p.bounds[i+2]) >= n, "grow: part %d holds fewer than %d elements", i+1, n)
		p.bounds[i+1] = ra.Seek(n)
		return
	}
	for ; n > 0; n-- {
		p.Grow(i)
	}
}

// TransferToPrev moves all elements of part i into part i-1, leaving
// part i empty. O(1).
func (p *Partitioning[C]) TransferToPrev(i int) {
	check.Precondition(0 < i && i < p.Count(), "transfer: part index %d out of range (0,%d)", i, p.Count())
	p.bounds[i] = p.bounds[i+1]
}

// TransferToNext moves all elements of part i into part i+1, leaving
// part i empty. O(1).
func (p *Partitioning[C]) TransferToNext(i int) {
	check.Precondition(0 <= i && i < p.Count()-1, "transfer: part index %d out of range [0,%d)", i, p.Count()-1)
	p.bounds[i+1] = p.bounds[i]
}

// AddPartBegin inserts a new empty part in front of part i by
// duplicating its begin boundary. Parts at index i and above shift up
// by one.
func (p *Partitioning[C]) AddPartBegin(i int) {
	check.Precondition(0 <= i && i < p.Count(), "add part: index %d out of range [0,%d)", i, p.Count())
	p.bounds = slices.Insert(p.bounds, i, p.bounds[i])
}

// AddPartEnd inserts a new empty part right after part i by duplicating
// its end boundary. Parts above index i shift up by one.
func (p *Partitioning[C]) AddPartEnd(i int) {
	check.Precondition(0 <= i && i < p.Count(), "add part: index %d out of range [0,%d)", i, p.Count())
	p.bounds = slices.Insert(p.bounds, i+1, p.bounds[i+1])
}

// AddPartsBegin inserts n new empty parts in front of part i,
// equivalent to calling AddPartBegin(i) n times. Inserting 0 parts is a
// no-op.
func (p *Partitioning[C]) AddPartsBegin(i, n int) {
	check.Precondition(0 <= i && i < p.Count(), "add parts: index %d out of range [0,%d)", i, p.Count())
	check.Precondition(n >= 0, "add parts: negative count %d", n)
	p.bounds = slices.Insert(p.bounds, i, repeat(p.bounds[i], n)...)
}

// AddPartsEnd inserts n new empty parts right after part i, equivalent
// to calling AddPartEnd(i) n times. Inserting 0 parts is a no-op.
func (p *Partitioning[C]) AddPartsEnd(i, n int) {
	check.Precondition(0 <= i && i < p.Count(), "add parts: index %d out of range [0,%d)", i, p.Count())
	check.Precondition(n >= 0, "add parts: negative count %d", n)
	p.bounds = slices.Insert(p.bounds, i+1, repeat(p.bounds[i+1], n)...)
}

// RemovePart deletes the boundary between parts i-1 and i, merging part
// i's elements into part i-1. Parts above index i shift down by one.
func (p *Partitioning[C]) RemovePart(i int) {
	check.Precondition(0 < i && i < p.Count(), "remove part: index %d out of range (0,%d)", i, p.Count())
	p.bounds = slices.Delete(p.bounds, i, i+1)
}

func repeat[C any](c C, n int) []C {
	r := make([]C, n)
	for i := range r {
		r[i] = c
	}
	return r
}
