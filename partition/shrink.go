package partition

import (
	"github.com/dshills/partseq/internal/check"
	"github.com/dshills/partseq/seq"
)

// Shrink moves the end boundary of part i back one element, giving the
// last element of part i to part i+1. Part i must not be empty.
//
// Shrinking walks a boundary backward, so it is a package function with
// a bidirectional constraint rather than a method: forward-only cursors
// cannot use it, and the compiler enforces that.
func Shrink[C seq.Bidirectional[C]](p *Partitioning[C], i int) {
	check.Precondition(0 <= i && i+1 < p.Count(), "shrink: part index %d out of range [0,%d)", i, p.Count()-1)
	check.Precondition(!p.IsEmpty(i), "shrink: part %d has no element to give", i)
	p.bounds[i+1] = p.bounds[i+1].Prev()
}

// ShrinkBy moves the end boundary of part i back n elements. Part i
// must hold at least n elements. Shrinking by 0 is a no-op.
// O(1) for random-access cursors, O(n) otherwise.
func ShrinkBy[C seq.Bidirectional[C]](p *Partitioning[C], i, n int) {
	check.Precondition(0 <= i && i+1 < p.Count(), "shrink: part index %d out of range [0,%d)", i, p.Count()-1)
	check.Precondition(n >= 0, "shrink: negative count %d", n)
	if ra, ok := any(p.bounds[i]).(seq.RandomAccess[C]); ok {
		check.Precondition(ra.Distance(p.bounds[i+1]) >= n, "shrink: part %d holds fewer than %d elements", i, n)
		p.bounds[i+1] = any(p.bounds[i+1]).(seq.RandomAccess[C]).Seek(-n)
		return
	}
	for ; n > 0; n-- {
		Shrink(p, i)
	}
}
