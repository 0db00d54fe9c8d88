// Package testgen generates randomly partitioned fixtures for the
// property-based tests across partseq.
package testgen

import (
	"slices"

	"pgregory.net/rapid"

	"github.com/dshills/partseq/internal/check"
	"github.com/dshills/partseq/partition"
	"github.com/dshills/partseq/seq"
)

// PartSizes draws sizes for the first k-1 of k parts jointly covering n
// elements; the size of the last part is implied. Sizes are differences
// of k+1 sorted cut points in [0, n], so any split is reachable and
// empty parts are common.
func PartSizes(t *rapid.T, n, k int) []int {
	if k <= 1 {
		return nil
	}
	cuts := make([]int, 0, k+1)
	cuts = append(cuts, 0, n)
	for i := 0; i < k-1; i++ {
		cuts = append(cuts, rapid.IntRange(0, n).Draw(t, "cut"))
	}
	slices.Sort(cuts)

	sizes := make([]int, k-1)
	for i := range sizes {
		sizes[i] = cuts[i+1] - cuts[i]
	}
	return sizes
}

// Split carves a freshly constructed partitioning into a random number
// of parts. p must still have a single part.
func Split[C seq.Forward[C]](t *rapid.T, p *partition.Partitioning[C]) {
	check.Precondition(p.Count() == 1, "split: partitioning already has %d parts", p.Count())
	n := p.Size(0)
	maxK := 4
	if n > 0 {
		maxK = min(n, 8)
	}
	k := rapid.IntRange(1, maxK).Draw(t, "parts")
	for _, size := range PartSizes(t, n, k) {
		p.AddPartBegin(p.Count() - 1)
		p.GrowBy(p.Count()-2, size)
	}
}

// SliceParts is a slice of ints with a random partitioning over it.
type SliceParts struct {
	Data []int
	P    *partition.Partitioning[seq.SliceCursor[int]]
}

// DrawSliceParts draws a SliceParts fixture.
func DrawSliceParts(t *rapid.T) SliceParts {
	data := rapid.SliceOfN(rapid.Int(), 0, 63).Draw(t, "data")
	begin, end := seq.SliceRange(data)
	p := partition.New(begin, end)
	Split(t, p)
	return SliceParts{Data: data, P: p}
}

// FwdParts is a forward-only list of ints with a random partitioning
// over it, for exercising the weakest capability tier.
type FwdParts struct {
	List *seq.FwdList[int]
	P    *partition.Partitioning[seq.FwdCursor[int]]
}

// DrawFwdParts draws a FwdParts fixture.
func DrawFwdParts(t *rapid.T) FwdParts {
	data := rapid.SliceOfN(rapid.Int(), 0, 63).Draw(t, "data")
	l := seq.FwdListOf(data...)
	begin, end := l.Range()
	p := partition.New(begin, end)
	Split(t, p)
	return FwdParts{List: l, P: p}
}
