// Package algo holds convenience algorithms written against the
// positionless interfaces: they reshape or permute data purely through
// part boundaries and element swaps, never through stored positions.
package algo

import (
	"github.com/dshills/partseq/internal/check"
	"github.com/dshills/partseq/partition"
	"github.com/dshills/partseq/seq"
)

// SwapFirst exchanges the first element of part i with the first
// element of part j. Both parts must be non-empty. Swapping a part with
// itself leaves the data unchanged.
func SwapFirst[C interface {
	seq.Forward[C]
	seq.Swapper[C]
}](p *partition.Partitioning[C], i, j int) {
	check.Precondition(!p.IsEmpty(i), "swap: part %d is empty", i)
	check.Precondition(!p.IsEmpty(j), "swap: part %d is empty", j)

	bi, _ := p.Part(i)
	bj, _ := p.Part(j)
	bi.SwapWith(bj)
}
