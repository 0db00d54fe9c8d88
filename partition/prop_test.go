package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/partseq/internal/testgen"
	"github.com/dshills/partseq/partition"
	"github.com/dshills/partseq/seq"
)

func totalSize[C seq.Forward[C]](p *partition.Partitioning[C]) int {
	total := 0
	for i := 0; i < p.Count(); i++ {
		total += p.Size(i)
	}
	return total
}

func TestSizeMatchesIsEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vp := testgen.DrawSliceParts(t)
		for i := 0; i < vp.P.Count(); i++ {
			require.Equal(t, vp.P.Size(i) == 0, vp.P.IsEmpty(i))
		}
	})
}

func TestPartsCoverWholeRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vp := testgen.DrawSliceParts(t)
		require.Equal(t, len(vp.Data), totalSize(vp.P))
	})
}

// Random structural edits never change the total number of covered
// elements, and never invert a part.
func TestCoverageInvariantUnderRandomOps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vp := testgen.DrawSliceParts(t)
		p := vp.P
		n := len(vp.Data)

		steps := rapid.IntRange(0, 40).Draw(t, "steps")
		for s := 0; s < steps; s++ {
			i := rapid.IntRange(0, p.Count()-1).Draw(t, "i")
			switch rapid.IntRange(0, 6).Draw(t, "op") {
			case 0:
				if i+1 < p.Count() && !p.IsEmpty(i+1) {
					p.Grow(i)
				}
			case 1:
				if i+1 < p.Count() && !p.IsEmpty(i) {
					partition.Shrink(p, i)
				}
			case 2:
				p.AddPartBegin(i)
			case 3:
				p.AddPartEnd(i)
			case 4:
				if i > 0 {
					p.RemovePart(i)
				}
			case 5:
				if i > 0 {
					p.TransferToPrev(i)
				}
			case 6:
				if i < p.Count()-1 {
					p.TransferToNext(i)
				}
			}

			require.GreaterOrEqual(t, p.Count(), 1)
			for j := 0; j < p.Count(); j++ {
				require.GreaterOrEqual(t, p.Size(j), 0, "part %d inverted", j)
			}
			require.Equal(t, n, totalSize(p))
		}
	})
}

func TestGrowThenShrinkIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vp := testgen.DrawSliceParts(t)
		p := vp.P

		var candidates []int
		for i := 0; i+1 < p.Count(); i++ {
			if !p.IsEmpty(i + 1) {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			t.Skip("no growable part")
		}
		i := rapid.SampledFrom(candidates).Draw(t, "i")

		before := make([]int, p.Count())
		for j := range before {
			before[j] = p.Size(j)
		}

		p.Grow(i)
		partition.Shrink(p, i)

		require.Equal(t, len(before), p.Count())
		for j, want := range before {
			require.Equal(t, want, p.Size(j), "part %d", j)
		}
	})
}

func TestBatchInsertMatchesRepeatedInsert(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Int(), 0, 32).Draw(t, "data")
		n := rapid.IntRange(0, 8).Draw(t, "n")

		b1, e1 := seq.SliceRange(data)
		p1 := partition.New(b1, e1)
		b2, e2 := seq.SliceRange(data)
		p2 := partition.New(b2, e2)

		p1.AddPartsEnd(0, n)
		for i := 0; i < n; i++ {
			p2.AddPartEnd(0)
		}

		require.Equal(t, p2.Count(), p1.Count())
		for i := 0; i < p1.Count(); i++ {
			require.Equal(t, p2.Size(i), p1.Size(i), "part %d", i)
		}
	})
}

func TestRemovePartMergesSizes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vp := testgen.DrawSliceParts(t)
		p := vp.P
		if p.Count() < 2 {
			t.Skip("nothing removable")
		}
		i := rapid.IntRange(1, p.Count()-1).Draw(t, "i")

		prev, cur := p.Size(i-1), p.Size(i)
		count := p.Count()
		p.RemovePart(i)

		require.Equal(t, count-1, p.Count())
		require.Equal(t, prev+cur, p.Size(i-1))
	})
}

// The same properties hold on the weakest tier, where every size is
// computed by walking.
func TestForwardOnlyCoverage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fp := testgen.DrawFwdParts(t)
		require.Equal(t, len(fp.List.Values()), totalSize(fp.P))
		for i := 0; i < fp.P.Count(); i++ {
			require.Equal(t, fp.P.Size(i) == 0, fp.P.IsEmpty(i))
		}
	})
}
