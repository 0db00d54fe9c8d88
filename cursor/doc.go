// Package cursor provides positionless cursor handles over a sequence
// range.
//
// A positionless handle never stores an index or offset. All handles
// over one range share an Arena, which owns a partition.Partitioning and
// a slot table mapping each live handle to the index of a part it owns
// exclusively; a handle's position is, by definition, the begin boundary
// of its part. Moving a handle therefore means growing or shrinking a
// neighboring part, and duplicating one means splitting off a new empty
// part that shares the source handle's boundary. Two handles are equal
// exactly when their boundaries coincide, even though they always own
// structurally distinct parts.
//
// Handles do not have Go-native copy semantics: use Clone to duplicate
// one (the clone gets its own slot and moves independently) and Release
// to free it. Plain assignment merely transfers the handle, like a move;
// the source must not be used or Released afterwards. Releasing a handle
// tombstones its slot for reuse by a later Clone but leaves its dead
// empty part in place, so a forward-only range that is cloned at the end
// over and over accumulates empty parts without bound. That cost is
// inherent to the scheme and deliberately not hidden.
//
// Everything here is single-goroutine: every movement or duplication
// mutates partitioning state shared by all handles of the range.
//
// Usage:
//
//	begin, end := seq.SliceRange(data)
//	first, last := cursor.NewRange(begin, end)
//	for it := first.Clone(); !it.Equal(last); it.Advance() {
//		v := it.Base().At()
//		...
//	}
package cursor
