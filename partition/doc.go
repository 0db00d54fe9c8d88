// Package partition maintains a mutable division of a fixed sequence
// range into an ordered list of contiguous, non-overlapping parts.
//
// A Partitioning over [begin, end) starts with a single part covering
// the whole range and is reshaped exclusively through structural edits:
// growing or shrinking a part by moving its end boundary, splitting off
// new empty parts, and merging a part into its predecessor. No operation
// ever computes or stores an absolute position, and no operation changes
// which elements the parts jointly cover.
//
// Invariants, maintained by every operation:
//
//   - Count() >= 1
//   - boundaries never cross: each part's begin precedes or equals its end
//   - the parts jointly cover exactly [begin, end) at all times
//
// Operations that need the bidirectional tier (Shrink, ShrinkBy) are
// package-level functions with a seq.Bidirectional constraint, so using
// them with a forward-only cursor fails to compile. Size, GrowBy and
// ShrinkBy run in O(1) when the cursor supports random access, and step
// element by element otherwise.
//
// Preconditions are checked eagerly and panic when violated; see
// internal/check.
package partition
