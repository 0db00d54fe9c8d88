// Package seq defines the cursor abstraction that the rest of partseq is
// built on, plus concrete cursors for common containers.
//
// A cursor is a small value marking one position in an underlying
// sequence. Cursors come in three capability tiers, each a superset of
// the previous:
//
//   - Forward: step toward the end, compare for equality
//   - Bidirectional: additionally step backward
//   - RandomAccess: additionally jump by an offset and measure distances
//
// The tiers are ordinary generic constraints, so code that needs a
// stronger tier states it in its signature and the requirement is checked
// at compile time. Code that is merely faster with a stronger tier
// upgrades via a type assertion at runtime, the same way io.Copy looks
// for io.WriterTo.
//
// Three adapters are provided: SliceCursor (random access), ListCursor
// over container/list (bidirectional), and FwdCursor over the package's
// own singly linked FwdList (forward-only; the standard library has no
// forward-only container).
//
// Cursors only ever reach positions inside their range plus the
// one-past-end position. Stepping outside the range panics.
package seq
