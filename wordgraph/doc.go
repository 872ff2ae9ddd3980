// Package wordgraph wraps a pattern.Index into an immutable, queryable
// word graph: vertices are words of one fixed length and edges join words
// that differ in exactly one rune position.
//
// Construction
//
//	Build filters a raw dictionary to the requested length, drops words that
//	contain the wildcard rune, injects caller-supplied words (typically the
//	source and target of a search) that the dictionary lacks, and indexes the
//	result. Neighbor sets are computed lazily from the index by default;
//	WithEagerNeighbors precomputes them all at build time.
//
// Guarantees
//
//   - Neighbors(w) never contains w and never repeats a word.
//   - The relation is symmetric: b ∈ Neighbors(a) ⇔ a ∈ Neighbors(b).
//   - Neighbor order is deterministic: by pattern position, then
//     dictionary order within a bucket.
//   - A Graph is never mutated after Build; concurrent readers are safe.
//
// An empty filtered dictionary is not an error: the graph simply has no
// edges and every search over it dead-ends.
//
// Components
//
//	Components labels connected components ("forests") with repeated
//	breadth-first traversals. The labeling is computed once, on first use.
package wordgraph
