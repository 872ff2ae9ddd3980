// Package bfs provides breadth-first search over a word graph: the
// shortest word ladder between two words, and full traversals with depth,
// parent links and visit order.
//
// What
//
//   - ShortestPath(g, source, target): the first path to reach target in
//     FIFO order, which is a shortest one by edge count (all edges are unit).
//   - BFS(g, start): exhaustive traversal returning a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from word → distance (edges) from start
//   - Parent: map from word → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a word joins the frontier)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Visited on enqueue
//
//	A word is marked visited at the moment it is enqueued, never on
//	dequeue. Marking on dequeue lets one word sit in the frontier once per
//	predecessor, which on dense word graphs grows the frontier
//	combinatorially. With mark-on-enqueue every word is enqueued at most
//	once and expanded at most once.
//
// Absence
//
//	An unreachable target is not an error: ShortestPath returns a
//	PathResult with Found == false and a nil Path. A source equal to its
//	target yields the single-element Path [source] with zero Moves.
//
// Determinism
//
//	Neighbors are enqueued in the order the graph returns them; for
//	wordgraph.Graph that order is fixed, so results are reproducible.
//
// Complexity (V = words, E = neighbor pairs)
//
//   - Time:   O(V + E) searches, plus the graph's neighbor lookup cost
//   - Memory: O(V) for queue, Depth map, Parent map, visited set
//
// Usage
//
//	res, err := bfs.ShortestPath(g, "dog", "cat")
//	if err != nil {
//		// ErrGraphNil, ErrSourceNotFound, ErrTargetNotFound,
//		// ErrOptionViolation, ErrNeighbors, or hook/context errors
//	}
//	if !res.Found {
//		// no ladder exists
//	}
//	fmt.Println(res.Path, res.Path.Moves())
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook when a word is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a word.
//   - WithOnVisit(fn):             hook during visit; returning error aborts the search.
package bfs
