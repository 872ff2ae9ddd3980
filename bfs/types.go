package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the BFS start word is absent.
	ErrStartNotFound = errors.New("bfs: start word not found")

	// ErrSourceNotFound is returned when the search source is absent.
	ErrSourceNotFound = errors.New("bfs: source word not found")

	// ErrTargetNotFound is returned when the search target is absent.
	ErrTargetNotFound = errors.New("bfs: target word not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrNoPath is returned by BFSResult.PathTo for unreached words.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is the adjacency view BFS needs. *wordgraph.Graph satisfies it.
type Graph interface {
	// HasWord reports whether word is a vertex.
	HasWord(word string) bool

	// Neighbors returns the vertices adjacent to word.
	Neighbors(word string) ([]string, error)
}

// Option tunes a traversal or ladder search. A bad value (a negative
// depth cap) is held until BFS or ShortestPath runs, which then returns
// ErrOptionViolation before touching the graph.
type Option func(*Options)

// Options carries the search context, the depth cap, the edge filter and
// the three hooks fired as words move through the frontier.
type Options struct {
	// Ctx is checked once per dequeued word.
	Ctx context.Context

	// OnEnqueue fires when a word first enters the frontier, with its
	// ladder distance from the start. Each word fires at most once.
	OnEnqueue func(word string, depth int)

	// OnDequeue fires when a word leaves the frontier.
	OnDequeue func(word string, depth int)

	// OnVisit fires after OnDequeue; the target is visited before the
	// search stops. A non-nil error ends the search with that error.
	OnVisit func(word string, depth int) error

	// MaxDepth caps ladder length: no word further than MaxDepth
	// substitutions from the start is enqueued. 0 means no cap.
	MaxDepth int

	// FilterNeighbor vetoes single substitutions curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns a background context, no depth cap, every
// substitution allowed and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext bounds the search by ctx; a done ctx ends it with ctx.Err().
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue observes each word as it is discovered.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue observes each word as it is taken off the frontier.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit runs fn on each expanded word. Its error is wrapped with
// the word and returned from the search.
func WithOnVisit(fn func(word string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits ladders to d moves. A target further away is
// reported as not found. d == 0 removes the cap; d < 0 is rejected with
// ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor forbids substitutions for which fn returns false,
// e.g. to route a ladder around banned words.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: words visited, in visit sequence.
//   - Depth: map from word to its distance (in edges) from the start.
//   - Parent: map from word to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the path from the start word to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest string) (Path, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	// build reversed path
	path := make(Path, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathResult is the outcome of ShortestPath.
//
// Found == false with a nil Path means the target is unreachable; this is
// distinct from the trivial Path [source] when source == target.
type PathResult struct {
	Path  Path
	Found bool

	// Enqueued counts words that entered the frontier (each at most once).
	Enqueued int

	// Expanded counts words whose neighbors were fetched.
	Expanded int
}

// Moves returns the number of transformations, or -1 when not found.
func (r *PathResult) Moves() int {
	if !r.Found {
		return -1
	}

	return r.Path.Moves()
}
