package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a word with its BFS depth.
type queueItem struct {
	word  string
	depth int
}

// walker encapsulates mutable BFS state. A walker is owned by a single
// call; the graph itself is only read.
type walker struct {
	graph   Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult

	// target terminates the loop when dequeued, if hasTarget.
	target    string
	hasTarget bool
	found     bool
	expanded  int
}

// parseOptions applies opts over the defaults and surfaces any violation.
func parseOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker(g Graph, o Options) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool),
		res: &BFSResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
}

// BFS visits every word reachable from start, nearest first, and
// records each word's ladder distance and predecessor.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasWord(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	w := newWalker(g, o)
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// ShortestPath finds a shortest ladder from source to target in g.
// An unreachable target yields Found == false and a nil error.
// Returns ErrGraphNil, ErrSourceNotFound, ErrTargetNotFound,
// ErrOptionViolation, ErrNeighbors, hook errors or context errors.
func ShortestPath(g Graph, source, target string, opts ...Option) (*PathResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasWord(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if !g.HasWord(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}

	w := newWalker(g, o)
	w.target, w.hasTarget = target, true
	w.enqueue(source, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	res := &PathResult{Enqueued: len(w.visited), Expanded: w.expanded}
	if w.found {
		// target is in Depth because it was enqueued
		res.Path, _ = w.res.PathTo(target)
		res.Found = true
	}

	return res, nil
}

// enqueue marks word visited at depth d, records its parent, calls
// OnEnqueue and appends it to the queue. Visited is set here, not on
// dequeue, so no word enters the frontier twice.
func (w *walker) enqueue(word string, d int, parent string) {
	w.visited[word] = true
	w.res.Depth[word] = d
	if d > 0 {
		w.res.Parent[word] = parent
	}
	w.opts.OnEnqueue(word, d)
	w.queue = append(w.queue, queueItem{word: word, depth: d})
}

// loop drains the frontier in FIFO order. It stops early when the target
// is dequeued, a hook fails, a neighbor lookup fails or ctx ends.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.hasTarget && item.word == w.target {
			w.found = true
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the oldest frontier word and fires OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.word, item.depth)

	return item
}

// visit appends the word to Order and fires OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.word)
	if err := w.opts.OnVisit(item.word, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.word, err)
	}

	return nil
}

// enqueueNeighbors expands item unless that would exceed MaxDepth, then
// enqueues every allowed substitution not yet seen. Lookup failures wrap
// ErrNeighbors.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.word)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.word, err)
	}
	w.expanded++
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.word, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.word)
		}
	}

	return nil
}
