package wordgraph

import (
	"github.com/katalvlaran/wordladder/bfs"
)

// Components returns the connected components of g. Components appear in
// dictionary order of their first word; each lists words in BFS discovery
// order from that word. The labeling is computed on first call.
// Complexity: O(V + E) plus neighbor lookups, once.
func (g *Graph) Components() [][]string {
	g.compOnce.Do(g.label)

	out := make([][]string, len(g.comps))
	for i, c := range g.comps {
		out[i] = append([]string(nil), c...)
	}

	return out
}

// ComponentOf returns the component index of word, or -1 if word is not a vertex.
func (g *Graph) ComponentOf(word string) int {
	g.compOnce.Do(g.label)
	if i, ok := g.compOf[word]; ok {
		return i
	}

	return -1
}

// Connected reports whether a ladder exists between a and b.
// Unknown words are never connected.
func (g *Graph) Connected(a, b string) bool {
	ca, cb := g.ComponentOf(a), g.ComponentOf(b)

	return ca >= 0 && ca == cb
}

// label assigns every vertex to a component via repeated BFS.
func (g *Graph) label() {
	g.compOf = make(map[string]int, g.WordCount())
	for _, w := range g.index.Words() {
		if _, done := g.compOf[w]; done {
			continue
		}
		// w is a vertex and the default options are valid, so BFS cannot fail
		res, _ := bfs.BFS(g, w)
		id := len(g.comps)
		for _, m := range res.Order {
			g.compOf[m] = id
		}
		g.comps = append(g.comps, res.Order)
	}
}
