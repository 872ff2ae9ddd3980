package wordgraph

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/pattern"
)

// Graph is an immutable word graph over words of one rune length.
// The zero value is not usable; construct with Build.
type Graph struct {
	index    *pattern.Index
	length   int
	injected []string
	skipped  int

	// adj is populated only when built with WithEagerNeighbors.
	adj map[string][]string

	compOnce sync.Once
	comps    [][]string
	compOf   map[string]int
}

// Build filters dictionary to words of exactly length runes, injects any
// WithInjected words that are missing, and indexes the result.
//
// Returns ErrInvalidLength if length < 1 and ErrInvalidInjection if an
// injected word has the wrong length, is not valid UTF-8 or contains the
// wildcard. Dictionary words that are not valid UTF-8 or contain the
// wildcard are skipped, not rejected.
// Complexity: O(n²·D) lazy, plus O(n²·D + Σdeg) eager.
func Build(dictionary []string, length int, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	start := time.Now()

	words := make([]string, 0, len(dictionary)/4)
	present := make(map[string]struct{})
	skipped := 0
	for _, w := range dictionary {
		if utf8.RuneCountInString(w) != length {
			continue
		}
		if !utf8.ValidString(w) || strings.ContainsRune(w, o.Wildcard) {
			skipped++
			continue
		}
		words = append(words, w)
		present[w] = struct{}{}
	}

	var injected []string
	for _, w := range o.Inject {
		if n := utf8.RuneCountInString(w); n != length {
			return nil, fmt.Errorf("%w: %q has %d runes, want %d", ErrInvalidInjection, w, n, length)
		}
		if !utf8.ValidString(w) {
			return nil, fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidInjection, w)
		}
		if strings.ContainsRune(w, o.Wildcard) {
			return nil, fmt.Errorf("%w: %q contains wildcard %q", ErrInvalidInjection, w, o.Wildcard)
		}
		if _, ok := present[w]; ok {
			continue
		}
		present[w] = struct{}{}
		words = append(words, w)
		injected = append(injected, w)
	}

	idx, err := pattern.BuildIndex(words, pattern.WithWildcard(o.Wildcard))
	if err != nil {
		// words are length-checked, valid UTF-8 and wildcard-free here
		return nil, fmt.Errorf("wordgraph: index: %w", err)
	}

	g := &Graph{
		index:    idx,
		length:   length,
		injected: injected,
		skipped:  skipped,
	}
	if o.Eager {
		g.adj = make(map[string][]string, idx.WordCount())
		for _, w := range idx.Words() {
			g.adj[w] = g.collect(w)
		}
	}

	o.Logger.Debug().
		Int("length", length).
		Int("words", idx.WordCount()).
		Int("patterns", idx.PatternCount()).
		Int("skipped", skipped).
		Strs("injected", injected).
		Bool("eager", o.Eager).
		Dur("duration", time.Since(start)).
		Msg("word graph built")

	return g, nil
}

// collect unions w's pattern buckets, dropping w and repeats.
// w must be a vertex.
func (g *Graph) collect(w string) []string {
	buckets, _ := g.index.Matching(w)
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, b := range buckets {
		for _, m := range b {
			if m == w {
				continue
			}
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}

	return out
}

// Neighbors returns the words one substitution away from word.
// The returned slice is a fresh copy. Returns ErrWordNotFound if word is
// not a vertex.
// Complexity: O(n² + Σ bucket sizes) lazy, O(deg) eager.
func (g *Graph) Neighbors(word string) ([]string, error) {
	if !g.index.Contains(word) {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}
	if g.adj != nil {
		nb := g.adj[word]
		out := make([]string, len(nb))
		copy(out, nb)

		return out, nil
	}

	return g.collect(word), nil
}

// HasWord reports whether word is a vertex.
func (g *Graph) HasWord(word string) bool { return g.index.Contains(word) }

// Length returns the rune length of every vertex.
func (g *Graph) Length() int { return g.length }

// WordCount returns the number of vertices.
func (g *Graph) WordCount() int { return g.index.WordCount() }

// Words returns the vertices in dictionary order, injected words last.
func (g *Graph) Words() []string { return g.index.Words() }

// Injected returns the words that Build added because the dictionary lacked them.
func (g *Graph) Injected() []string {
	out := make([]string, len(g.injected))
	copy(out, g.injected)

	return out
}

// Skipped returns how many dictionary words of the right length were
// dropped for being invalid UTF-8 or containing the wildcard.
func (g *Graph) Skipped() int { return g.skipped }

// Index exposes the underlying read-only pattern index.
func (g *Graph) Index() *pattern.Index { return g.index }

// Degree returns the neighbor count of word.
func (g *Graph) Degree(word string) (int, error) {
	nb, err := g.Neighbors(word)
	if err != nil {
		return 0, err
	}

	return len(nb), nil
}

// EdgeCount returns the number of undirected neighbor pairs.
// Complexity: O(V·(n² + Σ bucket sizes)) lazy.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, w := range g.index.Words() {
		if g.adj != nil {
			total += len(g.adj[w])
			continue
		}
		total += len(g.collect(w))
	}

	return total / 2
}
