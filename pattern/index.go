package pattern

import (
	"fmt"
	"unicode/utf8"
)

// Index maps each pattern to the words matching it. It is read-only once
// BuildIndex returns, so concurrent readers need no locking.
type Index struct {
	length   int
	wildcard rune
	buckets  map[string][]string // pattern → words, dictionary order, duplicates kept
	members  map[string]struct{} // distinct indexed words
	order    []string            // distinct words in first-seen order
}

// BuildIndex indexes words, which must all share one rune length.
// Each word is appended to the bucket of each of its patterns, preserving
// input order; duplicates produce duplicate bucket entries.
//
// Returns ErrEmptyWord, ErrLengthMismatch, ErrInvalidUTF8 or
// ErrWildcardInWord on bad input.
// An empty words slice yields an empty Index with Length 0.
// Complexity: O(n²·D).
func BuildIndex(words []string, opts ...Option) (*Index, error) {
	o := DefaultIndexOptions()
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index{
		wildcard: o.Wildcard,
		buckets:  make(map[string][]string, len(words)),
		members:  make(map[string]struct{}, len(words)),
		order:    make([]string, 0, len(words)),
	}
	for i, w := range words {
		n := utf8.RuneCountInString(w)
		if i == 0 {
			idx.length = n
		} else if n != idx.length {
			return nil, fmt.Errorf("%w: %q has %d runes, want %d", ErrLengthMismatch, w, n, idx.length)
		}
		if err := idx.add(w); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// add appends w to every bucket it matches.
func (idx *Index) add(w string) error {
	ps, err := PatternsWith(w, idx.wildcard)
	if err != nil {
		return err
	}
	for _, p := range ps {
		idx.buckets[p] = append(idx.buckets[p], w)
	}
	if _, seen := idx.members[w]; !seen {
		idx.members[w] = struct{}{}
		idx.order = append(idx.order, w)
	}

	return nil
}

// Length returns the rune length shared by all indexed words.
func (idx *Index) Length() int { return idx.length }

// Wildcard returns the marker rune used by this index.
func (idx *Index) Wildcard() rune { return idx.wildcard }

// Bucket returns a copy of the words indexed under p, or nil.
func (idx *Index) Bucket(p string) []string {
	b := idx.buckets[p]
	if len(b) == 0 {
		return nil
	}
	out := make([]string, len(b))
	copy(out, b)

	return out
}

// bucket returns the stored slice without copying. Callers must not modify it.
func (idx *Index) bucket(p string) []string { return idx.buckets[p] }

// Contains reports whether word was indexed.
func (idx *Index) Contains(word string) bool {
	_, ok := idx.members[word]
	return ok
}

// Words returns the distinct indexed words in first-seen order.
func (idx *Index) Words() []string {
	out := make([]string, len(idx.order))
	copy(out, idx.order)

	return out
}

// WordCount returns the number of distinct indexed words.
func (idx *Index) WordCount() int { return len(idx.order) }

// PatternCount returns the number of non-empty buckets.
func (idx *Index) PatternCount() int { return len(idx.buckets) }

// Patterns returns word's patterns under this index's wildcard.
func (idx *Index) Patterns(word string) ([]string, error) {
	return PatternsWith(word, idx.wildcard)
}

// Matching returns, for each pattern of word, the stored bucket slice.
// The slices are shared with the index and must be treated as read-only.
// Complexity: O(n²).
func (idx *Index) Matching(word string) ([][]string, error) {
	ps, err := idx.Patterns(word)
	if err != nil {
		return nil, err
	}
	out := make([][]string, len(ps))
	for i, p := range ps {
		out[i] = idx.bucket(p)
	}

	return out, nil
}
