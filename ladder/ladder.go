package ladder

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// Sentinel errors for precondition violations.
var (
	// ErrInvalidInput is the umbrella for every precondition failure.
	ErrInvalidInput = errors.New("ladder: invalid input")

	// ErrEmptyWord is returned when source or target is empty.
	ErrEmptyWord = fmt.Errorf("%w: empty word", ErrInvalidInput)

	// ErrLengthMismatch is returned when source and target differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: source and target lengths differ", ErrInvalidInput)

	// ErrInvalidEncoding is returned when source or target is not valid UTF-8.
	ErrInvalidEncoding = fmt.Errorf("%w: word is not valid UTF-8", ErrInvalidInput)
)

// Result is the outcome of a ladder search.
type Result struct {
	Source string
	Target string

	// Path runs from Source to Target inclusive; nil when !Found.
	Path  bfs.Path
	Found bool

	// Enqueued and Expanded are copied from the search for instrumentation.
	Enqueued int
	Expanded int
}

// Moves returns the number of transformations, or -1 when no ladder exists.
func (r Result) Moves() int {
	if !r.Found {
		return -1
	}

	return r.Path.Moves()
}

// Validate checks the precondition shared by Build and Search: both words
// non-empty, valid UTF-8 and of equal rune length.
func Validate(source, target string) error {
	if source == "" || target == "" {
		return fmt.Errorf("%w (source %q, target %q)", ErrEmptyWord, source, target)
	}
	for _, w := range []string{source, target} {
		if !utf8.ValidString(w) {
			return fmt.Errorf("%w: %q", ErrInvalidEncoding, w)
		}
	}
	ns, nt := utf8.RuneCountInString(source), utf8.RuneCountInString(target)
	if ns != nt {
		return fmt.Errorf("%w: %q has %d, %q has %d", ErrLengthMismatch, source, ns, target, nt)
	}

	return nil
}

// Build constructs the word graph for one (source, target) pair: the
// dictionary filtered to their common length, with both words injected.
// Extra wordgraph options (wildcard, eager neighbors, logger) pass through.
func Build(dictionary []string, source, target string, opts ...wordgraph.Option) (*wordgraph.Graph, error) {
	if err := Validate(source, target); err != nil {
		return nil, err
	}
	all := make([]wordgraph.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, wordgraph.WithInjected(source, target))

	g, err := wordgraph.Build(dictionary, utf8.RuneCountInString(source), all...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return g, nil
}

// Search runs a shortest-ladder search over a graph produced by Build.
// ctx is passed to the search unless opts supply their own context.
func Search(ctx context.Context, g *wordgraph.Graph, source, target string, opts ...bfs.Option) (Result, error) {
	if err := Validate(source, target); err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, bfs.ErrGraphNil
	}
	all := make([]bfs.Option, 0, len(opts)+1)
	all = append(all, bfs.WithContext(ctx))
	all = append(all, opts...)

	pr, err := bfs.ShortestPath(g, source, target, all...)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Source:   source,
		Target:   target,
		Path:     pr.Path,
		Found:    pr.Found,
		Enqueued: pr.Enqueued,
		Expanded: pr.Expanded,
	}, nil
}

// FindShortestTransformation builds a graph for the pair and searches it.
func FindShortestTransformation(dictionary []string, source, target string) (Result, error) {
	g, err := Build(dictionary, source, target)
	if err != nil {
		return Result{}, err
	}

	return Search(context.Background(), g, source, target)
}
