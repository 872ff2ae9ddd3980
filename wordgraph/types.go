package wordgraph

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wordladder/pattern"
)

// Sentinel errors for word graph construction and queries.
var (
	// ErrInvalidLength is returned when Build is asked for a length below 1.
	ErrInvalidLength = errors.New("wordgraph: word length must be at least 1")

	// ErrInvalidInjection is returned when an injected word does not fit the graph.
	ErrInvalidInjection = errors.New("wordgraph: injected word does not fit graph")

	// ErrWordNotFound is returned when a queried word is not a vertex.
	ErrWordNotFound = errors.New("wordgraph: word not found")
)

// Option configures Build.
type Option func(*Options)

// Options holds the parameters of a graph build.
type Options struct {
	// Wildcard is the pattern marker; words containing it are skipped.
	Wildcard rune

	// Inject lists words added to the graph when the dictionary lacks them.
	Inject []string

	// Eager precomputes every neighbor set during Build.
	Eager bool

	// Logger receives build diagnostics.
	Logger zerolog.Logger
}

// DefaultOptions returns lazy neighbors, the '*' wildcard, no injected
// words and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Wildcard: pattern.Wildcard,
		Logger:   zerolog.Nop(),
	}
}

// WithWildcard overrides the pattern marker. The zero rune is ignored.
func WithWildcard(r rune) Option {
	return func(o *Options) {
		if r != 0 {
			o.Wildcard = r
		}
	}
}

// WithInjected adds words that must be present in the graph, such as a
// search's source and target. Repeated calls accumulate.
func WithInjected(words ...string) Option {
	return func(o *Options) {
		o.Inject = append(o.Inject, words...)
	}
}

// WithEagerNeighbors precomputes all neighbor sets at build time.
func WithEagerNeighbors() Option {
	return func(o *Options) { o.Eager = true }
}

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
