package pattern

import "errors"

// Wildcard is the default marker substituted at the masked position.
const Wildcard = '*'

// Sentinel errors for pattern generation and indexing.
var (
	// ErrEmptyWord is returned when a word has no runes.
	ErrEmptyWord = errors.New("pattern: word is empty")

	// ErrLengthMismatch is returned when indexed words differ in length.
	ErrLengthMismatch = errors.New("pattern: words differ in length")

	// ErrWildcardInWord is returned when a word contains the wildcard rune.
	ErrWildcardInWord = errors.New("pattern: word contains the wildcard rune")

	// ErrInvalidUTF8 is returned for words that are not valid UTF-8.
	// Distinct invalid bytes would all mask to U+FFFD and collide.
	ErrInvalidUTF8 = errors.New("pattern: word is not valid UTF-8")
)

// Option configures BuildIndex.
type Option func(*IndexOptions)

// IndexOptions holds the parameters of an index build.
type IndexOptions struct {
	// Wildcard is the rune written at the masked position.
	Wildcard rune
}

// DefaultIndexOptions returns options using the '*' wildcard.
func DefaultIndexOptions() IndexOptions {
	return IndexOptions{Wildcard: Wildcard}
}

// WithWildcard overrides the wildcard rune. The zero rune is ignored.
func WithWildcard(r rune) Option {
	return func(o *IndexOptions) {
		if r != 0 {
			o.Wildcard = r
		}
	}
}
