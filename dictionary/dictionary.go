// Package dictionary reads candidate words from a line-oriented source
// such as /usr/share/dict/words.
//
// Lines are trimmed of surrounding whitespace and blank lines are dropped.
// Optional filters restrict the result to lowercase words, letter-only
// words, or a rune length range. Order is preserved and duplicates are
// kept; the word graph tolerates both.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPath is the conventional system word list.
const DefaultPath = "/usr/share/dict/words"

// ErrSource wraps failures to open or read a word source.
var ErrSource = errors.New("dictionary: word source unavailable")

// Option configures Load and Read.
type Option func(*Options)

// Options holds word filters. The zero value keeps every non-blank line.
type Options struct {
	LowercaseOnly bool
	LettersOnly   bool
	MinLength     int // 0: no lower bound
	MaxLength     int // 0: no upper bound
}

// WithLowercaseOnly drops words containing any uppercase rune.
func WithLowercaseOnly() Option {
	return func(o *Options) { o.LowercaseOnly = true }
}

// WithLettersOnly drops words containing any non-letter rune.
func WithLettersOnly() Option {
	return func(o *Options) { o.LettersOnly = true }
}

// WithLengthRange keeps words whose rune length is within [min, max].
// A bound of 0 is open.
func WithLengthRange(min, max int) Option {
	return func(o *Options) {
		o.MinLength, o.MaxLength = min, max
	}
}

// Load reads the word list at path.
func Load(path string, opts ...Option) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}
	defer f.Close()

	words, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return words, nil
}

// Read reads one word per line from r.
func Read(r io.Reader, opts ...Option) ([]string, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || !o.keep(w) {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return words, fmt.Errorf("%w: %v", ErrSource, err)
	}

	return words, nil
}

// keep applies the configured filters to w.
func (o Options) keep(w string) bool {
	n := utf8.RuneCountInString(w)
	if o.MinLength > 0 && n < o.MinLength {
		return false
	}
	if o.MaxLength > 0 && n > o.MaxLength {
		return false
	}
	for _, r := range w {
		if o.LettersOnly && !unicode.IsLetter(r) {
			return false
		}
		if o.LowercaseOnly && unicode.IsUpper(r) {
			return false
		}
	}

	return true
}
