package bfs

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidPath is returned by Path.Valid for malformed ladders.
var ErrInvalidPath = errors.New("bfs: invalid path")

// Path is an ordered word ladder, source first and target last.
type Path []string

// Moves returns the number of transformations (edges), or -1 for an
// empty Path.
func (p Path) Moves() int {
	if len(p) == 0 {
		return -1
	}

	return len(p) - 1
}

// Valid checks that every word is valid UTF-8 and that consecutive words
// have equal rune length and differ in exactly one position. An empty
// Path is invalid.
func (p Path) Valid() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	for i, w := range p {
		if !utf8.ValidString(w) {
			return fmt.Errorf("%w: step %d %q is not valid UTF-8", ErrInvalidPath, i, w)
		}
	}
	for i := 1; i < len(p); i++ {
		if d := Distance(p[i-1], p[i]); d != 1 {
			return fmt.Errorf("%w: step %d %q→%q differs in %d positions", ErrInvalidPath, i, p[i-1], p[i], d)
		}
	}

	return nil
}

// Distance returns the number of rune positions where a and b differ, or
// -1 if their rune lengths differ or either is not valid UTF-8.
func Distance(a, b string) int {
	if !utf8.ValidString(a) || !utf8.ValidString(b) {
		return -1
	}
	ar, br := []rune(a), []rune(b)
	if len(ar) != len(br) {
		return -1
	}
	d := 0
	for i := range ar {
		if ar[i] != br[i] {
			d++
		}
	}

	return d
}
