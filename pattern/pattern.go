package pattern

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Patterns returns the n single-wildcard patterns of word, in position order,
// using the default Wildcard. Returns ErrEmptyWord for "".
func Patterns(word string) ([]string, error) {
	return PatternsWith(word, Wildcard)
}

// PatternsWith is Patterns with a caller-chosen wildcard rune.
// Returns ErrEmptyWord for "", ErrInvalidUTF8 for malformed input and
// ErrWildcardInWord if word already contains wildcard.
func PatternsWith(word string, wildcard rune) ([]string, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	if !utf8.ValidString(word) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUTF8, word)
	}
	if strings.ContainsRune(word, wildcard) {
		return nil, fmt.Errorf("%w: %q contains %q", ErrWildcardInWord, word, wildcard)
	}

	return generate([]rune(word), wildcard), nil
}

// generate masks each position of runes in turn. runes is restored
// before returning.
func generate(runes []rune, wildcard rune) []string {
	out := make([]string, len(runes))
	for i, r := range runes {
		runes[i] = wildcard
		out[i] = string(runes)
		runes[i] = r
	}

	return out
}

// Matches reports whether word agrees with p at every non-wildcard
// position. Words of a different rune length never match.
func Matches(p, word string, wildcard rune) bool {
	pr, wr := []rune(p), []rune(word)
	if len(pr) != len(wr) {
		return false
	}
	for i := range pr {
		if pr[i] != wildcard && pr[i] != wr[i] {
			return false
		}
	}

	return true
}
