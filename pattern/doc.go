// Package pattern turns words into single-wildcard patterns and indexes a
// fixed-length dictionary by those patterns.
//
// What
//
//   - Patterns("cat") → ["*at", "c*t", "ca*"]: one pattern per rune position.
//   - BuildIndex(words) → Index: pattern → bucket of words matching it.
//
// Why
//
//	Two words of equal length differ in exactly one position iff they share
//	a pattern. Grouping the dictionary by pattern turns neighbor discovery
//	from an O(D) scan per word into n bucket lookups.
//
// Lengths
//
//	Word length is measured in runes, not bytes, so "café" has four
//	patterns and the wildcard replaces the whole "é".
//
// Wildcard collisions
//
//	A dictionary word that itself contains the wildcard rune is rejected with
//	ErrWildcardInWord: "*b" and "a*" both produce the pattern "**" while
//	differing in two positions.
//
// Complexity (n = word length, D = dictionary size)
//
//   - Patterns:   O(n²) time (n strings of n runes)
//   - BuildIndex: O(n²·D) time, O(n·D) bucket entries
//
// Usage
//
//	idx, err := pattern.BuildIndex([]string{"dog", "cog", "cot"})
//	if err != nil {
//		// ErrEmptyWord, ErrLengthMismatch or ErrWildcardInWord
//	}
//	idx.Bucket("*og") // [dog cog]
package pattern
