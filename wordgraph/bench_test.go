package wordgraph_test

import (
	"testing"

	"github.com/katalvlaran/wordladder/wordgraph"
)

// syntheticWords returns every word of length n over alphabet.
func syntheticWords(alphabet string, n int) []string {
	out := []string{""}
	for i := 0; i < n; i++ {
		next := make([]string, 0, len(out)*len(alphabet))
		for _, p := range out {
			for _, r := range alphabet {
				next = append(next, p+string(r))
			}
		}
		out = next
	}

	return out
}

// BenchmarkBuild_Lazy measures index construction over 6⁴ = 1296 words.
func BenchmarkBuild_Lazy(b *testing.B) {
	words := syntheticWords("abcdef", 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wordgraph.Build(words, 4)
	}
}

// BenchmarkBuild_Eager adds precomputation of every neighbor set.
func BenchmarkBuild_Eager(b *testing.B) {
	words := syntheticWords("abcdef", 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wordgraph.Build(words, 4, wordgraph.WithEagerNeighbors())
	}
}

// BenchmarkNeighbors_Lazy measures one lazy neighbor lookup.
func BenchmarkNeighbors_Lazy(b *testing.B) {
	g, _ := wordgraph.Build(syntheticWords("abcdef", 4), 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("abcd")
	}
}
