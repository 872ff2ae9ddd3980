package wordgraph_test

import (
	"fmt"

	"github.com/katalvlaran/wordladder/wordgraph"
)

// ExampleBuild builds a graph over the three-letter words of a small
// dictionary and injects a source word the dictionary lacks.
func ExampleBuild() {
	dict := []string{"cog", "cot", "cat", "cold", "at"}
	g, err := wordgraph.Build(dict, 3, wordgraph.WithInjected("dog"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	nb, _ := g.Neighbors("dog")
	fmt.Println(g.WordCount(), g.Injected(), nb)
	// Output:
	// 4 [dog] [cog]
}

// ExampleGraph_Components labels the forests of a dictionary.
func ExampleGraph_Components() {
	g, _ := wordgraph.Build([]string{"dog", "cog", "elk", "ilk", "emu"}, 3)
	for _, c := range g.Components() {
		fmt.Println(c)
	}
	// Output:
	// [dog cog]
	// [elk ilk]
	// [emu]
}
