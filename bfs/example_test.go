package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// ExampleShortestPath finds the classic dog → cat ladder.
func ExampleShortestPath() {
	g, _ := wordgraph.Build([]string{"dog", "cog", "cot", "cat"}, 3)
	res, err := bfs.ShortestPath(g, "dog", "cat")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Moves(), res.Path)
	// Output:
	// true 3 [dog cog cot cat]
}

// ExampleShortestPath_unreachable shows the absence result.
func ExampleShortestPath_unreachable() {
	g, _ := wordgraph.Build([]string{"dog", "cat"}, 3)
	res, _ := bfs.ShortestPath(g, "dog", "cat")
	fmt.Println(res.Found, res.Moves(), res.Path == nil)
	// Output:
	// false -1 true
}

// ExampleBFS_DepthLimit lists every word within two substitutions of "cold".
func ExampleBFS_DepthLimit() {
	dict := []string{"cold", "cord", "card", "ward", "warm", "bold", "bolt"}
	g, _ := wordgraph.Build(dict, 4)
	res, err := bfs.BFS(g, "cold", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [cold bold cord bolt card]
}
