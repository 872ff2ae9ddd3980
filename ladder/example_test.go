package ladder_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/ladder"
)

// ExampleFindShortestTransformation runs build and search in one call.
func ExampleFindShortestTransformation() {
	res, err := ladder.FindShortestTransformation([]string{"dog", "cog", "cot", "cat"}, "dog", "cat")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Moves(), res.Path)
	// Output:
	// 3 [dog cog cot cat]
}

// ExampleBuild keeps the two steps apart, as a timing harness would.
func ExampleBuild() {
	g, err := ladder.Build([]string{"cog", "cot"}, "dog", "cat")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, _ := ladder.Search(context.Background(), g, "dog", "cat")
	fmt.Println(g.Injected(), res.Path)
	// Output:
	// [dog cat] [dog cog cot cat]
}
