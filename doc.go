// Package wordladder finds shortest word ladders: sequences of dictionary
// words from a source to a target where each step changes exactly one
// letter in place.
//
// The work is split over a few small packages:
//
//	pattern/     wildcard patterns ("c*t") and the pattern → words index
//	wordgraph/   immutable implicit graph over one word length
//	bfs/         breadth-first traversal and shortest path with hooks
//	ladder/      input validation, graph build and search entry points
//	dictionary/  word list loading and filtering
//	report/      timed runs and result tables
//	config/      layered configuration (defaults, TOML, env, flags)
//	logging/     zerolog setup for the command
//
// The command in cmd/wordladder ties them together.
//
// Quick example:
//
//	res, err := ladder.FindShortestTransformation(words, "cold", "warm")
//	if err != nil {
//		return err
//	}
//	if res.Found {
//		fmt.Println(res.Moves(), res.Path) // 4 [cold cord card ward warm]
//	}
//
// A missing ladder is not an error: Found is false and Path is nil.
package wordladder
