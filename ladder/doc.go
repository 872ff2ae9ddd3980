// Package ladder is the entry point for word-ladder queries. It validates
// a (source, target) pair, builds a word graph from a dictionary with both
// words injected, and searches it.
//
// The build and search steps are exposed separately so that callers can
// time them independently:
//
//	g, err := ladder.Build(dict, "dog", "cat")
//	res, err := ladder.Search(ctx, g, "dog", "cat")
//
// FindShortestTransformation runs both in one call.
//
// A Result with Found == false is the "no ladder" outcome and is never an
// error. Mismatched or empty words fail with ErrInvalidInput before any
// graph work.
package ladder
