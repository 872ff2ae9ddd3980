// Package report times word-ladder runs and renders them as tables.
//
// Each run times graph construction and search separately; tables use the
// columns Source, Target, Moves, Gen. Time and Find Time.
// RunAll fans pairs out over a bounded errgroup; every pair owns its own
// graph, so runs share nothing but the read-only dictionary slice.
package report
