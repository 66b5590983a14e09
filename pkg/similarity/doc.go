// Package similarity scores how alike two strings are on a 0..1 scale.
//
// Score evaluates three metric families and returns the best candidate:
//
//   - SimilarText, the classic character overlap ratio built from recursively
//     matched longest common substrings;
//   - JaroWinkler, favouring strings with a common prefix;
//   - an alignment metric, Smith-Waterman-Gotoh by default, swappable with
//     WithAlignmentMetric and removable with WithAlignment(false).
//
// Character overlap depends on argument order, so every metric is computed
// for (a, b) and (b, a). Unless WithCaseSensitive(true) is given, the six
// computations are repeated with both strings upper-cased and with both
// strings lower-cased, giving eighteen candidates. Mixed variants (one side
// upper, the other lower) are never generated.
//
//	similarity.Score("WORLD", "world")                                    // 1
//	similarity.Score("WORLD", "world", similarity.WithCaseSensitive(true)) // 0
//	similarity.Percent("Hello", "Hallo")                                  // 0..100
//
// WithAccentFolding strips combining marks (é becomes e) from both strings
// first. Candidates exposes every computed candidate for inspection.
//
// An empty input on either side scores 0. All functions are safe for
// concurrent use.
package similarity
