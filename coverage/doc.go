// Package coverage computes cumulative vocabulary coverage over a ranking.
//
// Coverage answers the question "how much of the text do the top words
// account for?". Two modes share the same cumulative-sum walk:
//
//	rep := coverage.ByPercent(ranked, total, 80) // stop at 80% coverage
//	rep := coverage.ByCount(ranked, total, 100)  // top 100 words
//
// ByPercent stops at the first entry whose cumulative percentage reaches the
// target. ByCount takes a fixed number of top entries and reports the full
// cumulative-percentage curve up to that point.
//
// A total of zero occurrences (nothing survived normalization) is not an
// error; both modes return an empty, well-formed report.
package coverage
