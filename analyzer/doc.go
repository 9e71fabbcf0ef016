// Package analyzer runs the full vocabulary-coverage pipeline.
//
// An Analyzer wires the document reader, normalizer, frequency counter,
// ranker, and coverage calculator together and computes the derived text
// statistics a learner-facing report shows (vocabulary richness, average
// word length, syllable counts, part-of-speech distribution).
//
//	cfg := analyzer.DefaultConfig()
//	cfg.TargetPercent = 80
//	a, err := analyzer.New(cfg)
//	res, err := a.AnalyzeFile("book.epub")
//
// Analysis is a single synchronous pass; each run owns its own frequency
// table and derived structures, so an Analyzer may be reused across
// documents. Watch re-runs the analysis whenever the source file changes.
package analyzer
