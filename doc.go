// Package wordcover computes vocabulary-coverage statistics for a body of
// text: how frequency concentrates among the most common words, and how many
// distinct words a reader needs to know to understand a target share of all
// occurrences ("which N words cover 80% of this book?").
//
// Each subpackage can be used independently:
//
//   - document: Read plain text and EPUB files, split text into word tokens
//   - morph: Morphological providers mapping surface forms to dictionary lemmas
//   - normalize: Token normalization (lowercasing, lemmas, stopword exclusion)
//   - freq: Frequency counting with deterministic first-seen ordering
//   - coverage: Cumulative-coverage computation by target percent or top-N
//   - syllable: Vowel-set syllable counting heuristic
//   - analyzer: The full pipeline plus derived text statistics
//   - report: Text, CSV, and JSON report writers
//
// # Quick Start
//
// Counting coverage of a token stream:
//
//	table := freq.NewTable()
//	for _, tok := range document.Tokenize(text) {
//		table.Add(strings.ToLower(tok))
//	}
//	ranked := freq.Rank(table)
//	rep := coverage.ByPercent(ranked, table.Total(), 80)
//
// Running the whole pipeline on a file:
//
//	a, _ := analyzer.New(analyzer.DefaultConfig())
//	res, _ := a.AnalyzeFile("book.epub")
//	report.WriteText(os.Stdout, res)
//
// # Design Notes
//
// Ranking is deterministic: ties are broken by first appearance in the token
// stream, so repeated runs over identical input produce byte-identical
// reports. Normalization never degrades silently; a failing morphology
// provider aborts the run instead of mixing lemmatized and surface counts.
package wordcover
