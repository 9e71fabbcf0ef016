// Package report renders analysis results.
//
// Three writers share the same input, an analyzer.Result:
//
//   - WriteText: human-readable summary with the cumulative coverage table
//   - WriteCSV: delimited ranking (rank, word, count, cumulative percent)
//   - WriteJSON: the full result as indented JSON
//
// WriteWordList emits just the covered words, one per line, for feeding
// flashcard tools. Schema returns a JSON Schema describing the JSON output
// so downstream consumers can validate reports.
package report
