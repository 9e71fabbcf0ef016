// Package freq counts occurrences of canonical keys and ranks them.
//
// A Table is built with a single pass over a normalized token stream:
//
//	table := freq.NewTable()
//	for _, key := range keys {
//		table.Add(key)
//	}
//
// Rank turns a Table into an ordered slice of entries, highest count first.
// Ties are broken by first-seen order in the original stream, which the
// Table tracks explicitly, so ranking is reproducible across runs.
package freq
