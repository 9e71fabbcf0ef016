package freq

import "sort"

// Entry is one key in a ranking.
type Entry struct {
	// Key is the canonical key.
	Key string `json:"key"`

	// Count is the number of occurrences of Key.
	Count int64 `json:"count"`

	// Rank is the 1-based position in descending-count order.
	Rank int `json:"rank"`
}

// Rank orders the table's keys by count, highest first.
//
// Entries with equal counts keep their first-seen order from the original
// token stream. The full ranking is returned; truncation is the coverage
// package's concern.
func Rank(t *Table) []Entry {
	entries := make([]Entry, 0, t.Distinct())
	for _, key := range t.order {
		entries = append(entries, Entry{Key: key, Count: t.counts[key]})
	}

	// Stable sort over first-seen order gives the documented tie-break.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
