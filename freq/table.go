package freq

// Table maps canonical keys to occurrence counts.
//
// The zero value is not usable; create a Table with NewTable. A Table also
// remembers the order in which keys were first inserted, which Rank uses to
// break ties deterministically.
type Table struct {
	counts map[string]int64
	order  []string
	total  int64
}

// NewTable creates an empty frequency table.
func NewTable() *Table {
	return &Table{
		counts: make(map[string]int64),
	}
}

// Count builds a table from a sequence of canonical keys.
func Count(keys []string) *Table {
	t := NewTable()
	for _, k := range keys {
		t.Add(k)
	}
	return t
}

// Add records one occurrence of key.
func (t *Table) Add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
	t.total++
}

// Get returns the occurrence count for key, or 0 if the key is absent.
func (t *Table) Get(key string) int64 {
	return t.counts[key]
}

// Total returns the sum of all counts: the number of token occurrences that
// survived normalization.
func (t *Table) Total() int64 {
	return t.total
}

// Distinct returns the number of distinct keys in the table.
func (t *Table) Distinct() int {
	return len(t.counts)
}

// Keys returns the distinct keys in first-seen order.
// The returned slice is a copy and may be modified by the caller.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.order))
	copy(keys, t.order)
	return keys
}
