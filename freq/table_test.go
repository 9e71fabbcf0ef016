package freq

import "testing"

func TestTable_Add(t *testing.T) {
	table := NewTable()
	for _, key := range []string{"a", "a", "b", "c", "c", "c"} {
		table.Add(key)
	}

	if got := table.Get("a"); got != 2 {
		t.Errorf("Get(a) = %d, expected 2", got)
	}
	if got := table.Get("b"); got != 1 {
		t.Errorf("Get(b) = %d, expected 1", got)
	}
	if got := table.Get("c"); got != 3 {
		t.Errorf("Get(c) = %d, expected 3", got)
	}
	if got := table.Get("missing"); got != 0 {
		t.Errorf("Get(missing) = %d, expected 0", got)
	}
	if got := table.Total(); got != 6 {
		t.Errorf("Total() = %d, expected 6", got)
	}
	if got := table.Distinct(); got != 3 {
		t.Errorf("Distinct() = %d, expected 3", got)
	}
}

func TestTable_TotalEqualsSumOfCounts(t *testing.T) {
	table := Count([]string{"x", "y", "x", "z", "x", "y"})

	var sum int64
	for _, key := range table.Keys() {
		sum += table.Get(key)
	}
	if sum != table.Total() {
		t.Errorf("sum of counts = %d, Total() = %d", sum, table.Total())
	}
}

func TestTable_KeysFirstSeenOrder(t *testing.T) {
	table := Count([]string{"c", "a", "c", "b", "a", "c"})

	keys := table.Keys()
	expected := []string{"c", "a", "b"}
	if len(keys) != len(expected) {
		t.Fatalf("Keys() returned %d keys, expected %d", len(keys), len(expected))
	}
	for i, key := range expected {
		if keys[i] != key {
			t.Errorf("Keys()[%d] = %q, expected %q", i, keys[i], key)
		}
	}
}

func TestTable_KeysIsCopy(t *testing.T) {
	table := Count([]string{"a", "b"})

	keys := table.Keys()
	keys[0] = "mutated"

	if got := table.Keys()[0]; got != "a" {
		t.Errorf("Keys()[0] = %q after mutating a previous copy, expected %q", got, "a")
	}
}

func TestTable_Empty(t *testing.T) {
	table := NewTable()

	if got := table.Total(); got != 0 {
		t.Errorf("Total() = %d, expected 0", got)
	}
	if got := table.Distinct(); got != 0 {
		t.Errorf("Distinct() = %d, expected 0", got)
	}
	if got := len(table.Keys()); got != 0 {
		t.Errorf("len(Keys()) = %d, expected 0", got)
	}
}

func TestRank(t *testing.T) {
	table := Count([]string{"a", "a", "b", "c", "c", "c"})

	ranked := Rank(table)
	expected := []Entry{
		{Key: "c", Count: 3, Rank: 1},
		{Key: "a", Count: 2, Rank: 2},
		{Key: "b", Count: 1, Rank: 3},
	}
	if len(ranked) != len(expected) {
		t.Fatalf("Rank() returned %d entries, expected %d", len(ranked), len(expected))
	}
	for i, e := range expected {
		if ranked[i] != e {
			t.Errorf("Rank()[%d] = %+v, expected %+v", i, ranked[i], e)
		}
	}
}

func TestRank_TieBreakFirstSeen(t *testing.T) {
	// All counts equal; order must match first appearance in the stream.
	table := Count([]string{"zebra", "apple", "mango"})

	ranked := Rank(table)
	expected := []string{"zebra", "apple", "mango"}
	for i, key := range expected {
		if ranked[i].Key != key {
			t.Errorf("Rank()[%d].Key = %q, expected %q", i, ranked[i].Key, key)
		}
		if ranked[i].Count != 1 {
			t.Errorf("Rank()[%d].Count = %d, expected 1", i, ranked[i].Count)
		}
	}
}

func TestRank_Reproducible(t *testing.T) {
	stream := []string{"b", "a", "b", "c", "a", "d", "c", "d"}

	first := Rank(Count(stream))
	for j := 0; j < 10; j++ {
		again := Rank(Count(stream))
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("ranking not reproducible at position %d: %+v vs %+v",
					i, again[i], first[i])
			}
		}
	}
}

func TestRank_Empty(t *testing.T) {
	if got := len(Rank(NewTable())); got != 0 {
		t.Errorf("Rank(empty) returned %d entries, expected 0", got)
	}
}

func TestRank_SortedDescending(t *testing.T) {
	table := Count([]string{"w", "x", "x", "y", "y", "y", "z", "z", "z", "z"})

	ranked := Rank(table)
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Count > ranked[i-1].Count {
			t.Errorf("ranking not descending at position %d: %d > %d",
				i, ranked[i].Count, ranked[i-1].Count)
		}
		if ranked[i].Rank != ranked[i-1].Rank+1 {
			t.Errorf("ranks not consecutive at position %d", i)
		}
	}
}

func BenchmarkTable_Add(b *testing.B) {
	keys := []string{"one", "two", "three", "four", "five"}
	table := NewTable()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Add(keys[i%len(keys)])
	}
}

func BenchmarkRank(b *testing.B) {
	table := NewTable()
	for i := 0; i < 10000; i++ {
		table.Add(string(rune('a' + i%26)))
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Rank(table)
	}
}
