// Package syllable counts syllables with a vowel-set heuristic.
//
// Syllable count is approximated as the number of characters belonging to a
// language-specific vowel set. This matches the convention used for Russian
// readability statistics, where every vowel letter carries one syllable.
//
//	counter, _ := syllable.ForLanguage("russian")
//	n := counter.Count("молоко") // 3
//
// Custom vowel sets are supported through NewCounter.
package syllable
