package syllable

import (
	"fmt"
	"sort"
	"strings"
)

// vowelSets maps language names to their vowel letters.
var vowelSets = map[string]string{
	"russian": "аеёиоуыэюя",
	"english": "aeiouy",
}

// Counter counts syllables as vowel-set membership.
// Counters are stateless and safe for concurrent use.
type Counter struct {
	vowels map[rune]struct{}
}

// NewCounter creates a counter over a custom vowel set given as a string of
// vowel characters.
func NewCounter(vowels string) *Counter {
	set := make(map[rune]struct{}, len(vowels))
	for _, r := range vowels {
		set[r] = struct{}{}
	}
	return &Counter{vowels: set}
}

// ForLanguage creates a counter using the built-in vowel set for the given
// language. See Languages for the supported names.
func ForLanguage(lang string) (*Counter, error) {
	vowels, ok := vowelSets[strings.ToLower(lang)]
	if !ok {
		return nil, fmt.Errorf("no vowel set for language %q", lang)
	}
	return NewCounter(vowels), nil
}

// Languages returns the names of the built-in vowel sets,
// sorted alphabetically.
func Languages() []string {
	names := make([]string, 0, len(vowelSets))
	for name := range vowelSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of vowels in word. The word is lowercased first,
// so "Окно" and "окно" count the same. An empty word counts 0.
func (c *Counter) Count(word string) int {
	n := 0
	for _, r := range strings.ToLower(word) {
		if _, ok := c.vowels[r]; ok {
			n++
		}
	}
	return n
}

// Total returns the summed syllable count of all words.
func (c *Counter) Total(words []string) int64 {
	var total int64
	for _, w := range words {
		total += int64(c.Count(w))
	}
	return total
}
