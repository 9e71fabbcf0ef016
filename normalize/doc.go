// Package normalize maps raw tokens to the canonical keys used for counting.
//
// Normalization lowercases a token, optionally replaces it with its
// dictionary base form through a morph.Provider, and optionally drops it
// when the resulting key is a stopword:
//
//	n := normalize.New(provider, normalize.NewSet("и", "в", "не"))
//	key, ok, err := n.Normalize("Кошки") // "кошка", true, nil
//
// Stopword exclusion and lemmatization are independent: either can be
// disabled by passing nil. A provider failure aborts normalization instead
// of silently counting surface forms, since mixing normalization policies
// mid-run corrupts the frequency table.
package normalize
