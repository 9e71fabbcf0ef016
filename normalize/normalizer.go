package normalize

import (
	"fmt"
	"strings"

	"wordcover/morph"
)

// Normalizer maps raw tokens to canonical keys.
//
// The pipeline is: lowercase, then lemmatize (when a provider is set), then
// drop stopwords (when a set is given). A Normalizer is pure configuration
// and safe for concurrent use as long as its provider is.
type Normalizer struct {
	provider  morph.Provider
	stopwords Set
}

// New creates a Normalizer. A nil provider disables lemmatization; a nil
// stopword set disables stopword exclusion.
func New(provider morph.Provider, stopwords Set) *Normalizer {
	return &Normalizer{provider: provider, stopwords: stopwords}
}

// Normalize maps token to its canonical key.
//
// ok is false when the key is a stopword and the occurrence must be dropped
// entirely, not counted toward totals. A provider failure is returned as an
// error and the caller must abort the run.
//
// Tokens are expected to contain at least one letter; purely non-alphabetic
// tokens must be filtered upstream (see document.Tokenize).
func (n *Normalizer) Normalize(token string) (key string, ok bool, err error) {
	key = strings.ToLower(token)

	if n.provider != nil {
		key, err = n.provider.Lemma(key)
		if err != nil {
			return "", false, fmt.Errorf("lemma of %q: %w", token, err)
		}
	}

	if n.stopwords.Contains(key) {
		return "", false, nil
	}
	return key, true, nil
}

// All normalizes a token sequence, omitting dropped occurrences.
// The first provider error aborts and is returned.
func (n *Normalizer) All(tokens []string) ([]string, error) {
	keys := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		key, ok, err := n.Normalize(tok)
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
