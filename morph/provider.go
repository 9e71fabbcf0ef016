package morph

// Provider resolves surface word forms to dictionary base forms.
//
// Implementations must be deterministic: when a word has several candidate
// analyses, the provider commits to a single one (conventionally the first
// or most likely candidate) and returns it on every call.
type Provider interface {
	// Lemma returns the base form of word. A word the provider cannot
	// analyze maps to itself; an error means the provider itself failed
	// and the caller must abort rather than fall back to surface forms.
	Lemma(word string) (string, error)

	// PartOfSpeech returns the part-of-speech tag for word, or "" when
	// the provider has no analysis for it.
	PartOfSpeech(word string) (string, error)
}
