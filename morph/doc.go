// Package morph defines the morphology provider seam used for lemmatization.
//
// A Provider maps a surface word form to its dictionary base form (lemma)
// and part of speech. Providers register themselves by name:
//
//	provider, err := morph.New("dict", "lemmas.tsv")
//
// The built-in "dict" provider loads a tab-separated lemma dictionary.
// Providers must be deterministic within a run: the same word always yields
// the same lemma, otherwise frequency counts are not reproducible.
package morph
