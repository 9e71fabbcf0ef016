package document

import (
	"strings"
	"unicode"
)

// Tokenize splits text into word tokens.
//
// Token boundaries are runs of non-alphanumeric characters. Tokens that
// contain no letter at all (pure digit runs, stray marks) are discarded, so
// every returned token is safe to hand to the normalizer.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if hasLetter(f) {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
