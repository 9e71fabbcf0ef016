package morph

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func init() {
	Register("dict", func(source string) (Provider, error) {
		return LoadDictionary(source)
	})
}

// Dictionary is a lemma dictionary loaded from a tab-separated file.
//
// Each line holds "surface<TAB>lemma" with an optional third
// "<TAB>part-of-speech" column. Blank lines and lines starting with '#' are
// skipped. When a surface form appears more than once, the first entry wins,
// which keeps lemma lookup deterministic for ambiguous forms.
//
// Words absent from the dictionary map to themselves. Surface forms and
// lemmas are lowercased at load time.
type Dictionary struct {
	lemmas map[string]string
	pos    map[string]string
}

// NewDictionary creates an empty in-memory dictionary.
// Useful for tests and for building dictionaries programmatically.
func NewDictionary() *Dictionary {
	return &Dictionary{
		lemmas: make(map[string]string),
		pos:    make(map[string]string),
	}
}

// Add records a surface → lemma mapping with an optional part-of-speech tag.
// The first entry for a surface form wins; later duplicates are ignored.
func (d *Dictionary) Add(surface, lemma, pos string) {
	surface = strings.ToLower(surface)
	if _, exists := d.lemmas[surface]; exists {
		return
	}
	d.lemmas[surface] = strings.ToLower(lemma)
	if pos != "" {
		d.pos[surface] = pos
	}
}

// LoadDictionary reads a tab-separated lemma file from path.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Provider: "dict", Op: "load", Err: err}
	}
	defer f.Close()

	d := NewDictionary()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, &Error{
				Provider: "dict",
				Op:       "load",
				Err:      fmt.Errorf("%w: %s:%d: expected at least 2 tab-separated fields", ErrBadDictionary, path, lineNo),
			}
		}
		pos := ""
		if len(fields) >= 3 {
			pos = strings.TrimSpace(fields[2])
		}
		d.Add(strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]), pos)
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Provider: "dict", Op: "load", Err: err}
	}
	return d, nil
}

// Size returns the number of surface forms in the dictionary.
func (d *Dictionary) Size() int {
	return len(d.lemmas)
}

// Lemma returns the base form of word, or the lowercased word itself when it
// is not in the dictionary.
func (d *Dictionary) Lemma(word string) (string, error) {
	word = strings.ToLower(word)
	if lemma, ok := d.lemmas[word]; ok {
		return lemma, nil
	}
	return word, nil
}

// PartOfSpeech returns the tag recorded for word, or "" when unknown.
func (d *Dictionary) PartOfSpeech(word string) (string, error) {
	return d.pos[strings.ToLower(word)], nil
}
