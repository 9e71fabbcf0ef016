package normalize

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is a stopword set keyed by canonical form.
// Membership is tested on normalized (lowercased, possibly lemmatized) keys.
type Set map[string]struct{}

// NewSet creates a set from the given words, lowercasing each.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts a word into the set, lowercased.
func (s Set) Add(word string) {
	s[strings.ToLower(word)] = struct{}{}
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// LoadSet reads a stopword list from path.
//
// Files ending in .yaml or .yml are parsed as a YAML sequence of strings.
// Any other file is read as plain text, one word per line; blank lines and
// lines starting with '#' are skipped.
func LoadSet(path string) (Set, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAMLSet(path)
	default:
		return loadTextSet(path)
	}
}

func loadYAMLSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load stopwords: %w", err)
	}
	var words []string
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("load stopwords %s: %w", path, err)
	}
	return NewSet(words...), nil
}

func loadTextSet(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load stopwords: %w", err)
	}
	defer f.Close()

	s := make(Set)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		s.Add(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load stopwords %s: %w", path, err)
	}
	return s, nil
}
