package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"wordcover/coverage"
	"wordcover/document"
	"wordcover/freq"
	"wordcover/morph"
	"wordcover/normalize"
	"wordcover/syllable"
)

// maxLongestWords bounds the "longest words" list in a Result.
const maxLongestWords = 10

// Analyzer runs the vocabulary-coverage pipeline over documents.
//
// Construct with New; the morphology provider and stopword set are resolved
// once and reused across runs, so substitutable fakes can be injected in
// tests through the morph registry.
type Analyzer struct {
	cfg       Config
	norm      *normalize.Normalizer
	syllables *syllable.Counter
	provider  morph.Provider
}

// Result holds everything a coverage report shows for one document.
type Result struct {
	// Source is the analyzed file path; empty for AnalyzeText.
	Source string `json:"source,omitempty"`

	// TotalWords is the number of word tokens in the document, counted
	// before stopword exclusion.
	TotalWords int64 `json:"total_words"`

	// UniqueWords is the number of distinct surface forms (lowercased).
	UniqueWords int `json:"unique_words"`

	// VocabularyRichness is UniqueWords / TotalWords, 0 for empty input.
	VocabularyRichness float64 `json:"vocabulary_richness"`

	// AvgWordLength is the mean surface word length in runes.
	AvgWordLength float64 `json:"avg_word_length"`

	// TotalSyllables and AvgSyllables come from the vowel-set heuristic.
	TotalSyllables int64   `json:"total_syllables"`
	AvgSyllables   float64 `json:"avg_syllables"`

	// Ranked is the full ranking of canonical keys, highest count first.
	Ranked []freq.Entry `json:"ranked"`

	// Coverage is the cumulative-coverage report for the configured mode.
	Coverage *coverage.Report `json:"coverage"`

	// POSDistribution maps part-of-speech tags to occurrence counts.
	// Only populated when lemmatization is enabled.
	POSDistribution map[string]int64 `json:"pos_distribution,omitempty"`

	// LemmaForms maps each covered lemma to the surface forms that
	// produced it, sorted. Only populated when lemmatization is enabled.
	LemmaForms map[string][]string `json:"lemma_forms,omitempty"`

	// LongestWords lists the longest distinct surface forms, longest
	// first; ties are ordered lexicographically.
	LongestWords []string `json:"longest_words"`

	// Table is the underlying frequency table, for further passes.
	Table *freq.Table `json:"-"`
}

// New creates an Analyzer from cfg.
//
// The morphology provider (when lemmatization is enabled), stopword set, and
// syllable counter are resolved eagerly so misconfiguration fails here, not
// mid-run.
func New(cfg Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("analyzer config: %w", err)
	}

	syllables, err := syllable.ForLanguage(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("analyzer config: %w", err)
	}

	var provider morph.Provider
	if cfg.Lemmatize {
		provider, err = morph.New(cfg.Provider, cfg.LemmaDict)
		if err != nil {
			return nil, fmt.Errorf("analyzer: %w", err)
		}
	}

	var stopwords normalize.Set
	if cfg.ExcludeStopwords {
		stopwords = normalize.NewSet(cfg.Stopwords...)
		if cfg.StopwordFile != "" {
			loaded, err := normalize.LoadSet(cfg.StopwordFile)
			if err != nil {
				return nil, fmt.Errorf("analyzer: %w", err)
			}
			for w := range loaded {
				stopwords.Add(w)
			}
		}
	}

	return &Analyzer{
		cfg:       cfg,
		norm:      normalize.New(provider, stopwords),
		syllables: syllables,
		provider:  provider,
	}, nil
}

// Config returns the configuration the Analyzer was built with.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// AnalyzeFile reads path and analyzes its text content.
func (a *Analyzer) AnalyzeFile(path string) (*Result, error) {
	text, err := document.ReadFile(path, a.cfg.Encoding)
	if err != nil {
		return nil, err
	}
	res, err := a.AnalyzeText(text)
	if err != nil {
		return nil, err
	}
	res.Source = path
	return res, nil
}

// AnalyzeText runs the pipeline over already-extracted text.
//
// Empty input (no tokens survive) is not an error: the result carries zero
// totals and an empty coverage report.
func (a *Analyzer) AnalyzeText(text string) (*Result, error) {
	tokens := document.Tokenize(text)

	table := freq.NewTable()
	surface := freq.NewTable()
	var forms map[string]map[string]struct{}
	if a.provider != nil {
		forms = make(map[string]map[string]struct{})
	}

	for _, tok := range tokens {
		lowered := strings.ToLower(tok)
		surface.Add(lowered)

		key, ok, err := a.norm.Normalize(tok)
		if err != nil {
			return nil, fmt.Errorf("analyze: %w", err)
		}
		if !ok {
			continue
		}
		table.Add(key)

		if forms != nil {
			set, exists := forms[key]
			if !exists {
				set = make(map[string]struct{})
				forms[key] = set
			}
			set[lowered] = struct{}{}
		}
	}

	ranked := freq.Rank(table)

	var cov *coverage.Report
	if a.cfg.TargetPercent > 0 {
		cov = coverage.ByPercent(ranked, table.Total(), a.cfg.TargetPercent)
	} else {
		cov = coverage.ByCount(ranked, table.Total(), a.cfg.TopWords)
	}

	res := &Result{
		TotalWords:     surface.Total(),
		UniqueWords:    surface.Distinct(),
		TotalSyllables: a.syllables.Total(tokens),
		Ranked:         ranked,
		Coverage:       cov,
		LongestWords:   longestWords(surface.Keys()),
		Table:          table,
	}
	if res.TotalWords > 0 {
		res.VocabularyRichness = float64(res.UniqueWords) / float64(res.TotalWords)
		res.AvgWordLength = avgRuneLength(tokens)
		res.AvgSyllables = float64(res.TotalSyllables) / float64(res.TotalWords)
	}

	if a.provider != nil {
		res.LemmaForms = coveredForms(cov, forms)
		dist, err := a.posDistribution(surface)
		if err != nil {
			return nil, fmt.Errorf("analyze: %w", err)
		}
		res.POSDistribution = dist
	}
	return res, nil
}

// posDistribution tallies part-of-speech tags over all surface occurrences.
func (a *Analyzer) posDistribution(surface *freq.Table) (map[string]int64, error) {
	dist := make(map[string]int64)
	for _, word := range surface.Keys() {
		pos, err := a.provider.PartOfSpeech(word)
		if err != nil {
			return nil, fmt.Errorf("part of speech of %q: %w", word, err)
		}
		if pos != "" {
			dist[pos] += surface.Get(word)
		}
	}
	return dist, nil
}

// coveredForms restricts the lemma → surface-forms index to the lemmas that
// made it into the coverage report, with forms sorted for stable output.
func coveredForms(cov *coverage.Report, forms map[string]map[string]struct{}) map[string][]string {
	out := make(map[string][]string, len(cov.Points))
	for _, p := range cov.Points {
		set := forms[p.Key]
		if len(set) == 0 {
			continue
		}
		list := make([]string, 0, len(set))
		for form := range set {
			list = append(list, form)
		}
		sort.Strings(list)
		out[p.Key] = list
	}
	return out
}

// longestWords returns up to maxLongestWords distinct surface forms,
// longest first, ties ordered lexicographically.
func longestWords(words []string) []string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		li := utf8.RuneCountInString(sorted[i])
		lj := utf8.RuneCountInString(sorted[j])
		if li != lj {
			return li > lj
		}
		return sorted[i] < sorted[j]
	})
	if len(sorted) > maxLongestWords {
		sorted = sorted[:maxLongestWords]
	}
	return sorted
}

func avgRuneLength(tokens []string) float64 {
	var runes int64
	for _, tok := range tokens {
		runes += int64(utf8.RuneCountInString(tok))
	}
	return float64(runes) / float64(len(tokens))
}
