package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds configuration for an analysis run.
type Config struct {
	// Language selects the built-in vowel set for syllable counting.
	// Default: "russian".
	Language string `toml:"language" yaml:"language" json:"language"`

	// Encoding is the source encoding of plain-text inputs.
	// Default: "utf8". See document.DecodeText for supported names.
	Encoding string `toml:"encoding" yaml:"encoding" json:"encoding"`

	// Lemmatize replaces each word with its dictionary base form before
	// counting, so "кошки" and "кошка" count as one vocabulary item.
	Lemmatize bool `toml:"lemmatize" yaml:"lemmatize" json:"lemmatize"`

	// Provider is the morphology provider name used when Lemmatize is set.
	// Default: "dict".
	Provider string `toml:"provider" yaml:"provider" json:"provider"`

	// LemmaDict is the provider source; for the "dict" provider this is
	// the path to a tab-separated lemma file.
	LemmaDict string `toml:"lemma_dict" yaml:"lemma_dict" json:"lemma_dict"`

	// ExcludeStopwords drops stopwords from counting entirely: excluded
	// occurrences do not contribute to totals.
	ExcludeStopwords bool `toml:"exclude_stopwords" yaml:"exclude_stopwords" json:"exclude_stopwords"`

	// StopwordFile is a stopword list file (plain text or YAML sequence).
	StopwordFile string `toml:"stopword_file" yaml:"stopword_file" json:"stopword_file"`

	// Stopwords lists additional stopwords inline.
	Stopwords []string `toml:"stopwords" yaml:"stopwords" json:"stopwords"`

	// TargetPercent stops coverage once the cumulative percentage reaches
	// this threshold. When set (> 0) it takes precedence over TopWords.
	TargetPercent float64 `toml:"target_percent" yaml:"target_percent" json:"target_percent"`

	// TopWords ranks this many top words regardless of coverage reached.
	TopWords int `toml:"top_words" yaml:"top_words" json:"top_words"`
}

// DefaultConfig returns a Config with sensible defaults: Russian text in
// UTF-8, no lemmatization, no stopword exclusion, top 100 words.
func DefaultConfig() Config {
	return Config{
		Language: "russian",
		Encoding: "utf8",
		Provider: "dict",
		TopWords: 100,
	}
}

// LoadConfig reads a config file, applying it over DefaultConfig.
// The format is chosen by extension: .toml, .yaml, or .yml.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("load config %s: unsupported format (want .toml, .yaml, or .yml)", path)
	}
	return cfg, nil
}

// LoadFromEnv populates config fields from environment variables.
// Variables use the WORDCOVER_ prefix and take precedence over existing
// values.
//
// Supported variables:
//   - WORDCOVER_LANGUAGE: Vowel-set language
//   - WORDCOVER_ENCODING: Plain-text source encoding
//   - WORDCOVER_LEMMATIZE: Enable lemmatization ("true"/"false")
//   - WORDCOVER_PROVIDER: Morphology provider name
//   - WORDCOVER_LEMMA_DICT: Lemma dictionary path
//   - WORDCOVER_EXCLUDE_STOPWORDS: Enable stopword exclusion
//   - WORDCOVER_STOPWORD_FILE: Stopword list path
//   - WORDCOVER_TARGET_PERCENT: Coverage threshold
//   - WORDCOVER_TOP_WORDS: Top-N word count
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("WORDCOVER_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("WORDCOVER_ENCODING"); v != "" {
		c.Encoding = v
	}
	if v := os.Getenv("WORDCOVER_LEMMATIZE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Lemmatize = b
		}
	}
	if v := os.Getenv("WORDCOVER_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("WORDCOVER_LEMMA_DICT"); v != "" {
		c.LemmaDict = v
	}
	if v := os.Getenv("WORDCOVER_EXCLUDE_STOPWORDS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.ExcludeStopwords = b
		}
	}
	if v := os.Getenv("WORDCOVER_STOPWORD_FILE"); v != "" {
		c.StopwordFile = v
	}
	if v := os.Getenv("WORDCOVER_TARGET_PERCENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.TargetPercent = f
		}
	}
	if v := os.Getenv("WORDCOVER_TOP_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TopWords = n
		}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("language is required")
	}
	if c.TargetPercent < 0 || c.TargetPercent > 100 {
		return fmt.Errorf("target_percent must be between 0 and 100, got %v", c.TargetPercent)
	}
	if c.TopWords < 0 {
		return fmt.Errorf("top_words must be >= 0, got %d", c.TopWords)
	}
	if c.TargetPercent == 0 && c.TopWords == 0 {
		return fmt.Errorf("either target_percent or top_words must be set")
	}
	if c.Lemmatize {
		if c.Provider == "" {
			return fmt.Errorf("provider is required when lemmatize is set")
		}
		if c.Provider == "dict" && c.LemmaDict == "" {
			return fmt.Errorf("lemma_dict is required for the dict provider")
		}
	}
	return nil
}

// WithTargetPercent returns a copy of the config with the coverage
// threshold set and TopWords cleared.
func (c Config) WithTargetPercent(pct float64) Config {
	c.TargetPercent = pct
	c.TopWords = 0
	return c
}

// WithTopWords returns a copy of the config with the top-N count set and
// TargetPercent cleared.
func (c Config) WithTopWords(n int) Config {
	c.TopWords = n
	c.TargetPercent = 0
	return c
}

// WithStopwords returns a copy of the config with stopword exclusion
// enabled for the given words.
func (c Config) WithStopwords(words ...string) Config {
	c.ExcludeStopwords = true
	c.Stopwords = words
	return c
}
