// Command wordcover analyzes vocabulary coverage of a text or EPUB document.
//
// Examples:
//
//	wordcover analyze --percent 80 book.epub
//	wordcover analyze --top 500 --lemma-dict lemmas.tsv --lemmatize book.txt
//	wordcover schema
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"wordcover/analyzer"
	"wordcover/report"
)

var cli struct {
	Analyze analyzeCmd `cmd:"" help:"Analyze a document and report vocabulary coverage."`
	Schema  schemaCmd  `cmd:"" help:"Print the JSON Schema of the JSON report format."`
}

type analyzeCmd struct {
	Path string `arg:"" type:"existingfile" help:"Input document (.epub or plain text)."`

	Config  string  `short:"c" type:"existingfile" help:"Config file (.toml, .yaml, .yml)."`
	Percent float64 `short:"p" help:"Stop once cumulative coverage reaches this percentage."`
	Top     int     `short:"n" help:"Rank this many top words regardless of coverage."`

	Language  string `short:"l" help:"Language for syllable counting (russian, english)."`
	Encoding  string `short:"e" help:"Source encoding of plain-text input (utf8, cp1251, koi8-r, ...)."`
	Lemmatize bool   `help:"Collapse word forms into dictionary lemmas."`
	LemmaDict string `help:"Tab-separated lemma dictionary for --lemmatize."`

	Stopwords   string `short:"s" help:"Stopword list file (plain text or YAML)."`
	NoStopwords bool   `help:"Disable stopword exclusion even if configured."`
	Format      string `short:"f" enum:"text,csv,json,words" default:"text" help:"Output format (text, csv, json, words)."`
	Output      string `short:"o" help:"Write the report to a file instead of stdout."`
	Watch       bool   `short:"w" help:"Re-run the analysis whenever the input file changes."`
}

type schemaCmd struct{}

func (c *analyzeCmd) buildConfig() (analyzer.Config, error) {
	cfg := analyzer.DefaultConfig()
	if c.Config != "" {
		loaded, err := analyzer.LoadConfig(c.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg.LoadFromEnv()

	// Flags override file and environment.
	if c.Percent > 0 {
		cfg = cfg.WithTargetPercent(c.Percent)
	} else if c.Top > 0 {
		cfg = cfg.WithTopWords(c.Top)
	}
	if c.Language != "" {
		cfg.Language = c.Language
	}
	if c.Encoding != "" {
		cfg.Encoding = c.Encoding
	}
	if c.Lemmatize {
		cfg.Lemmatize = true
	}
	if c.LemmaDict != "" {
		cfg.LemmaDict = c.LemmaDict
	}
	if c.Stopwords != "" {
		cfg.ExcludeStopwords = true
		cfg.StopwordFile = c.Stopwords
	}
	if c.NoStopwords {
		cfg.ExcludeStopwords = false
	}
	return cfg, nil
}

func (c *analyzeCmd) Run() error {
	cfg, err := c.buildConfig()
	if err != nil {
		return err
	}
	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}

	if c.Watch {
		return c.watch(a)
	}

	res, err := a.AnalyzeFile(c.Path)
	if err != nil {
		return err
	}
	return c.write(res)
}

func (c *analyzeCmd) watch(a *analyzer.Analyzer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "watching %s (Ctrl-C to stop)\n", c.Path)
	for ev := range a.Watch(ctx, c.Path) {
		if ev.Err != nil {
			fmt.Fprintf(os.Stderr, "analysis error: %v\n", ev.Err)
			continue
		}
		if err := c.write(ev.Result); err != nil {
			return err
		}
	}
	return nil
}

func (c *analyzeCmd) write(res *analyzer.Result) error {
	out := os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch c.Format {
	case "csv":
		return report.WriteCSV(out, res.Coverage)
	case "json":
		return report.WriteJSON(out, res)
	case "words":
		return report.WriteWordList(out, res.Coverage)
	default:
		return report.WriteText(out, res)
	}
}

func (schemaCmd) Run() error {
	data, err := report.Schema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("wordcover"),
		kong.Description("Vocabulary-coverage statistics for texts and EPUB books."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
