package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"wordcover/analyzer"
)

// WriteText renders a human-readable analysis summary.
func WriteText(w io.Writer, res *analyzer.Result) error {
	var sb strings.Builder

	sb.WriteString("=== Text Analysis Results ===\n\n")
	if res.Source != "" {
		fmt.Fprintf(&sb, "Source: %s\n", res.Source)
	}
	fmt.Fprintf(&sb, "Total words: %d\n", res.TotalWords)
	fmt.Fprintf(&sb, "Unique words: %d\n", res.UniqueWords)
	fmt.Fprintf(&sb, "Vocabulary richness: %.2f%%\n", res.VocabularyRichness*100)
	fmt.Fprintf(&sb, "Average word length: %.2f characters\n", res.AvgWordLength)
	fmt.Fprintf(&sb, "Average syllables per word: %.2f\n", res.AvgSyllables)

	cov := res.Coverage
	sb.WriteString("\nWord Coverage:\n")
	if cov.TargetPercent > 0 {
		fmt.Fprintf(&sb, "  Target: %.1f%% of all occurrences\n", cov.TargetPercent)
	} else {
		fmt.Fprintf(&sb, "  Target: top %d words\n", cov.TargetCount)
	}
	fmt.Fprintf(&sb, "  Words needed: %d of %d distinct\n", len(cov.Points), cov.DistinctKeys)
	fmt.Fprintf(&sb, "  Coverage reached: %.2f%%\n", cov.Covered())

	if len(cov.Points) > 0 {
		sb.WriteString("\n#\tWord\tCount\tCumulative %\n")
		for i, p := range cov.Points {
			fmt.Fprintf(&sb, "%d\t%s\t%d\t%.2f%%\n", i+1, p.Key, p.Count, p.CumulativePercent)
			if forms, ok := res.LemmaForms[p.Key]; ok && len(forms) > 1 {
				fmt.Fprintf(&sb, "\tforms: %s\n", strings.Join(forms, ", "))
			}
		}
	}

	if len(res.POSDistribution) > 0 {
		sb.WriteString("\nParts of speech:\n")
		for _, pos := range sortedPOS(res.POSDistribution) {
			count := res.POSDistribution[pos]
			pct := float64(count) / float64(res.TotalWords) * 100
			fmt.Fprintf(&sb, "  %s: %d (%.1f%%)\n", pos, count, pct)
		}
	}

	if len(res.LongestWords) > 0 {
		sb.WriteString("\nLongest words:\n")
		for _, word := range res.LongestWords {
			fmt.Fprintf(&sb, "  %s\n", word)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// sortedPOS orders tags by count descending, ties alphabetically.
func sortedPOS(dist map[string]int64) []string {
	tags := make([]string, 0, len(dist))
	for tag := range dist {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if dist[tags[i]] != dist[tags[j]] {
			return dist[tags[i]] > dist[tags[j]]
		}
		return tags[i] < tags[j]
	})
	return tags
}
