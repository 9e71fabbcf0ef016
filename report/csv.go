package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"wordcover/coverage"
)

// WriteCSV renders the coverage report as delimited text, one ranked key per
// row: rank, word, count, cumulative percent.
func WriteCSV(w io.Writer, rep *coverage.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"rank", "word", "count", "cumulative_percent"}); err != nil {
		return err
	}
	for i, p := range rep.Points {
		row := []string{
			strconv.Itoa(i + 1),
			p.Key,
			strconv.FormatInt(p.Count, 10),
			strconv.FormatFloat(p.CumulativePercent, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteWordList emits just the covered words, one per line, in rank order.
// This is the format flashcard and sight-word tools expect.
func WriteWordList(w io.Writer, rep *coverage.Report) error {
	for _, p := range rep.Points {
		if _, err := fmt.Fprintln(w, p.Key); err != nil {
			return err
		}
	}
	return nil
}
