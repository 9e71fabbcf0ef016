package coverage

import "wordcover/freq"

// Point is one position on the cumulative-coverage curve.
type Point struct {
	// Key is the canonical key at this rank position.
	Key string `json:"key"`

	// Count is the number of occurrences of Key.
	Count int64 `json:"count"`

	// CumulativePercent is the share of all occurrences accounted for by
	// this entry and every entry ranked above it, on a 0-100 scale.
	CumulativePercent float64 `json:"cumulative_percent"`
}

// Report is the result of a coverage computation.
type Report struct {
	// TargetPercent is the requested coverage threshold.
	// Zero when the report was produced by ByCount.
	TargetPercent float64 `json:"target_percent,omitempty"`

	// TargetCount is the requested number of top entries.
	// Zero when the report was produced by ByPercent.
	TargetCount int `json:"target_count,omitempty"`

	// Points holds the included entries in rank order. The cumulative
	// percentage is monotonically non-decreasing by construction.
	Points []Point `json:"points"`

	// TotalOccurrences is the total occurrence count of the underlying
	// frequency table.
	TotalOccurrences int64 `json:"total_occurrences"`

	// DistinctKeys is the number of distinct keys in the full ranking.
	DistinctKeys int `json:"distinct_keys"`
}

// Covered returns the final cumulative percentage of the report,
// or 0 for an empty report.
func (r *Report) Covered() float64 {
	if len(r.Points) == 0 {
		return 0
	}
	return r.Points[len(r.Points)-1].CumulativePercent
}

// ByPercent walks the ranking and stops at the first entry whose cumulative
// percentage reaches or exceeds targetPct, including that entry.
//
// A targetPct of 0 or less, an empty ranking, or a total of 0 yields an
// empty report. total must be the sum of counts over the full ranking.
func ByPercent(ranked []freq.Entry, total int64, targetPct float64) *Report {
	rep := &Report{
		TargetPercent: targetPct,
		DistinctKeys:  len(ranked),
	}
	if total > 0 {
		rep.TotalOccurrences = total
	}
	if total <= 0 || targetPct <= 0 {
		return rep
	}

	var cum int64
	for _, e := range ranked {
		cum += e.Count
		pct := float64(cum) / float64(total) * 100
		rep.Points = append(rep.Points, Point{
			Key:               e.Key,
			Count:             e.Count,
			CumulativePercent: pct,
		})
		if pct >= targetPct {
			break
		}
	}
	return rep
}

// ByCount takes the top n entries of the ranking regardless of the coverage
// reached, reporting the cumulative percentage at every position. Fewer than
// n entries are returned when the ranking is shorter.
//
// An n of 0 or less or a total of 0 yields an empty report.
func ByCount(ranked []freq.Entry, total int64, n int) *Report {
	rep := &Report{
		TargetCount:  n,
		DistinctKeys: len(ranked),
	}
	if total > 0 {
		rep.TotalOccurrences = total
	}
	if total <= 0 || n <= 0 {
		return rep
	}

	if n > len(ranked) {
		n = len(ranked)
	}
	var cum int64
	for _, e := range ranked[:n] {
		cum += e.Count
		rep.Points = append(rep.Points, Point{
			Key:               e.Key,
			Count:             e.Count,
			CumulativePercent: float64(cum) / float64(total) * 100,
		})
	}
	return rep
}
