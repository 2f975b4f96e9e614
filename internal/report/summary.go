package report

import (
	"fmt"
	"math"
	"time"
)

// Score formats a passed/total ratio.
func Score(passed, total int) string {
	return fmt.Sprintf("%d/%d", passed, total)
}

// SuccessRate returns passed/(passed+failed) as a rounded whole percentage.
// A run with no categories yields "0%".
func SuccessRate(passed, failed int) string {
	total := passed + failed
	if total == 0 {
		return "0%"
	}
	pct := math.Round(float64(passed) / float64(total) * 100)
	return fmt.Sprintf("%d%%", int(pct))
}

// Build assembles a report from per-category results.
func Build(id string, date time.Time, results map[string]Category, tally Tally, log []string) *Report {
	if results == nil {
		results = map[string]Category{}
	}
	if log == nil {
		log = []string{}
	}
	return &Report{
		ID: id,
		Summary: Summary{
			Date:        date.UTC(),
			TotalTests:  tally.Passed + tally.Failed,
			Passed:      tally.Passed,
			Failed:      tally.Failed,
			Warnings:    tally.Warnings,
			SuccessRate: SuccessRate(tally.Passed, tally.Failed),
		},
		Results:         results,
		Recommendations: Recommend(results),
		Log:             log,
	}
}
