package checks

import (
	"github.com/prettymuchbryce/mobiletest/internal/device"
	"github.com/prettymuchbryce/mobiletest/internal/report"
)

// CheckFunc inspects the probe and returns one issue per failing item.
type CheckFunc func(p device.Probe) []string

// Rule is a single named checklist item.
type Rule struct {
	Name        string
	Description string

	// Tolerance is the number of issues allowed before the rule fails.
	Tolerance int

	Check CheckFunc
}

// Evaluate runs the check and derives the outcome.
func (r Rule) Evaluate(p device.Probe) report.Outcome {
	issues := r.Check(p)
	if issues == nil {
		issues = []string{}
	}
	return report.Outcome{
		Name:        r.Name,
		Passed:      len(issues) <= r.Tolerance,
		Issues:      issues,
		Description: r.Description,
	}
}
