package checks

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/prettymuchbryce/mobiletest/internal/device"
	"github.com/prettymuchbryce/mobiletest/internal/report"
)

// Definition is a named, ordered group of rules.
type Definition struct {
	Name  string // result key, e.g. "touchInteractions"
	Title string // display name
	Order int
	Rules []Rule
}

// Evaluate runs every rule in order and aggregates the outcomes.
// The reporter receives each outcome as it is produced.
func (d Definition) Evaluate(p device.Probe, r report.Reporter) report.Category {
	r.StartCategory(d.Name, d.Title)
	outcomes := make([]report.Outcome, 0, len(d.Rules))
	for _, rule := range d.Rules {
		o := rule.Evaluate(p)
		r.RecordRule(o)
		outcomes = append(outcomes, o)
	}
	c := report.NewCategory(d.Title, outcomes)
	r.EndCategory(c)
	return c
}

// registry holds registered categories.
var registry = map[string]Definition{}

// Register adds a category definition. Registering a name twice panics.
func Register(d Definition) {
	if _, ok := registry[d.Name]; ok {
		panic(fmt.Sprintf("category %q registered twice", d.Name))
	}
	registry[d.Name] = d
}

// List returns all registered categories in run order.
func List() []Definition {
	out := make([]Definition, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order == out[j].Order {
			return out[i].Name < out[j].Name
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// Select filters defs to those whose name matches any of the glob patterns.
// No patterns selects everything.
func Select(defs []Definition, patterns []string) ([]Definition, error) {
	if len(patterns) == 0 {
		return defs, nil
	}
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid category pattern %q", pattern)
		}
	}

	var out []Definition
	for _, d := range defs {
		for _, pattern := range patterns {
			if matched, _ := doublestar.Match(pattern, d.Name); matched {
				out = append(out, d)
				break
			}
		}
	}
	return out, nil
}
