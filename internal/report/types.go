package report

import "time"

// Outcome is the result of evaluating a single rule.
type Outcome struct {
	Name        string   `json:"name"`
	Passed      bool     `json:"passed"`
	Issues      []string `json:"issues"`
	Description string   `json:"description"`
}

// Category groups the outcomes of related rules.
type Category struct {
	Title  string             `json:"title"`
	Passed bool               `json:"passed"`
	Score  string             `json:"score"`
	Tests  map[string]Outcome `json:"tests"`

	order []string
}

// NewCategory builds a category from outcomes in evaluation order.
// The category passes only when every outcome passed.
func NewCategory(title string, outcomes []Outcome) Category {
	c := Category{
		Title:  title,
		Passed: true,
		Tests:  make(map[string]Outcome, len(outcomes)),
		order:  make([]string, 0, len(outcomes)),
	}
	passed := 0
	for _, o := range outcomes {
		if o.Issues == nil {
			o.Issues = []string{}
		}
		c.Tests[o.Name] = o
		c.order = append(c.order, o.Name)
		if o.Passed {
			passed++
		} else {
			c.Passed = false
		}
	}
	c.Score = Score(passed, len(outcomes))
	return c
}

// Outcomes returns the category's outcomes in evaluation order.
func (c Category) Outcomes() []Outcome {
	out := make([]Outcome, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.Tests[name])
	}
	return out
}

// HasIssues reports whether any outcome recorded an issue, including
// outcomes that passed within their tolerance.
func (c Category) HasIssues() bool {
	for _, o := range c.Tests {
		if len(o.Issues) > 0 {
			return true
		}
	}
	return false
}

// Tally counts categories, not rules.
type Tally struct {
	Passed   int
	Failed   int
	Warnings int
}

// Add records one category.
func (t *Tally) Add(c Category) {
	if c.Passed {
		t.Passed++
		if c.HasIssues() {
			t.Warnings++
		}
		return
	}
	t.Failed++
}

// Summary is the headline section of the report.
type Summary struct {
	Date        time.Time `json:"date"`
	TotalTests  int       `json:"totalTests"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
	Warnings    int       `json:"warnings"`
	SuccessRate string    `json:"successRate"`
}

// Report is the document written at the end of a run.
type Report struct {
	ID              string              `json:"id"`
	Summary         Summary             `json:"summary"`
	Results         map[string]Category `json:"results"`
	Recommendations []Recommendation    `json:"recommendations"`
	Log             []string            `json:"log"`
}
