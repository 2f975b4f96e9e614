package report

// Reporter receives progress while a suite runs.
// Implementations can render a tree, stream JSON, etc.
type Reporter interface {
	// StartCategory begins reporting for a category.
	StartCategory(name, title string)

	// RecordRule records a single rule outcome in the current category.
	RecordRule(o Outcome)

	// EndCategory finishes the current category with its aggregate.
	EndCategory(c Category)
}

// NullReporter is a no-op reporter for when reporting is disabled.
type NullReporter struct{}

func (NullReporter) StartCategory(name, title string) {}
func (NullReporter) RecordRule(o Outcome)             {}
func (NullReporter) EndCategory(c Category)           {}
