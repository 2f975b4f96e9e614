package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/xlab/treeprint"
)

// Styles for the structured reporter
var (
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // Cyan
	ruleStyle     = lipgloss.NewStyle().Bold(true)
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // Gray
)

const (
	passIcon = "✓"
	failIcon = "✗"
	warnIcon = "⚠"
)

// StructuredReporter prints each category as a tree of rule outcomes.
type StructuredReporter struct {
	w       io.Writer
	verbose bool

	current  string
	outcomes []Outcome
}

// NewStructuredWithWriter creates a StructuredReporter writing to a custom writer.
func NewStructuredWithWriter(w io.Writer, verbose bool) *StructuredReporter {
	return &StructuredReporter{
		w:       w,
		verbose: verbose,
	}
}

// StartCategory begins reporting for a category.
func (r *StructuredReporter) StartCategory(name, title string) {
	r.current = title
	r.outcomes = nil
}

// RecordRule records a rule outcome.
func (r *StructuredReporter) RecordRule(o Outcome) {
	r.outcomes = append(r.outcomes, o)
}

// EndCategory prints the category header and, when verbose or failing,
// the rule tree.
func (r *StructuredReporter) EndCategory(c Category) {
	icon := passStyle.Render(passIcon)
	if !c.Passed {
		icon = failStyle.Render(failIcon)
	}
	fmt.Fprintf(r.w, "\n%s %s %s\n", categoryStyle.Render("━━━ "+r.current+" ━━━"), icon, detailStyle.Render(c.Score))

	if !r.verbose && c.Passed {
		return
	}

	tree := treeprint.New()
	width := r.maxNameWidth()
	for _, o := range r.outcomes {
		if !r.verbose && o.Passed {
			continue
		}
		branch := tree.AddBranch(r.formatOutcome(o, width))
		for _, issue := range o.Issues {
			branch.AddNode(detailStyle.Render(issue))
		}
	}
	fmt.Fprint(r.w, tree.String())
}

func (r *StructuredReporter) maxNameWidth() int {
	width := 0
	for _, o := range r.outcomes {
		if len(o.Name) > width {
			width = len(o.Name)
		}
	}
	return width
}

// formatOutcome renders "name: icon description" with aligned icons.
func (r *StructuredReporter) formatOutcome(o Outcome, width int) string {
	var icon string
	switch {
	case !o.Passed:
		icon = failStyle.Render(failIcon)
	case len(o.Issues) > 0:
		icon = warnStyle.Render(warnIcon)
	default:
		icon = passStyle.Render(passIcon)
	}
	name := fmt.Sprintf("%-*s", width+1, o.Name+":")
	return fmt.Sprintf("%s %s %s", ruleStyle.Render(name), icon, detailStyle.Render(o.Description))
}
