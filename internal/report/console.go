package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Width(14)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 2)
	failBoxStyle = boxStyle.BorderForeground(lipgloss.Color("1"))

	priorityStyles = map[Priority]lipgloss.Style{
		PriorityHigh:   failStyle.Bold(true),
		PriorityMedium: warnStyle.Bold(true),
		PriorityLow:    detailStyle,
	}
)

// PrintSummary writes the human-readable run summary and numbered
// recommendations.
func PrintSummary(w io.Writer, rep *Report, path string) {
	s := rep.Summary
	lines := labelStyle.Render("Total tests") + fmt.Sprint(s.TotalTests) + "\n" +
		labelStyle.Render("Passed") + passStyle.Render(fmt.Sprint(s.Passed)) + "\n" +
		labelStyle.Render("Failed") + failStyle.Render(fmt.Sprint(s.Failed)) + "\n" +
		labelStyle.Render("Success rate") + ruleStyle.Render(s.SuccessRate)
	if s.Warnings > 0 {
		lines += "\n" + labelStyle.Render("Warnings") + warnStyle.Render(fmt.Sprint(s.Warnings))
	}

	box := boxStyle
	if s.Failed > 0 {
		box = failBoxStyle
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, box.Render(lines))

	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Recommendations"))
	for i, rec := range rep.Recommendations {
		style := priorityStyles[rec.Priority]
		fmt.Fprintf(w, "%d. %s %s: %s\n", i+1, style.Render("["+string(rec.Priority)+"]"), rec.Category, rec.Text)
	}

	if path != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, detailStyle.Render("Report written to "+path))
	}
}
