package report

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Recommendation is a fixed remediation suggestion.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Category string   `json:"category"`
	Issue    string   `json:"issue"`
	Text     string   `json:"text"`
}

// remediation ties a recommendation to the result key of the category it covers.
type remediation struct {
	key string
	rec Recommendation
}

// remediations are emitted in this order when their category fails.
var remediations = []remediation{
	{
		key: "touchInteractions",
		rec: Recommendation{
			Priority: PriorityHigh,
			Category: "Touch Interactions",
			Issue:    "Touch targets, spacing or tap response do not meet mobile guidelines",
			Text:     "Make every interactive element at least 44x44px with 8px spacing and keep tap response under 200ms",
		},
	},
	{
		key: "readability",
		rec: Recommendation{
			Priority: PriorityMedium,
			Category: "Readability",
			Issue:    "Text is hard to read on small screens",
			Text:     "Use a 16px base font, 1.5 line height and a contrast ratio of at least 4.5:1, and do not disable zoom",
		},
	},
	{
		key: "performance",
		rec: Recommendation{
			Priority: PriorityHigh,
			Category: "Performance",
			Issue:    "Scrolling or page load is too slow on mobile devices",
			Text:     "Keep scrolling above 30fps and page load under 3s by serving modern image formats and lazy loading offscreen media",
		},
	},
	{
		key: "navigation",
		rec: Recommendation{
			Priority: PriorityMedium,
			Category: "Navigation",
			Issue:    "Mobile navigation is incomplete",
			Text:     "Provide an accessible collapsible menu, breadcrumbs on deep pages and working back navigation",
		},
	},
}

// generalEnhancement is appended to every report.
var generalEnhancement = Recommendation{
	Priority: PriorityLow,
	Category: "General",
	Issue:    "General enhancement",
	Text:     "Consider progressive web app features such as offline support and home screen installation",
}

// Recommend derives recommendations from category results.
// Categories that did not run produce nothing.
func Recommend(results map[string]Category) []Recommendation {
	var recs []Recommendation
	for _, r := range remediations {
		c, ok := results[r.key]
		if ok && !c.Passed {
			recs = append(recs, r.rec)
		}
	}
	return append(recs, generalEnhancement)
}
