// Package categories registers the shipped mobile checklist categories.
// Import it for side effects:
//
//	import _ "github.com/prettymuchbryce/mobiletest/internal/checks/categories"
package categories

import (
	"fmt"

	"github.com/prettymuchbryce/mobiletest/internal/checks"
	"github.com/prettymuchbryce/mobiletest/internal/device"
)

// Result keys for the shipped categories.
const (
	ResponsiveLayoutName  = "responsiveLayout"
	TouchInteractionsName = "touchInteractions"
	GestureSupportName    = "gestureSupport"
	ReadabilityName       = "readability"
	PerformanceName       = "performance"
	NavigationName        = "navigation"
)

func init() {
	checks.Register(ResponsiveLayout)
	checks.Register(TouchInteractions)
	checks.Register(GestureSupport)
	checks.Register(Readability)
	checks.Register(Performance)
	checks.Register(Navigation)
}

// perBreakpoint collects the issues reported by f for each breakpoint.
func perBreakpoint(bps []device.Breakpoint, f func(bp device.Breakpoint) string) []string {
	var issues []string
	for _, bp := range bps {
		if issue := f(bp); issue != "" {
			issues = append(issues, issue)
		}
	}
	return issues
}

// missingFeatures lists features that are not implemented.
func missingFeatures(kind string, features []device.Feature) []string {
	var issues []string
	for _, f := range features {
		if !f.Implemented {
			issues = append(issues, fmt.Sprintf("%s %q not implemented", kind, f.Name))
		}
	}
	return issues
}
