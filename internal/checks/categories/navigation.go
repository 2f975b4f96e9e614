package categories

import (
	"github.com/prettymuchbryce/mobiletest/internal/checks"
	"github.com/prettymuchbryce/mobiletest/internal/device"
)

// Navigation checks mobile menu and wayfinding. One missing breadcrumb is
// tolerated.
var Navigation = checks.Definition{
	Name:  NavigationName,
	Title: "Navigation",
	Order: 6,
	Rules: []checks.Rule{
		{
			Name:        "mobileMenu",
			Description: "A collapsible, accessible mobile menu is implemented",
			Check:       checkMobileMenu,
		},
		{
			Name:        "breadcrumbs",
			Description: "Deep pages show breadcrumbs (1 may be missing)",
			Tolerance:   checks.MaxMissingBreadcrumbs,
			Check: func(p device.Probe) []string {
				return missingFeatures("breadcrumb", p.Breadcrumbs())
			},
		},
		{
			Name:        "backNavigation",
			Description: "Browser back navigation restores the previous view",
			Check:       checkBackNavigation,
		},
	},
}

func checkMobileMenu(p device.Probe) []string {
	m := p.MobileMenu()
	if !m.Implemented {
		return []string{"mobile menu not implemented"}
	}
	var issues []string
	if !m.Toggle {
		issues = append(issues, "mobile menu has no toggle button")
	}
	if !m.Accessible {
		issues = append(issues, "menu toggle does not expose aria-expanded")
	}
	return issues
}

func checkBackNavigation(p device.Probe) []string {
	if !p.BackNavigation() {
		return []string{"back navigation does not restore the previous view"}
	}
	return nil
}
