package categories

import (
	"fmt"

	"github.com/prettymuchbryce/mobiletest/internal/checks"
	"github.com/prettymuchbryce/mobiletest/internal/device"
)

// TouchInteractions checks tap targets and responsiveness.
var TouchInteractions = checks.Definition{
	Name:  TouchInteractionsName,
	Title: "Touch Interactions",
	Order: 2,
	Rules: []checks.Rule{
		{
			Name:        "touchTargetSize",
			Description: "Touch targets are at least 44x44px",
			Check:       checkTouchTargetSize,
		},
		{
			Name:        "touchTargetSpacing",
			Description: "Touch targets are at least 8px apart",
			Check:       checkTouchTargetSpacing,
		},
		{
			Name:        "tapResponseTime",
			Description: "Taps respond within 200ms",
			Check:       checkTapResponse,
		},
		{
			Name:        "noHoverDependence",
			Description: "No interaction requires hover",
			Check:       checkHoverDependence,
		},
	},
}

func checkTouchTargetSize(p device.Probe) []string {
	var issues []string
	for _, t := range p.TouchTargets() {
		if t.Width < checks.MinTouchTargetPx || t.Height < checks.MinTouchTargetPx {
			issues = append(issues, fmt.Sprintf("%s is %dx%dpx (min %dx%dpx)",
				t.Name, t.Width, t.Height, checks.MinTouchTargetPx, checks.MinTouchTargetPx))
		}
	}
	return issues
}

func checkTouchTargetSpacing(p device.Probe) []string {
	var issues []string
	for _, t := range p.TouchTargets() {
		if t.Spacing < checks.MinTouchSpacingPx {
			issues = append(issues, fmt.Sprintf("%s has %dpx spacing (min %dpx)", t.Name, t.Spacing, checks.MinTouchSpacingPx))
		}
	}
	return issues
}

func checkTapResponse(p device.Probe) []string {
	var issues []string
	for _, t := range p.TouchTargets() {
		if t.TapTime > checks.MaxTapResponse {
			issues = append(issues, fmt.Sprintf("%s responds in %v (max %v)", t.Name, t.TapTime, checks.MaxTapResponse))
		}
	}
	return issues
}

func checkHoverDependence(p device.Probe) []string {
	var issues []string
	for _, name := range p.HoverOnlyInteractions() {
		issues = append(issues, fmt.Sprintf("%s is only reachable on hover", name))
	}
	return issues
}
