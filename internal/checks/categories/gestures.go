package categories

import (
	"fmt"

	"github.com/prettymuchbryce/mobiletest/internal/checks"
	"github.com/prettymuchbryce/mobiletest/internal/device"
)

// GestureSupport checks common touch gestures. Up to two missing gestures
// are tolerated.
var GestureSupport = checks.Definition{
	Name:  GestureSupportName,
	Title: "Gesture Support",
	Order: 3,
	Rules: []checks.Rule{
		{
			Name:        "gestureCoverage",
			Description: "Common gestures are supported (up to 2 may be missing)",
			Tolerance:   checks.MaxMissingGestures,
			Check: func(p device.Probe) []string {
				return missingFeatures("gesture", p.Gestures())
			},
		},
		{
			Name:        "momentumScrolling",
			Description: "Scrollable regions use momentum scrolling",
			Check:       checkMomentumScrolling,
		},
		{
			Name:        "touchActionPolicy",
			Description: "touch-action removes the double-tap zoom delay",
			Check:       checkTouchAction,
		},
	},
}

func checkMomentumScrolling(p device.Probe) []string {
	if !p.MomentumScrolling() {
		return []string{"momentum scrolling is disabled"}
	}
	return nil
}

func checkTouchAction(p device.Probe) []string {
	switch ta := p.TouchAction(); ta {
	case "manipulation", "pan-x pan-y", "pan-y", "pan-x":
		return nil
	case "":
		return []string{"touch-action is not set"}
	default:
		return []string{fmt.Sprintf("touch-action %q does not remove the tap delay", ta)}
	}
}
