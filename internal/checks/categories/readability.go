package categories

import (
	"fmt"

	"github.com/prettymuchbryce/mobiletest/internal/checks"
	"github.com/prettymuchbryce/mobiletest/internal/device"
)

// Readability checks text legibility on small screens.
var Readability = checks.Definition{
	Name:  ReadabilityName,
	Title: "Readability",
	Order: 4,
	Rules: []checks.Rule{
		{
			Name:        "baseFontSize",
			Description: "Body text is at least 16px at every breakpoint",
			Check:       checkBaseFontSize,
		},
		{
			Name:        "contrastRatio",
			Description: "Text contrast is at least 4.5:1",
			Check:       checkContrast,
		},
		{
			Name:        "lineHeight",
			Description: "Line height is at least 1.5",
			Check:       checkLineHeight,
		},
		{
			Name:        "zoomEnabled",
			Description: "Users can pinch to zoom",
			Check:       checkZoomEnabled,
		},
	},
}

func checkBaseFontSize(p device.Probe) []string {
	return perBreakpoint(p.Breakpoints(), func(bp device.Breakpoint) string {
		if size := p.BaseFontSize(bp); size < checks.MinBaseFontSizePx {
			return fmt.Sprintf("%s: base font is %.0fpx (min %.0fpx)", bp.Name, size, checks.MinBaseFontSizePx)
		}
		return ""
	})
}

func checkContrast(p device.Probe) []string {
	var issues []string
	for _, pair := range p.TextColors() {
		ratio, err := checks.ContrastRatio(pair.Foreground, pair.Background)
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", pair.Name, err))
			continue
		}
		if ratio < checks.MinContrastRatio {
			issues = append(issues, fmt.Sprintf("%s: contrast %.2f:1 (min %.1f:1)", pair.Name, ratio, checks.MinContrastRatio))
		}
	}
	return issues
}

func checkLineHeight(p device.Probe) []string {
	if lh := p.LineHeight(); lh < checks.MinLineHeight {
		return []string{fmt.Sprintf("line height is %.2f (min %.1f)", lh, checks.MinLineHeight)}
	}
	return nil
}

func checkZoomEnabled(p device.Probe) []string {
	props := parseViewport(p.ViewportMeta())
	var issues []string
	if v := props["user-scalable"]; v == "no" || v == "0" {
		issues = append(issues, fmt.Sprintf("viewport meta disables zoom (user-scalable=%s)", v))
	}
	if maxScale, ok := viewportScale(props, "maximum-scale"); ok && maxScale <= 1 {
		issues = append(issues, fmt.Sprintf("viewport meta disables zoom (maximum-scale=%s)", props["maximum-scale"]))
	}
	return issues
}
