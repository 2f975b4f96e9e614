package categories

import (
	"fmt"

	"github.com/prettymuchbryce/mobiletest/internal/checks"
	"github.com/prettymuchbryce/mobiletest/internal/device"
)

// ResponsiveLayout checks that the page adapts to every breakpoint.
var ResponsiveLayout = checks.Definition{
	Name:  ResponsiveLayoutName,
	Title: "Responsive Layout",
	Order: 1,
	Rules: []checks.Rule{
		{
			Name:        "viewportMeta",
			Description: "Viewport meta tag sets width=device-width and initial-scale=1",
			Check:       checkViewportMeta,
		},
		{
			Name:        "noHorizontalScroll",
			Description: "Content fits every breakpoint without horizontal scrolling",
			Check:       checkHorizontalScroll,
		},
		{
			Name:        "flexibleImages",
			Description: "Images scale with their container (max-width: 100%)",
			Check:       checkFlexibleImages,
		},
		{
			Name:        "qrCodeSizing",
			Description: "QR code fits between 150px and 80% of the viewport width",
			Check:       checkQRCodeSizing,
		},
	},
}

func checkViewportMeta(p device.Probe) []string {
	props := parseViewport(p.ViewportMeta())
	var issues []string
	switch width, ok := props["width"]; {
	case !ok:
		issues = append(issues, `viewport meta missing "width=device-width"`)
	case width != "device-width":
		issues = append(issues, fmt.Sprintf("viewport width is %q, want \"device-width\"", width))
	}
	if _, ok := props["initial-scale"]; !ok {
		issues = append(issues, `viewport meta missing "initial-scale=1"`)
	} else if scale, ok := viewportScale(props, "initial-scale"); !ok || scale != 1 {
		issues = append(issues, fmt.Sprintf("viewport initial-scale is %q, want 1", props["initial-scale"]))
	}
	return issues
}

func checkHorizontalScroll(p device.Probe) []string {
	return perBreakpoint(p.Breakpoints(), func(bp device.Breakpoint) string {
		if w := p.ContentWidth(bp); w > bp.Width {
			return fmt.Sprintf("%s: content is %dpx wide in a %dpx viewport", bp.Name, w, bp.Width)
		}
		return ""
	})
}

func checkFlexibleImages(p device.Probe) []string {
	if got := p.ImageMaxWidth(); got != "100%" {
		return []string{fmt.Sprintf("images use max-width %q instead of 100%%", got)}
	}
	return nil
}

func checkQRCodeSizing(p device.Probe) []string {
	return perBreakpoint(p.Breakpoints(), qrIssue)
}

func qrIssue(bp device.Breakpoint) string {
	size, ok := checks.QRCodeSize(bp.Width)
	if ok {
		return ""
	}
	if size < checks.MinQRSizePx {
		return fmt.Sprintf("%s: QR code %.0fpx is below the %.0fpx minimum", bp.Name, size, checks.MinQRSizePx)
	}
	return fmt.Sprintf("%s: QR code %.0fpx is oversized for a %dpx viewport (max %.0fpx)",
		bp.Name, size, bp.Width, float64(bp.Width)*checks.QRMaxWidthFactor)
}
