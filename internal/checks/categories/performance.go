package categories

import (
	"fmt"

	"github.com/prettymuchbryce/mobiletest/internal/checks"
	"github.com/prettymuchbryce/mobiletest/internal/device"
)

// modernImageFormats are formats that need no further optimization.
var modernImageFormats = map[string]bool{
	"webp": true,
	"avif": true,
	"svg":  true,
}

// Performance checks scrolling and load speed.
var Performance = checks.Definition{
	Name:  PerformanceName,
	Title: "Performance",
	Order: 5,
	Rules: []checks.Rule{
		{
			Name:        "scrollFrameRate",
			Description: "Scrolling stays at or above 30fps",
			Check:       checkScrollFPS,
		},
		{
			Name:        "pageLoadTime",
			Description: "Pages load within 3.0s",
			Check:       checkPageLoad,
		},
		{
			Name:        "imageOptimization",
			Description: "Raster images use modern formats and load lazily",
			Check:       checkImages,
		},
	},
}

func checkScrollFPS(p device.Probe) []string {
	return perBreakpoint(p.Breakpoints(), func(bp device.Breakpoint) string {
		if fps := p.ScrollFPS(bp); fps < checks.MinScrollFPS {
			return fmt.Sprintf("%s: scrolls at %.1ffps (min %.0ffps)", bp.Name, fps, checks.MinScrollFPS)
		}
		return ""
	})
}

func checkPageLoad(p device.Probe) []string {
	return perBreakpoint(p.Breakpoints(), func(bp device.Breakpoint) string {
		if load := p.PageLoadTime(bp); load > checks.MaxPageLoad {
			return fmt.Sprintf("%s: loads in %.1fs (max %.1fs)", bp.Name, load.Seconds(), checks.MaxPageLoad.Seconds())
		}
		return ""
	})
}

func checkImages(p device.Probe) []string {
	var issues []string
	for _, img := range p.Images() {
		if !modernImageFormats[img.Format] {
			issues = append(issues, fmt.Sprintf("%s is served as %s", img.Name, img.Format))
		}
		// Vector images are small enough to load eagerly.
		if !img.Lazy && img.Format != "svg" {
			issues = append(issues, fmt.Sprintf("%s is not lazy loaded", img.Name))
		}
	}
	return issues
}
