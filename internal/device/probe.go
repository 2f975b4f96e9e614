package device

import "time"

// Breakpoint is a named viewport size representing a reference device.
type Breakpoint struct {
	Name   string `yaml:"name" json:"name"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
}

// TouchTarget is an interactive element's tappable bounding box.
type TouchTarget struct {
	Name    string        `yaml:"name"`
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Spacing int           `yaml:"spacing"` // gap to the nearest neighbouring target
	TapTime time.Duration `yaml:"tap_response"`
}

// Feature is a named capability that is either implemented or missing.
type Feature struct {
	Name        string `yaml:"name"`
	Implemented bool   `yaml:"implemented"`
}

// ColorPair is a foreground/background pairing used for text.
type ColorPair struct {
	Name       string `yaml:"name"`
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// Image describes a content image and how it is delivered.
type Image struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Lazy   bool   `yaml:"lazy"`
}

// Menu describes the mobile navigation menu.
type Menu struct {
	Implemented bool `yaml:"implemented"`
	Toggle      bool `yaml:"toggle"`     // hamburger toggle present
	Accessible  bool `yaml:"accessible"` // toggle exposes aria-expanded
}

// Probe answers the questions rules ask about a page under test.
// Implementations may measure a real device or read static tables.
type Probe interface {
	Breakpoints() []Breakpoint

	// Layout
	ViewportMeta() string
	ContentWidth(bp Breakpoint) int
	ImageMaxWidth() string

	// Touch
	TouchTargets() []TouchTarget
	HoverOnlyInteractions() []string

	// Gestures
	Gestures() []Feature
	MomentumScrolling() bool
	TouchAction() string

	// Readability
	BaseFontSize(bp Breakpoint) float64
	TextColors() []ColorPair
	LineHeight() float64

	// Performance
	ScrollFPS(bp Breakpoint) float64
	PageLoadTime(bp Breakpoint) time.Duration
	Images() []Image

	// Navigation
	MobileMenu() Menu
	Breadcrumbs() []Feature
	BackNavigation() bool
}
