package device

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed profile-default.yaml
var defaultProfileContent []byte

// Profile is a static Probe backed by hardcoded tables.
// Per-breakpoint values are derived from the breakpoint width.
type Profile struct {
	Name            string        `yaml:"name"`
	Devices         []Breakpoint  `yaml:"breakpoints"`
	Viewport        string        `yaml:"viewport"`
	ContentOverflow int           `yaml:"content_overflow"` // px the layout exceeds each viewport by
	ImageMax        string        `yaml:"image_max_width"`
	Targets         []TouchTarget `yaml:"touch_targets"`
	HoverOnly       []string      `yaml:"hover_only"`
	GestureList     []Feature     `yaml:"gestures"`
	Momentum        bool          `yaml:"momentum_scrolling"`
	TouchActionCSS  string        `yaml:"touch_action"`
	FontSize        float64       `yaml:"base_font_size"`
	Colors          []ColorPair   `yaml:"text_colors"`
	LineSpacing     float64       `yaml:"line_height"`
	Frames          FrameModel    `yaml:"scroll_fps"`
	Load            LoadModel     `yaml:"page_load"`
	ImageList       []Image       `yaml:"images"`
	Menu            Menu          `yaml:"mobile_menu"`
	Crumbs          []Feature     `yaml:"breadcrumbs"`
	BackNav         bool          `yaml:"back_navigation"`
}

// FrameModel derives scroll frame rate from viewport width:
// fps = base - width*per_pixel.
type FrameModel struct {
	Base     float64 `yaml:"base"`
	PerPixel float64 `yaml:"per_pixel"`
}

// LoadModel derives page load time from viewport width:
// load = base + width*per_pixel.
type LoadModel struct {
	Base     time.Duration `yaml:"base"`
	PerPixel time.Duration `yaml:"per_pixel"`
}

// Default returns the shipped profile.
func Default() *Profile {
	p, err := Parse(defaultProfileContent)
	if err != nil {
		panic(fmt.Sprintf("embedded profile is invalid: %v", err))
	}
	return p
}

// Load reads a profile from path.
func Load(afs afero.Fs, path string) (*Profile, error) {
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a profile document.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if len(p.Devices) == 0 {
		return nil, fmt.Errorf("profile must define at least one breakpoint")
	}
	for _, bp := range p.Devices {
		if bp.Width <= 0 || bp.Height <= 0 {
			return nil, fmt.Errorf("breakpoint %q has invalid size %dx%d", bp.Name, bp.Width, bp.Height)
		}
	}
	return &p, nil
}

func (p *Profile) Breakpoints() []Breakpoint       { return p.Devices }
func (p *Profile) ViewportMeta() string            { return p.Viewport }
func (p *Profile) ImageMaxWidth() string           { return p.ImageMax }
func (p *Profile) TouchTargets() []TouchTarget     { return p.Targets }
func (p *Profile) HoverOnlyInteractions() []string { return p.HoverOnly }
func (p *Profile) Gestures() []Feature             { return p.GestureList }
func (p *Profile) MomentumScrolling() bool         { return p.Momentum }
func (p *Profile) TouchAction() string             { return p.TouchActionCSS }
func (p *Profile) TextColors() []ColorPair         { return p.Colors }
func (p *Profile) LineHeight() float64             { return p.LineSpacing }
func (p *Profile) Images() []Image                 { return p.ImageList }
func (p *Profile) MobileMenu() Menu                { return p.Menu }
func (p *Profile) Breadcrumbs() []Feature          { return p.Crumbs }
func (p *Profile) BackNavigation() bool            { return p.BackNav }

// ContentWidth returns the rendered layout width at bp.
func (p *Profile) ContentWidth(bp Breakpoint) int {
	return bp.Width + p.ContentOverflow
}

// BaseFontSize returns the body font size at bp.
func (p *Profile) BaseFontSize(bp Breakpoint) float64 {
	return p.FontSize
}

// ScrollFPS returns the simulated scroll frame rate at bp.
func (p *Profile) ScrollFPS(bp Breakpoint) float64 {
	return p.Frames.Base - float64(bp.Width)*p.Frames.PerPixel
}

// PageLoadTime returns the simulated load time at bp.
func (p *Profile) PageLoadTime(bp Breakpoint) time.Duration {
	return p.Load.Base + time.Duration(bp.Width)*p.Load.PerPixel
}
