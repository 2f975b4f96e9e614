package checks

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// QRCodeSize returns the optimal QR code edge for a viewport width and
// whether it fits: at least MinQRSizePx and at most QRMaxWidthFactor of the width.
func QRCodeSize(width int) (float64, bool) {
	optimal := math.Min(math.Max(float64(width)*QRWidthFactor, MinQRSizePx), MaxQRSizePx)
	return optimal, optimal >= MinQRSizePx && optimal <= float64(width)*QRMaxWidthFactor
}

// ContrastRatio returns the WCAG contrast ratio between two hex colours.
func ContrastRatio(fg, bg string) (float64, error) {
	f, err := colorful.Hex(fg)
	if err != nil {
		return 0, fmt.Errorf("invalid foreground colour %q: %w", fg, err)
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return 0, fmt.Errorf("invalid background colour %q: %w", bg, err)
	}

	l1, l2 := luminance(f), luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05), nil
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
