package checks

import "time"

// Mobile guideline thresholds.
const (
	MinTouchTargetPx  = 44
	MinTouchSpacingPx = 8
	MaxTapResponse    = 200 * time.Millisecond
	MinScrollFPS      = 30.0
	MinContrastRatio  = 4.5
	MaxPageLoad       = 3 * time.Second

	MinBaseFontSizePx = 16.0
	MinLineHeight     = 1.5

	// Partial failure allowances.
	MaxMissingGestures    = 2
	MaxMissingBreadcrumbs = 1
)

// QR code sizing relative to viewport width.
const (
	MinQRSizePx      = 150.0
	MaxQRSizePx      = 300.0
	QRWidthFactor    = 0.6
	QRMaxWidthFactor = 0.8
)
