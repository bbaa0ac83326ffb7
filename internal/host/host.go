// Package host models what the hosting window provides to a decorative
// layer: viewport dimensions, a shared per-frame clock and input notifications.
package host

import "math"

// Viewport is the hosting surface size in logical pixels plus its device
// pixel ratio. It is always replaced as a whole value, never field by field.
type Viewport struct {
	Width  float64
	Height float64
	DPR    float64
}

// Valid reports whether the viewport can back a drawing surface.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0 && v.DPR > 0
}

func (v Viewport) Center() (float64, float64) {
	return v.Width / 2, v.Height / 2
}

// DeviceSize returns the backing raster size in device pixels, rounded to
// the nearest pixel for fractional ratios.
func (v Viewport) DeviceSize() (int, int) {
	return int(math.Round(v.Width * v.DPR)), int(math.Round(v.Height * v.DPR))
}

// Host bundles the frame clock and the input dispatcher of one window.
type Host struct {
	Ticker *Ticker
	Input  *Input
}

func New() *Host {
	return &Host{
		Ticker: NewTicker(),
		Input:  NewInput(),
	}
}
