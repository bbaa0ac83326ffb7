package vortex

import (
	"errors"
	"image/color"
)

// ErrSurfaceUnavailable is returned when there is nothing to draw on.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// Surface is the raster the field paints into, addressed in logical pixels.
// Implementations handle device pixel ratio scaling themselves.
type Surface interface {
	// Clear overwrites the whole surface with bg.
	Clear(bg color.Color)
	// FillCircle paints a filled circle; the alpha channel of c is the
	// circle's opacity.
	FillCircle(x, y, radius float64, c color.NRGBA)
}
