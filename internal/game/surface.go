package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/vortex-background/internal/vortex"
)

// surface draws on an ebiten image backed at device resolution; incoming
// coordinates are logical pixels.
type surface struct {
	dst *ebiten.Image
	dpr float64
}

func newSurface(dst *ebiten.Image, dpr float64) vortex.Surface {
	if dst == nil {
		return nil
	}
	if dpr <= 0 {
		dpr = 1
	}
	return &surface{dst: dst, dpr: dpr}
}

func (s *surface) Clear(bg color.Color) {
	s.dst.Fill(bg)
}

func (s *surface) FillCircle(x, y, radius float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.dst, float32(x*s.dpr), float32(y*s.dpr), float32(radius*s.dpr), c, true)
}
