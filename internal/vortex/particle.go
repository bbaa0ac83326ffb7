package vortex

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/vortex-background/internal/config"
)

// Particle is one point on the tunnel wall. Angle, BaseRadius, Color and
// Size are fixed until the particle is recycled; Depth advances every frame.
// The screen fields are recomputed by Field.Step and never carried over.
type Particle struct {
	Angle      float64
	BaseRadius float64
	Depth      float64
	Color      int
	Size       float64

	ScreenX      float64
	ScreenY      float64
	RenderRadius float64
	Alpha        float64
	// Visible is false when the particle sat at or behind the camera plane
	// this frame and was not projected.
	Visible bool
}

// Reset produces a freshly randomized particle. An initial particle is
// scattered over the whole depth range so the first frame already shows a
// populated tunnel; a recycled one starts inside the far band.
func Reset(rng *rand.Rand, cfg config.Field, paletteSize int, initial bool) Particle {
	p := Particle{
		Angle:      rng.Float64() * 2 * math.Pi,
		BaseRadius: cfg.BaseRadius + rng.Float64()*cfg.RadiusJitter,
		Color:      rng.Intn(paletteSize),
		Size:       cfg.SizeMin + rng.Float64()*cfg.SizeJitter,
	}
	if initial {
		p.Depth = cfg.FarBandMin + rng.Float64()*(cfg.NearPlane-cfg.FarBandMin)
	} else {
		p.Depth = cfg.FarBandMin + rng.Float64()*(cfg.FarBandMax-cfg.FarBandMin)
	}
	return p
}

// DepthFade ramps from 0 at the near edge of the far band to 1 FadeInDepth
// units later. Particles inside the far band stay dark, which hides recycling.
func DepthFade(cfg config.Field, depth float64) float64 {
	return clamp01((depth - cfg.FarBandMax) / cfg.FadeInDepth)
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
