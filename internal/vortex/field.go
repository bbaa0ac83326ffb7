// Package vortex simulates the particle tunnel: a fixed population of points
// on a twisted cylinder flowing toward the viewer, projected to 2D.
package vortex

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/vortex-background/internal/config"
	"github.com/iburimskiy/vortex-background/internal/host"
	"github.com/iburimskiy/vortex-background/internal/motion"
)

// Field owns the particle population for the lifetime of the visualization.
type Field struct {
	cfg        config.Field
	palette    Palette
	background color.NRGBA
	rng        *rand.Rand
	particles  []Particle

	recycled int
	drawn    int
}

// NewField allocates cfg.ParticleCount particles scattered through the
// whole tunnel. rng may be nil, in which case a time-seeded source is used.
func NewField(cfg config.Field, rng *rand.Rand) (*Field, error) {
	if cfg.ParticleCount <= 0 {
		return nil, fmt.Errorf("particle count %d: %w", cfg.ParticleCount, config.ErrInvalidConfig)
	}
	palette, err := ParsePalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	bg, err := ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	f := &Field{
		cfg:        cfg,
		palette:    palette,
		background: bg,
		rng:        rng,
		particles:  make([]Particle, cfg.ParticleCount),
	}
	for i := range f.particles {
		f.particles[i] = Reset(rng, cfg, len(palette), true)
	}
	return f, nil
}

// Step advances every particle by the current forward speed, recycles the
// ones that passed the near plane and projects the rest onto vp.
func (f *Field) Step(s motion.State, vp host.Viewport) {
	cfg := f.cfg
	speed := math.Max(0, s.ForwardSpeed)
	cx, cy := vp.Center()

	f.recycled = 0
	for i := range f.particles {
		p := &f.particles[i]

		p.Depth += speed
		if p.Depth > cfg.NearPlane {
			*p = Reset(f.rng, cfg, len(f.palette), false)
			f.recycled++
		}

		if p.Depth+cfg.CameraOffset < cfg.CameraEpsilon {
			p.Visible = false
			p.Alpha = 0
			continue
		}

		r := p.BaseRadius * s.RadialSpread
		sinA, cosA := math.Sincos(p.Angle)
		x, y := cosA*r, sinA*r

		sinT, cosT := math.Sincos(p.Depth * cfg.Twist)
		tx := x*cosT - y*sinT
		ty := y*cosT + x*sinT

		scale := cfg.FOV / (cfg.FOV + p.Depth + cfg.CameraOffset)
		p.ScreenX = cx + tx*scale
		p.ScreenY = cy + ty*scale
		p.RenderRadius = p.Size * scale
		p.Alpha = clamp01(DepthFade(cfg, p.Depth) * clamp(scale, cfg.MinScaleFade, 1) * clamp01(s.Opacity))
		p.Visible = true
	}
}

// Render clears the surface and paints every visible particle whose alpha is
// above the configured epsilon.
func (f *Field) Render(dst Surface) error {
	if dst == nil {
		return ErrSurfaceUnavailable
	}
	dst.Clear(f.background)

	f.drawn = 0
	for i := range f.particles {
		p := &f.particles[i]
		if !p.Visible || p.Alpha <= f.cfg.AlphaEpsilon || p.RenderRadius <= 0 {
			continue
		}
		dst.FillCircle(p.ScreenX, p.ScreenY, p.RenderRadius, f.palette.WithAlpha(p.Color, p.Alpha))
		f.drawn++
	}
	return nil
}

// Particles exposes the population for inspection. Callers must not retain
// the slice across frames.
func (f *Field) Particles() []Particle { return f.particles }

func (f *Field) Len() int { return len(f.particles) }

// Recycled returns how many particles were recycled during the last Step.
func (f *Field) Recycled() int { return f.recycled }

// Drawn returns how many particles the last Render painted.
func (f *Field) Drawn() int { return f.drawn }

func (f *Field) Palette() Palette { return f.palette }
