// Package motion turns a raw scroll offset into the smoothed control signals
// that drive the tunnel: forward speed, radial spread and global opacity.
package motion

import (
	"fmt"
	"math"

	"github.com/iburimskiy/vortex-background/internal/config"
)

// State is the per-frame control snapshot consumed by the particle field.
type State struct {
	ForwardSpeed float64
	RadialSpread float64
	Opacity      float64
}

// Controller owns the control state. SetScroll is the only input-side
// writer and records just the latest offset; all smoothing happens in
// Advance, which the frame callback calls once per frame.
type Controller struct {
	cfg config.Motion

	scroll     float64
	lastScroll float64
	velocity   float64

	speed   Envelope
	spread  Envelope
	opacity Tween
	// opacityTarget is the value the opacity tween is heading to.
	opacityTarget float64

	state State
}

// velocityEpsilon snaps the smoothed velocity to zero once it is negligible,
// so an idle controller settles into an exact fixed point.
const velocityEpsilon = 1e-6

func NewController(cfg config.Motion, initialScroll float64) (*Controller, error) {
	attack, err := ParseCurve(cfg.AttackCurve)
	if err != nil {
		return nil, fmt.Errorf("attack curve: %w", err)
	}
	decay, err := ParseCurve(cfg.DecayCurve)
	if err != nil {
		return nil, fmt.Errorf("decay curve: %w", err)
	}

	initialScroll = math.Max(0, initialScroll)
	c := &Controller{
		cfg:        cfg,
		scroll:     initialScroll,
		lastScroll: initialScroll,
		speed: NewEnvelope(EnvelopeConfig{
			Base: cfg.BaseSpeed, Min: cfg.MinSpeed, Max: cfg.MaxSpeed,
			AttackSeconds: cfg.AttackSeconds, DecaySeconds: cfg.DecaySeconds,
			AttackCurve: attack, DecayCurve: decay,
		}),
		spread: NewEnvelope(EnvelopeConfig{
			Base: cfg.BaseSpread, Min: cfg.MinSpread, Max: cfg.MaxSpread,
			AttackSeconds: cfg.AttackSeconds, DecaySeconds: cfg.DecaySeconds,
			AttackCurve: attack, DecayCurve: decay,
		}),
	}
	c.opacityTarget = OpacityTarget(cfg, initialScroll)
	c.opacity = NewTween(c.opacityTarget)
	c.state = c.snapshot()
	return c, nil
}

// SetScroll records the latest scroll offset. Negative offsets, as produced
// by overscroll or programmatic jumps, are clamped to zero.
func (c *Controller) SetScroll(offset float64) {
	if math.IsNaN(offset) || offset < 0 {
		offset = 0
	}
	c.scroll = offset
}

// Advance integrates one frame of dt seconds and returns the new state.
func (c *Controller) Advance(dt float64) State {
	delta := math.Abs(c.scroll - c.lastScroll)
	c.lastScroll = c.scroll

	c.velocity += (delta - c.velocity) * c.cfg.VelocitySmoothing
	if c.velocity < velocityEpsilon {
		c.velocity = 0
	}

	if delta > 0 && c.velocity > c.cfg.Deadband {
		c.boost(c.velocity)
	}

	if target := OpacityTarget(c.cfg, c.scroll); target != c.opacityTarget {
		c.opacityTarget = target
		c.opacity.Start(target, c.cfg.OpacitySeconds, EaseOut)
	}

	c.speed.Advance(dt)
	c.spread.Advance(dt)
	c.opacity.Advance(dt)

	c.state = c.snapshot()
	return c.state
}

// boost triggers both envelopes with a peak proportional to velocity and
// capped at the configured maximum.
func (c *Controller) boost(velocity float64) {
	headroom := c.cfg.MaxSpeed - c.cfg.BaseSpeed
	amount := math.Min(velocity*c.cfg.BoostMultiplier, headroom)

	ratio := 0.0
	if headroom > 0 {
		ratio = amount / headroom
	}
	c.speed.Trigger(c.cfg.BaseSpeed + amount)
	c.spread.Trigger(c.cfg.BaseSpread + ratio*(c.cfg.MaxSpread-c.cfg.BaseSpread))
}

func (c *Controller) snapshot() State {
	return State{
		ForwardSpeed: c.speed.Value(),
		RadialSpread: c.spread.Value(),
		Opacity:      unit(c.opacity.Value()),
	}
}

func (c *Controller) State() State { return c.state }

// Velocity is the smoothed per-frame scroll distance.
func (c *Controller) Velocity() float64 { return c.velocity }

func (c *Controller) Scroll() float64 { return c.scroll }

func (c *Controller) OpacityTarget() float64 { return c.opacityTarget }

func (c *Controller) SpeedPhase() Phase { return c.speed.Phase() }

// BoostRatio reports how far the forward speed sits above baseline, in
// [0, 1] relative to the available headroom.
func (c *Controller) BoostRatio() float64 {
	headroom := c.cfg.MaxSpeed - c.cfg.BaseSpeed
	if headroom <= 0 {
		return 0
	}
	return unit((c.state.ForwardSpeed - c.cfg.BaseSpeed) / headroom)
}

// OpacityTarget fades linearly from 1 at the top of the page to the floor
// at OpacityFadeDistance and stays there.
func OpacityTarget(cfg config.Motion, scroll float64) float64 {
	target := 1 - math.Max(0, scroll)/cfg.OpacityFadeDistance
	return math.Min(1, math.Max(cfg.OpacityFloor, target))
}
