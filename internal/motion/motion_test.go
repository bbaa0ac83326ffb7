package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/vortex-background/internal/config"
)

const frame = 1.0 / 60

func newController(t *testing.T, mutate func(*config.Motion)) *Controller {
	t.Helper()
	cfg := config.Default().Motion
	if mutate != nil {
		mutate(&cfg)
	}
	c, err := NewController(cfg, 0)
	require.NoError(t, err)
	return c
}

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":  Linear,
		"easeout": EaseOut,
		"elastic": ElasticOut(1, 0.4),
		"spring":  SpringCurve(14, 0.3),
	}
	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, curve(0), 1e-9)
			assert.InDelta(t, 1, curve(1), 1e-9)
			assert.InDelta(t, 0, curve(-0.5), 1e-9)
			assert.InDelta(t, 1, curve(2), 1e-9)
		})
	}
}

func TestOvershootingCurves(t *testing.T) {
	for name, curve := range map[string]Curve{
		"elastic": ElasticOut(1, 0.4),
		"spring":  SpringCurve(14, 0.3),
	} {
		t.Run(name, func(t *testing.T) {
			peak := 0.0
			for i := 0; i <= 100; i++ {
				peak = math.Max(peak, curve(float64(i)/100))
			}
			assert.Greater(t, peak, 1.05, "curve should overshoot")
			assert.InDelta(t, 1, curve(0.95), 0.05, "curve should settle near the end")
		})
	}
}

func TestEaseOutMonotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOut(float64(i) / 100)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestParseCurve(t *testing.T) {
	for _, name := range []string{"linear", "EaseOut", "elastic", "spring"} {
		c, err := ParseCurve(name)
		require.NoError(t, err, name)
		assert.NotNil(t, c)
	}
	_, err := ParseCurve("bounce")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestTween(t *testing.T) {
	tw := NewTween(1)
	tw.Start(0, 1, Linear)
	require.True(t, tw.Active())

	assert.False(t, tw.Advance(0.25))
	assert.InDelta(t, 0.75, tw.Value(), 1e-9)

	// Retarget mid-flight starts from the current value.
	tw.Start(1, 0.5, Linear)
	tw.Advance(0.25)
	assert.InDelta(t, 0.875, tw.Value(), 1e-9)

	assert.True(t, tw.Advance(1))
	assert.Equal(t, 1.0, tw.Value())
	assert.False(t, tw.Active())
	assert.False(t, tw.Advance(1))

	tw.Start(3, 0, Linear)
	assert.Equal(t, 3.0, tw.Value(), "zero duration snaps")
}

func TestEnvelopeAttackThenDecay(t *testing.T) {
	e := NewEnvelope(EnvelopeConfig{
		Base: 2, Min: 0, Max: 100,
		AttackSeconds: 0.2, DecaySeconds: 1,
		AttackCurve: Linear, DecayCurve: Linear,
	})
	assert.Equal(t, PhaseIdle, e.Phase())

	e.Trigger(12)
	assert.Equal(t, PhaseAttack, e.Phase())
	e.Advance(0.1)
	assert.InDelta(t, 7, e.Value(), 1e-9)

	e.Advance(0.1)
	assert.Equal(t, PhaseDecay, e.Phase())
	assert.InDelta(t, 12, e.Value(), 1e-9)

	e.Advance(0.5)
	assert.InDelta(t, 7, e.Value(), 1e-9)
	e.Advance(0.5)
	assert.Equal(t, PhaseIdle, e.Phase())
	assert.Equal(t, 2.0, e.Value())
}

func TestEnvelopeRetriggerCancelsDecay(t *testing.T) {
	e := NewEnvelope(EnvelopeConfig{
		Base: 2, Min: 0, Max: 100,
		AttackSeconds: 0.2, DecaySeconds: 1,
		AttackCurve: Linear, DecayCurve: Linear,
	})
	e.Trigger(12)
	e.Advance(0.2)
	e.Advance(0.5)
	require.Equal(t, PhaseDecay, e.Phase())
	mid := e.Value()

	e.Trigger(20)
	assert.Equal(t, PhaseAttack, e.Phase())
	assert.Equal(t, mid, e.Value(), "attack restarts from the current value")
	e.Advance(0.2)
	assert.InDelta(t, 20, e.Value(), 1e-9, "peaks do not stack")
}

func TestEnvelopeRetriggerDuringElasticUndershoot(t *testing.T) {
	e := NewEnvelope(EnvelopeConfig{
		Base: 2, Min: 0.25, Max: 80,
		AttackSeconds: 0.3, DecaySeconds: 1.5,
		AttackCurve: EaseOut, DecayCurve: ElasticOut(1, 0.4),
	})
	e.Trigger(80)

	pinned := false
	for i := 0; i < 180 && !pinned; i++ {
		e.Advance(frame)
		pinned = e.Phase() == PhaseDecay && e.tween.Value() < 0.25
	}
	require.True(t, pinned, "elastic decay undershoots below the minimum")
	require.Equal(t, 0.25, e.Value())

	e.Trigger(10)
	assert.Equal(t, 0.25, e.Value(), "attack starts from the visible value")
	e.Advance(frame)
	assert.Greater(t, e.Value(), 0.25, "attack rises on the first frame")
	e.Advance(0.3)
	assert.InDelta(t, 10, e.Value(), 1e-9)
}

func TestEnvelopeClampsOvershoot(t *testing.T) {
	e := NewEnvelope(EnvelopeConfig{
		Base: 2, Min: 0.25, Max: 80,
		AttackSeconds: 0.1, DecaySeconds: 1,
		AttackCurve: EaseOut, DecayCurve: ElasticOut(1, 0.4),
	})
	e.Trigger(500)
	for i := 0; i < 120; i++ {
		e.Advance(frame)
		require.GreaterOrEqual(t, e.Value(), 0.25)
		require.LessOrEqual(t, e.Value(), 80.0)
	}
}

func TestOpacityTarget(t *testing.T) {
	cfg := config.Default().Motion
	tests := []struct {
		scroll float64
		want   float64
	}{
		{0, 1},
		{-100, 1},
		{1250, 0.5},
		{2500, 0.15},
		{3000, 0.15},
		{1e9, 0.15},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, OpacityTarget(cfg, tt.scroll), 1e-9, "scroll %g", tt.scroll)
	}
}

func TestControllerIdleIsFixedPoint(t *testing.T) {
	c := newController(t, nil)
	first := c.Advance(frame)
	second := c.Advance(frame)

	assert.Equal(t, first, second)
	assert.Equal(t, State{ForwardSpeed: 2, RadialSpread: 1, Opacity: 1}, second)
}

func TestControllerBoostOvershootAndSettle(t *testing.T) {
	c := newController(t, nil)
	cfg := config.Default().Motion

	c.SetScroll(2000)
	peak, trough := 0.0, math.Inf(1)
	frames := int(math.Ceil((cfg.AttackSeconds+cfg.DecaySeconds)/frame)) + 10
	for i := 0; i < frames; i++ {
		s := c.Advance(frame)
		peak = math.Max(peak, s.ForwardSpeed)
		if c.SpeedPhase() == PhaseDecay {
			trough = math.Min(trough, s.ForwardSpeed)
		}
	}

	assert.Greater(t, peak, cfg.BaseSpeed)
	assert.LessOrEqual(t, peak, cfg.MaxSpeed)
	assert.Less(t, trough, cfg.BaseSpeed, "elastic decay dips past the baseline")
	assert.GreaterOrEqual(t, trough, cfg.MinSpeed)
	assert.Equal(t, PhaseIdle, c.SpeedPhase())
	assert.InDelta(t, cfg.BaseSpeed, c.State().ForwardSpeed, 1e-9)
	assert.InDelta(t, cfg.BaseSpread, c.State().RadialSpread, 1e-9)
}

func TestControllerSpreadFollowsBoost(t *testing.T) {
	c := newController(t, nil)
	c.SetScroll(5000)
	for i := 0; i < 18; i++ {
		c.Advance(frame)
	}
	s := c.State()
	assert.Greater(t, s.RadialSpread, 1.0)
	assert.LessOrEqual(t, s.RadialSpread, config.Default().Motion.MaxSpread)
}

func TestControllerDeadband(t *testing.T) {
	c := newController(t, func(m *config.Motion) { m.Deadband = 10 })
	c.SetScroll(1)
	s := c.Advance(frame)
	assert.Equal(t, 2.0, s.ForwardSpeed)
	assert.Equal(t, PhaseIdle, c.SpeedPhase())
}

func TestControllerOpacityFloor(t *testing.T) {
	c := newController(t, nil)
	c.SetScroll(3000)
	for i := 0; i < 120; i++ {
		s := c.Advance(frame)
		require.GreaterOrEqual(t, s.Opacity, 0.15)
	}
	assert.InDelta(t, 0.15, c.State().Opacity, 1e-9)

	c.SetScroll(6000)
	for i := 0; i < 120; i++ {
		s := c.Advance(frame)
		require.GreaterOrEqual(t, s.Opacity, 0.15)
	}
	assert.InDelta(t, 0.15, c.State().Opacity, 1e-9)
}

func TestControllerOpacityEasesInsteadOfSnapping(t *testing.T) {
	c := newController(t, nil)
	c.SetScroll(2500)
	s := c.Advance(frame)
	assert.Less(t, s.Opacity, 1.0)
	assert.Greater(t, s.Opacity, 0.15)
	assert.InDelta(t, 0.15, c.OpacityTarget(), 1e-9)
}

func TestControllerLatestScrollWins(t *testing.T) {
	c := newController(t, nil)
	c.SetScroll(100)
	c.SetScroll(4000)
	c.SetScroll(40)
	c.Advance(frame)
	assert.InDelta(t, 40*config.Default().Motion.VelocitySmoothing, c.Velocity(), 1e-9)
}

func TestControllerNegativeScrollClamped(t *testing.T) {
	c := newController(t, nil)
	c.SetScroll(-500)
	assert.Equal(t, 0.0, c.Scroll())
	c.SetScroll(math.NaN())
	assert.Equal(t, 0.0, c.Scroll())
	s := c.Advance(frame)
	assert.Equal(t, 1.0, s.Opacity)
}

func TestNewControllerRejectsUnknownCurve(t *testing.T) {
	cfg := config.Default().Motion
	cfg.DecayCurve = "wobble"
	_, err := NewController(cfg, 0)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
