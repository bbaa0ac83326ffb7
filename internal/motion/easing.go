package motion

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/vortex-background/internal/config"
)

// Curve maps normalized transition time t in [0, 1] to progress, with
// Curve(0) == 0 and Curve(1) == 1. Progress may leave [0, 1] in between.
type Curve func(t float64) float64

func Linear(t float64) float64 {
	return unit(t)
}

// EaseOut is a quadratic ease-out: fast start, gentle landing.
func EaseOut(t float64) float64 {
	t = unit(t)
	return 1 - (1-t)*(1-t)
}

// ElasticOut overshoots the target and rings down with exponentially decaying
// oscillation. period is the oscillation period in normalized time.
func ElasticOut(amplitude, period float64) Curve {
	if amplitude < 1 {
		amplitude = 1
	}
	shift := period / (2 * math.Pi) * math.Asin(1/amplitude)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return amplitude*math.Pow(2, -10*t)*math.Sin((t-shift)*2*math.Pi/period) + 1
	}
}

const springSamples = 240

// SpringCurve samples an underdamped harmonica spring released from 0 toward
// 1 over normalized time. frequency is in radians per normalized unit; with
// damping below 1 the curve overshoots before settling.
func SpringCurve(frequency, damping float64) Curve {
	spring := harmonica.NewSpring(1.0/springSamples, frequency, damping)
	table := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		table[i] = pos
	}
	table[springSamples] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSamples
		i := int(x)
		frac := x - float64(i)
		return table[i] + (table[i+1]-table[i])*frac
	}
}

// ParseCurve resolves one of the config curve names.
func ParseCurve(name string) (Curve, error) {
	switch strings.ToLower(name) {
	case config.CurveLinear:
		return Linear, nil
	case config.CurveEaseOut:
		return EaseOut, nil
	case config.CurveElastic:
		return ElasticOut(1, 0.4), nil
	case config.CurveSpring:
		return SpringCurve(14, 0.3), nil
	}
	return nil, fmt.Errorf("%w: unknown curve %q", config.ErrInvalidConfig, name)
}

func unit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
