// Package ambience plays an optional soundtrack whose loudness follows the
// tunnel: louder while boosting, quieter as the page fades the vortex out.
package ambience

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// gainSmoothing is the per-sample approach rate toward the target gain.
const gainSmoothing = 0.0005

// Tap wraps a beep.Streamer and scales its samples by a gain the frame loop
// publishes. The gain glides toward its target sample by sample so frame-rate
// updates never click. It also keeps the RMS level of the last buffer.
type Tap struct {
	Source beep.Streamer

	mu     sync.RWMutex
	target float64
	gain   float64
	level  float64
}

func NewTap(src beep.Streamer, gain float64) *Tap {
	return &Tap{
		Source: src,
		target: gain,
		gain:   gain,
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		var sumSquares float64
		for i := 0; i < n; i++ {
			t.gain += (t.target - t.gain) * gainSmoothing
			samples[i][0] *= t.gain
			samples[i][1] *= t.gain
			mono := (samples[i][0] + samples[i][1]) * 0.5
			sumSquares += mono * mono
		}
		t.level = math.Sqrt(sumSquares / float64(n))
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// SetGain sets the gain the stream glides toward. Negative values are
// treated as silence.
func (t *Tap) SetGain(g float64) {
	if g < 0 || math.IsNaN(g) {
		g = 0
	}
	t.mu.Lock()
	t.target = g
	t.mu.Unlock()
}

// Gain returns the gain applied to the most recent sample.
func (t *Tap) Gain() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.gain
}

// Level returns the RMS level of the last streamed buffer after gain.
func (t *Tap) Level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.level
}

// Gain maps the control state to a soundtrack gain: the page opacity scales
// the volume and a boost lifts it from half to full.
func Gain(volume, opacity, boostRatio float64) float64 {
	opacity = math.Max(0, math.Min(1, opacity))
	boostRatio = math.Max(0, math.Min(1, boostRatio))
	return math.Max(0, volume) * opacity * (0.5 + 0.5*boostRatio)
}
