package ambience

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constant streams a fixed sample value forever.
func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func TestTapAppliesGain(t *testing.T) {
	tap := NewTap(constant(1), 0.5)
	buf := make([][2]float64, 64)

	n, ok := tap.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 64, n)
	assert.InDelta(t, 0.5, buf[0][0], 1e-9)
	assert.InDelta(t, 0.5, buf[63][1], 1e-9)
	assert.InDelta(t, 0.5, tap.Level(), 1e-9)
	assert.NoError(t, tap.Err())
}

func TestTapGlidesTowardTarget(t *testing.T) {
	tap := NewTap(constant(1), 1)
	tap.SetGain(0)

	buf := make([][2]float64, 512)
	tap.Stream(buf)
	assert.Less(t, buf[511][0], buf[0][0], "gain falls over the buffer")
	assert.Greater(t, buf[511][0], 0.0, "no hard cut")

	for i := 0; i < 200; i++ {
		tap.Stream(buf)
	}
	assert.InDelta(t, 0, tap.Gain(), 1e-3)

	tap.SetGain(-4)
	tap.Stream(buf)
	assert.GreaterOrEqual(t, tap.Gain(), 0.0)
}

func TestGain(t *testing.T) {
	tests := []struct {
		name                   string
		volume, opacity, boost float64
		want                   float64
	}{
		{"idle at top", 1, 1, 0, 0.5},
		{"full boost", 1, 1, 1, 1},
		{"faded page", 1, 0.15, 0, 0.075},
		{"volume scales", 0.5, 1, 1, 0.5},
		{"out of range inputs clamp", 1, 3, -2, 0.5},
		{"negative volume silent", -1, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Gain(tt.volume, tt.opacity, tt.boost), 1e-9)
		})
	}
}

func TestOpenRejectsUnknownExtension(t *testing.T) {
	_, err := Open("theme.ogg")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nothing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenWavAndLoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Take(100, constant(0.25)), format))
	require.NoError(t, f.Close())

	track, err := Open(path)
	require.NoError(t, err)
	defer track.Close()

	assert.Equal(t, beep.SampleRate(44100), track.Format.SampleRate)
	assert.Equal(t, 100, track.Streamer.Len())

	buf := make([][2]float64, 250)
	n, ok := track.Loop().Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 250, n, "loop keeps streaming past the end of the file")
}
