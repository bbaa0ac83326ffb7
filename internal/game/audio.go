package game

import (
	"time"

	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/vortex-background/internal/ambience"
)

// player owns the speaker while a soundtrack loops.
type player struct {
	track *ambience.Soundtrack
	tap   *ambience.Tap
}

func startPlayer(path string, volume float64) (*player, error) {
	track, err := ambience.Open(path)
	if err != nil {
		return nil, err
	}

	bufferSize := track.Format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(track.Format.SampleRate, bufferSize); err != nil {
		_ = track.Close()
		return nil, err
	}

	tap := ambience.NewTap(track.Loop(), ambience.Gain(volume, 1, 0))
	speaker.Play(tap)
	return &player{track: track, tap: tap}, nil
}

func (p *player) Close() error {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	return p.track.Close()
}
