package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// deviceScaleFactor returns the pixel ratio of the monitor the window is on,
// falling back to 1 before a monitor is known.
func deviceScaleFactor() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	if s := m.DeviceScaleFactor(); s > 0 {
		return s
	}
	return 1
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
