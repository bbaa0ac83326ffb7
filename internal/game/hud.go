package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.vis.Stats()
	uptime := time.Duration(float64(st.Frame) / float64(ebiten.TPS()) * float64(time.Second))

	lines := fmt.Sprintf(
		"TPS %.0f  FPS %.0f  up %s\n"+
			"viewport %.0fx%.0f @%.2f\n"+
			"scroll %.0f  velocity %.1f\n"+
			"speed %.2f (%s)  spread %.2f  opacity %.2f\n"+
			"drawn %d  recycled %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), formatDuration(uptime),
		st.Viewport.Width, st.Viewport.Height, st.Viewport.DPR,
		st.Scroll, st.Velocity,
		st.State.ForwardSpeed, st.Phase, st.State.RadialSpread, st.State.Opacity,
		st.Drawn, st.Recycled,
	)
	if g.audio != nil {
		lines += fmt.Sprintf("\nsoundtrack gain %.2f  level %.3f", g.audio.tap.Gain(), g.audio.tap.Level())
	}
	ebitenutil.DebugPrintAt(screen, lines, 12, 12)
}
