// Package game hosts the vortex in an ebiten window: the window size is the
// viewport, the wheel and paging keys scroll a virtual page, and ebiten's
// update loop is the shared frame clock.
package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/vortex-background/internal/ambience"
	"github.com/iburimskiy/vortex-background/internal/config"
	"github.com/iburimskiy/vortex-background/internal/host"
	"github.com/iburimskiy/vortex-background/internal/motion"
	"github.com/iburimskiy/vortex-background/internal/scene"
)

var (
	// heldScrollKeys scroll every tick while down.
	heldScrollKeys = map[ebiten.Key]scene.ScrollKey{
		ebiten.KeyArrowDown: scene.KeyLineDown,
		ebiten.KeyArrowUp:   scene.KeyLineUp,
	}
	pressedScrollKeys = map[ebiten.Key]scene.ScrollKey{
		ebiten.KeyPageDown: scene.KeyPageDown,
		ebiten.KeySpace:    scene.KeyPageDown,
		ebiten.KeyPageUp:   scene.KeyPageUp,
		ebiten.KeyHome:     scene.KeyHome,
		ebiten.KeyEnd:      scene.KeyEnd,
	}
)

type Game struct {
	cfg    config.Config
	logger *zap.Logger

	host     *host.Host
	vis      *scene.Visualization
	scroll   *scene.ScrollSource
	viewport host.Viewport

	audio *player

	showHUD bool
	lastErr error
	closed  bool
}

func New(cfg config.Config, logger *zap.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		logger: logger,
		host:   host.New(),
		vis:    scene.New(cfg, logger, nil),
		scroll: scene.NewScrollSource(cfg.Scroll),
	}
	g.vis.OnFrame(g.publishAudio)
	return g
}

// StartSoundtrack loops the file at path under the visualization.
func (g *Game) StartSoundtrack(path string) error {
	p, err := startPlayer(path, g.cfg.Audio.Volume)
	if err != nil {
		return err
	}
	g.audio = p
	g.logger.Info("soundtrack playing",
		zap.String("path", path),
		zap.Int("sampleRate", int(p.track.Format.SampleRate)),
	)
	return nil
}

func (g *Game) Update() error {
	if g.lastErr != nil {
		return g.lastErr
	}
	if !g.vis.Mounted() {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showHUD = !g.showHUD
	}

	if g.pollScroll() {
		g.host.Input.EmitScroll(g.scroll.Offset())
	}

	g.host.Ticker.Tick(1 / float64(ebiten.TPS()))
	return nil
}

// pollScroll feeds wheel and paging keys into the scroll source and reports
// whether the offset moved this tick.
func (g *Game) pollScroll() bool {
	changed := false
	if _, dy := ebiten.Wheel(); dy != 0 {
		changed = g.scroll.Wheel(dy) || changed
	}

	for k, sk := range heldScrollKeys {
		if ebiten.IsKeyPressed(k) {
			changed = g.scroll.Key(sk, g.viewport.Height) || changed
		}
	}

	for k, sk := range pressedScrollKeys {
		if inpututil.IsKeyJustPressed(k) {
			changed = g.scroll.Key(sk, g.viewport.Height) || changed
		}
	}
	return changed
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.vis.Mounted() {
		return
	}
	if err := g.vis.Render(newSurface(screen, g.vis.Viewport().DPR)); err != nil {
		g.lastErr = err
		return
	}
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// Layout satisfies ebiten.Game; ebiten calls LayoutF instead when present.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// LayoutF reports the window size as a viewport change and renders at device
// resolution. The first valid layout mounts the visualization.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	vp := host.Viewport{
		Width:  outsideWidth,
		Height: outsideHeight,
		DPR:    deviceScaleFactor(),
	}
	if vp != g.viewport {
		g.viewport = vp
		g.logger.Debug("layout",
			zap.Float64("width", outsideWidth),
			zap.Float64("height", outsideHeight),
			zap.Float64("dpr", vp.DPR),
		)
		if g.vis.Mounted() {
			g.host.Input.EmitResize(vp)
		} else if !g.closed && g.lastErr == nil {
			if err := g.vis.Mount(g.host, vp, g.scroll.Offset()); err != nil {
				g.lastErr = err
			}
		}
	}
	w, h := vp.DeviceSize()
	return float64(w), float64(h)
}

// Close unmounts the visualization and stops the soundtrack.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.vis.Unmount()
	if g.audio != nil {
		if err := g.audio.Close(); err != nil {
			g.logger.Warn("closing soundtrack", zap.Error(err))
		}
		g.audio = nil
	}
}

func (g *Game) publishAudio(s motion.State, boost float64) {
	if g.audio == nil {
		return
	}
	g.audio.tap.SetGain(ambience.Gain(g.cfg.Audio.Volume, s.Opacity, boost))
}
