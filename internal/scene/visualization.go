// Package scene wires the motion controller and the particle field to a
// host: it subscribes to input, registers the frame callback, and tears all
// of it down again on unmount.
package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/iburimskiy/vortex-background/internal/config"
	"github.com/iburimskiy/vortex-background/internal/host"
	"github.com/iburimskiy/vortex-background/internal/motion"
	"github.com/iburimskiy/vortex-background/internal/vortex"
)

var (
	ErrNotMounted     = errors.New("visualization not mounted")
	ErrAlreadyMounted = errors.New("visualization already mounted")
)

// FrameFunc observes the control state after each frame has been simulated.
type FrameFunc func(s motion.State, boostRatio float64)

// Stats is a read-only summary of the last frame, for diagnostics.
type Stats struct {
	Frame    uint64
	Scroll   float64
	Velocity float64
	State    motion.State
	Phase    motion.Phase
	Recycled int
	Drawn    int
	Viewport host.Viewport
}

// Visualization is the mounted vortex. The control state and the particle
// population exist only between Mount and Unmount.
type Visualization struct {
	cfg    config.Config
	logger *zap.Logger
	rng    *rand.Rand

	host *host.Host
	tick host.TickID
	subs []host.Subscription

	field *vortex.Field
	ctrl  *motion.Controller

	viewport host.Viewport
	// pending is written by the resize listener and swapped in as a whole at
	// the start of the next frame.
	pending host.Viewport
	resized bool

	frames  uint64
	onFrame FrameFunc
}

// New returns an unmounted visualization. rng may be nil.
func New(cfg config.Config, logger *zap.Logger, rng *rand.Rand) *Visualization {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Visualization{
		cfg:    cfg,
		logger: logger.Named("scene"),
		rng:    rng,
	}
}

// OnFrame sets the observer called at the end of every frame callback.
func (v *Visualization) OnFrame(fn FrameFunc) {
	v.onFrame = fn
}

// Mount builds fresh state and starts listening to h. The viewport must be
// able to back a surface; otherwise nothing is registered.
func (v *Visualization) Mount(h *host.Host, vp host.Viewport, scroll float64) error {
	if v.Mounted() {
		return ErrAlreadyMounted
	}
	if h == nil || !vp.Valid() {
		return fmt.Errorf("mount on %gx%g@%g: %w", vp.Width, vp.Height, vp.DPR, vortex.ErrSurfaceUnavailable)
	}

	field, err := vortex.NewField(v.cfg.Field, v.rng)
	if err != nil {
		return fmt.Errorf("build particle field: %w", err)
	}
	ctrl, err := motion.NewController(v.cfg.Motion, scroll)
	if err != nil {
		return fmt.Errorf("build motion controller: %w", err)
	}

	v.field, v.ctrl = field, ctrl
	v.viewport, v.resized = vp, false
	v.frames = 0
	v.host = h
	v.subs = []host.Subscription{
		h.Input.OnResize(v.handleResize),
		h.Input.OnScroll(v.handleScroll),
	}
	v.tick = h.Ticker.Add(v.frame)

	v.logger.Info("mounted",
		zap.Int("particles", field.Len()),
		zap.Float64("width", vp.Width),
		zap.Float64("height", vp.Height),
		zap.Float64("dpr", vp.DPR),
	)
	return nil
}

// Unmount deregisters every listener and the frame callback and drops the
// simulation state. It is safe to call when not mounted.
func (v *Visualization) Unmount() {
	if !v.Mounted() {
		return
	}
	for _, s := range v.subs {
		s.Cancel()
	}
	v.host.Ticker.Remove(v.tick)

	v.logger.Info("unmounted", zap.Uint64("frames", v.frames))
	v.subs, v.host, v.tick = nil, nil, 0
	v.field, v.ctrl = nil, nil
}

func (v *Visualization) Mounted() bool { return v.host != nil }

func (v *Visualization) handleResize(vp host.Viewport) {
	if !vp.Valid() {
		return
	}
	v.pending = vp
	v.resized = true
}

func (v *Visualization) handleScroll(offset float64) {
	if !v.Mounted() {
		return
	}
	v.ctrl.SetScroll(offset)
}

func (v *Visualization) frame(dt float64) {
	if !v.Mounted() {
		return
	}
	if v.resized {
		v.viewport = v.pending
		v.resized = false
		v.logger.Debug("viewport applied",
			zap.Float64("width", v.viewport.Width),
			zap.Float64("height", v.viewport.Height),
			zap.Float64("dpr", v.viewport.DPR),
		)
	}

	state := v.ctrl.Advance(dt)
	v.field.Step(state, v.viewport)
	v.frames++

	if v.onFrame != nil {
		v.onFrame(state, v.ctrl.BoostRatio())
	}
}

// Render paints the last simulated frame onto dst.
func (v *Visualization) Render(dst vortex.Surface) error {
	if !v.Mounted() {
		return ErrNotMounted
	}
	return v.field.Render(dst)
}

// Viewport returns the viewport the last frame was projected with.
func (v *Visualization) Viewport() host.Viewport { return v.viewport }

// Field exposes the particle population; nil when unmounted.
func (v *Visualization) Field() *vortex.Field { return v.field }

func (v *Visualization) Stats() Stats {
	if !v.Mounted() {
		return Stats{}
	}
	return Stats{
		Frame:    v.frames,
		Scroll:   v.ctrl.Scroll(),
		Velocity: v.ctrl.Velocity(),
		State:    v.ctrl.State(),
		Phase:    v.ctrl.SpeedPhase(),
		Recycled: v.field.Recycled(),
		Drawn:    v.field.Drawn(),
		Viewport: v.viewport,
	}
}
