package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidConfig is returned by Validate and Load for inconsistent settings.
var ErrInvalidConfig = errors.New("invalid config")

const (
	WindowWidth  = 1280
	WindowHeight = 720

	DefaultTPS = 60
)

// Curve names accepted by Motion.AttackCurve and Motion.DecayCurve.
const (
	CurveLinear  = "linear"
	CurveEaseOut = "easeout"
	CurveElastic = "elastic"
	CurveSpring  = "spring"
)

type Window struct {
	Title     string `json:"title"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Resizable bool   `json:"resizable"`
	TPS       int    `json:"tps"`
}

// Field holds the fixed configuration of the particle tunnel.
type Field struct {
	ParticleCount int `json:"particleCount"`

	BaseRadius   float64 `json:"baseRadius"`
	RadiusJitter float64 `json:"radiusJitter"`

	NearPlane  float64 `json:"nearPlane"`
	FarBandMin float64 `json:"farBandMin"`
	FarBandMax float64 `json:"farBandMax"`

	FOV           float64 `json:"fov"`
	CameraOffset  float64 `json:"cameraOffset"`
	CameraEpsilon float64 `json:"cameraEpsilon"`
	Twist         float64 `json:"twist"`

	// FadeInDepth is the depth distance over which a particle ramps from
	// dark to fully lit once it leaves the far band.
	FadeInDepth  float64 `json:"fadeInDepth"`
	MinScaleFade float64 `json:"minScaleFade"`
	AlphaEpsilon float64 `json:"alphaEpsilon"`

	SizeMin    float64 `json:"sizeMin"`
	SizeJitter float64 `json:"sizeJitter"`

	Palette    []string `json:"palette"`
	Background string   `json:"background"`
}

// Motion holds the scroll-to-signal response configuration.
type Motion struct {
	BaseSpeed float64 `json:"baseSpeed"`
	MaxSpeed  float64 `json:"maxSpeed"`
	MinSpeed  float64 `json:"minSpeed"`

	VelocitySmoothing float64 `json:"velocitySmoothing"`
	Deadband          float64 `json:"deadband"`
	BoostMultiplier   float64 `json:"boostMultiplier"`

	BaseSpread float64 `json:"baseSpread"`
	MaxSpread  float64 `json:"maxSpread"`
	MinSpread  float64 `json:"minSpread"`

	AttackSeconds float64 `json:"attackSeconds"`
	DecaySeconds  float64 `json:"decaySeconds"`
	AttackCurve   string  `json:"attackCurve"`
	DecayCurve    string  `json:"decayCurve"`

	OpacityFadeDistance float64 `json:"opacityFadeDistance"`
	OpacityFloor        float64 `json:"opacityFloor"`
	OpacitySeconds      float64 `json:"opacitySeconds"`
}

// Scroll configures the virtual page that wheel and keys move through.
type Scroll struct {
	WheelStep  float64 `json:"wheelStep"`
	KeyStep    float64 `json:"keyStep"`
	PageLength float64 `json:"pageLength"`
}

type Audio struct {
	Soundtrack string  `json:"soundtrack"`
	Dialog     bool    `json:"dialog"`
	Volume     float64 `json:"volume"`
}

type Config struct {
	Window Window `json:"window"`
	Field  Field  `json:"field"`
	Motion Motion `json:"motion"`
	Scroll Scroll `json:"scroll"`
	Audio  Audio  `json:"audio"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:     "Vortex - scroll to fly, F3: stats, Esc/Q: quit",
			Width:     WindowWidth,
			Height:    WindowHeight,
			Resizable: true,
			TPS:       DefaultTPS,
		},
		Field: Field{
			ParticleCount: 3000,
			BaseRadius:    200,
			RadiusJitter:  300,
			NearPlane:     600,
			FarBandMin:    -3000,
			FarBandMax:    -2500,
			FOV:           600,
			CameraOffset:  800,
			CameraEpsilon: 10,
			Twist:         0.001,
			FadeInDepth:   1000,
			MinScaleFade:  0.2,
			AlphaEpsilon:  0.01,
			SizeMin:       1.5,
			SizeJitter:    3,
			Palette:       []string{"#00F3FF", "#8A2BE2", "#FFFFFF", "#00FFFF"},
			Background:    "#000000",
		},
		Motion: Motion{
			BaseSpeed:           2,
			MaxSpeed:            80,
			MinSpeed:            0.25,
			VelocitySmoothing:   0.3,
			Deadband:            0.5,
			BoostMultiplier:     0.5,
			BaseSpread:          1,
			MaxSpread:           1.6,
			MinSpread:           0.5,
			AttackSeconds:       0.3,
			DecaySeconds:        1.5,
			AttackCurve:         CurveEaseOut,
			DecayCurve:          CurveElastic,
			OpacityFadeDistance: 2500,
			OpacityFloor:        0.15,
			OpacitySeconds:      0.5,
		},
		Scroll: Scroll{
			WheelStep:  120,
			KeyStep:    40,
			PageLength: 6000,
		},
		Audio: Audio{
			Volume: 0.8,
		},
	}
}

// Load overlays the JSON file at path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// BindFlags registers the commonly tuned options on fs. Values already in c
// act as flag defaults, so flags override anything loaded from a file.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "window width in logical pixels")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "window height in logical pixels")
	fs.IntVar(&c.Field.ParticleCount, "particles", c.Field.ParticleCount, "number of particles in the tunnel")
	fs.Float64Var(&c.Field.Twist, "twist", c.Field.Twist, "spiral twist per depth unit")
	fs.Float64Var(&c.Motion.BaseSpeed, "speed", c.Motion.BaseSpeed, "baseline forward speed")
	fs.Float64Var(&c.Motion.MaxSpeed, "max-speed", c.Motion.MaxSpeed, "forward speed cap while boosting")
	fs.Float64Var(&c.Motion.DecaySeconds, "decay", c.Motion.DecaySeconds, "seconds to settle back to baseline after a boost")
	fs.StringVar(&c.Motion.DecayCurve, "decay-curve", c.Motion.DecayCurve, "decay easing: linear, easeout, elastic or spring")
	fs.StringVar(&c.Audio.Soundtrack, "soundtrack", c.Audio.Soundtrack, "optional wav/mp3/flac file looped under the visualization")
	fs.BoolVar(&c.Audio.Dialog, "soundtrack-dialog", c.Audio.Dialog, "pick the soundtrack with a file dialog")
}

func (c *Config) Validate() error {
	f, m := c.Field, c.Motion
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return invalid("tps %d", c.Window.TPS)
	case f.ParticleCount <= 0:
		return invalid("particle count %d", f.ParticleCount)
	case f.BaseRadius < 0 || f.RadiusJitter < 0:
		return invalid("radius band %g+%g", f.BaseRadius, f.RadiusJitter)
	case f.FarBandMin > f.FarBandMax:
		return invalid("far band [%g, %g] is inverted", f.FarBandMin, f.FarBandMax)
	case f.NearPlane <= f.FarBandMax:
		return invalid("near plane %g must lie beyond far band max %g", f.NearPlane, f.FarBandMax)
	case f.FOV <= 0:
		return invalid("fov %g", f.FOV)
	case f.CameraEpsilon <= 0:
		return invalid("camera epsilon %g", f.CameraEpsilon)
	case f.FadeInDepth <= 0:
		return invalid("fade-in depth %g", f.FadeInDepth)
	case f.SizeMin < 0 || f.SizeJitter < 0:
		return invalid("size band %g+%g", f.SizeMin, f.SizeJitter)
	case len(f.Palette) == 0:
		return invalid("empty palette")
	case m.MinSpeed < 0 || m.BaseSpeed < m.MinSpeed || m.MaxSpeed < m.BaseSpeed:
		return invalid("speeds min=%g base=%g max=%g", m.MinSpeed, m.BaseSpeed, m.MaxSpeed)
	case m.MinSpread < 0 || m.BaseSpread < m.MinSpread || m.MaxSpread < m.BaseSpread:
		return invalid("spreads min=%g base=%g max=%g", m.MinSpread, m.BaseSpread, m.MaxSpread)
	case m.VelocitySmoothing <= 0 || m.VelocitySmoothing > 1:
		return invalid("velocity smoothing %g outside (0, 1]", m.VelocitySmoothing)
	case m.Deadband < 0 || m.BoostMultiplier < 0:
		return invalid("deadband %g, boost multiplier %g", m.Deadband, m.BoostMultiplier)
	case m.AttackSeconds < 0 || m.DecaySeconds < 0 || m.OpacitySeconds < 0:
		return invalid("negative transition duration")
	case m.OpacityFadeDistance <= 0:
		return invalid("opacity fade distance %g", m.OpacityFadeDistance)
	case m.OpacityFloor < 0 || m.OpacityFloor > 1:
		return invalid("opacity floor %g outside [0, 1]", m.OpacityFloor)
	case c.Scroll.PageLength < 0 || c.Scroll.WheelStep < 0 || c.Scroll.KeyStep < 0:
		return invalid("negative scroll setting")
	case c.Audio.Volume < 0:
		return invalid("volume %g", c.Audio.Volume)
	}
	for _, name := range []string{m.AttackCurve, m.DecayCurve} {
		if !knownCurve(name) {
			return invalid("unknown curve %q", name)
		}
	}
	for _, hex := range append([]string{f.Background}, f.Palette...) {
		if _, err := colorful.Hex(hex); err != nil {
			return invalid("color %q: %v", hex, err)
		}
	}
	return nil
}

func knownCurve(name string) bool {
	switch strings.ToLower(name) {
	case CurveLinear, CurveEaseOut, CurveElastic, CurveSpring:
		return true
	}
	return false
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
