package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/vortex-background/internal/ambience"
	"github.com/iburimskiy/vortex-background/internal/config"
	"github.com/iburimskiy/vortex-background/internal/game"
)

type options struct {
	configPath string
	debug      bool
}

// parseArgs resolves the configuration in precedence order: defaults, then
// the -config file, then explicit flags.
func parseArgs(args []string) (config.Config, options, error) {
	var opts options
	cfg := config.Default()

	newFlags := func(c *config.Config) *flag.FlagSet {
		fs := flag.NewFlagSet("vortex", flag.ContinueOnError)
		fs.StringVar(&opts.configPath, "config", opts.configPath, "JSON config file overlaid on the defaults")
		fs.BoolVar(&opts.debug, "debug", opts.debug, "verbose development logging")
		c.BindFlags(fs)
		return fs
	}

	if err := newFlags(&cfg).Parse(args); err != nil {
		return cfg, opts, err
	}
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, opts, err
		}
		cfg = loaded
		if err := newFlags(&cfg).Parse(args); err != nil {
			return cfg, opts, err
		}
	}
	return cfg, opts, cfg.Validate()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(args []string) error {
	cfg, opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("config loaded",
		zap.String("file", opts.configPath),
		zap.Int("particles", cfg.Field.ParticleCount),
		zap.String("decayCurve", cfg.Motion.DecayCurve),
	)

	g := game.New(cfg, logger)
	defer g.Close()

	soundtrack := cfg.Audio.Soundtrack
	if soundtrack == "" && cfg.Audio.Dialog {
		if soundtrack, err = ambience.PickSoundtrack(); err != nil {
			logger.Warn("soundtrack dialog", zap.Error(err))
		}
	}
	if soundtrack != "" {
		if err := g.StartSoundtrack(soundtrack); err != nil {
			logger.Warn("soundtrack disabled", zap.String("path", soundtrack), zap.Error(err))
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("terminated")
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "vortex:", err)
		_ = zenity.Error(err.Error(), zenity.Title("Vortex"), zenity.ErrorIcon)
		os.Exit(1)
	}
}
