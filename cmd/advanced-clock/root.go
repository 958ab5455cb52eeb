package main

import (
	"fmt"

	"advanced-clock/internal/config"
	"advanced-clock/internal/utils"

	"github.com/spf13/cobra"
)

// cliFlags holds the command-line flags. Only flags the user actually set
// override the configuration.
type cliFlags struct {
	configPath  string
	debug       bool
	font        string
	width       int
	height      int
	fps         int
	scheme      string
	particles   int
	seed        int64
	scaling     string
	fitDisplay  bool
	tick        bool
	snapshot    string
	at          string
	printConfig bool
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "advanced-clock",
		Short: "Animated analog/digital clock with a particle background",
		Long: `advanced-clock draws an analog clock face with gradient hands, optional
digital time and date readouts and a drifting particle background.

Keys:
  D    toggle digital clock
  T    toggle digital date
  C    cycle colour scheme
  S    toggle tick sound
  F8   toggle debug overlay
  F12  save screenshot
  Esc  quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "config file (default ./advanced-clock.yaml or the user config dir)")
	f.BoolVar(&flags.debug, "debug", false, "enable verbose debug logging")
	f.StringVar(&flags.font, "font", "", "font file for labels and readouts")
	f.IntVar(&flags.width, "width", 0, "logical scene width")
	f.IntVar(&flags.height, "height", 0, "logical scene height")
	f.IntVar(&flags.fps, "fps", 0, "target frames per second")
	f.StringVar(&flags.scheme, "scheme", "", "initial colour scheme (twilight, ocean, ember)")
	f.IntVar(&flags.particles, "particles", 0, "number of background particles")
	f.Int64Var(&flags.seed, "seed", 0, "particle random seed (0 = wall clock)")
	f.StringVar(&flags.scaling, "scaling", "", "window scaling mode (fit, fill)")
	f.BoolVar(&flags.fitDisplay, "fit-display", false, "size the window to the X11 display")
	f.BoolVar(&flags.tick, "tick", false, "play a tick every second")
	f.StringVar(&flags.snapshot, "snapshot", "", "render one frame to this PNG file and exit")
	f.StringVar(&flags.at, "at", "", "RFC3339 time to render in snapshot mode")
	f.BoolVar(&flags.printConfig, "print-config", false, "print the effective configuration and exit")

	return cmd
}

// overrides maps the flags that were set to their config keys.
func overrides(cmd *cobra.Command, flags *cliFlags) map[string]interface{} {
	bindings := []struct {
		flag  string
		key   string
		value interface{}
	}{
		{"debug", "log.debug", flags.debug},
		{"font", "font.path", flags.font},
		{"width", "window.width", flags.width},
		{"height", "window.height", flags.height},
		{"fps", "window.fps", flags.fps},
		{"scheme", "clock.scheme", flags.scheme},
		{"particles", "particles.count", flags.particles},
		{"seed", "particles.seed", flags.seed},
		{"scaling", "window.scaling", flags.scaling},
		{"fit-display", "window.fit_display", flags.fitDisplay},
		{"tick", "sound.tick", flags.tick},
	}

	out := make(map[string]interface{})
	for _, b := range bindings {
		if cmd.Flags().Changed(b.flag) {
			out[b.key] = b.value
		}
	}
	return out
}

func run(cmd *cobra.Command, flags *cliFlags) error {
	cfg, path, err := config.Load(config.LoadOptions{
		Path:      flags.configPath,
		Overrides: overrides(cmd, flags),
	})
	if err != nil {
		return err
	}

	closer, err := utils.InitLogger(utils.LogOptions{Debug: cfg.Log.Debug, File: cfg.Log.File})
	defer func() { _ = closer.Close() }()
	if err != nil {
		utils.Warn("Log file disabled: %v", err)
	}

	if path != "" {
		utils.Info("Loaded config from %s", path)
	}
	utils.AssetsPath = cfg.Font.AssetsDir
	utils.Debug("Effective scene %dx%d, scheme %s, %d particles", cfg.Window.Width, cfg.Window.Height, cfg.Clock.Scheme, cfg.Particles.Count)

	if flags.printConfig {
		return config.Dump(cmd.OutOrStdout(), cfg)
	}

	if flags.snapshot != "" {
		return runSnapshot(cfg, flags.snapshot, flags.at)
	}
	if flags.at != "" {
		return fmt.Errorf("--at requires --snapshot")
	}

	window, err := NewWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	window.Run()
	return nil
}
