package main

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"advanced-clock/internal/clock"
	"advanced-clock/internal/config"
	"advanced-clock/internal/debug"
	"advanced-clock/internal/engine2D"
	"advanced-clock/internal/utils"
)

// snapshotSeed keeps snapshots reproducible when no seed is configured.
const snapshotSeed = 1

// runSnapshot renders a single frame to a PNG file without opening a window.
func runSnapshot(cfg *config.Config, out, at string) error {
	var clk clock.Clock = clock.RealClock{}
	if at != "" {
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return fmt.Errorf("invalid --at %q: %w", at, err)
		}
		clk = clock.FixedClock{At: t}
	}
	return renderSnapshot(cfg, clk, out)
}

func renderSnapshot(cfg *config.Config, clk clock.Clock, out string) error {
	seed := cfg.Particles.Seed
	if seed == 0 {
		seed = snapshotSeed
	}
	scene, err := buildScene(cfg, clk.Now(), seed)
	if err != nil {
		return err
	}

	face, fontName, err := loadFace(cfg.Font)
	if err != nil {
		return err
	}
	defer face.Close()

	canvas := engine2D.NewImageCanvas(cfg.Window.Width, cfg.Window.Height, face)
	scene.Render(canvas)
	if scene.ShowDebug {
		debug.NewOverlay(cfg.Debug.SampleInterval, clk).Draw(canvas, debug.Stats{
			Particles:   scene.Particles.Count(),
			Scheme:      scene.Scheme.String(),
			SceneWidth:  scene.Width,
			SceneHeight: scene.Height,
			Tick:        scene.TickEnabled,
		})
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, canvas.Image); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	utils.Info("Snapshot of %s written to %s (font %s)", clk.Now().Format(time.RFC3339), out, fontName)
	return nil
}
