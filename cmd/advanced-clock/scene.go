package main

import (
	"math/rand"
	"time"

	"advanced-clock/internal/config"
	"advanced-clock/internal/engine2D"
	"advanced-clock/internal/engine2D/particle"
)

// buildScene creates the scene described by cfg. A zero seed draws the
// particle sequence from the wall clock.
func buildScene(cfg *config.Config, start time.Time, seed int64) (*engine2D.Scene, error) {
	palettes, err := engine2D.PalettesFromConfig(cfg.Palettes)
	if err != nil {
		return nil, err
	}
	scheme, err := engine2D.ParseScheme(cfg.Clock.Scheme)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	return engine2D.NewScene(engine2D.SceneOptions{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Radius:   cfg.Clock.Radius,
		Scheme:   scheme,
		Palettes: palettes,
		Particles: particle.Options{
			Count:       cfg.Particles.Count,
			SpeedScale:  cfg.Particles.SpeedScale,
			LifetimeMin: cfg.Particles.LifetimeMin,
			LifetimeMax: cfg.Particles.LifetimeMax,
			Rand:        rng,
		},
		ShowDigitalClock: cfg.Clock.ShowDigitalClock,
		ShowDigitalDate:  cfg.Clock.ShowDigitalDate,
		ShowDebug:        cfg.Debug.ShowOverlay,
		Tick:             cfg.Sound.Tick,
		Start:            start,
	}), nil
}
