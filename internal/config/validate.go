package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrConfigNil indicates a nil config was passed in.
	ErrConfigNil = errors.New("config is nil")

	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate returns the first invalid value found in cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ErrConfigNil
	}
	if err := validateWindow(&cfg.Window); err != nil {
		return err
	}
	if err := validateClock(&cfg.Clock, &cfg.Window); err != nil {
		return err
	}
	if err := validateParticles(&cfg.Particles); err != nil {
		return err
	}
	if cfg.Font.Size <= 0 {
		return invalid("font.size must be positive, got %d", cfg.Font.Size)
	}
	if err := validatePalettes(cfg.Palettes); err != nil {
		return err
	}
	if cfg.Sound.Volume < 0 || cfg.Sound.Volume > 1 {
		return invalid("sound.volume must be within [0,1], got %g", cfg.Sound.Volume)
	}
	if cfg.Sound.Frequency <= 0 {
		return invalid("sound.frequency must be positive, got %g", cfg.Sound.Frequency)
	}
	if cfg.Debug.SampleInterval <= 0 {
		return invalid("debug.sample_interval must be positive, got %s", cfg.Debug.SampleInterval)
	}
	return nil
}

func validateWindow(w *WindowConfig) error {
	if w.Width < 100 || w.Height < 100 {
		return invalid("window size must be at least 100x100, got %dx%d", w.Width, w.Height)
	}
	if w.FPS < 1 || w.FPS > 1000 {
		return invalid("window.fps must be between 1 and 1000, got %d", w.FPS)
	}
	if w.Scaling != ScalingFit && w.Scaling != ScalingFill {
		return invalid("window.scaling must be %q or %q, got %q", ScalingFit, ScalingFill, w.Scaling)
	}
	return nil
}

func validateClock(c *ClockConfig, w *WindowConfig) error {
	maxRadius := min(w.Width, w.Height) / 2
	if c.Radius < 60 || c.Radius > maxRadius {
		return invalid("clock.radius must be between 60 and %d, got %d", maxRadius, c.Radius)
	}
	if !slices.Contains(SchemeNames, c.Scheme) {
		return invalid("clock.scheme must be one of %v, got %q", SchemeNames, c.Scheme)
	}
	return nil
}

func validateParticles(p *ParticlesConfig) error {
	if p.Count < 0 || p.Count > 100000 {
		return invalid("particles.count must be between 0 and 100000, got %d", p.Count)
	}
	if p.SpeedScale < 0 {
		return invalid("particles.speed_scale must not be negative, got %g", p.SpeedScale)
	}
	if p.LifetimeMin <= 0 || p.LifetimeMax < p.LifetimeMin {
		return invalid("particles lifetime range must satisfy 0 < min <= max, got [%g,%g]", p.LifetimeMin, p.LifetimeMax)
	}
	return nil
}

func validatePalettes(palettes map[string]PaletteConfig) error {
	for _, name := range SchemeNames {
		p, ok := palettes[name]
		if !ok {
			return invalid("palettes.%s is missing", name)
		}
		fields := map[string]string{
			"background_start": p.BackgroundStart,
			"background_end":   p.BackgroundEnd,
			"ring_start":       p.RingStart,
			"ring_end":         p.RingEnd,
		}
		for field, hex := range fields {
			if _, err := colorful.Hex(hex); err != nil {
				return invalid("palettes.%s.%s: %q is not a #rrggbb colour", name, field, hex)
			}
		}
	}
	return nil
}
