// Package config loads the clock's settings with layered precedence:
//  1. CLI flags (LoadOptions.Overrides)
//  2. Environment variables (CLOCK_* prefix)
//  3. Config file (--config, ./advanced-clock.yaml or the user config dir)
//  4. Built-in defaults
package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Window    WindowConfig             `yaml:"window" mapstructure:"window"`
	Clock     ClockConfig              `yaml:"clock" mapstructure:"clock"`
	Particles ParticlesConfig          `yaml:"particles" mapstructure:"particles"`
	Font      FontConfig               `yaml:"font" mapstructure:"font"`
	Palettes  map[string]PaletteConfig `yaml:"palettes" mapstructure:"palettes"`
	Sound     SoundConfig              `yaml:"sound" mapstructure:"sound"`
	Debug     DebugConfig              `yaml:"debug" mapstructure:"debug"`
	Log       LogConfig                `yaml:"log" mapstructure:"log"`
}

// WindowConfig describes the window and the logical scene size.
type WindowConfig struct {
	// Width and Height are the logical scene size; the window starts at this
	// size unless FitDisplay is set.
	Width  int    `yaml:"width" mapstructure:"width"`
	Height int    `yaml:"height" mapstructure:"height"`
	Title  string `yaml:"title" mapstructure:"title"`
	FPS    int    `yaml:"fps" mapstructure:"fps"`

	Resizable bool `yaml:"resizable" mapstructure:"resizable"`
	// Scaling is "fit" (letterbox) or "fill" (crop).
	Scaling    string `yaml:"scaling" mapstructure:"scaling"`
	FitDisplay bool   `yaml:"fit_display" mapstructure:"fit_display"`
}

// ClockConfig holds the clock face settings.
type ClockConfig struct {
	Radius           int    `yaml:"radius" mapstructure:"radius"`
	Scheme           string `yaml:"scheme" mapstructure:"scheme"`
	ShowDigitalClock bool   `yaml:"show_digital_clock" mapstructure:"show_digital_clock"`
	ShowDigitalDate  bool   `yaml:"show_digital_date" mapstructure:"show_digital_date"`
}

// ParticlesConfig holds the background particle settings.
type ParticlesConfig struct {
	Count       int     `yaml:"count" mapstructure:"count"`
	SpeedScale  float64 `yaml:"speed_scale" mapstructure:"speed_scale"`
	LifetimeMin float64 `yaml:"lifetime_min" mapstructure:"lifetime_min"`
	LifetimeMax float64 `yaml:"lifetime_max" mapstructure:"lifetime_max"`
	// Seed fixes the random sequence; 0 seeds from the wall clock.
	Seed int64 `yaml:"seed" mapstructure:"seed"`
}

// FontConfig selects the font used for labels and digital readouts.
type FontConfig struct {
	// Path is a font file; empty means search for ARIAL.TTF and fall back to
	// the embedded Go Regular font.
	Path string `yaml:"path" mapstructure:"path"`
	Size int    `yaml:"size" mapstructure:"size"`

	// AssetsDir is an extra directory searched for fonts.
	AssetsDir string `yaml:"assets_dir" mapstructure:"assets_dir"`
}

// PaletteConfig holds the hex colours of one colour scheme.
type PaletteConfig struct {
	BackgroundStart string `yaml:"background_start" mapstructure:"background_start"`
	BackgroundEnd   string `yaml:"background_end" mapstructure:"background_end"`
	RingStart       string `yaml:"ring_start" mapstructure:"ring_start"`
	RingEnd         string `yaml:"ring_end" mapstructure:"ring_end"`
}

// SoundConfig controls the per-second tick.
type SoundConfig struct {
	Tick      bool    `yaml:"tick" mapstructure:"tick"`
	Volume    float64 `yaml:"volume" mapstructure:"volume"`
	Frequency float64 `yaml:"frequency" mapstructure:"frequency"`
}

// DebugConfig controls the performance overlay.
type DebugConfig struct {
	ShowOverlay    bool          `yaml:"show_overlay" mapstructure:"show_overlay"`
	SampleInterval time.Duration `yaml:"sample_interval" mapstructure:"sample_interval"`
}

// LogConfig controls logging.
type LogConfig struct {
	Debug bool   `yaml:"debug" mapstructure:"debug"`
	File  string `yaml:"file" mapstructure:"file"`
}
