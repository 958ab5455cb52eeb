package config

import (
	"time"

	"github.com/spf13/viper"
)

// Scheme names, in cycling order.
const (
	SchemeTwilight = "twilight"
	SchemeOcean    = "ocean"
	SchemeEmber    = "ember"
)

// SchemeNames lists the colour schemes in the order the C key cycles them.
var SchemeNames = []string{SchemeTwilight, SchemeOcean, SchemeEmber}

// ScalingFit and ScalingFill are the accepted window.scaling values.
const (
	ScalingFit  = "fit"
	ScalingFill = "fill"
)

// DefaultFontName is looked up when font.path is empty.
const DefaultFontName = "ARIAL.TTF"

func defaultPalettes() map[string]PaletteConfig {
	return map[string]PaletteConfig{
		SchemeTwilight: {
			BackgroundStart: "#14003c", // dark purple
			BackgroundEnd:   "#000000",
			RingStart:       "#ff00ff", // magenta
			RingEnd:         "#00ffff", // cyan
		},
		SchemeOcean: {
			BackgroundStart: "#003296", // dark blue
			BackgroundEnd:   "#00001e",
			RingStart:       "#ffffff",
			RingEnd:         "#00bfff", // deep sky blue
		},
		SchemeEmber: {
			BackgroundStart: "#ff8c00", // orange
			BackgroundEnd:   "#320000", // dark red
			RingStart:       "#ff69b4", // hot pink
			RingEnd:         "#ff4500", // orange red
		},
	}
}

// DefaultConfig returns the configuration used when nothing is overridden.
// It reproduces the classic 800x600 clock.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Advanced Clock",
			FPS:       60,
			Resizable: true,
			Scaling:   ScalingFit,
		},
		Clock: ClockConfig{
			Radius:           200,
			Scheme:           SchemeTwilight,
			ShowDigitalClock: true,
			ShowDigitalDate:  true,
		},
		Particles: ParticlesConfig{
			Count:       20,
			SpeedScale:  100,
			LifetimeMin: 3,
			LifetimeMax: 5,
		},
		Font: FontConfig{
			Size: 28,
		},
		Palettes: defaultPalettes(),
		Sound: SoundConfig{
			Volume:    0.4,
			Frequency: 1800,
		},
		Debug: DebugConfig{
			SampleInterval: 500 * time.Millisecond,
		},
	}
}

// setDefaults registers DefaultConfig on v. Keys must match the mapstructure
// tags so env overrides resolve.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.fps", d.Window.FPS)
	v.SetDefault("window.resizable", d.Window.Resizable)
	v.SetDefault("window.scaling", d.Window.Scaling)
	v.SetDefault("window.fit_display", d.Window.FitDisplay)

	v.SetDefault("clock.radius", d.Clock.Radius)
	v.SetDefault("clock.scheme", d.Clock.Scheme)
	v.SetDefault("clock.show_digital_clock", d.Clock.ShowDigitalClock)
	v.SetDefault("clock.show_digital_date", d.Clock.ShowDigitalDate)

	v.SetDefault("particles.count", d.Particles.Count)
	v.SetDefault("particles.speed_scale", d.Particles.SpeedScale)
	v.SetDefault("particles.lifetime_min", d.Particles.LifetimeMin)
	v.SetDefault("particles.lifetime_max", d.Particles.LifetimeMax)
	v.SetDefault("particles.seed", d.Particles.Seed)

	v.SetDefault("font.path", d.Font.Path)
	v.SetDefault("font.size", d.Font.Size)
	v.SetDefault("font.assets_dir", d.Font.AssetsDir)

	for name, p := range d.Palettes {
		v.SetDefault("palettes."+name+".background_start", p.BackgroundStart)
		v.SetDefault("palettes."+name+".background_end", p.BackgroundEnd)
		v.SetDefault("palettes."+name+".ring_start", p.RingStart)
		v.SetDefault("palettes."+name+".ring_end", p.RingEnd)
	}

	v.SetDefault("sound.tick", d.Sound.Tick)
	v.SetDefault("sound.volume", d.Sound.Volume)
	v.SetDefault("sound.frequency", d.Sound.Frequency)

	v.SetDefault("debug.show_overlay", d.Debug.ShowOverlay)
	v.SetDefault("debug.sample_interval", d.Debug.SampleInterval.String())

	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.file", d.Log.File)
}
