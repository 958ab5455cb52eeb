package engine2D

import (
	"fmt"
	"image/color"

	"advanced-clock/internal/config"

	"github.com/lucasb-eyer/go-colorful"
)

// Scheme indexes one of the selectable colour palettes.
type Scheme int

const (
	SchemeTwilight Scheme = iota
	SchemeOcean
	SchemeEmber

	SchemeCount = 3
)

// Next returns the scheme the C key switches to.
func (s Scheme) Next() Scheme {
	return (s + 1) % SchemeCount
}

func (s Scheme) String() string {
	if s < 0 || int(s) >= len(config.SchemeNames) {
		return fmt.Sprintf("scheme(%d)", int(s))
	}
	return config.SchemeNames[s]
}

// ParseScheme maps a configured scheme name to its index.
func ParseScheme(name string) (Scheme, error) {
	for i, n := range config.SchemeNames {
		if n == name {
			return Scheme(i), nil
		}
	}
	return SchemeTwilight, fmt.Errorf("unknown color scheme %q", name)
}

type Palette struct {
	BackgroundStart color.RGBA
	BackgroundEnd   color.RGBA
	RingStart       color.RGBA
	RingEnd         color.RGBA
}

type Palettes [SchemeCount]Palette

// DefaultPalettes returns the built-in twilight, ocean and ember palettes.
func DefaultPalettes() Palettes {
	return Palettes{
		SchemeTwilight: {
			BackgroundStart: color.RGBA{20, 0, 60, 255},
			BackgroundEnd:   color.RGBA{0, 0, 0, 255},
			RingStart:       color.RGBA{255, 0, 255, 255},
			RingEnd:         color.RGBA{0, 255, 255, 255},
		},
		SchemeOcean: {
			BackgroundStart: color.RGBA{0, 50, 150, 255},
			BackgroundEnd:   color.RGBA{0, 0, 30, 255},
			RingStart:       color.RGBA{255, 255, 255, 255},
			RingEnd:         color.RGBA{0, 191, 255, 255},
		},
		SchemeEmber: {
			BackgroundStart: color.RGBA{255, 140, 0, 255},
			BackgroundEnd:   color.RGBA{50, 0, 0, 255},
			RingStart:       color.RGBA{255, 105, 180, 255},
			RingEnd:         color.RGBA{255, 69, 0, 255},
		},
	}
}

// PalettesFromConfig parses the configured hex palettes. Schemes missing from
// the map keep their built-in colours.
func PalettesFromConfig(cfg map[string]config.PaletteConfig) (Palettes, error) {
	palettes := DefaultPalettes()
	for i, name := range config.SchemeNames {
		pc, ok := cfg[name]
		if !ok {
			continue
		}
		p := &palettes[i]
		fields := []struct {
			key string
			hex string
			dst *color.RGBA
		}{
			{"background_start", pc.BackgroundStart, &p.BackgroundStart},
			{"background_end", pc.BackgroundEnd, &p.BackgroundEnd},
			{"ring_start", pc.RingStart, &p.RingStart},
			{"ring_end", pc.RingEnd, &p.RingEnd},
		}
		for _, f := range fields {
			c, err := parseHex(f.hex)
			if err != nil {
				return palettes, fmt.Errorf("palette %s.%s: %w", name, f.key, err)
			}
			*f.dst = c
		}
	}
	return palettes, nil
}

func parseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
