package particle

import (
	"image/color"
	"math/rand"
)

// Defaults reproduce the classic clock background.
const (
	DefaultCount       = 20
	DefaultSpeedScale  = 100.0
	DefaultLifetimeMin = 3.0
	DefaultLifetimeMax = 5.0
)

type Vec2 struct {
	X, Y float64
}

type Particle struct {
	Position Vec2
	Velocity Vec2
	// Life is the remaining lifetime in seconds.
	Life  float64
	Color color.RGBA
}

type System struct {
	Particles   []*Particle
	Width       int
	Height      int
	SpeedScale  float64
	LifetimeMin float64
	LifetimeMax float64

	rng *rand.Rand
}

type Options struct {
	Count  int
	Width  int
	Height int
	// SpeedScale multiplies the unit velocity, in pixels per second.
	SpeedScale  float64
	LifetimeMin float64
	LifetimeMax float64
	// Rand is the random source; nil seeds one from the wall clock.
	Rand *rand.Rand
}

// PixelDrawer is the only drawing capability particles need.
type PixelDrawer interface {
	DrawPixel(x, y int, c color.RGBA)
}
