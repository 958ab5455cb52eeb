package engine2D

import (
	"image/color"
	"math"
)

// modulationAmplitude is the swing of the animated background colours.
const modulationAmplitude = 20

var (
	White = color.RGBA{255, 255, 255, 255}
	Black = color.RGBA{0, 0, 0, 255}
	Gold  = color.RGBA{255, 215, 0, 255}
)

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}

// LerpColor interpolates each channel and truncates. The result is opaque.
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: 255,
	}
}

// Modulate shifts each channel k of base by 20*sin(t + phase + 2k) and clamps
// the result to [0, 255].
func Modulate(base color.RGBA, t, phase float64) color.RGBA {
	channel := func(v uint8, k int) uint8 {
		return clampChannel(int(float64(v) + modulationAmplitude*math.Sin(t+phase+float64(2*k))))
	}
	return color.RGBA{
		R: channel(base.R, 0),
		G: channel(base.G, 1),
		B: channel(base.B, 2),
		A: 255,
	}
}

// rowColor is the vertical gradient colour at row y of a height-row surface.
func rowColor(start, end color.RGBA, y, height int) color.RGBA {
	t := float64(y) / float64(height)
	ch := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*float64(int(b)-int(a)))
	}
	return color.RGBA{ch(start.R, end.R), ch(start.G, end.G), ch(start.B, end.B), 255}
}
