package engine2D

import (
	"math"
	"time"
)

// Angular speeds of the hands in degrees per second.
const (
	secondHandSpeed = 360.0 / 60
	minuteHandSpeed = 360.0 / 3600
	hourHandSpeed   = 360.0 / 43200
)

// HandAngles holds the clock hand angles in degrees, clockwise from 12.
type HandAngles struct {
	Second float64
	Minute float64
	Hour   float64
}

// AnglesFromTime derives the hand angles from a wall-clock time.
func AnglesFromTime(t time.Time) HandAngles {
	hour, minute, second := t.Clock()
	return HandAngles{
		Second: float64(second) * 6,
		Minute: float64(minute)*6 + float64(second)/60*6,
		Hour:   float64(hour%12)*30 + float64(minute)/60*30,
	}
}

// Advance moves the hands by dt seconds, keeping each angle in [0, 360).
func (a *HandAngles) Advance(dt float64) {
	a.Second = wrapDegrees(a.Second + secondHandSpeed*dt)
	a.Minute = wrapDegrees(a.Minute + minuteHandSpeed*dt)
	a.Hour = wrapDegrees(a.Hour + hourHandSpeed*dt)
}

// WholeSecond is the index of the second the second hand points into.
func (a HandAngles) WholeSecond() int {
	return int(a.Second / secondHandSpeed)
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}
