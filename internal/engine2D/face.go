package engine2D

import (
	"image/color"
	"math"
	"strconv"
	"time"
)

const (
	ringThickness     = 4.0
	hourTickThickness = 3.0

	tickInset     = 20 // outer end of every tick, from the ring
	hourTickLen   = 20
	minuteTickLen = 10
	labelInset    = 50

	centerDotRadius = 5

	// referenceRadius is the face radius the hand lengths are tuned for.
	referenceRadius = 200.0

	timeFormat = "15:04:05"
	dateFormat = "2006-01-02"

	clockBottomMargin = 10
	dateBottomMargin  = 50
)

// Hand describes one clock hand at the reference radius.
type Hand struct {
	Length    float64
	Thickness float64
	Start     color.RGBA
	End       color.RGBA
}

var (
	HourHand   = Hand{Length: 90, Thickness: 8, Start: color.RGBA{255, 100, 100, 255}, End: color.RGBA{255, 0, 0, 255}}
	MinuteHand = Hand{Length: 120, Thickness: 6, Start: color.RGBA{0, 255, 255, 255}, End: color.RGBA{0, 150, 255, 255}}
	SecondHand = Hand{Length: 150, Thickness: 4, Start: color.RGBA{0, 255, 0, 255}, End: color.RGBA{50, 255, 50, 255}}

	hourTickStart = White
	hourTickEnd   = color.RGBA{255, 255, 0, 255}
)

// Face is the clock dial geometry.
type Face struct {
	CX, CY int
	Radius int
}

func (f Face) at(r, x, y float64) (int, int) {
	return int(float64(f.CX) + r*x), int(float64(f.CY) + r*y)
}

// DrawRing draws the outer ring as 360 one-degree gradient segments.
func (f Face) DrawRing(c Canvas, p Palette) {
	r := float64(f.Radius)
	for i := 1; i <= 360; i++ {
		a0 := float64(i) * math.Pi / 180
		a1 := float64(i-1) * math.Pi / 180
		px, py := f.at(r, math.Cos(a0), -math.Sin(a0))
		px2, py2 := f.at(r, math.Cos(a1), -math.Sin(a1))
		DrawGradientThickLine(c, float64(px), float64(py), float64(px2), float64(py2), ringThickness, p.RingStart, p.RingEnd)
	}
}

// DrawTicks draws 60 tick marks; every fifth one is a longer hour tick.
func (f Face) DrawTicks(c Canvas) {
	outer := float64(f.Radius - tickInset)
	hourInner := outer - hourTickLen
	minuteInner := outer - minuteTickLen

	for i := 0; i < 360; i += 6 {
		a := float64(i) * math.Pi / 180
		sin, cos := math.Sin(a), math.Cos(a)
		px, py := f.at(outer, sin, cos)

		if i%30 == 0 {
			px2, py2 := f.at(hourInner, sin, cos)
			DrawGradientThickLine(c, float64(px), float64(py), float64(px2), float64(py2), hourTickThickness, hourTickStart, hourTickEnd)
			continue
		}
		px2, py2 := f.at(minuteInner, sin, cos)
		c.DrawLine(px, py, px2, py2, White)
	}
}

// DrawHourLabels centres the numbers 1 to 12 inside the ticks.
func (f Face) DrawHourLabels(c Canvas) {
	r := float64(f.Radius - labelInset)
	for hour := 1; hour <= 12; hour++ {
		a := math.Pi/6*float64(hour) - math.Pi/2
		x, y := f.at(r, math.Cos(a), math.Sin(a))

		label := strconv.Itoa(hour)
		w, h, ok := c.MeasureText(label)
		if !ok {
			continue
		}
		c.DrawText(label, float64(x-int(w)/2), float64(y-int(h)/2), Gold)
	}
}

// DrawHands draws the hour, minute and second hands in that order.
func (f Face) DrawHands(c Canvas, angles HandAngles) {
	scale := float64(f.Radius) / referenceRadius
	f.drawHand(c, HourHand, angles.Hour, scale)
	f.drawHand(c, MinuteHand, angles.Minute, scale)
	f.drawHand(c, SecondHand, angles.Second, scale)
}

func (f Face) drawHand(c Canvas, h Hand, degrees, scale float64) {
	a := (degrees - 90) * math.Pi / 180
	x, y := f.at(h.Length*scale, math.Cos(a), math.Sin(a))
	DrawGradientThickLine(c, float64(f.CX), float64(f.CY), float64(x), float64(y), h.Thickness, h.Start, h.End)
}

// CenterDotColor pulses the blue channel with elapsed seconds.
func CenterDotColor(elapsed float64) color.RGBA {
	ms := elapsed * 1000
	return color.RGBA{255, 255, uint8(128 + 127*math.Sin(ms/500)), 255}
}

func (f Face) DrawCenterDot(c Canvas, elapsed float64) {
	c.FillCircle(f.CX, f.CY, centerDotRadius, CenterDotColor(elapsed))
}

// DrawDigitalClock prints HH:MM:SS centred near the bottom edge.
func DrawDigitalClock(c Canvas, width, height int, now time.Time) {
	drawBottomText(c, width, height, now.Format(timeFormat), clockBottomMargin)
}

// DrawDigitalDate prints YYYY-MM-DD above the digital clock.
func DrawDigitalDate(c Canvas, width, height int, now time.Time) {
	drawBottomText(c, width, height, now.Format(dateFormat), dateBottomMargin)
}

func drawBottomText(c Canvas, width, height int, text string, margin int) {
	w, h, ok := c.MeasureText(text)
	if !ok {
		return
	}
	x := (width - int(w)) / 2
	y := height - int(h) - margin
	c.DrawText(text, float64(x), float64(y), White)
}
