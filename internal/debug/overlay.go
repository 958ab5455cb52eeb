// Package debug draws the F8 performance overlay.
package debug

import (
	"runtime"
	"time"

	"advanced-clock/internal/clock"
	"advanced-clock/internal/engine2D"
)

const (
	overlayX       = 10
	overlayY       = 10
	overlayPadding = 2
)

// Stats is the per-frame scene information shown in the overlay.
type Stats struct {
	Particles   int
	Scheme      string
	SceneWidth  int
	SceneHeight int
	RenderScale float64
	ScalingMode string
	Tick        bool
}

type Overlay struct {
	SampleInterval time.Duration

	clock      clock.Clock
	lastSample time.Time
	frameCount int
	fps        float64
	frameTime  time.Duration
	memStats   runtime.MemStats
}

// NewOverlay creates an overlay that refreshes its FPS and memory figures
// once per interval.
func NewOverlay(interval time.Duration, clk clock.Clock) *Overlay {
	if clk == nil {
		clk = clock.RealClock{}
	}
	d := &Overlay{
		SampleInterval: interval,
		clock:          clk,
		lastSample:     clk.Now(),
	}
	runtime.ReadMemStats(&d.memStats)
	return d
}

// Update records one frame.
func (d *Overlay) Update(frameTime time.Duration) {
	d.frameCount++
	d.frameTime = frameTime

	now := d.clock.Now()
	elapsed := now.Sub(d.lastSample)
	if elapsed >= d.SampleInterval && elapsed > 0 {
		d.fps = float64(d.frameCount) / elapsed.Seconds()
		d.frameCount = 0
		d.lastSample = now
		runtime.ReadMemStats(&d.memStats)
	}
}

// FPS is the frame rate measured over the last sample interval.
func (d *Overlay) FPS() float64 {
	return d.fps
}

// Draw prints the overlay lines in the top-left corner.
func (d *Overlay) Draw(c engine2D.Canvas, s Stats) {
	_, lineHeight, ok := c.MeasureText("Ag")
	if !ok {
		return
	}
	y := float64(overlayY)
	for _, line := range d.Lines(s) {
		c.DrawText(line, overlayX, y, engine2D.White)
		y += lineHeight + overlayPadding
	}
}
