package debug

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type textCanvas struct {
	noFont bool
	texts  []string
	ys     []float64
}

func (tc *textCanvas) Size() (int, int) { return 800, 600 }

func (tc *textCanvas) DrawPixel(int, int, color.RGBA) {}

func (tc *textCanvas) DrawLine(int, int, int, int, color.RGBA) {}

func (tc *textCanvas) FillCircle(int, int, int, color.RGBA) {}

func (tc *textCanvas) DrawText(text string, x, y float64, c color.RGBA) {
	tc.texts = append(tc.texts, text)
	tc.ys = append(tc.ys, y)
}

func (tc *textCanvas) MeasureText(string) (float64, float64, bool) {
	if tc.noFont {
		return 0, 0, false
	}
	return 30, 16, true
}

func TestOverlay_SamplesFPSPerInterval(t *testing.T) {
	clk := &stepClock{now: time.Unix(1000, 0)}
	d := NewOverlay(490*time.Millisecond, clk)

	for i := 0; i < 29; i++ {
		clk.advance(time.Second / 60)
		d.Update(time.Second / 60)
	}
	assert.Zero(t, d.FPS(), "no sample before the interval elapses")

	clk.advance(time.Second / 60)
	d.Update(time.Second / 60)
	assert.InDelta(t, 60.0, d.FPS(), 0.5)
}

func TestOverlay_Lines(t *testing.T) {
	clk := &stepClock{now: time.Unix(0, 0)}
	d := NewOverlay(time.Second, clk)
	d.Update(16667 * time.Microsecond)

	lines := d.Lines(Stats{
		Particles:   20,
		Scheme:      "ocean",
		SceneWidth:  800,
		SceneHeight: 600,
		RenderScale: 1.5,
		ScalingMode: "fit",
		Tick:        true,
	})

	assert.Contains(t, lines, "Frame Time: 16.67 ms")
	assert.Contains(t, lines, "Particles: 20")
	assert.Contains(t, lines, "Scheme: ocean")
	assert.Contains(t, lines, "Scene Size: 800x600")
	assert.Contains(t, lines, "Render Scale: 1.50x (fit)")
	assert.Equal(t, "Tick: on", lines[len(lines)-1])

	lines = d.Lines(Stats{RenderScale: 1, ScalingMode: "fill"})
	assert.Contains(t, lines, "Scaling Mode: fill")
	assert.Equal(t, "Tick: off", lines[len(lines)-1])
}

func TestOverlay_Draw(t *testing.T) {
	d := NewOverlay(time.Second, nil)
	tc := &textCanvas{}

	d.Draw(tc, Stats{Particles: 3})
	require.NotEmpty(t, tc.texts)
	assert.Equal(t, d.Lines(Stats{Particles: 3})[:4], tc.texts[:4])
	assert.Equal(t, 10.0, tc.ys[0])
	assert.Equal(t, 28.0, tc.ys[1])

	tc = &textCanvas{noFont: true}
	d.Draw(tc, Stats{})
	assert.Empty(t, tc.texts)
}
