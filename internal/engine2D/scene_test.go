package engine2D

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"advanced-clock/internal/engine2D/particle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sceneStart = time.Date(2024, 3, 9, 15, 30, 45, 0, time.UTC)

func newTestScene() *Scene {
	return NewScene(SceneOptions{
		Width:    800,
		Height:   600,
		Radius:   200,
		Scheme:   SchemeTwilight,
		Palettes: DefaultPalettes(),
		Particles: particle.Options{
			Count:       particle.DefaultCount,
			SpeedScale:  particle.DefaultSpeedScale,
			LifetimeMin: particle.DefaultLifetimeMin,
			LifetimeMax: particle.DefaultLifetimeMax,
			Rand:        rand.New(rand.NewSource(1)),
		},
		ShowDigitalClock: true,
		ShowDigitalDate:  true,
		Start:            sceneStart,
	})
}

func TestNewScene(t *testing.T) {
	s := newTestScene()

	assert.Equal(t, Face{CX: 400, CY: 300, Radius: 200}, s.Face)
	assert.Equal(t, AnglesFromTime(sceneStart), s.Angles)
	assert.Equal(t, 20, s.Particles.Count())
	assert.Equal(t, 800, s.Particles.Width)
	assert.Equal(t, sceneStart, s.Now)
	assert.False(t, s.ShowDebug)
	assert.False(t, s.TickEnabled)
}

func TestScene_Apply(t *testing.T) {
	s := newTestScene()

	s.Apply(ToggleDigitalClock)
	assert.False(t, s.ShowDigitalClock)
	s.Apply(ToggleDigitalDate)
	assert.False(t, s.ShowDigitalDate)
	s.Apply(ToggleDebug)
	assert.True(t, s.ShowDebug)
	s.Apply(ToggleTick)
	assert.True(t, s.TickEnabled)

	s.Apply(CycleScheme)
	assert.Equal(t, SchemeOcean, s.Scheme)
	assert.Equal(t, DefaultPalettes()[SchemeOcean], s.Palette())
	s.Apply(CycleScheme)
	s.Apply(CycleScheme)
	assert.Equal(t, SchemeTwilight, s.Scheme)

	before := *s
	s.Apply(ActionNone)
	assert.Equal(t, before.Scheme, s.Scheme)
	assert.Equal(t, before.ShowDigitalClock, s.ShowDigitalClock)
}

func TestScene_Update(t *testing.T) {
	s := newTestScene()
	s.Angles.Second = 5.9

	later := sceneStart.Add(50 * time.Millisecond)
	assert.True(t, s.Update(0.05, later), "crossing into second 1")
	assert.Equal(t, later, s.Now)
	assert.InDelta(t, 0.05, s.Elapsed, 1e-12)

	assert.False(t, s.Update(0.01, later))

	s.Update(-3, later)
	assert.InDelta(t, 0.06, s.Elapsed, 1e-12)

	for _, p := range s.Particles.Particles {
		assert.Less(t, p.Position.X, 800.0)
		assert.Less(t, p.Position.Y, 600.0)
	}
}

func textsOf(calls []drawCall) []string {
	var out []string
	for _, c := range calls {
		out = append(out, c.text)
	}
	return out
}

func TestScene_RenderOrder(t *testing.T) {
	s := newTestScene()
	rc := newRecordingCanvas(800, 600)
	s.Render(rc)

	require.Greater(t, len(rc.calls), 620)
	for y := 0; y < 600; y++ {
		c := rc.calls[y]
		require.Equal(t, "line", c.op)
		assert.Equal(t, y, c.y)
	}
	for i := 600; i < 620; i++ {
		assert.Equal(t, "pixel", rc.calls[i].op)
	}
	assert.Equal(t, "circle", rc.calls[620].op, "ring follows particles")

	texts := rc.ops("text")
	require.Len(t, texts, 14)
	for i := 0; i < 12; i++ {
		assert.Equal(t, strconv.Itoa(i+1), texts[i].text)
		assert.Equal(t, Gold, texts[i].c)
	}
	assert.Equal(t, "15:30:45", texts[12].text)
	assert.Equal(t, "2024-03-09", texts[13].text)

	n := len(rc.calls)
	assert.Equal(t, "text", rc.calls[n-1].op)
	assert.Equal(t, "text", rc.calls[n-2].op)
	dot := rc.calls[n-3]
	assert.Equal(t, "circle", dot.op)
	assert.Equal(t, 5, dot.r)
	assert.Equal(t, 400, dot.x)
	assert.Equal(t, 300, dot.y)
}

func TestScene_RenderToggles(t *testing.T) {
	s := newTestScene()
	rc := newRecordingCanvas(800, 600)

	s.Apply(ToggleDigitalClock)
	s.Render(rc)
	texts := textsOf(rc.ops("text"))
	require.Len(t, texts, 13)
	assert.Equal(t, "2024-03-09", texts[12])

	rc.reset()
	s.Apply(ToggleDigitalDate)
	s.Render(rc)
	assert.Len(t, rc.ops("text"), 12)
	assert.Equal(t, "circle", rc.calls[len(rc.calls)-1].op)

	rc.reset()
	s.Apply(ToggleDigitalClock)
	s.Render(rc)
	texts = textsOf(rc.ops("text"))
	require.Len(t, texts, 13)
	assert.Equal(t, "15:30:45", texts[12])
}

func TestScene_RenderWithoutFont(t *testing.T) {
	s := newTestScene()
	rc := newRecordingCanvas(800, 600)
	rc.noFont = true

	s.Render(rc)
	assert.Empty(t, rc.ops("text"))
	assert.Len(t, rc.ops("line"), 600+48)
}

func TestScene_SchemeChangesColours(t *testing.T) {
	s := newTestScene()
	rc := newRecordingCanvas(800, 600)

	s.Render(rc)
	twilightTop := rc.calls[0].c
	twilightRing := rc.calls[620].c

	rc.reset()
	s.Apply(CycleScheme)
	s.Apply(CycleScheme)
	s.Render(rc)

	assert.NotEqual(t, twilightTop, rc.calls[0].c)
	assert.NotEqual(t, twilightRing, rc.calls[620].c)
	assert.Equal(t, DefaultPalettes()[SchemeEmber].RingStart, rc.calls[620].c)
}
