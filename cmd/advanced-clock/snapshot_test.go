package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"advanced-clock/internal/clock"
	"advanced-clock/internal/config"
	"advanced-clock/internal/engine2D"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePNG(t *testing.T, path string) (w, h int, at func(x, y int) [4]uint32) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy(), func(x, y int) [4]uint32 {
		r, g, bl, a := img.At(x, y).RGBA()
		return [4]uint32{r >> 8, g >> 8, bl >> 8, a >> 8}
	}
}

func TestRenderSnapshot(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "clock.png")

	cfg := config.DefaultConfig()
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, renderSnapshot(cfg, clock.FixedClock{At: at}, out))

	w, h, px := decodePNG(t, out)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	dot := engine2D.CenterDotColor(0)
	assert.Equal(t, [4]uint32{uint32(dot.R), uint32(dot.G), uint32(dot.B), 255}, px(400, 300))
}

func TestRunSnapshot_SizeAndParse(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "small.png")

	cfg := config.DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = 400, 300
	cfg.Clock.Radius = 120
	require.NoError(t, runSnapshot(cfg, out, "2024-06-01T09:00:00Z"))

	w, h, _ := decodePNG(t, out)
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)

	err := runSnapshot(cfg, out, "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--at")
}

func TestRenderSnapshot_MissingFont(t *testing.T) {
	dir := isolate(t)

	cfg := config.DefaultConfig()
	cfg.Font.Path = "missing-font.ttf"
	err := renderSnapshot(cfg, clock.FixedClock{At: time.Now()}, filepath.Join(dir, "x.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFontLoad)
}

func TestResolveFont(t *testing.T) {
	dir := isolate(t)

	src, err := resolveFont(config.FontConfig{Size: 28})
	require.NoError(t, err)
	assert.Empty(t, src.Path)
	assert.Equal(t, engine2D.EmbeddedFontName, src.Name)
	assert.Equal(t, engine2D.EmbeddedFont(), src.Data)

	fontsDir := filepath.Join(dir, "assets", "fonts")
	require.NoError(t, os.MkdirAll(fontsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(fontsDir, "Clock.ttf"), engine2D.EmbeddedFont(), 0o600))

	src, err = resolveFont(config.FontConfig{Size: 28})
	require.NoError(t, err)
	assert.Equal(t, "Clock.ttf", src.Name)

	src, err = resolveFont(config.FontConfig{Path: "Clock.ttf", Size: 28})
	require.NoError(t, err)
	assert.Equal(t, "Clock.ttf", src.Name)
}

func TestBuildScene(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Clock.Scheme = config.SchemeEmber
	cfg.Particles.Count = 5

	s, err := buildScene(cfg, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), 3)
	require.NoError(t, err)
	assert.Equal(t, engine2D.SchemeEmber, s.Scheme)
	assert.Equal(t, 5, s.Particles.Count())
	assert.Equal(t, 200, s.Face.Radius)

	cfg.Clock.Scheme = "neon"
	_, err = buildScene(cfg, time.Now(), 0)
	assert.Error(t, err)
}
