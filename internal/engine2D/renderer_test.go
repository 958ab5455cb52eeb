package engine2D

import (
	"testing"

	"advanced-clock/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestUpdateViewport(t *testing.T) {
	tests := []struct {
		name       string
		screenW    int
		screenH    int
		mode       string
		scale      float64
		offX, offY float64
	}{
		{"identity", 800, 600, config.ScalingFit, 1, 0, 0},
		{"fit wide", 1600, 900, config.ScalingFit, 1.5, 200, 0},
		{"fill wide", 1600, 900, config.ScalingFill, 2, 0, -150},
		{"fit tall", 400, 600, config.ScalingFit, 0.5, 0, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(800, 600)
			v.UpdateViewport(tt.screenW, tt.screenH, tt.mode)

			assert.InDelta(t, tt.scale, v.RenderScale, 1e-9)
			assert.InDelta(t, tt.offX, v.SceneOffsetX, 1e-9)
			assert.InDelta(t, tt.offY, v.SceneOffsetY, 1e-9)

			x, y, w, h := v.Dest()
			assert.InDelta(t, tt.offX, x, 1e-9)
			assert.InDelta(t, tt.offY, y, 1e-9)
			assert.InDelta(t, 800*tt.scale, w, 1e-9)
			assert.InDelta(t, 600*tt.scale, h, 1e-9)
		})
	}
}

func TestViewport_ToScene(t *testing.T) {
	v := NewViewport(800, 600)
	v.UpdateViewport(1600, 900, config.ScalingFit)

	x, y := v.ToScene(800, 450)
	assert.InDelta(t, 400.0, x, 1e-9)
	assert.InDelta(t, 300.0, y, 1e-9)
}
