package engine2D

import (
	"math"

	"advanced-clock/internal/config"
)

// Viewport maps the fixed-size scene onto a window of any size.
type Viewport struct {
	SceneWidth  int
	SceneHeight int

	RenderScale  float64
	SceneOffsetX float64
	SceneOffsetY float64
}

func NewViewport(sceneWidth, sceneHeight int) *Viewport {
	return &Viewport{
		SceneWidth:  sceneWidth,
		SceneHeight: sceneHeight,
		RenderScale: 1.0,
	}
}

// UpdateViewport calculates and updates render scale and scene offsets based on window size.
func (v *Viewport) UpdateViewport(screenWidth, screenHeight int, scalingMode string) {
	scaleW := float64(screenWidth) / float64(v.SceneWidth)
	scaleH := float64(screenHeight) / float64(v.SceneHeight)

	if scalingMode == config.ScalingFit {
		v.RenderScale = math.Min(scaleW, scaleH)
	} else {
		v.RenderScale = math.Max(scaleW, scaleH)
	}

	v.SceneOffsetX = (float64(screenWidth) - float64(v.SceneWidth)*v.RenderScale) / 2
	v.SceneOffsetY = (float64(screenHeight) - float64(v.SceneHeight)*v.RenderScale) / 2
}

// Dest returns the window rectangle the scene is drawn into.
func (v *Viewport) Dest() (x, y, width, height float64) {
	return v.SceneOffsetX, v.SceneOffsetY,
		float64(v.SceneWidth) * v.RenderScale, float64(v.SceneHeight) * v.RenderScale
}

// ToScene converts a window position into scene coordinates.
func (v *Viewport) ToScene(screenX, screenY float64) (float64, float64) {
	return (screenX - v.SceneOffsetX) / v.RenderScale, (screenY - v.SceneOffsetY) / v.RenderScale
}
