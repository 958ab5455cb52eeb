package debug

import (
	"fmt"
	"runtime"
)

// Lines formats the overlay content.
func (d *Overlay) Lines(s Stats) []string {
	lines := []string{
		fmt.Sprintf("FPS: %.1f", d.fps),
		fmt.Sprintf("Frame Time: %.2f ms", float64(d.frameTime.Microseconds())/1000),
		fmt.Sprintf("Particles: %d", s.Particles),
		fmt.Sprintf("Scheme: %s", s.Scheme),
		fmt.Sprintf("Heap Alloc: %.2f MB", float64(d.memStats.HeapAlloc)/1024/1024),
		fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()),
	}

	if s.SceneWidth > 0 && s.SceneHeight > 0 {
		lines = append(lines, fmt.Sprintf("Scene Size: %dx%d", s.SceneWidth, s.SceneHeight))
	}
	if s.RenderScale != 0 && s.RenderScale != 1.0 {
		lines = append(lines, fmt.Sprintf("Render Scale: %.2fx (%s)", s.RenderScale, s.ScalingMode))
	} else if s.ScalingMode != "" {
		lines = append(lines, fmt.Sprintf("Scaling Mode: %s", s.ScalingMode))
	}

	tick := "off"
	if s.Tick {
		tick = "on"
	}
	lines = append(lines, "Tick: "+tick)
	return lines
}
