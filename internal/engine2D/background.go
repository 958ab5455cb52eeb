package engine2D

// DrawGradientBackground fills the canvas with the palette's vertical
// gradient, its end colours slowly drifting with elapsed seconds.
func DrawGradientBackground(c Canvas, width, height int, p Palette, elapsed float64) {
	start := Modulate(p.BackgroundStart, elapsed, 0)
	end := Modulate(p.BackgroundEnd, elapsed, 1)

	for y := 0; y < height; y++ {
		c.DrawLine(0, y, width, y, rowColor(start, end, y, height))
	}
}
