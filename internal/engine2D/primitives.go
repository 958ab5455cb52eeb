package engine2D

import (
	"image/color"
	"math"
)

// PixelSink receives individual pixels. Every Canvas is one.
type PixelSink interface {
	DrawPixel(x, y int, c color.RGBA)
}

// StampCircle plots a filled circle by visiting every offset (dx, dy) with
// dx, dy in (-r, r] and dx²+dy² <= r². A radius of 0 plots nothing.
func StampCircle(dst PixelSink, cx, cy, radius int, c color.RGBA) {
	for w := 0; w < radius*2; w++ {
		for h := 0; h < radius*2; h++ {
			dx := radius - w
			dy := radius - h
			if dx*dx+dy*dy <= radius*radius {
				dst.DrawPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

// DrawGradientThickLine stamps filled circles of radius thickness/2 along
// the segment, interpolating from start to end. Zero-length segments draw
// nothing.
func DrawGradientThickLine(c Canvas, x0, y0, x1, y1, thickness float64, start, end color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return
	}

	radius := int(thickness / 2)
	for i := 0; float64(i) <= length; i++ {
		t := float64(i) / length
		x := x0 + t*dx
		y := y0 + t*dy
		c.FillCircle(int(x), int(y), radius, LerpColor(start, end, t))
	}
}

// bresenham calls plot for every point of the line including both endpoints.
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
