package engine2D

import "image/color"

// Canvas is the drawing surface every scene routine renders into.
// Coordinates are logical scene pixels with the origin at the top left.
type Canvas interface {
	Size() (width, height int)
	DrawPixel(x, y int, c color.RGBA)
	// DrawLine draws a 1px line including both endpoints.
	DrawLine(x0, y0, x1, y1 int, c color.RGBA)
	FillCircle(cx, cy, radius int, c color.RGBA)
	// DrawText draws text with its bounding box's top-left corner at (x, y).
	DrawText(text string, x, y float64, c color.RGBA)
	// MeasureText reports the bounding box of text; ok is false when the
	// canvas has no usable font or the text has no extent.
	MeasureText(text string) (width, height float64, ok bool)
}
