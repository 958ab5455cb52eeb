package engine2D

import "image/color"

type drawCall struct {
	op   string
	x, y int
	x1   int
	y1   int
	r    int
	text string
	c    color.RGBA
}

// recordingCanvas records every draw call. Text measures a fixed box unless
// noFont is set.
type recordingCanvas struct {
	w, h   int
	noFont bool
	textW  float64
	textH  float64
	calls  []drawCall
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{w: w, h: h, textW: 20, textH: 10}
}

func (rc *recordingCanvas) Size() (int, int) { return rc.w, rc.h }

func (rc *recordingCanvas) DrawPixel(x, y int, c color.RGBA) {
	rc.calls = append(rc.calls, drawCall{op: "pixel", x: x, y: y, c: c})
}

func (rc *recordingCanvas) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	rc.calls = append(rc.calls, drawCall{op: "line", x: x0, y: y0, x1: x1, y1: y1, c: c})
}

func (rc *recordingCanvas) FillCircle(cx, cy, radius int, c color.RGBA) {
	rc.calls = append(rc.calls, drawCall{op: "circle", x: cx, y: cy, r: radius, c: c})
}

func (rc *recordingCanvas) DrawText(text string, x, y float64, c color.RGBA) {
	rc.calls = append(rc.calls, drawCall{op: "text", x: int(x), y: int(y), text: text, c: c})
}

func (rc *recordingCanvas) MeasureText(text string) (float64, float64, bool) {
	if rc.noFont {
		return 0, 0, false
	}
	return rc.textW, rc.textH, true
}

func (rc *recordingCanvas) ops(op string) []drawCall {
	var out []drawCall
	for _, c := range rc.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (rc *recordingCanvas) reset() {
	rc.calls = rc.calls[:0]
}
