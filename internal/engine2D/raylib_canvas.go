package engine2D

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibCanvas draws straight to the active raylib target. It must only be
// used between BeginDrawing/EndDrawing or BeginTextureMode/EndTextureMode.
type RaylibCanvas struct {
	Width    int
	Height   int
	Font     rl.Font
	FontSize float32
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (rc *RaylibCanvas) Size() (int, int) {
	return rc.Width, rc.Height
}

func (rc *RaylibCanvas) DrawPixel(x, y int, c color.RGBA) {
	rl.DrawPixel(int32(x), int32(y), rlColor(c))
}

func (rc *RaylibCanvas) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	rl.DrawLine(int32(x0), int32(y0), int32(x1), int32(y1), rlColor(c))
}

func (rc *RaylibCanvas) FillCircle(cx, cy, radius int, c color.RGBA) {
	if radius <= 0 {
		return
	}
	rl.DrawCircle(int32(cx), int32(cy), float32(radius), rlColor(c))
}

func (rc *RaylibCanvas) DrawText(text string, x, y float64, c color.RGBA) {
	if rc.Font.Texture.ID == 0 {
		return
	}
	rl.DrawTextEx(rc.Font, text, rl.NewVector2(float32(x), float32(y)), rc.FontSize, 0, rlColor(c))
}

func (rc *RaylibCanvas) MeasureText(text string) (float64, float64, bool) {
	if rc.Font.Texture.ID == 0 {
		return 0, 0, false
	}
	size := rl.MeasureTextEx(rc.Font, text, rc.FontSize, 0)
	if size.X <= 0 || size.Y <= 0 {
		return 0, 0, false
	}
	return float64(size.X), float64(size.Y), true
}
