package engine2D

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// EmbeddedFontName labels the built-in fallback font in logs.
const EmbeddedFontName = "Go Regular (embedded)"

// EmbeddedFont returns the TrueType data of the built-in fallback font.
func EmbeddedFont() []byte {
	return goregular.TTF
}

// NewFace parses TrueType/OpenType data into a face of the given pixel size.
func NewFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
