package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"advanced-clock/internal/config"
	"advanced-clock/internal/engine2D"
	"advanced-clock/internal/utils"

	"golang.org/x/image/font"
)

// ErrFontLoad is returned when the configured font cannot be used.
var ErrFontLoad = errors.New("failed to load font")

type fontSource struct {
	// Path is empty for the embedded font.
	Path string
	Name string
	Data []byte
}

// resolveFont finds the font to use. An explicit path must exist; otherwise
// the default font is searched for and the embedded font is the last resort.
func resolveFont(cfg config.FontConfig) (fontSource, error) {
	if cfg.Path != "" {
		path := utils.FindFontFile(cfg.Path)
		if path == "" {
			return fontSource{}, fmt.Errorf("%w: %s not found", ErrFontLoad, cfg.Path)
		}
		return readFontSource(path)
	}

	path := utils.FindFontFile(config.DefaultFontName)
	if path == "" {
		path = utils.FirstFontIn(utils.ResolveAssetPath("fonts"))
	}
	if path != "" {
		src, err := readFontSource(path)
		if err == nil {
			return src, nil
		}
		utils.Warn("Ignoring font %s: %v", path, err)
	}

	utils.Debug("No font file found, using %s", engine2D.EmbeddedFontName)
	return fontSource{Name: engine2D.EmbeddedFontName, Data: engine2D.EmbeddedFont()}, nil
}

func readFontSource(path string) (fontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fontSource{}, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}
	return fontSource{Path: path, Name: filepath.Base(path), Data: data}, nil
}

// loadFace resolves the font and parses it for software rendering.
func loadFace(cfg config.FontConfig) (font.Face, string, error) {
	src, err := resolveFont(cfg)
	if err != nil {
		return nil, "", err
	}
	face, err := engine2D.NewFace(src.Data, float64(cfg.Size))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrFontLoad, src.Name, err)
	}
	return face, src.Name, nil
}
