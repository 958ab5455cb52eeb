package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// AssetsPath is an extra directory searched for assets, set from config.
var AssetsPath string

// ResolveAssetPath returns the first existing location of relPath, falling back
// to the local assets directory even when nothing exists there.
func ResolveAssetPath(relPath string) string {
	localPath := filepath.Join("assets", relPath)
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	if AssetsPath != "" {
		p := filepath.Join(AssetsPath, relPath)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return localPath
}

// FindFontFile looks for a font file by name in the working directory, the
// assets folders and next to the executable. It returns "" when nothing is
// found.
func FindFontFile(name string) string {
	if name == "" {
		return ""
	}

	if filepath.IsAbs(name) {
		if fileExists(name) {
			return name
		}
		return ""
	}

	searchDirs := []string{".", "assets/fonts", "assets"}
	if AssetsPath != "" {
		searchDirs = append(searchDirs, filepath.Join(AssetsPath, "fonts"), AssetsPath)
	}
	if exe, err := os.Executable(); err == nil {
		searchDirs = append(searchDirs, filepath.Dir(exe))
	}

	candidates := []string{name, strings.ToUpper(name), strings.ToLower(name)}

	for _, dir := range searchDirs {
		for _, c := range candidates {
			p := filepath.Join(dir, c)
			if fileExists(p) {
				return p
			}
		}
	}

	return ""
}

// FirstFontIn returns the first .ttf or .otf file in dir, or "".
func FirstFontIn(dir string) string {
	for _, pattern := range []string{"*.ttf", "*.TTF", "*.otf", "*.OTF"} {
		files, _ := filepath.Glob(filepath.Join(dir, pattern))
		if len(files) > 0 {
			return files[0]
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
