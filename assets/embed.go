package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var assetsFS embed.FS

// DefaultTexture is the embedded texture used when quad.texture is empty.
const DefaultTexture = "checker.png"

// DecodeImage decodes an image from disk, falling back to the embedded
// assets. An empty path selects DefaultTexture.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", displayName(path), err)
	}
	return img, nil
}

// LoadImage decodes path with DecodeImage and uploads it as a texture.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile reads path from disk, or the embedded asset of the same name.
func LoadFile(path string) ([]byte, error) {
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			return b, nil
		}
	}
	b, err := assetsFS.ReadFile(cleanAssetPath(path))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", displayName(path), err)
	}
	return b, nil
}

func displayName(path string) string {
	if path == "" {
		return DefaultTexture
	}
	return path
}

func cleanAssetPath(path string) string {
	if path == "" {
		return DefaultTexture
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
