package preload

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Source fetches and decodes a single image. The loader only ever sees this
// interface, which keeps preloading testable without a graphics context.
type Source interface {
	Load(path string) (image.Image, error)
}

// FileSource loads images from the local filesystem.
type FileSource struct{}

// Load opens and decodes the image at path.
func (FileSource) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
