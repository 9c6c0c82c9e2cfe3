package game

import (
	"mirefall.dev/mirefall/internal/render"
	"mirefall.dev/mirefall/preload"
)

// SpriteBank converts preloaded CPU images into renderer images on first use
// and caches them. Settled entries never change, so the cache never
// invalidates.
type SpriteBank struct {
	renderer render.Renderer
	loader   *preload.Loader
	cache    map[string]render.Image
}

// NewSpriteBank creates a bank backed by the given loader.
func NewSpriteBank(renderer render.Renderer, loader *preload.Loader) *SpriteBank {
	return &SpriteBank{
		renderer: renderer,
		loader:   loader,
		cache:    make(map[string]render.Image),
	}
}

// Get returns the renderable sprite for a name, or nil while the entry has
// not settled yet.
func (b *SpriteBank) Get(name string) render.Image {
	if img, ok := b.cache[name]; ok {
		return img
	}

	src, _ := b.loader.Image(name)
	if src == nil {
		return nil
	}

	img := b.renderer.NewImageFromImage(src)
	b.cache[name] = img
	return img
}
