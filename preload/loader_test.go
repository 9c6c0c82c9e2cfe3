package preload

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"testing"
	"time"
)

// fakeSource serves in-memory images and fails for paths it does not know.
type fakeSource struct {
	images map[string]image.Image
}

func (s fakeSource) Load(path string) (image.Image, error) {
	img, ok := s.images[path]
	if !ok {
		return nil, fmt.Errorf("no such asset: %s", path)
	}
	return img, nil
}

func solidImage(size int, col color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, col)
		}
	}
	return img
}

func testManifest() *Manifest {
	return &Manifest{
		Name:       "test",
		SpriteSize: 32,
		Entries: []Entry{
			{Name: "hero", Kind: "hero", ImagePath: "hero.png"},
			{Name: "goblin", Kind: "monster", ImagePath: "goblin.png"},
			{Name: "sword", Kind: "weapon", ImagePath: "sword.png"},
		},
	}
}

func waitSettled(t *testing.T, l *Loader) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("Preload did not finish: %v", err)
	}
}

func TestLoaderAllAssetsPresent(t *testing.T) {
	src := fakeSource{images: map[string]image.Image{
		"hero.png":   solidImage(32, color.RGBA{0, 0, 255, 255}),
		"goblin.png": solidImage(32, color.RGBA{0, 255, 0, 255}),
		"sword.png":  solidImage(32, color.RGBA{200, 200, 200, 255}),
	}}

	l, err := NewLoader(src, testManifest(), 2)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	l.Start()
	waitSettled(t, l)

	if got := l.Progress(); got != 1 {
		t.Errorf("Expected progress 1.0, got %g", got)
	}

	loaded, failed := l.Counts()
	if loaded != 3 || failed != 0 {
		t.Errorf("Expected 3 loaded / 0 failed, got %d / %d", loaded, failed)
	}

	img, real := l.Image("goblin")
	if img == nil || !real {
		t.Fatalf("Expected real goblin image, got %v (real=%v)", img, real)
	}
}

func TestLoaderFallsBackPerAsset(t *testing.T) {
	// Only the hero asset exists; the other two must fall back without
	// failing the preload.
	src := fakeSource{images: map[string]image.Image{
		"hero.png": solidImage(32, color.RGBA{0, 0, 255, 255}),
	}}

	l, err := NewLoader(src, testManifest(), 2)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	l.Start()
	waitSettled(t, l)

	loaded, failed := l.Counts()
	if loaded != 1 || failed != 2 {
		t.Errorf("Expected 1 loaded / 2 failed, got %d / %d", loaded, failed)
	}
	if got := l.Progress(); got != 1 {
		t.Errorf("Expected progress 1.0 after fallback, got %g", got)
	}

	for _, name := range []string{"hero", "goblin", "sword"} {
		img, _ := l.Image(name)
		if img == nil {
			t.Errorf("Entry %s did not settle to an image", name)
		}
	}

	if _, real := l.Image("goblin"); real {
		t.Error("Expected goblin to be marked as fallback")
	}
	if _, real := l.Image("hero"); !real {
		t.Error("Expected hero to be marked as loaded")
	}
}

func TestLoaderNormalizesOversizedImages(t *testing.T) {
	src := fakeSource{images: map[string]image.Image{
		"hero.png":   solidImage(128, color.RGBA{0, 0, 255, 255}),
		"goblin.png": solidImage(32, color.RGBA{0, 255, 0, 255}),
		"sword.png":  solidImage(8, color.RGBA{200, 200, 200, 255}),
	}}

	l, err := NewLoader(src, testManifest(), 2)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	l.Start()
	waitSettled(t, l)

	for _, name := range []string{"hero", "goblin", "sword"} {
		img, _ := l.Image(name)
		b := img.Bounds()
		if b.Dx() != 32 || b.Dy() != 32 {
			t.Errorf("%s: expected 32x32 after normalization, got %dx%d", name, b.Dx(), b.Dy())
		}
	}
}

func TestLoaderNormalizesFallbacks(t *testing.T) {
	// No assets exist and the manifest asks for 16 px sprites; fallback
	// images must be scaled down from their native size like any other.
	m := testManifest()
	m.SpriteSize = 16

	l, err := NewLoader(fakeSource{}, m, 2)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	l.Start()
	waitSettled(t, l)

	for _, name := range []string{"hero", "goblin", "sword"} {
		img, real := l.Image(name)
		if real {
			t.Errorf("%s: expected fallback, got real asset", name)
		}
		b := img.Bounds()
		if b.Dx() != 16 || b.Dy() != 16 {
			t.Errorf("%s: expected 16x16 fallback, got %dx%d", name, b.Dx(), b.Dy())
		}
	}
}

func TestLoaderUnknownName(t *testing.T) {
	l, err := NewLoader(fakeSource{}, testManifest(), 1)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	l.Start()
	waitSettled(t, l)

	if img, _ := l.Image("balrog"); img != nil {
		t.Error("Expected nil image for name outside the manifest")
	}
}

func TestLoaderEmptyManifest(t *testing.T) {
	m := &Manifest{Name: "empty", SpriteSize: 32}

	l, err := NewLoader(fakeSource{}, m, 1)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}

	if got := l.Progress(); got != 1 {
		t.Errorf("Empty manifest should report progress 1.0, got %g", got)
	}

	l.Start()
	waitSettled(t, l)
}

func TestLoaderRejectsInvalidManifest(t *testing.T) {
	m := &Manifest{SpriteSize: 0}
	if _, err := NewLoader(fakeSource{}, m, 1); err == nil {
		t.Error("Expected error for invalid manifest")
	}
}

func TestWaitHonorsContext(t *testing.T) {
	// Loader is never started, so only the context can end the wait.
	l, err := NewLoader(fakeSource{}, testManifest(), 1)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Wait(ctx); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
