package fallback

import (
	"image"
	"image/color"
	"testing"

	"mirefall.dev/mirefall/sprite"
)

func opaquePixels(img *image.RGBA) int {
	count := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				count++
			}
		}
	}
	return count
}

func TestEveryRosterSpriteHasFallback(t *testing.T) {
	for _, d := range sprite.Roster("assets") {
		img := ForDescriptor(d)
		if img == nil {
			t.Fatalf("ForDescriptor(%s) returned nil", d.Name)
		}

		b := img.Bounds()
		if b.Dx() != SpriteSize || b.Dy() != SpriteSize {
			t.Errorf("%s: expected %dx%d sprite, got %dx%d", d.Name, SpriteSize, SpriteSize, b.Dx(), b.Dy())
		}

		// A stand-in that draws nothing is as bad as a missing asset.
		if n := opaquePixels(img); n < 20 {
			t.Errorf("%s: fallback draws only %d pixels", d.Name, n)
		}
	}
}

func TestUnknownDescriptorGetsMissingChecker(t *testing.T) {
	img := ForDescriptor(sprite.Descriptor{Name: "balrog", Kind: sprite.KindMonster})

	// Top-left quadrant of the checker is magenta.
	if got := img.RGBAAt(2, 2); got != Palette.Missing1 {
		t.Errorf("Expected missing checker color %v at (2,2), got %v", Palette.Missing1, got)
	}
	if got := img.RGBAAt(SpriteSize-2, 2); got != Palette.Missing2 {
		t.Errorf("Expected missing checker color %v at top-right, got %v", Palette.Missing2, got)
	}
}

func TestMonstersAreDistinct(t *testing.T) {
	// Body colors differ per type, so two monster sprites should never be
	// pixel-identical.
	imgs := make(map[string]*image.RGBA)
	for _, name := range sprite.MonsterNames {
		imgs[name] = ForDescriptor(sprite.Descriptor{Name: name, Kind: sprite.KindMonster})
	}

	names := sprite.MonsterNames
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, b := imgs[names[i]], imgs[names[j]]
			same := true
			for k := range a.Pix {
				if a.Pix[k] != b.Pix[k] {
					same = false
					break
				}
			}
			if same {
				t.Errorf("Sprites for %s and %s are identical", names[i], names[j])
			}
		}
	}
}

func TestBuildSheetDimensions(t *testing.T) {
	sheet := BuildSheet([]*image.RGBA{CreateGoblin(), CreateOrc(), nil, CreateBat(), CreateSlime()}, 3)

	b := sheet.Bounds()
	if b.Dx() != 3*SpriteSize {
		t.Errorf("Expected sheet width %d, got %d", 3*SpriteSize, b.Dx())
	}
	if b.Dy() != 2*SpriteSize {
		t.Errorf("Expected sheet height %d, got %d", 2*SpriteSize, b.Dy())
	}
}

func TestBuildMonsterSheetCoversRoster(t *testing.T) {
	sheet := BuildMonsterSheet()

	rows := (len(sprite.MonsterNames) + 2) / 3
	if got := sheet.Bounds().Dy(); got != rows*SpriteSize {
		t.Errorf("Expected %d rows, got height %d", rows, got)
	}
}

func TestPrimitivesClipOutOfBounds(t *testing.T) {
	img := NewBlank()

	// None of these should panic.
	Line(img, -10, -10, SpriteSize+10, SpriteSize+10, Palette.Outline)
	FillCircle(img, 0, 0, SpriteSize, Palette.GoblinSkin, Palette.Outline)
	FillRect(img, -5, -5, SpriteSize+5, 5, Palette.Blade)
	FillTriangle(img, -8, 40, 40, -8, 30, 30, Palette.TrollHide)

	if opaquePixels(img) == 0 {
		t.Error("Expected clipped draws to still touch the canvas")
	}
}

func TestDarkenLighten(t *testing.T) {
	base := color.RGBA{100, 100, 100, 255}

	d := Darken(base, 0.5)
	if d.R != 50 || d.G != 50 || d.B != 50 || d.A != 255 {
		t.Errorf("Darken(0.5) = %v", d)
	}

	l := Lighten(base, 0.5)
	if l.R != 177 || l.A != 255 {
		t.Errorf("Lighten(0.5) = %v", l)
	}
}
