package fallback

import "image"

// CreateHero draws the player stand-in: helmed head, blue tunic, and a
// short cape edge so the hero reads differently from every monster.
func CreateHero() *image.RGBA {
	img := NewBlank()

	// Head with helm
	FillCircle(img, 16, 9, 6, Palette.HeroSkin, Palette.Outline)
	FillRect(img, 10, 3, 22, 8, Palette.HeroVisor)
	Line(img, 10, 8, 22, 8, Darken(Palette.HeroVisor, 0.6))
	// Tunic
	FillRect(img, 10, 15, 22, 27, Palette.HeroTunic)
	// Cape edge behind the left shoulder
	FillTriangle(img, 8, 15, 10, 15, 8, 27, Darken(Palette.HeroTunic, 0.5))
	// Belt
	FillRect(img, 10, 22, 22, 24, Palette.WoodHandle)
	// Legs
	FillRect(img, 11, 27, 15, 31, Darken(Palette.HeroTunic, 0.6))
	FillRect(img, 17, 27, 21, 31, Darken(Palette.HeroTunic, 0.6))
	// Eyes
	FillRect(img, 13, 10, 15, 12, Palette.Outline)
	FillRect(img, 17, 10, 19, 12, Palette.Outline)

	return img
}
