package fallback

import "image"

// Weapon icons are drawn at the same size as character sprites and lean on
// diagonal composition so they read as icons in the hotbar.

// CreateSword draws a diagonal blade with a crossguard.
func CreateSword() *image.RGBA {
	img := NewBlank()

	// Blade from lower-left to upper-right, three pixels thick
	for off := -1; off <= 1; off++ {
		Line(img, 8+off, 24, 24+off, 8, Palette.Blade)
	}
	// Tip
	FillTriangle(img, 23, 5, 27, 9, 22, 10, Palette.Blade)
	// Crossguard perpendicular to the blade
	Line(img, 6, 20, 13, 27, Palette.ShieldBoss)
	Line(img, 6, 21, 12, 27, Palette.ShieldBoss)
	// Grip
	Line(img, 7, 25, 4, 28, Palette.WoodHandle)
	Line(img, 8, 26, 5, 29, Palette.WoodHandle)

	return img
}

// CreateAxe draws a haft with a single broad cheek.
func CreateAxe() *image.RGBA {
	img := NewBlank()

	// Haft
	for off := 0; off <= 1; off++ {
		Line(img, 6+off, 27, 22+off, 7, Palette.WoodHandle)
	}
	// Axe head hangs off the top of the haft
	FillTriangle(img, 20, 4, 29, 13, 17, 14, Palette.Blade)
	Line(img, 29, 13, 26, 17, Darken(Palette.Blade, 0.6))

	return img
}

// CreateBow draws a curved stave with a taut string and nocked arrow.
func CreateBow() *image.RGBA {
	img := NewBlank()

	// Stave approximated with three segments
	Line(img, 9, 4, 5, 12, Palette.WoodHandle)
	Line(img, 5, 12, 5, 20, Palette.WoodHandle)
	Line(img, 5, 20, 9, 28, Palette.WoodHandle)
	// String
	Line(img, 9, 4, 9, 28, Palette.BowString)
	// Arrow
	Line(img, 9, 16, 26, 16, Palette.WoodHandle)
	FillTriangle(img, 26, 13, 26, 19, 30, 16, Palette.Blade)
	Line(img, 9, 16, 12, 13, Palette.BowString)
	Line(img, 9, 16, 12, 19, Palette.BowString)

	return img
}

// CreateStaff draws a straight staff topped with a violet gem.
func CreateStaff() *image.RGBA {
	img := NewBlank()

	// Shaft
	for off := 0; off <= 1; off++ {
		Line(img, 10+off, 29, 20+off, 9, Palette.WoodHandle)
	}
	// Gem and its setting
	FillCircle(img, 22, 7, 4, Palette.StaffGem, Darken(Palette.StaffGem, 0.5))
	img.SetRGBA(21, 6, Lighten(Palette.StaffGem, 0.6))

	return img
}

// CreateDagger draws a short blade, mostly grip.
func CreateDagger() *image.RGBA {
	img := NewBlank()

	// Short blade
	for off := -1; off <= 0; off++ {
		Line(img, 14+off, 18, 22+off, 8, Palette.Blade)
	}
	FillTriangle(img, 21, 5, 24, 9, 20, 10, Palette.Blade)
	// Guard
	Line(img, 11, 16, 17, 21, Palette.ShieldBoss)
	// Grip with wrapping marks
	Line(img, 13, 20, 8, 26, Palette.WoodHandle)
	Line(img, 14, 21, 9, 27, Palette.WoodHandle)
	img.SetRGBA(11, 23, Darken(Palette.WoodHandle, 0.5))

	return img
}

// CreateShield draws a kite shield with a brass boss.
func CreateShield() *image.RGBA {
	img := NewBlank()

	// Upper body
	FillRect(img, 7, 5, 25, 17, Palette.ShieldFace)
	// Tapered lower half
	FillTriangle(img, 7, 17, 25, 17, 16, 29, Palette.ShieldFace)
	// Rim
	Line(img, 7, 5, 25, 5, Lighten(Palette.ShieldFace, 0.4))
	Line(img, 7, 5, 7, 17, Lighten(Palette.ShieldFace, 0.4))
	Line(img, 25, 5, 25, 17, Darken(Palette.ShieldFace, 0.6))
	// Boss
	FillCircle(img, 16, 13, 3, Palette.ShieldBoss, Darken(Palette.ShieldBoss, 0.5))

	return img
}
