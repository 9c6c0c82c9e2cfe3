package fallback

import "image"

// Each monster type has its own stand-in routine. These are deliberately
// simple immediate-mode draws: a body shape, a detail or two, and eyes, using
// that type's palette color so monsters stay distinguishable without art.

// CreateGoblin draws a small green round-headed figure with pointed ears.
func CreateGoblin() *image.RGBA {
	img := NewBlank()
	skin := Palette.GoblinSkin

	// Head
	FillCircle(img, 16, 14, 8, skin, Darken(skin, 0.5))
	// Pointed ears
	FillTriangle(img, 8, 12, 3, 6, 10, 8, skin)
	FillTriangle(img, 24, 12, 29, 6, 22, 8, skin)
	// Squat body
	FillRect(img, 11, 21, 21, 29, Darken(skin, 0.8))
	// Eyes
	FillRect(img, 12, 12, 14, 14, Palette.EyeEvil)
	FillRect(img, 18, 12, 20, 14, Palette.EyeEvil)

	return img
}

// CreateSkeleton draws a bone-white skull over a ribcage.
func CreateSkeleton() *image.RGBA {
	img := NewBlank()
	bone := Palette.SkeletonBone

	// Skull
	FillCircle(img, 16, 11, 7, bone, Darken(bone, 0.5))
	// Jaw
	FillRect(img, 12, 16, 20, 19, bone)
	// Eye sockets
	FillRect(img, 12, 9, 15, 12, Palette.Missing2)
	FillRect(img, 17, 9, 20, 12, Palette.Missing2)
	// Spine and ribs
	Line(img, 16, 19, 16, 29, bone)
	for i := 0; i < 3; i++ {
		y := 21 + i*3
		Line(img, 10, y, 22, y, bone)
	}

	return img
}

// CreateOrc draws a heavy olive figure with tusks.
func CreateOrc() *image.RGBA {
	img := NewBlank()
	skin := Palette.OrcSkin

	// Broad head
	FillRect(img, 9, 5, 23, 17, skin)
	Line(img, 9, 5, 23, 5, Darken(skin, 0.5))
	// Tusks poking up from the jaw
	FillTriangle(img, 11, 17, 13, 17, 12, 13, Palette.SkeletonBone)
	FillTriangle(img, 19, 17, 21, 17, 20, 13, Palette.SkeletonBone)
	// Shoulders wider than the head
	FillRect(img, 6, 18, 26, 29, Darken(skin, 0.8))
	// Eyes
	FillRect(img, 11, 8, 14, 10, Palette.EyeEvil)
	FillRect(img, 18, 8, 21, 10, Palette.EyeEvil)

	return img
}

// CreateBat draws a purple body between two swept wings.
func CreateBat() *image.RGBA {
	img := NewBlank()
	wing := Palette.BatWing

	// Wings
	FillTriangle(img, 2, 8, 14, 14, 4, 22, wing)
	FillTriangle(img, 30, 8, 18, 14, 28, 22, wing)
	// Body
	FillCircle(img, 16, 15, 5, Darken(wing, 0.7), Darken(wing, 0.4))
	// Ears
	FillTriangle(img, 13, 11, 15, 11, 14, 7, Darken(wing, 0.7))
	FillTriangle(img, 17, 11, 19, 11, 18, 7, Darken(wing, 0.7))
	// Eyes
	FillRect(img, 13, 14, 15, 15, Palette.EyeEvil)
	FillRect(img, 17, 14, 19, 15, Palette.EyeEvil)

	return img
}

// CreateSlime draws a translucent teal blob with a flat bottom.
func CreateSlime() *image.RGBA {
	img := NewBlank()
	body := Palette.SlimeBody

	// Dome
	FillCircle(img, 16, 19, 10, body, Darken(body, 0.6))
	// Flatten the bottom against the floor line
	FillRect(img, 5, 26, 27, 29, body)
	// Highlight blob
	FillCircle(img, 12, 15, 2, Lighten(body, 0.6), Lighten(body, 0.6))
	// Eyes float inside the body
	FillRect(img, 12, 19, 14, 22, Palette.Missing2)
	FillRect(img, 18, 19, 20, 22, Palette.Missing2)

	return img
}

// CreateSpider draws a dark abdomen with four legs per side.
func CreateSpider() *image.RGBA {
	img := NewBlank()
	body := Palette.SpiderBody

	// Abdomen and head
	FillCircle(img, 16, 18, 7, body, Darken(Palette.TrollHide, 0.6))
	FillCircle(img, 16, 9, 4, body, body)
	// Legs
	for i := 0; i < 4; i++ {
		y := 12 + i*4
		Line(img, 10, 16, 2, y, body)
		Line(img, 22, 16, 30, y, body)
	}
	// Eye cluster
	FillRect(img, 13, 8, 15, 10, Palette.EyeEvil)
	FillRect(img, 17, 8, 19, 10, Palette.EyeEvil)

	return img
}

// CreateWraith draws a pale hooded shroud trailing into nothing.
func CreateWraith() *image.RGBA {
	img := NewBlank()
	shroud := Palette.WraithShroud

	// Hood
	FillCircle(img, 16, 10, 7, shroud, Lighten(shroud, 0.3))
	// Shroud tapers downward
	FillTriangle(img, 8, 12, 24, 12, 16, 30, shroud)
	// Hollow face
	FillCircle(img, 16, 10, 4, Palette.Missing2, Palette.Missing2)
	// Eyes in the hollow
	FillRect(img, 13, 9, 15, 11, Palette.Eye)
	FillRect(img, 17, 9, 19, 11, Palette.Eye)

	return img
}

// CreateTroll draws a hulking brown mass with dangling arms.
func CreateTroll() *image.RGBA {
	img := NewBlank()
	hide := Palette.TrollHide

	// Body fills most of the tile
	FillRect(img, 7, 8, 25, 29, hide)
	Line(img, 7, 8, 25, 8, Darken(hide, 0.5))
	// Small head sunk into the shoulders
	FillCircle(img, 16, 7, 5, Darken(hide, 0.85), Darken(hide, 0.5))
	// Arms hang past the body
	FillRect(img, 3, 12, 7, 27, Darken(hide, 0.7))
	FillRect(img, 25, 12, 29, 27, Darken(hide, 0.7))
	// Eyes
	FillRect(img, 13, 5, 15, 7, Palette.EyeEvil)
	FillRect(img, 17, 5, 19, 7, Palette.EyeEvil)

	return img
}

// CreateDragon draws a red wedge head with horns and a gold belly stripe.
func CreateDragon() *image.RGBA {
	img := NewBlank()
	scale := Palette.DragonScale

	// Wedge-shaped head facing down
	FillTriangle(img, 6, 6, 26, 6, 16, 22, scale)
	// Horns
	Line(img, 8, 6, 5, 1, Darken(scale, 0.6))
	Line(img, 24, 6, 27, 1, Darken(scale, 0.6))
	// Neck and belly stripe
	FillRect(img, 12, 22, 20, 30, scale)
	FillRect(img, 14, 22, 18, 30, Palette.DragonBelly)
	// Slit eyes
	FillRect(img, 11, 9, 14, 11, Palette.EyeEvil)
	FillRect(img, 18, 9, 21, 11, Palette.EyeEvil)
	// Nostril smoke dots
	img.SetRGBA(15, 18, Darken(scale, 0.4))
	img.SetRGBA(17, 18, Darken(scale, 0.4))

	return img
}
