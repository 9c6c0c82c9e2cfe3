package fallback

import "image/color"

// Palette defines the colors the fallback sprites are built from.
var Palette = struct {
	// Hero
	HeroTunic color.RGBA
	HeroSkin  color.RGBA
	HeroVisor color.RGBA

	// Monsters - each type gets a distinct body color
	GoblinSkin   color.RGBA
	SkeletonBone color.RGBA
	OrcSkin      color.RGBA
	BatWing      color.RGBA
	SlimeBody    color.RGBA
	SpiderBody   color.RGBA
	WraithShroud color.RGBA
	TrollHide    color.RGBA
	DragonScale  color.RGBA
	DragonBelly  color.RGBA

	// Weapons
	Blade      color.RGBA
	WoodHandle color.RGBA
	BowString  color.RGBA
	StaffGem   color.RGBA
	ShieldFace color.RGBA
	ShieldBoss color.RGBA

	// Shared details
	Eye      color.RGBA
	EyeEvil  color.RGBA
	Outline  color.RGBA
	Missing1 color.RGBA
	Missing2 color.RGBA
}{
	// Hero - warm, friendly colors
	HeroTunic: color.RGBA{60, 120, 200, 255},  // Blue tunic
	HeroSkin:  color.RGBA{235, 190, 150, 255}, // Skin tone
	HeroVisor: color.RGBA{210, 215, 225, 255}, // Steel helm

	// Monsters - bright and easy to tell apart
	GoblinSkin:   color.RGBA{90, 170, 60, 255},   // Green
	SkeletonBone: color.RGBA{225, 220, 200, 255}, // Bone white
	OrcSkin:      color.RGBA{110, 130, 50, 255},  // Olive
	BatWing:      color.RGBA{90, 70, 110, 255},   // Dusky purple
	SlimeBody:    color.RGBA{80, 200, 170, 180},  // Translucent teal
	SpiderBody:   color.RGBA{45, 40, 40, 255},    // Near black
	WraithShroud: color.RGBA{150, 160, 200, 160}, // Pale ghost blue
	TrollHide:    color.RGBA{130, 100, 80, 255},  // Muddy brown
	DragonScale:  color.RGBA{180, 50, 50, 255},   // Red
	DragonBelly:  color.RGBA{220, 170, 90, 255},  // Gold

	// Weapons
	Blade:      color.RGBA{200, 205, 215, 255}, // Polished steel
	WoodHandle: color.RGBA{130, 90, 50, 255},   // Brown
	BowString:  color.RGBA{230, 230, 210, 255}, // Off white
	StaffGem:   color.RGBA{120, 80, 220, 255},  // Violet
	ShieldFace: color.RGBA{70, 100, 160, 255},  // Blue
	ShieldBoss: color.RGBA{200, 180, 80, 255},  // Brass

	// Shared details
	Eye:      color.RGBA{250, 250, 250, 255},
	EyeEvil:  color.RGBA{255, 60, 40, 255},
	Outline:  color.RGBA{25, 22, 28, 255},
	Missing1: color.RGBA{230, 0, 230, 255}, // Magenta checker
	Missing2: color.RGBA{20, 20, 20, 255},  // Black checker
}
