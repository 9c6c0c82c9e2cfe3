package fallback

import (
	"image"

	"mirefall.dev/mirefall/sprite"
)

var monsterRoutines = map[string]func() *image.RGBA{
	"goblin":   CreateGoblin,
	"skeleton": CreateSkeleton,
	"orc":      CreateOrc,
	"bat":      CreateBat,
	"slime":    CreateSlime,
	"spider":   CreateSpider,
	"wraith":   CreateWraith,
	"troll":    CreateTroll,
	"dragon":   CreateDragon,
}

var weaponRoutines = map[string]func() *image.RGBA{
	"sword":  CreateSword,
	"axe":    CreateAxe,
	"bow":    CreateBow,
	"staff":  CreateStaff,
	"dagger": CreateDagger,
	"shield": CreateShield,
}

// ForDescriptor returns the procedural stand-in for a sprite. Descriptors
// without a routine get the missing-asset checker so the gap is visible on
// screen instead of silently blank.
func ForDescriptor(d sprite.Descriptor) *image.RGBA {
	switch d.Kind {
	case sprite.KindHero:
		return CreateHero()
	case sprite.KindMonster:
		if fn, ok := monsterRoutines[d.Name]; ok {
			return fn()
		}
	case sprite.KindWeapon:
		if fn, ok := weaponRoutines[d.Name]; ok {
			return fn()
		}
	}
	return CreateMissing()
}

// CreateMissing draws the magenta/black checker used for unknown sprites.
func CreateMissing() *image.RGBA {
	img := NewBlank()
	half := SpriteSize / 2
	FillRect(img, 0, 0, half, half, Palette.Missing1)
	FillRect(img, half, half, SpriteSize, SpriteSize, Palette.Missing1)
	FillRect(img, half, 0, SpriteSize, half, Palette.Missing2)
	FillRect(img, 0, half, half, SpriteSize, Palette.Missing2)
	return img
}
