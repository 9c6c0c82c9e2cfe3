package fallback

import (
	"image"
	"image/color"
	"image/draw"

	"mirefall.dev/mirefall/sprite"
)

// BuildSheet packs sprites into a single sheet, left to right, top to bottom.
func BuildSheet(sprites []*image.RGBA, columns int) *image.RGBA {
	count := len(sprites)
	rows := (count + columns - 1) / columns

	sheet := image.NewRGBA(image.Rect(0, 0, columns*SpriteSize, rows*SpriteSize))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{color.RGBA{}}, image.Point{}, draw.Src)

	for i, spr := range sprites {
		if spr == nil {
			continue
		}
		x := (i % columns) * SpriteSize
		y := (i / columns) * SpriteSize
		dst := image.Rect(x, y, x+SpriteSize, y+SpriteSize)
		draw.Draw(sheet, dst, spr, image.Point{}, draw.Src)
	}

	return sheet
}

// BuildMonsterSheet renders the whole monster roster onto one sheet, three
// columns wide, in roster order.
func BuildMonsterSheet() *image.RGBA {
	sprites := make([]*image.RGBA, 0, len(sprite.MonsterNames))
	for _, name := range sprite.MonsterNames {
		sprites = append(sprites, ForDescriptor(sprite.Descriptor{Name: name, Kind: sprite.KindMonster}))
	}
	return BuildSheet(sprites, 3)
}

// BuildWeaponSheet renders all weapon icons onto one sheet, one row.
func BuildWeaponSheet() *image.RGBA {
	sprites := make([]*image.RGBA, 0, len(sprite.WeaponNames))
	for _, name := range sprite.WeaponNames {
		sprites = append(sprites, ForDescriptor(sprite.Descriptor{Name: name, Kind: sprite.KindWeapon}))
	}
	return BuildSheet(sprites, len(sprite.WeaponNames))
}
