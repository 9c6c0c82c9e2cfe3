package game

import (
	"fmt"
	"image/color"

	"mirefall.dev/mirefall/internal/render"
	"mirefall.dev/mirefall/sprite"
)

var (
	floorColor    = color.RGBA{38, 34, 44, 255}
	barBack       = color.RGBA{60, 60, 70, 255}
	barFill       = color.RGBA{90, 180, 120, 255}
	barEdge       = color.RGBA{200, 200, 210, 255}
	slotBack      = color.RGBA{30, 28, 36, 200}
	slotHighlight = color.RGBA{240, 210, 90, 255}
)

// drawLoading renders the preload progress bar and counters.
func (g *Game) drawLoading(screen render.Image) {
	screen.Fill(floorColor)

	w := float64(g.cfg.Window.Width)
	h := float64(g.cfg.Window.Height)

	barW := w * 0.6
	barH := 18.0
	x := (w - barW) / 2
	y := h / 2

	progress := g.loader.Progress()

	g.renderer.FillRect(screen, float32(x), float32(y), float32(barW), float32(barH), barBack)
	g.renderer.FillRect(screen, float32(x), float32(y), float32(barW*progress), float32(barH), barFill)
	g.renderer.StrokeRect(screen, float32(x), float32(y), float32(barW), float32(barH), 2, barEdge)

	loaded, failed := g.loader.Counts()
	label := fmt.Sprintf("Loading sprites... %d%% (%d/%d", int(progress*100), loaded+failed, g.loader.Total())
	if failed > 0 {
		label += fmt.Sprintf(", %d fallback", failed)
	}
	label += ")"
	labelW, labelH := g.renderer.MeasureText(label)
	g.renderer.DrawText(screen, label, int(x+(barW-float64(labelW))/2), int(y)-labelH-4)
}

// drawScene renders the monster ring, the hero, and the weapon hotbar.
func (g *Game) drawScene(screen render.Image) {
	screen.Fill(floorColor)

	scale := g.cfg.Sprites.Scale
	size := float64(g.cfg.Sprites.Size) * scale

	// Monsters in roster order around the ring
	for i, name := range sprite.MonsterNames {
		if i >= len(g.spots) {
			break
		}
		g.drawSprite(screen, name, g.spots[i], scale)
		g.renderer.DrawText(screen, name, int(g.spots[i].X-size/2), int(g.spots[i].Y+size/2)+2)
	}

	// Hero last so it draws over anything it overlaps
	g.drawSprite(screen, sprite.HeroName, g.player.Pos, scale)

	g.drawWeaponBar(screen)
}

// drawSprite draws a bank sprite centered on pos at the given scale.
func (g *Game) drawSprite(screen render.Image, name string, pos Point, scale float64) {
	img := g.bank.Get(name)
	if img == nil {
		return
	}

	w, h := img.Size()
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(pos.X-float64(w)*scale/2, pos.Y-float64(h)*scale/2)
	screen.DrawImage(img, opts)
}

// drawWeaponBar renders the hotbar with the selected slot highlighted.
func (g *Game) drawWeaponBar(screen render.Image) {
	w := float64(g.cfg.Window.Width)
	h := float64(g.cfg.Window.Height)
	slot := float64(g.cfg.Sprites.Size)*g.cfg.Sprites.Scale + 12

	for i, name := range sprite.WeaponNames {
		r := weaponSlotRect(w, h, i, len(sprite.WeaponNames), slot)

		g.renderer.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), slotBack)

		center := Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
		g.drawSprite(screen, name, center, g.cfg.Sprites.Scale)

		if i == g.selected {
			g.renderer.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, slotHighlight)
		} else {
			g.renderer.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, barBack)
		}

		g.renderer.DrawText(screen, fmt.Sprintf("%d", i+1), int(r.X)+3, int(r.Y)+2)
	}
}

// SelectedWeapon returns the name of the highlighted weapon.
func (g *Game) SelectedWeapon() string {
	return sprite.WeaponNames[g.selected]
}
