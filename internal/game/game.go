// Package game is the Mirefall shell: it shows a loading screen while the
// preloader runs, then draws the scene (monster ring, hero, weapon hotbar)
// and handles movement and weapon selection.
package game

import (
	"mirefall.dev/mirefall/config"
	"mirefall.dev/mirefall/internal/render"
	"mirefall.dev/mirefall/preload"
	"mirefall.dev/mirefall/sprite"
)

// Player is the hero's position and movement speed.
type Player struct {
	Pos   Point
	Speed float64
}

// Game implements render.Game.
type Game struct {
	cfg      config.Config
	renderer render.Renderer
	input    render.InputManager
	loader   *preload.Loader
	bank     *SpriteBank

	player   Player
	selected int // index into sprite.WeaponNames
	spots    []Point
}

// New creates the game shell. The loader should already be started; the
// loading screen shows until it finishes.
func New(cfg config.Config, renderer render.Renderer, input render.InputManager, loader *preload.Loader) *Game {
	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)

	return &Game{
		cfg:      cfg,
		renderer: renderer,
		input:    input,
		loader:   loader,
		bank:     NewSpriteBank(renderer, loader),
		player: Player{
			Pos:   Point{X: w / 2, Y: h / 2},
			Speed: 3.0,
		},
		spots: monsterPositions(w, h, len(sprite.MonsterNames)),
	}
}

// loading reports whether the preloader is still running.
func (g *Game) loading() bool {
	select {
	case <-g.loader.Done():
		return false
	default:
		return true
	}
}

// Update handles input. Nothing moves while the loading screen is up.
func (g *Game) Update() error {
	if g.loading() {
		return nil
	}

	// WASD movement
	moveSpeed := g.player.Speed

	if g.input.IsKeyPressed(render.KeyW) {
		g.player.Pos.Y -= moveSpeed
	}
	if g.input.IsKeyPressed(render.KeyS) {
		g.player.Pos.Y += moveSpeed
	}
	if g.input.IsKeyPressed(render.KeyA) {
		g.player.Pos.X -= moveSpeed
	}
	if g.input.IsKeyPressed(render.KeyD) {
		g.player.Pos.X += moveSpeed
	}

	// Keep player in bounds
	g.player.Pos.X = clamp(g.player.Pos.X, 0, float64(g.cfg.Window.Width))
	g.player.Pos.Y = clamp(g.player.Pos.Y, 0, float64(g.cfg.Window.Height))

	// Digit keys select a weapon
	digits := []render.Key{render.Key1, render.Key2, render.Key3, render.Key4, render.Key5, render.Key6}
	for i, key := range digits {
		if i >= len(sprite.WeaponNames) {
			break
		}
		if g.input.IsKeyJustPressed(key) {
			g.selected = i
		}
	}

	return nil
}

// Draw renders either the loading screen or the scene.
func (g *Game) Draw(screen render.Image) {
	if g.loading() {
		g.drawLoading(screen)
		return
	}
	g.drawScene(screen)
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
