// Package ebiten implements the render interfaces on top of Ebitengine.
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mirefall.dev/mirefall/internal/render"
)

// Renderer implements render.Renderer using Ebiten.
type Renderer struct{}

// init sets up the global functions for the ebiten backend.
func init() {
	render.NewGeoM = func() render.GeoM {
		return NewGeoM()
	}
}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &Renderer{}
}

// NewImage creates a new image with the given dimensions.
func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{img: ebiten.NewImage(width, height)}
}

// NewImageFromImage uploads a CPU image (e.g. a decoded PNG or a procedural
// fallback) into a renderable image.
func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	return &Image{img: ebiten.NewImageFromImage(src)}
}

// FillCircle draws a filled circle on the destination image.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(dst.(*Image).img, x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the destination image.
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	vector.StrokeCircle(dst.(*Image).img, x, y, radius, strokeWidth, clr, true)
}

// FillRect draws a filled rectangle on the destination image.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(dst.(*Image).img, x, y, width, height, clr, false)
}

// StrokeRect draws a rectangle outline on the destination image.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(dst.(*Image).img, x, y, width, height, strokeWidth, clr, false)
}

// DrawText draws text on the destination image using the debug font.
func (r *Renderer) DrawText(dst render.Image, str string, x, y int) {
	ebitenutil.DebugPrintAt(dst.(*Image).img, str, x, y)
}

// MeasureText measures text drawn with the debug font, whose glyphs are
// 6x16 pixels.
func (r *Renderer) MeasureText(str string) (width, height int) {
	return len(str) * 6, 16
}

// Image wraps an ebiten.Image to implement the render.Image interface.
type Image struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *Image) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *Image) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// SubImage returns a sub-image of the image.
func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{img: i.img.SubImage(r).(*ebiten.Image)}
}

// Fill fills the entire image with the given color.
func (i *Image) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *Image) Clear() {
	i.img.Clear()
}

// Dispose releases the image resources.
func (i *Image) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// DrawImage draws the source image onto this image.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := src.(*Image).img

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	if opts.GeoM != nil {
		ebitenOpts.GeoM = opts.GeoM.(*GeoM).geoM
	}

	i.img.DrawImage(srcImg, ebitenOpts)
}

// GeoM wraps ebiten's GeoM to implement the render.GeoM interface.
type GeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM creates a new geometric transformation matrix.
func NewGeoM() render.GeoM {
	return &GeoM{geoM: ebiten.GeoM{}}
}

// Translate shifts the image by (tx, ty).
func (g *GeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// Scale scales the image by (sx, sy).
func (g *GeoM) Scale(sx, sy float64) {
	g.geoM.Scale(sx, sy)
}

// Rotate rotates the image by the given angle in radians.
func (g *GeoM) Rotate(angle float64) {
	g.geoM.Rotate(angle)
}

// Reset resets the matrix to identity.
func (g *GeoM) Reset() {
	g.geoM.Reset()
}

// InputManager implements the render.InputManager interface using Ebiten.
type InputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &InputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(keyToEbitenKey(key))
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyW:
		return ebiten.KeyW
	case render.KeyA:
		return ebiten.KeyA
	case render.KeyS:
		return ebiten.KeyS
	case render.KeyD:
		return ebiten.KeyD
	case render.Key1:
		return ebiten.KeyDigit1
	case render.Key2:
		return ebiten.KeyDigit2
	case render.Key3:
		return ebiten.KeyDigit3
	case render.Key4:
		return ebiten.KeyDigit4
	case render.Key5:
		return ebiten.KeyDigit5
	case render.Key6:
		return ebiten.KeyDigit6
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		// KeyMax is never reported as pressed for the keys the game
		// polls, so an unmapped key stays inert instead of aliasing A.
		return ebiten.KeyMax
	}
}

// Engine implements the render.Engine interface using Ebiten.
type Engine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &Engine{}
}

// SetWindowSize sets the window size in pixels.
func (e *Engine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// RunGame runs the game loop with the provided game.
func (e *Engine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&Image{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
