// Package fallback draws stand-in sprites for assets that failed to load.
// Every sprite the game knows has a procedural routine here, so a missing or
// corrupt PNG degrades to a recognizable shape instead of a blank tile.
package fallback

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// SpriteSize is the standard edge length of a fallback sprite.
const SpriteSize = 32

// NewBlank creates a transparent sprite canvas.
func NewBlank() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
}

// NewSolid creates a sprite filled with a single color.
func NewSolid(col color.RGBA) *image.RGBA {
	img := NewBlank()
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// FillCircle draws a filled circle with a one-pixel outline.
func FillCircle(img *image.RGBA, cx, cy, radius int, fill, outline color.RGBA) {
	for y := cy - radius - 1; y <= cy+radius+1; y++ {
		for x := cx - radius - 1; x <= cx+radius+1; x++ {
			dx := x - cx
			dy := y - cy
			distSq := dx*dx + dy*dy
			if distSq <= radius*radius {
				setClipped(img, x, y, fill)
			} else if distSq <= (radius+1)*(radius+1) {
				setClipped(img, x, y, outline)
			}
		}
	}
}

// FillRect fills the rectangle [x0,x1)x[y0,y1).
func FillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			setClipped(img, x, y, col)
		}
	}
}

// Line draws a one-pixel line between two points.
func Line(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		setClipped(img, x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillTriangle fills the triangle with the given corner points.
func FillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 int, col color.RGBA) {
	minX := min3(x0, x1, x2)
	maxX := max3(x0, x1, x2)
	minY := min3(y0, y1, y2)
	maxY := max3(y0, y1, y2)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			// Same-sign edge functions mean the point is inside.
			d0 := edge(x0, y0, x1, y1, x, y)
			d1 := edge(x1, y1, x2, y2, x, y)
			d2 := edge(x2, y2, x0, y0, x, y)
			hasNeg := d0 < 0 || d1 < 0 || d2 < 0
			hasPos := d0 > 0 || d1 > 0 || d2 > 0
			if !(hasNeg && hasPos) {
				setClipped(img, x, y, col)
			}
		}
	}
}

func edge(ax, ay, bx, by, px, py int) int {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func setClipped(img *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

// SavePNG writes an image to a PNG file.
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color.
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color.
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
