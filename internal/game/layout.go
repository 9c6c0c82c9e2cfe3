package game

import "math"

// Point is a screen position.
type Point struct {
	X float64
	Y float64
}

// Rect is a screen rectangle.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// monsterPositions arranges n monsters in a ring around the screen center.
// Index 0 starts at the top and the ring proceeds clockwise, so roster order
// maps to a stable layout.
func monsterPositions(screenW, screenH float64, n int) []Point {
	out := make([]Point, n)
	if n == 0 {
		return out
	}

	cx := screenW / 2
	cy := screenH / 2
	radius := math.Min(screenW, screenH) * 0.35

	for i := 0; i < n; i++ {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		out[i] = Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}
	return out
}

// weaponSlotRect returns the hotbar slot i of n, centered along the bottom
// edge. slot is the square slot edge length including padding.
func weaponSlotRect(screenW, screenH float64, i, n int, slot float64) Rect {
	const margin = 8
	barW := float64(n) * slot
	x0 := (screenW - barW) / 2
	return Rect{
		X: x0 + float64(i)*slot,
		Y: screenH - slot - margin,
		W: slot,
		H: slot,
	}
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
