// Package core holds the platform-neutral types shared by games and front
// ends: the screen buffer, input actions and runtime configuration. It does
// not import Bubble Tea.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterIn returns a w by h rectangle centered inside r.
func (r Rect) CenterIn(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Wrap maps val into [0, n), wrapping negative values around.
func Wrap(val, n int) int {
	return ((val % n) + n) % n
}
