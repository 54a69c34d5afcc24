// Package core provides the shared types for Zukko activities: geometry,
// the screen buffer, input events and the per-mount environment.
// It has no external dependencies (especially no Bubble Tea) so activity
// logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
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

// Empty reports whether the rectangle has no measurable area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// PercentX converts a screen column into a percentage of the rectangle width.
// The second result is false when the rectangle cannot be measured.
func (r Rect) PercentX(x int) (float64, bool) {
	if r.W <= 0 {
		return 0, false
	}
	return float64(x-r.X) / float64(r.W) * 100, true
}

// ColumnAt maps a percentage of the width back to a screen column.
func (r Rect) ColumnAt(pct float64) int {
	return r.X + int(pct/100*float64(r.W))
}

// RowAt maps a percentage of the height to a screen row.
// Values outside [0, 100) land outside the rectangle.
func (r Rect) RowAt(pct float64) int {
	return r.Y + int(math.Floor(pct/100*float64(r.H)))
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
