// Package core provides fundamental types and utilities for the tower climber.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in world pixels.
// Used for rendering and every collision test.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Body is a rectangle whose position is an authoritative float.
// The integer Rect is derived from the float position on demand, so rounding
// never accumulates across ticks.
type Body struct {
	X, Y float64 // Sub-pixel top-left position
	W, H int     // Size in pixels
}

// NewBody creates a body at the given position.
func NewBody(x, y float64, w, h int) Body {
	return Body{X: x, Y: y, W: w, H: h}
}

// Rect returns the integer bounding box, flooring the float position.
func (b Body) Rect() Rect {
	return Rect{X: int(math.Floor(b.X)), Y: int(math.Floor(b.Y)), W: b.W, H: b.H}
}

// CenterX returns the horizontal center of the integer bounding box.
func (b Body) CenterX() int {
	cx, _ := b.Rect().Center()
	return cx
}

// CenterY returns the vertical center of the integer bounding box.
func (b Body) CenterY() int {
	_, cy := b.Rect().Center()
	return cy
}

// SetLeft places the left edge at x.
func (b *Body) SetLeft(x int) { b.X = float64(x) }

// SetRight places the right edge at x.
func (b *Body) SetRight(x int) { b.X = float64(x - b.W) }

// SetTop places the top edge at y.
func (b *Body) SetTop(y int) { b.Y = float64(y) }

// SetBottom places the bottom edge at y.
func (b *Body) SetBottom(y int) { b.Y = float64(y - b.H) }

// CenterOn places the body so its center is at (x, y).
func (b *Body) CenterOn(x, y int) {
	b.X = float64(x - b.W/2)
	b.Y = float64(y - b.H/2)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
