// Package core provides fundamental types and utilities shared by the engine
// and the platform layer. It contains no Bubble Tea dependency so game logic
// stays pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Vec is a 2D vector in scene units. Y grows downward.
type Vec = mgl64.Vec2

// V builds a Vec from its components.
func V(x, y float64) Vec {
	return Vec{x, y}
}

// Rect is an axis-aligned bounding box in scene units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a w x h rectangle centered on c.
func RectAround(c Vec, w, h float64) Rect {
	return Rect{X: c.X() - w/2, Y: c.Y() - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if p is inside this rectangle (right/bottom exclusive).
func (r Rect) Contains(p Vec) bool {
	return p.X() >= r.X && p.X() < r.Right() && p.Y() >= r.Y && p.Y() < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Inset shrinks the rectangle by the given margins.
func (r Rect) Inset(top, left, bottom, right float64) Rect {
	return Rect{
		X: r.X + left,
		Y: r.Y + top,
		W: r.W - left - right,
		H: r.H - top - bottom,
	}
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
