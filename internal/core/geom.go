// Package core provides fundamental types and utilities shared by the engine,
// the games and the terminal host. It has no external dependencies so the
// simulation stays pure and testable.
package core

import "math"

// Vec is a point or displacement in field-local units (pixels or grid cells).
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Near reports whether a and b are within tol of each other on both axes.
// This is the center-distance overlap test the shooters use.
func Near(a, b Vec, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

// Crossed reports whether a coordinate moving from prev to cur crossed
// threshold during the step, in either direction. A value resting exactly
// on the threshold counts once: on the step that reached it.
func Crossed(prev, cur, threshold float64) bool {
	return (prev > threshold && cur <= threshold) || (prev < threshold && cur >= threshold)
}

// Rect represents an integer axis-aligned box on the terminal grid.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is a floating point axis-aligned box described by its center and size.
type Box struct {
	Center Vec
	Size   Vec
}

// BoxAt builds a box centered on c.
func BoxAt(c, size Vec) Box {
	return Box{Center: c, Size: size}
}

// Min returns the top-left corner.
func (b Box) Min() Vec {
	return Vec{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

// Max returns the bottom-right corner.
func (b Box) Max() Vec {
	return Vec{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// Overlaps reports strict overlap; boxes that only touch do not overlap.
func (b Box) Overlaps(o Box) bool {
	bmin, bmax := b.Min(), b.Max()
	omin, omax := o.Min(), o.Max()
	if bmin.X >= omax.X || omin.X >= bmax.X {
		return false
	}
	if bmin.Y >= omax.Y || omin.Y >= bmax.Y {
		return false
	}
	return true
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
