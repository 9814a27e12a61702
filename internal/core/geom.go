// Package core provides fundamental types and utilities for the shooter.
// It contains no Bubble Tea dependency to keep the simulation pure and testable.
package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec2 is a 2D vector in arena units.
type Vec2 struct {
	X, Y float64
}

// V creates a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v.
// The second result is false for a zero (or non-finite) vector.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Floor rounds both components down to whole units.
func (v Vec2) Floor() Vec2 {
	return Vec2{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// Heading returns the unit vector for an angle where 0 points up (screen -Y)
// and the angle grows toward +X.
func Heading(rotation float64) Vec2 {
	return Vec2{X: math.Sin(rotation), Y: -math.Cos(rotation)}
}

// HeadingTo returns the rotation that points from `from` toward `to`,
// using the same convention as Heading.
func HeadingTo(from, to Vec2) float64 {
	return math.Atan2(to.X-from.X, -(to.Y - from.Y))
}

// Rect represents an axis-aligned bounding box in arena units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.W, Y: r.H}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Offset returns the rectangle moved by d.
func (r Rect) Offset(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// FullyOutside reports whether the rectangle lies entirely outside the
// area [0, w] x [0, h]. Touching an edge does not count as outside.
func (r Rect) FullyOutside(w, h float64) bool {
	return r.X > w || r.X < -r.W || r.Y > h || r.Y < -r.H
}

// ClampInside keeps the rectangle within [0, w] x [0, h], accounting for its
// own size. A rectangle larger than the area is pinned to the origin.
func (r Rect) ClampInside(w, h float64) Rect {
	r.X = Clamp(r.X, 0, math.Max(0, w-r.W))
	r.Y = Clamp(r.Y, 0, math.Max(0, h-r.H))
	return r
}

// Clamp restricts a value to be within [min, max].
func Clamp[T constraints.Ordered](val, min, max T) T {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
