// Package core provides fundamental types and utilities for the asteroids game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Heading returns the unit vector for an angle in radians.
// Angle 0 points up (negative y) and angles grow clockwise on screen.
func Heading(angle float64) Vec2 {
	return Vec2{X: math.Sin(angle), Y: -math.Cos(angle)}
}

// DistSq returns the squared Euclidean distance between a and b.
func DistSq(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Wrap applies toroidal wraparound to a single coordinate over the range
// [-margin, bound+margin]. A value past either end re-enters just beyond the
// opposite end, so a shape of half-extent margin leaves one edge fully before
// it appears at the other.
func Wrap(v, bound, margin float64) float64 {
	span := bound + 2*margin
	if v > bound+margin {
		v -= span
	} else if v < -margin {
		v += span
	}
	return v
}

// Bounds is the size of the world in world units.
type Bounds struct {
	Width, Height float64
}

// Valid reports whether both dimensions are positive.
func (b Bounds) Valid() bool {
	return b.Width > 0 && b.Height > 0
}

// Center returns the midpoint of the world.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.Width / 2, Y: b.Height / 2}
}

// Contains reports whether p lies inside [0, Width] x [0, Height], edges included.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Viewport reports the live size of whatever the world is drawn onto.
// Implementations must return the current size on every call, not a cached one.
type Viewport interface {
	Size() (width, height float64)
}

// FixedViewport is a Viewport with constant dimensions.
type FixedViewport Bounds

// Size implements Viewport.
func (f FixedViewport) Size() (float64, float64) {
	return f.Width, f.Height
}

// Rect represents an axis-aligned box in screen cells.
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
