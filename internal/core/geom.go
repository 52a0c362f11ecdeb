// Package core provides fundamental types and utilities for the invaders game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer axis-aligned rectangle in screen cells.
// Used for the start control and for drawing.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is a bounding box with a floating-point position and fixed size.
// Entities move by fractional amounts per frame; the box is what collides.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box at (x, y) with the given size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// Intersects returns true if the boxes overlap.
// Boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Cells converts the box to the screen cells it covers (position truncated
// toward negative infinity).
func (b Box) Cells() Rect {
	return Rect{
		X: int(math.Floor(b.X)),
		Y: int(math.Floor(b.Y)),
		W: int(math.Ceil(b.W)),
		H: int(math.Ceil(b.H)),
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
