// Package core provides fundamental types and utilities for the asteroids simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vector is a 2D point or displacement in world coordinates.
// Operations never mutate the receiver.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mult scales v by s.
func (v Vector) Mult(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// SetMagnitude returns v rescaled to length m.
// The zero vector has no direction and is returned unchanged.
func (v Vector) SetMagnitude(m float64) Vector {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector{}
	}
	return v.Mult(m / mag)
}

// Limit caps the length of v at max.
func (v Vector) Limit(max float64) Vector {
	if v.Magnitude() > max {
		return v.SetMagnitude(max)
	}
	return v
}

// DistanceTo returns the distance between two points.
func (v Vector) DistanceTo(o Vector) float64 {
	return o.Sub(v).Magnitude()
}

// Polar converts v to polar form. Theta is atan2(y, x).
func (v Vector) Polar() PolarCoordinate {
	return PolarCoordinate{Theta: math.Atan2(v.Y, v.X), Radius: v.Magnitude()}
}

// PolarCoordinate is an angle in radians (not normalized) and a radius.
type PolarCoordinate struct {
	Theta  float64 `json:"theta" yaml:"theta"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// Polar is shorthand for PolarCoordinate{Theta: theta, Radius: r}.
func Polar(theta, r float64) PolarCoordinate {
	return PolarCoordinate{Theta: theta, Radius: r}
}

// Cartesian converts p to a vector relative to the origin.
func (p PolarCoordinate) Cartesian() Vector {
	return Vector{X: p.Radius * math.Cos(p.Theta), Y: p.Radius * math.Sin(p.Theta)}
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
