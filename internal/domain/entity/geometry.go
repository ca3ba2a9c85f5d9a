package entity

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in pane container coordinates.
type Point = r2.Vec

// PaneRect is the pane frame: its origin relative to the container and its size.
type PaneRect struct {
	Origin Point
	Size   Point // X is width, Y is height
}

// Box returns the rectangle as min/max corners.
func (r PaneRect) Box() r2.Box {
	return r2.Box{Min: r.Origin, Max: r2.Add(r.Origin, r.Size)}
}

// Center returns the center point of the rectangle.
func (r PaneRect) Center() Point {
	return r2.Add(r.Origin, r2.Scale(0.5, r.Size))
}

// Extent returns the size along the axis of d.
func (r PaneRect) Extent(d Direction) float64 {
	if d.IsVertical() {
		return r.Size.Y
	}
	return r.Size.X
}

// AxisValue returns the component of p along the axis of d.
// Directions without an axis yield 0.
func AxisValue(p Point, d Direction) float64 {
	switch d.Axis() {
	case DirectionHorizontal:
		return p.X
	case DirectionVertical:
		return p.Y
	default:
		return 0
	}
}

// WithAxisValue returns p with its component along the axis of d replaced by v.
func WithAxisValue(p Point, d Direction, v float64) Point {
	switch d.Axis() {
	case DirectionHorizontal:
		p.X = v
	case DirectionVertical:
		p.Y = v
	}
	return p
}

// Rounded rounds both components to the nearest integer.
func Rounded(p Point) Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}
