// Package geometry computes where the pane sits for each (state, direction)
// pair and the collision regions and gravity used to drive it there.
//
// All functions are pure: they depend only on the Geometry value and their
// arguments, so they can be evaluated from tests without a running pane.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bnema/panedrawer/internal/domain/entity"
)

// Default tuning constants.
const (
	DefaultOpenWideEdgeOffset = 20.0
	DefaultValidityEpsilon    = 2.0
	boundaryMargin            = 1.0
)

// Geometry describes the pane's size and the reveal configuration that
// canonical origins are derived from.
type Geometry struct {
	PaneSize           entity.Point
	Reveal             *entity.RevealWidths
	OpenWideEdgeOffset float64
	Epsilon            float64
}

// New returns a Geometry with default offsets for a pane of the given size.
func New(size entity.Point, reveal *entity.RevealWidths) Geometry {
	if reveal == nil {
		reveal = entity.NewRevealWidths(0, 0)
	}
	return Geometry{
		PaneSize:           size,
		Reveal:             reveal,
		OpenWideEdgeOffset: DefaultOpenWideEdgeOffset,
		Epsilon:            DefaultValidityEpsilon,
	}
}

// RevealWidth returns the Open travel distance for d.
func (g Geometry) RevealWidth(d entity.Direction) float64 {
	if g.Reveal == nil || d == entity.DirectionNone {
		return 0
	}
	return g.Reveal.Get(d)
}

func (g Geometry) extent(d entity.Direction) float64 {
	return entity.PaneRect{Size: g.PaneSize}.Extent(d)
}

func sign(d entity.Direction) float64 {
	if d.Leading() {
		return 1
	}
	return -1
}

// CanonicalOrigin returns the exact pane origin for state in direction d.
// Closed, and any state without a direction, sit at the zero origin.
func (g Geometry) CanonicalOrigin(state entity.PaneState, d entity.Direction) entity.Point {
	if !d.IsCardinal() {
		return entity.Point{}
	}
	var offset float64
	switch state {
	case entity.PaneStateOpen:
		offset = g.RevealWidth(d)
	case entity.PaneStateOpenWide:
		offset = g.extent(d) + g.OpenWideEdgeOffset
	default:
		return entity.Point{}
	}
	return entity.WithAxisValue(entity.Point{}, d, sign(d)*offset)
}

// Boundary returns the collision region that keeps the pane between the
// closed origin and the target state while the physics step runs.
func (g Geometry) Boundary(state entity.PaneState, d entity.Direction) r2.Box {
	entity.MustBeCardinal("Geometry.Boundary", d)

	extent := g.extent(d)
	var span float64
	switch state {
	case entity.PaneStateOpen:
		span = extent + g.RevealWidth(d) + 2*boundaryMargin
	default:
		span = 2*extent + g.OpenWideEdgeOffset + 2*boundaryMargin
	}

	min := entity.Point{X: -boundaryMargin, Y: -boundaryMargin}
	size := r2.Add(g.PaneSize, entity.Point{X: 2 * boundaryMargin, Y: 2 * boundaryMargin})
	size = entity.WithAxisValue(size, d, span)
	if !d.Leading() {
		min = entity.WithAxisValue(min, d, extent+boundaryMargin-span)
	}
	return r2.Box{Min: min, Max: r2.Add(min, size)}
}

// GravityAngle returns the gravity direction in radians, measured in screen
// coordinates (y grows downward). Gravity points toward the revealed side for
// open states and back toward the closed origin otherwise.
func GravityAngle(state entity.PaneState, d entity.Direction) float64 {
	entity.MustBeCardinal("GravityAngle", d)

	opening := state != entity.PaneStateClosed
	switch d {
	case entity.DirectionTop:
		if opening {
			return math.Pi / 2
		}
		return 3 * math.Pi / 2
	case entity.DirectionLeft:
		if opening {
			return 0
		}
		return math.Pi
	case entity.DirectionBottom:
		if opening {
			return 3 * math.Pi / 2
		}
		return math.Pi / 2
	case entity.DirectionRight:
		if opening {
			return math.Pi
		}
		return 0
	}
	return 0
}

// Vector returns the unit vector for angle scaled by magnitude, snapped so
// that multiples of 90 degrees produce exact axis-aligned vectors.
func Vector(angle, magnitude float64) entity.Point {
	x, y := math.Cos(angle), math.Sin(angle)
	if math.Abs(x) < 1e-12 {
		x = 0
	}
	if math.Abs(y) < 1e-12 {
		y = 0
	}
	return r2.Scale(magnitude, entity.Point{X: x, Y: y})
}

// ClosedFraction returns 1 when the pane is closed and 0 when it sits at the
// Open origin, clamped to [0, 1]. Without a direction the pane is closed.
func (g Geometry) ClosedFraction(origin entity.Point, d entity.Direction) float64 {
	if !d.IsCardinal() {
		return 1
	}
	reveal := g.RevealWidth(d)
	if reveal <= 0 {
		return 1
	}
	offset := sign(d) * entity.AxisValue(origin, d)
	return clamp01((reveal - offset) / reveal)
}

// CurrentRevealWidth returns how far the pane has travelled along the axis of d.
func CurrentRevealWidth(origin entity.Point, d entity.Direction) float64 {
	return math.Abs(entity.AxisValue(origin, d))
}

// PositionValid reports whether the rounded origin lies within epsilon of the
// canonical origin for (state, d) on both axes.
func (g Geometry) PositionValid(origin entity.Point, state entity.PaneState, d entity.Direction) bool {
	target := g.CanonicalOrigin(state, d)
	current := entity.Rounded(origin)
	return math.Abs(target.X-current.X) < g.epsilon() && math.Abs(target.Y-current.Y) < g.epsilon()
}

func (g Geometry) epsilon() float64 {
	if g.Epsilon <= 0 {
		return DefaultValidityEpsilon
	}
	return g.Epsilon
}

// PositionedState returns the first settle state whose canonical origin the
// pane currently sits at.
func (g Geometry) PositionedState(origin entity.Point, d entity.Direction) (entity.PaneState, bool) {
	for _, s := range entity.SettleStates {
		if g.PositionValid(origin, s, d) {
			return s, true
		}
	}
	return entity.PaneStateNone, false
}

// NearestState returns the settle state whose canonical origin is closest to
// the rounded origin. Ties go to the more open state.
func (g Geometry) NearestState(origin entity.Point, d entity.Direction) entity.PaneState {
	current := entity.Rounded(origin)
	best := entity.PaneStateNone
	bestDistance := math.MaxFloat64
	for _, s := range entity.SettleStates {
		distance := r2.Norm(r2.Sub(g.CanonicalOrigin(s, d), current))
		if distance <= bestDistance {
			bestDistance = distance
			best = s
		}
	}
	return best
}

// ReachedOpenWide reports whether the pane has travelled at least as far as
// the OpenWide origin in direction d.
func (g Geometry) ReachedOpenWide(origin entity.Point, d entity.Direction) bool {
	if !d.IsCardinal() {
		return false
	}
	location := entity.AxisValue(origin, d)
	if location == 0 {
		return false
	}
	openWide := entity.AxisValue(g.CanonicalOrigin(entity.PaneStateOpenWide, d), d)
	if d.Leading() {
		return location >= openWide
	}
	return location <= openWide
}

// ClampOrigin bounds the origin to [closed, open] along the axis of d and
// reports whether clamping occurred.
func (g Geometry) ClampOrigin(origin entity.Point, d entity.Direction) (entity.Point, bool) {
	if !d.IsCardinal() {
		return origin, false
	}
	open := entity.AxisValue(g.CanonicalOrigin(entity.PaneStateOpen, d), d)
	lo, hi := math.Min(0, open), math.Max(0, open)
	v := entity.AxisValue(origin, d)
	switch {
	case v <= lo:
		return entity.WithAxisValue(origin, d, lo), true
	case v >= hi:
		return entity.WithAxisValue(origin, d, hi), true
	default:
		return origin, false
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
