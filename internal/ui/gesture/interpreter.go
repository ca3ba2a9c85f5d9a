// Package gesture turns raw pan samples into pane positions, a locked reveal
// direction and a release decision.
package gesture

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/domain/geometry"
)

// Release defaults.
const (
	DefaultVelocityThreshold  = 5.0
	DefaultVelocityMultiplier = 5.0
)

// Outcome is the result of feeding one sample to the tracker.
type Outcome int

const (
	// Applied means the sample moved the pane.
	Applied Outcome = iota
	// Ignored means no direction could be resolved yet; the gesture continues.
	Ignored
	// Rejected means the gesture must be cancelled and reset.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Ignored:
		return "ignored"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Sample is one pan event in container coordinates. A zero Velocity means the
// host did not measure one and it is derived from the displacement since the
// previous sample.
type Sample struct {
	Location entity.Point
	Velocity entity.Point
}

// Project returns the component of v along the axis the possible drawers lie
// on. The other axis is ignored.
func Project(v entity.Point, possible entity.Direction) float64 {
	return entity.AxisValue(v, possible)
}

// InferDirection maps a signed position on the possible axis to the drawer
// direction it reveals: positive reveals Top or Left, negative Bottom or Right.
func InferDirection(position float64, possible entity.Direction) entity.Direction {
	axis := possible.Axis()
	if axis == entity.DirectionNone || position == 0 {
		return entity.DirectionNone
	}
	leading := axis.And(entity.DirectionTop | entity.DirectionLeft)
	if position > 0 {
		return leading
	}
	return leading.Opposite()
}

// Update is what the tracker resolved from one sample.
type Update struct {
	Outcome Outcome
	// Direction is the drawer direction the pane should be revealing.
	Direction entity.Direction
	// Inferred is the direction implied by this sample alone.
	Inferred entity.Direction
	Origin   entity.Point
	Bounded  bool
	// ReachedClosed is set when the drag brought the pane exactly back to
	// its closed origin.
	ReachedClosed bool
}

// Tracker follows one continuous pan gesture.
type Tracker struct {
	// DragEnabled reports whether dragging may reveal a direction. Nil allows all.
	DragEnabled func(entity.Direction) bool

	active      bool
	start       entity.Point
	last        entity.Point
	startOrigin entity.Point
	locked      entity.Direction
	velocity    float64
	bounded     bool
}

// Begin starts tracking a gesture that touched down at location while the
// pane sat at origin revealing direction.
func (t *Tracker) Begin(location, origin entity.Point, direction entity.Direction) {
	t.active = true
	t.start = location
	t.last = location
	t.startOrigin = origin
	t.locked = direction
	t.velocity = 0
	t.bounded = false
}

// Active reports whether a gesture is being tracked.
func (t *Tracker) Active() bool { return t.active }

// Lock returns the direction the gesture is locked to, or None.
func (t *Tracker) Lock() entity.Direction { return t.locked }

// Velocity returns the tracked fling velocity along the possible axis.
func (t *Tracker) Velocity() float64 { return t.velocity }

// Reset stops tracking.
func (t *Tracker) Reset() {
	*t = Tracker{DragEnabled: t.DragEnabled}
}

func (t *Tracker) dragEnabled(d entity.Direction) bool {
	return t.DragEnabled == nil || t.DragEnabled(d)
}

// Sample resolves the pane origin for s. current is the controller's active
// direction and possible the registry's possible mask.
func (t *Tracker) Sample(s Sample, current, possible entity.Direction, g geometry.Geometry) Update {
	if !t.active {
		return Update{Outcome: Ignored, Direction: current}
	}

	delta := Project(r2.Sub(s.Location, t.start), possible)
	position := Project(t.startOrigin, possible) + delta
	inferred := InferDirection(position, possible)

	direction := current
	if current == entity.DirectionNone {
		switch {
		case inferred == entity.DirectionNone:
			return Update{Outcome: Ignored, Inferred: inferred}
		case t.locked != entity.DirectionNone && inferred != t.locked:
			return Update{Outcome: Rejected, Inferred: inferred}
		case !possible.Has(inferred) || !t.dragEnabled(inferred):
			return Update{Outcome: Rejected, Inferred: inferred}
		}
		direction = inferred
		if t.locked == entity.DirectionNone {
			t.locked = direction
		}
	} else if !t.dragEnabled(current) {
		return Update{Outcome: Rejected, Direction: current, Inferred: inferred}
	}

	origin := entity.WithAxisValue(t.startOrigin, possible, position)
	origin, bounded := g.ClampOrigin(origin, direction)
	t.bounded = bounded

	v := Project(s.Velocity, possible)
	if v == 0 {
		v = Project(r2.Sub(s.Location, t.last), possible)
	}
	if !bounded && v != 0 {
		t.velocity = v
	}
	t.last = s.Location

	closed := g.CanonicalOrigin(entity.PaneStateClosed, direction)
	return Update{
		Outcome:       Applied,
		Direction:     direction,
		Inferred:      inferred,
		Origin:        origin,
		Bounded:       bounded,
		ReachedClosed: inferred != entity.DirectionNone && origin == closed,
	}
}

// Release records the final sample's velocity, if measured, and stops
// tracking. It returns the fling velocity to decide on.
func (t *Tracker) Release(s Sample, possible entity.Direction) float64 {
	if v := Project(s.Velocity, possible); v != 0 && !t.bounded {
		t.velocity = v
	}
	velocity := t.velocity
	t.Reset()
	return velocity
}

// DecisionParams tunes the release decision.
type DecisionParams struct {
	VelocityThreshold  float64
	VelocityMultiplier float64
}

// Decision is the settle target chosen at release.
type Decision struct {
	Target entity.PaneState
	// ImpulseMagnitude is zero when the release was too slow to fling.
	ImpulseMagnitude float64
	ImpulseAngle     float64
}

// Decide picks the state to settle into after a release with the given
// velocity in direction. Slow releases settle to nearest.
func Decide(velocity float64, direction entity.Direction, nearest entity.PaneState, p DecisionParams) Decision {
	if math.Abs(velocity) <= p.VelocityThreshold {
		return Decision{Target: nearest}
	}

	target := entity.PaneStateClosed
	opening := velocity > 0
	if !direction.Leading() {
		opening = velocity < 0
	}
	if opening {
		target = entity.PaneStateOpen
	}
	return Decision{
		Target:           target,
		ImpulseMagnitude: math.Abs(velocity) * p.VelocityMultiplier,
		ImpulseAngle:     geometry.GravityAngle(target, direction),
	}
}
