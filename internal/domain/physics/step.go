// Package physics integrates the pane's motion toward a target position.
//
// A Step is a deterministic semi-implicit Euler integrator: constant gravity,
// an optional one-shot impulse, and collision against a boundary box with an
// optional elasticity coefficient. It has no notion of time sources or frame
// scheduling; the caller advances it with explicit time deltas.
package physics

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bnema/panedrawer/internal/domain/entity"
)

// DefaultFrameInterval is the tick used when the caller has no preference.
const DefaultFrameInterval = time.Second / 60

// Params configures one physics step.
type Params struct {
	// Boundary is the region the pane frame must stay inside.
	Boundary r2.Box
	// PaneSize is the pane frame size used for collision.
	PaneSize entity.Point
	// Gravity is the constant acceleration in units per second squared.
	Gravity entity.Point
	// Impulse is added to the velocity once, before the first integration.
	Impulse entity.Point
	// Elasticity scales the reflected velocity on collision. Zero stops the
	// pane dead against the wall.
	Elasticity float64
	// Done is the termination predicate evaluated after every advance.
	Done func(origin entity.Point) bool
	// MaxDuration caps the simulated time. Zero disables the cap.
	MaxDuration time.Duration
}

// Step is a running simulation.
type Step struct {
	params   Params
	origin   entity.Point
	velocity entity.Point
	elapsed  time.Duration
	armed    bool
	done     bool
	expired  bool
	impulsed bool
}

// NewStep starts a simulation at origin with the given initial velocity.
//
// If the termination predicate already holds at origin, the step only arms
// once the pane has left that position, so a bounce can start and end at the
// same resting point.
func NewStep(origin, velocity entity.Point, params Params) *Step {
	s := &Step{
		params:   params,
		origin:   origin,
		velocity: velocity,
	}
	s.armed = params.Done == nil || !params.Done(origin)
	return s
}

// Advance integrates the step by dt and returns the new origin. It reports
// true once the step has terminated; further calls are no-ops.
func (s *Step) Advance(dt time.Duration) (entity.Point, bool) {
	if s.done {
		return s.origin, true
	}
	if dt <= 0 {
		dt = DefaultFrameInterval
	}

	if !s.impulsed {
		s.velocity = r2.Add(s.velocity, s.params.Impulse)
		s.impulsed = true
	}

	seconds := dt.Seconds()
	s.velocity = r2.Add(s.velocity, r2.Scale(seconds, s.params.Gravity))
	s.origin = r2.Add(s.origin, r2.Scale(seconds, s.velocity))
	s.collide()
	s.elapsed += dt

	if s.params.Done != nil {
		valid := s.params.Done(s.origin)
		if !s.armed {
			s.armed = !valid
		} else if valid {
			s.done = true
		}
	}
	if !s.done && s.params.MaxDuration > 0 && s.elapsed >= s.params.MaxDuration {
		s.done = true
		s.expired = true
	}
	return s.origin, s.done
}

func (s *Step) collide() {
	box := s.params.Boundary
	if box.Empty() {
		return
	}
	e := s.params.Elasticity

	maxX := box.Max.X - s.params.PaneSize.X
	maxY := box.Max.Y - s.params.PaneSize.Y
	switch {
	case s.origin.X < box.Min.X:
		s.origin.X = box.Min.X
		s.velocity.X = bounce(s.velocity.X, e)
	case s.origin.X > maxX:
		s.origin.X = maxX
		s.velocity.X = bounce(s.velocity.X, e)
	}
	switch {
	case s.origin.Y < box.Min.Y:
		s.origin.Y = box.Min.Y
		s.velocity.Y = bounce(s.velocity.Y, e)
	case s.origin.Y > maxY:
		s.origin.Y = maxY
		s.velocity.Y = bounce(s.velocity.Y, e)
	}
}

func bounce(v, elasticity float64) float64 {
	if elasticity <= 0 {
		return 0
	}
	return -v * elasticity
}

// Origin returns the current simulated origin.
func (s *Step) Origin() entity.Point { return s.origin }

// Velocity returns the current simulated velocity.
func (s *Step) Velocity() entity.Point { return s.velocity }

// Elapsed returns the simulated time so far.
func (s *Step) Elapsed() time.Duration { return s.elapsed }

// Done reports whether the step has terminated.
func (s *Step) Done() bool { return s.done }

// Expired reports whether the step terminated by hitting MaxDuration rather
// than its predicate.
func (s *Step) Expired() bool { return s.expired }
