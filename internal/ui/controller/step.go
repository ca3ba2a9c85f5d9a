package controller

import (
	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/domain/geometry"
	"github.com/bnema/panedrawer/internal/domain/physics"
)

const stepTickKey = "pane-physics"

type activeStep struct {
	sim           *physics.Step
	target        entity.PaneState
	direction     entity.Direction
	impulse       float64
	angle         float64
	interruptible bool
	completions   []func()
}

type stepPlan struct {
	target           entity.PaneState
	impulseMagnitude float64
	impulseAngle     float64
	elasticity       float64
	interruptible    bool
	onComplete       func()
}

// StepInfo describes the running physics step.
type StepInfo struct {
	Target           entity.PaneState
	Direction        entity.Direction
	ImpulseMagnitude float64
	ImpulseAngle     float64
	Interruptible    bool
}

// ActiveStep returns the running step, if any.
func (c *DrawerController) ActiveStep() (StepInfo, bool) {
	s := c.step
	if s == nil {
		return StepInfo{}, false
	}
	return StepInfo{
		Target:           s.target,
		Direction:        s.direction,
		ImpulseMagnitude: s.impulse,
		ImpulseAngle:     s.angle,
		Interruptible:    s.interruptible,
	}, true
}

// startStep animates the pane toward plan.target under gravity. The first
// tick is posted to the host loop; nothing moves synchronously.
func (c *DrawerController) startStep(plan stepPlan) {
	c.teardownStep()
	c.deps.Delegate.MayTransition(plan.target, c.direction)

	direction := c.direction
	if direction == entity.DirectionNone {
		c.finalize(plan.target, completions(plan.onComplete), false)
		return
	}

	target := plan.target
	geo := c.geo
	params := physics.Params{
		Boundary: geo.Boundary(target, direction),
		PaneSize: geo.PaneSize,
		Gravity:  geometry.Vector(geometry.GravityAngle(target, direction), c.opts.GravityMagnitude*GravityScale),
		Impulse:  geometry.Vector(plan.impulseAngle, plan.impulseMagnitude*c.opts.ImpulseVelocityScale),
		Done: func(origin entity.Point) bool {
			return geo.PositionValid(origin, target, direction)
		},
		Elasticity:  plan.elasticity,
		MaxDuration: c.opts.MaxStepDuration,
	}

	s := &activeStep{
		sim:           physics.NewStep(c.origin, entity.Point{}, params),
		target:        target,
		direction:     direction,
		impulse:       plan.impulseMagnitude,
		angle:         plan.impulseAngle,
		interruptible: plan.interruptible,
		completions:   completions(plan.onComplete),
	}
	c.step = s
	c.potential = target

	c.deps.Interaction.SetPaneInteractionEnabled(target == entity.PaneStateClosed)
	if !s.interruptible {
		c.setUserInteractionEnabled(false)
	}

	c.logger.Debug().
		Stringer("target", target).
		Stringer("direction", direction).
		Float64("impulse", plan.impulseMagnitude).
		Bool("interruptible", plan.interruptible).
		Msg("physics step started")

	c.ticks.Post(stepTickKey, func() { c.tick(s) })
}

func (c *DrawerController) tick(s *activeStep) {
	if c.step != s {
		return
	}

	origin, done := s.sim.Advance(c.opts.FrameInterval)
	c.setOrigin(origin)
	if c.step != s {
		// Landed on reaching OpenWide.
		return
	}

	if done {
		if s.sim.Expired() {
			c.logger.Warn().
				Stringer("target", s.target).
				Dur("elapsed", s.sim.Elapsed()).
				Msg("physics step hit its time cap, snapping")
		}
		c.land(s)
		return
	}
	c.ticks.Post(stepTickKey, func() { c.tick(s) })
}

func (c *DrawerController) land(s *activeStep) {
	c.ticks.Cancel(stepTickKey)
	c.step = nil
	c.finalize(s.target, s.completions, !s.interruptible)
}

// teardownStep stops the running step without landing it. Its completions
// are dropped.
func (c *DrawerController) teardownStep() {
	s := c.step
	if s == nil {
		return
	}
	c.step = nil
	c.potential = entity.PaneStateNone
	c.ticks.Cancel(stepTickKey)
	if !s.interruptible {
		c.setUserInteractionEnabled(true)
	}
	c.logger.Debug().
		Stringer("target", s.target).
		Int("dropped_completions", len(s.completions)).
		Msg("physics step interrupted")
}

// BouncePaneOpen nudges a closed pane open in direction and lets it fall
// back closed. direction may be None when only one drawer is registered.
func (c *DrawerController) BouncePaneOpen(direction entity.Direction, interruptible bool, onComplete func()) {
	const op = "DrawerController.BouncePaneOpen"
	direction = c.resolveDirection(op, entity.PaneStateOpen, direction)

	if c.state != entity.PaneStateClosed || c.step != nil || c.tracker.Active() {
		c.logger.Debug().Stringer("state", c.state).Msg("bounce ignored, pane is busy")
		return
	}

	c.setDirection(direction)
	c.startStep(stepPlan{
		target:           entity.PaneStateClosed,
		impulseMagnitude: c.opts.BounceMagnitude,
		impulseAngle:     geometry.GravityAngle(entity.PaneStateOpen, direction),
		elasticity:       c.opts.BounceElasticity,
		interruptible:    interruptible,
		onComplete:       onComplete,
	})
}
