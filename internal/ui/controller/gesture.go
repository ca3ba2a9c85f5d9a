package controller

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/ui/gesture"
)

// BeginPan starts a drag at location, in container coordinates. It reports
// whether the gesture was accepted.
func (c *DrawerController) BeginPan(location entity.Point) bool {
	if c.tracker.Active() || c.disableCount > 0 {
		return false
	}
	possible := c.slots.Possible()
	if possible == entity.DirectionNone {
		return false
	}
	if c.opts.EdgePanRequired && c.restingClosed() {
		start := r2.Sub(location, c.origin)
		if !gesture.EdgeGate(start, c.geo.PaneSize, c.opts.EdgeThreshold, possible) {
			c.logger.Trace().Stringer("edges", gesture.StartEdges(start, c.geo.PaneSize, c.opts.EdgeThreshold)).Msg("pan outside edge")
			return false
		}
	}
	if !c.deps.Delegate.ShouldBeginGesture() {
		return false
	}

	c.teardownStep()
	c.tracker.Begin(location, c.origin, c.direction)
	return true
}

func (c *DrawerController) restingClosed() bool {
	return c.step == nil && c.state == entity.PaneStateClosed &&
		c.geo.PositionValid(c.origin, entity.PaneStateClosed, c.direction)
}

// MovePan feeds one drag sample. An applied sample stops any running physics
// step; a rejected sample cancels the gesture.
func (c *DrawerController) MovePan(s gesture.Sample) gesture.Outcome {
	u := c.tracker.Sample(s, c.direction, c.slots.Possible(), c.geo)
	switch u.Outcome {
	case gesture.Ignored:
		return u.Outcome
	case gesture.Rejected:
		c.logger.Trace().Stringer("inferred", u.Inferred).Msg("pan rejected")
		c.CancelPan()
		return u.Outcome
	}

	// The finger owns the frame; a step requested mid-drag stops here.
	c.teardownStep()
	if u.Direction != c.direction {
		c.setDirection(u.Direction)
	}
	c.setOrigin(u.Origin)

	if u.ReachedClosed {
		previous := c.direction
		changed := c.state != entity.PaneStateClosed
		c.state = entity.PaneStateClosed
		c.setDirection(entity.DirectionNone)
		if changed {
			c.deps.Delegate.DidTransition(entity.PaneStateClosed, previous)
		}
	}
	return u.Outcome
}

// EndPan releases the drag and lets the pane settle, flinging it when the
// release is fast enough.
func (c *DrawerController) EndPan(s gesture.Sample) {
	if !c.tracker.Active() {
		return
	}
	c.velocity = c.tracker.Release(s, c.slots.Possible())

	if c.direction == entity.DirectionNone {
		return
	}

	decision := gesture.Decide(c.velocity, c.direction, c.NearestState(), gesture.DecisionParams{
		VelocityThreshold:  c.opts.VelocityThreshold,
		VelocityMultiplier: c.opts.VelocityMultiplier,
	})
	c.logger.Debug().
		Float64("velocity", c.velocity).
		Stringer("target", decision.Target).
		Float64("impulse", decision.ImpulseMagnitude).
		Msg("pan released")

	if c.geo.PositionValid(c.origin, decision.Target, c.direction) {
		c.deps.Delegate.MayTransition(decision.Target, c.direction)
		c.finalize(decision.Target, nil, false)
		return
	}
	c.startStep(stepPlan{
		target:           decision.Target,
		impulseMagnitude: decision.ImpulseMagnitude,
		impulseAngle:     decision.ImpulseAngle,
		elasticity:       c.opts.Elasticity,
		interruptible:    true,
	})
}

// CancelPan abandons the drag. A pane left between positions settles to
// the nearest state.
func (c *DrawerController) CancelPan() {
	if !c.tracker.Active() {
		return
	}
	c.tracker.Reset()
	if c.direction == entity.DirectionNone || c.step != nil {
		return
	}
	if _, ok := c.PositionedState(); ok {
		return
	}
	c.startStep(stepPlan{
		target:        c.NearestState(),
		elasticity:    c.opts.Elasticity,
		interruptible: true,
	})
}

// Panning reports whether a drag is in progress.
func (c *DrawerController) Panning() bool { return c.tracker.Active() }

// Tap closes an open pane when tap to close is enabled for its direction. It
// reports whether the tap was consumed.
func (c *DrawerController) Tap() bool {
	if c.step != nil || c.tracker.Active() || c.disableCount > 0 {
		return false
	}
	if !c.state.Revealed() || !c.tapToClose.enabled(c.direction) {
		return false
	}
	if !c.geo.PositionValid(c.origin, c.state, c.direction) {
		return false
	}
	c.RequestState(Request{State: entity.PaneStateClosed, Animated: true, Interruptible: true})
	return true
}
