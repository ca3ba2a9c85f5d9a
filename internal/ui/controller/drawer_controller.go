// Package controller provides controllers that bridge domain state and UI widgets.
package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/panedrawer/internal/application/port"
	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/domain/geometry"
	"github.com/bnema/panedrawer/internal/logging"
	"github.com/bnema/panedrawer/internal/ui/gesture"
	"github.com/bnema/panedrawer/internal/ui/mainloop"
	"github.com/bnema/panedrawer/internal/ui/styler"
)

// DrawerController is the pane state machine. It owns the pane position, the
// active reveal direction and the drawer registry, and drives transitions
// with a physics step scheduled on the host loop.
//
// All methods must be called from the host loop goroutine.
type DrawerController struct {
	slots   *entity.DrawerSlots
	reveal  *entity.RevealWidths
	geo     geometry.Geometry
	stylers *styler.Dispatcher
	ticks   *mainloop.Coalescer
	tracker gesture.Tracker
	opts    Options
	deps    Deps

	dragReveal directionFlags
	tapToClose directionFlags

	state        entity.PaneState
	potential    entity.PaneState
	direction    entity.Direction
	origin       entity.Point
	velocity     float64
	paneContent  entity.DrawerContent
	step         *activeStep
	disableCount int

	logger *zerolog.Logger
}

// Request describes a programmatic state change.
type Request struct {
	State entity.PaneState
	// Direction selects the drawer to reveal. It may be None when the pane
	// already reveals a drawer or only one drawer is registered.
	Direction entity.Direction
	Animated  bool
	// Interruptible leaves user interaction enabled during the animation.
	Interruptible bool
	OnComplete    func()
}

// New creates a closed pane of the given size.
func New(ctx context.Context, paneSize entity.Point, opts Options, deps Deps) *DrawerController {
	opts = opts.withDefaults()
	deps = deps.withDefaults()
	ctx = logging.WithComponent(ctx, "drawer")

	reveal := entity.NewRevealWidths(opts.DefaultRevealWidthHorizontal, opts.DefaultRevealWidthVertical)
	for _, mask := range specificityOrder {
		if w, ok := opts.RevealWidths[mask]; ok {
			reveal.Set(mask, w)
		}
	}

	geo := geometry.New(paneSize, reveal)
	geo.OpenWideEdgeOffset = opts.OpenWideEdgeOffset
	geo.Epsilon = opts.PositionEpsilon

	c := &DrawerController{
		slots:      entity.NewDrawerSlots(),
		reveal:     reveal,
		geo:        geo,
		stylers:    styler.NewDispatcher(ctx),
		ticks:      mainloop.NewCoalescer(deps.Post),
		opts:       opts,
		deps:       deps,
		dragReveal: newDirectionFlags(opts.DragReveal),
		tapToClose: newDirectionFlags(opts.TapToClose),
		state:      entity.PaneStateClosed,
		logger:     logging.FromContext(ctx),
	}
	c.tracker.DragEnabled = c.dragReveal.enabled
	return c
}

// Destroy stops any running step and drops queued ticks.
func (c *DrawerController) Destroy() {
	c.teardownStep()
	c.ticks.Destroy()
}

// SetDrawer registers content as the drawer for a cardinal direction, or
// removes it when content is nil. Removing the drawer the pane currently
// reveals closes the pane first.
func (c *DrawerController) SetDrawer(direction entity.Direction, content entity.DrawerContent) {
	const op = "DrawerController.SetDrawer"
	entity.MustBeCardinal(op, direction)

	if content == nil && direction == c.direction {
		c.tracker.Reset()
		c.teardownStep()
		c.finalize(entity.PaneStateClosed, nil, false)
	}

	previous, change := c.slots.Set(direction, content)
	c.logger.Debug().
		Stringer("direction", direction).
		Stringer("possible", c.slots.Possible()).
		Int("change", int(change)).
		Msg("drawer slot updated")

	if direction != c.direction {
		return
	}
	if change == entity.SlotReplaced {
		c.deps.Host.Unembed(previous)
		c.deps.Host.Embed(content, port.SlotDrawer)
	}
}

// Drawer returns the drawer registered for a cardinal direction.
func (c *DrawerController) Drawer(direction entity.Direction) entity.DrawerContent {
	return c.slots.Get(direction)
}

// PossibleDirections returns the mask of directions with a registered drawer.
func (c *DrawerController) PossibleDirections() entity.Direction {
	return c.slots.Possible()
}

// SetRevealWidth sets the Open distance for every direction in mask. It may
// only be called while the pane is closed.
func (c *DrawerController) SetRevealWidth(mask entity.Direction, width float64) {
	const op = "DrawerController.SetRevealWidth"
	if !mask.IsValid() || mask == entity.DirectionNone {
		entity.Violate(op, mask, entity.ErrNotNonMasked)
	}
	if c.state != entity.PaneStateClosed {
		entity.Violate(op, mask, entity.ErrRevealWidthWhileOpen)
	}
	c.reveal.Set(mask, width)
}

// RevealWidth returns the Open distance for direction.
func (c *DrawerController) RevealWidth(direction entity.Direction) float64 {
	return c.reveal.Get(direction)
}

// SetDragRevealEnabled enables or disables drag reveal for every direction in mask.
func (c *DrawerController) SetDragRevealEnabled(mask entity.Direction, enabled bool) {
	c.dragReveal.set(mask, enabled)
}

// DragRevealEnabled reports whether dragging may reveal direction.
func (c *DrawerController) DragRevealEnabled(direction entity.Direction) bool {
	return c.dragReveal.enabled(direction)
}

// SetTapToCloseEnabled enables or disables tap to close for every direction in mask.
func (c *DrawerController) SetTapToCloseEnabled(mask entity.Direction, enabled bool) {
	c.tapToClose.set(mask, enabled)
}

// TapToCloseEnabled reports whether tapping the pane closes direction.
func (c *DrawerController) TapToCloseEnabled(direction entity.Direction) bool {
	return c.tapToClose.enabled(direction)
}

// AddStyler registers plugin for every direction in mask.
func (c *DrawerController) AddStyler(plugin port.StylerPlugin, mask entity.Direction) {
	c.stylers.Attach(plugin, mask)
}

// RemoveStyler unregisters plugin from every direction in mask.
func (c *DrawerController) RemoveStyler(plugin port.StylerPlugin, mask entity.Direction) {
	c.stylers.Detach(plugin, mask)
}

// Stylers returns the plugins that receive updates for direction.
func (c *DrawerController) Stylers(direction entity.Direction) []port.StylerPlugin {
	return c.stylers.Observers(direction)
}

// SetPaneSize updates the pane size and re-snaps a resting pane to its
// canonical origin.
func (c *DrawerController) SetPaneSize(size entity.Point) {
	c.geo.PaneSize = size
	if c.step == nil && !c.tracker.Active() {
		c.setOrigin(c.geo.CanonicalOrigin(c.state, c.direction))
	}
}

// PaneSize returns the pane size.
func (c *DrawerController) PaneSize() entity.Point { return c.geo.PaneSize }

// SetState changes state without animation.
func (c *DrawerController) SetState(state entity.PaneState) {
	c.RequestState(Request{State: state})
}

// RequestState transitions the pane to req.State.
//
// It panics with a PreconditionError when the direction is composite, has no
// registered drawer, or cannot be resolved for an open state.
func (c *DrawerController) RequestState(req Request) {
	const op = "DrawerController.RequestState"

	target := req.State
	if target != entity.PaneStateClosed && !target.Revealed() {
		entity.Violate(op, req.Direction, entity.ErrNotSettleState)
	}
	direction := c.resolveDirection(op, target, req.Direction)

	if c.step != nil && c.step.target == target && c.step.direction == direction {
		// Same transition already running: share its landing.
		if req.OnComplete != nil {
			c.step.completions = append(c.step.completions, req.OnComplete)
		}
		return
	}

	if c.step == nil && c.state == target && c.positionedIn(target, direction) {
		if req.OnComplete != nil {
			req.OnComplete()
		}
		return
	}

	c.teardownStep()
	if target != entity.PaneStateClosed {
		c.setDirection(direction)
	}

	c.logger.Debug().
		Stringer("from", c.state).
		Stringer("to", target).
		Stringer("direction", c.direction).
		Bool("animated", req.Animated).
		Msg("pane state requested")

	if req.Animated && c.direction != entity.DirectionNone && !c.positionedIn(target, direction) {
		c.startStep(stepPlan{
			target:        target,
			elasticity:    c.opts.Elasticity,
			interruptible: req.Interruptible,
			onComplete:    req.OnComplete,
		})
		return
	}

	c.deps.Delegate.MayTransition(target, c.direction)
	c.finalize(target, completions(req.OnComplete), false)
}

func (c *DrawerController) resolveDirection(op string, target entity.PaneState, requested entity.Direction) entity.Direction {
	possible := c.slots.Possible()
	if requested != entity.DirectionNone {
		entity.MustBeCardinal(op, requested)
		if !possible.Contains(requested) {
			entity.Violate(op, requested, entity.ErrImpossibleDirection)
		}
	}

	if target == entity.PaneStateClosed {
		return c.direction
	}
	if requested != entity.DirectionNone {
		return requested
	}
	if c.direction != entity.DirectionNone {
		return c.direction
	}
	if possible == entity.DirectionNone {
		entity.Violate(op, requested, entity.ErrImpossibleDirection)
	}
	if !possible.IsCardinal() {
		entity.Violate(op, possible, entity.ErrAmbiguousDirection)
	}
	return possible
}

// positionedIn reports whether the pane rests at the canonical origin of
// state in direction. Closed matches regardless of direction.
func (c *DrawerController) positionedIn(state entity.PaneState, direction entity.Direction) bool {
	if state == entity.PaneStateClosed {
		return c.geo.PositionValid(c.origin, entity.PaneStateClosed, c.direction)
	}
	return direction == c.direction && c.geo.PositionValid(c.origin, state, direction)
}

func completions(fn func()) []func() {
	if fn == nil {
		return nil
	}
	return []func(){fn}
}

// finalize lands the pane in state: it clears the pending state, snaps the
// origin, resets the direction when closed and runs the completions.
// reenable releases the interaction lock taken by a non-interruptible step.
func (c *DrawerController) finalize(state entity.PaneState, done []func(), reenable bool) {
	previousDirection := c.direction
	c.potential = entity.PaneStateNone

	changed := c.state != state
	c.state = state

	c.setOrigin(c.geo.CanonicalOrigin(state, c.direction))
	if state == entity.PaneStateClosed {
		c.setDirection(entity.DirectionNone)
	}

	if changed {
		notify := c.direction
		if !state.Revealed() {
			notify = previousDirection
		}
		c.logger.Debug().Stringer("state", state).Stringer("direction", notify).Msg("pane state changed")
		c.deps.Delegate.DidTransition(state, notify)
	}

	for _, fn := range done {
		fn()
	}
	if reenable {
		c.setUserInteractionEnabled(true)
	}
}

// setDirection changes the active reveal direction, swapping the embedded
// drawer content and notifying stylers.
func (c *DrawerController) setDirection(direction entity.Direction) {
	const op = "DrawerController.setDirection"
	entity.MustBeNonMasked(op, direction)
	if direction == entity.DirectionNone && c.state != entity.PaneStateClosed {
		entity.Violate(op, direction, entity.ErrDirectionWhileOpen)
	}
	if direction == c.direction {
		return
	}

	previous := c.direction
	if previous != entity.DirectionNone && direction != entity.DirectionNone {
		c.stylers.TransitionOut(previous)
	}
	if content := c.slots.Lookup(previous); content != nil {
		c.deps.Host.Unembed(content)
	}

	c.direction = direction
	c.logger.Trace().Stringer("from", previous).Stringer("to", direction).Msg("direction changed")

	if content := c.slots.Lookup(direction); content != nil {
		c.deps.Host.Embed(content, port.SlotDrawer)
	}
	c.deps.Interaction.SetPaneInteractionEnabled(direction == entity.DirectionNone)
	c.dispatch()
}

// setOrigin moves the pane and notifies stylers. Reaching the OpenWide
// origin while a step targets it lands the step immediately.
func (c *DrawerController) setOrigin(origin entity.Point) {
	c.origin = origin
	if s := c.step; s != nil && s.target == entity.PaneStateOpenWide && c.geo.ReachedOpenWide(origin, c.direction) {
		c.land(s)
		return
	}
	c.dispatch()
}

func (c *DrawerController) dispatch() {
	c.stylers.Dispatch(c.geo.ClosedFraction(c.origin, c.direction), c.direction)
}

// setUserInteractionEnabled keeps a disable count so nested non-interruptible
// transitions re-enable interaction only when the last one finishes.
func (c *DrawerController) setUserInteractionEnabled(enabled bool) {
	if !enabled {
		c.disableCount++
	} else if c.disableCount > 0 {
		c.disableCount--
	}
	c.deps.Interaction.SetUserInteractionEnabled(c.disableCount == 0)
}

// State returns the settled pane state.
func (c *DrawerController) State() entity.PaneState { return c.state }

// PotentialState returns the state a running step is heading to, or None.
func (c *DrawerController) PotentialState() entity.PaneState { return c.potential }

// Direction returns the active reveal direction.
func (c *DrawerController) Direction() entity.Direction { return c.direction }

// Origin returns the pane origin in container coordinates.
func (c *DrawerController) Origin() entity.Point { return c.origin }

// Velocity returns the fling velocity of the last released gesture.
func (c *DrawerController) Velocity() float64 { return c.velocity }

// ClosedFraction returns 1 when closed and 0 when fully open.
func (c *DrawerController) ClosedFraction() float64 {
	return c.geo.ClosedFraction(c.origin, c.direction)
}

// CurrentRevealWidth returns how far the pane currently reveals its drawer.
func (c *DrawerController) CurrentRevealWidth() float64 {
	return geometry.CurrentRevealWidth(c.origin, c.direction)
}

// NearestState returns the settle state closest to the current origin.
func (c *DrawerController) NearestState() entity.PaneState {
	return c.geo.NearestState(c.origin, c.direction)
}

// PositionedState returns the state the pane currently rests in, if any.
func (c *DrawerController) PositionedState() (entity.PaneState, bool) {
	return c.geo.PositionedState(c.origin, c.direction)
}

// Geometry returns a copy of the geometry used for canonical positions.
func (c *DrawerController) Geometry() geometry.Geometry { return c.geo }

// UserInteractionEnabled reports whether no non-interruptible transition is running.
func (c *DrawerController) UserInteractionEnabled() bool { return c.disableCount == 0 }
