package controller

import (
	"time"

	"github.com/bnema/panedrawer/internal/application/port"
	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/domain/geometry"
	"github.com/bnema/panedrawer/internal/domain/physics"
	"github.com/bnema/panedrawer/internal/ui/gesture"
)

// Physics unit conversions. Gravity and impulse magnitudes are expressed in
// the same dimensionless units the configuration uses.
const (
	// GravityScale converts a gravity magnitude into units per second squared.
	GravityScale = 1000.0
	// DefaultImpulseVelocityScale converts an impulse magnitude into units per second.
	DefaultImpulseVelocityScale = 10.0
	// DefaultMaxStepDuration caps a single physics step.
	DefaultMaxStepDuration = 3 * time.Second
)

// Options tunes the drawer controller. Zero values select defaults in New.
type Options struct {
	// RevealWidths holds per-direction Open distances. Keys may be masks.
	RevealWidths                 map[entity.Direction]float64
	DefaultRevealWidthHorizontal float64
	DefaultRevealWidthVertical   float64

	GravityMagnitude     float64
	Elasticity           float64
	BounceElasticity     float64
	BounceMagnitude      float64
	OpenWideEdgeOffset   float64
	ImpulseVelocityScale float64

	EdgePanRequired bool
	EdgeThreshold   float64

	VelocityThreshold  float64
	VelocityMultiplier float64
	PositionEpsilon    float64

	FrameInterval   time.Duration
	MaxStepDuration time.Duration

	SlideOffAnimation bool

	// DragReveal and TapToClose disable a direction when explicitly false.
	// Keys may be masks.
	DragReveal map[entity.Direction]bool
	TapToClose map[entity.Direction]bool
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		DefaultRevealWidthHorizontal: entity.DefaultRevealWidthHorizontal,
		DefaultRevealWidthVertical:   entity.DefaultRevealWidthVertical,
		GravityMagnitude:             2.0,
		Elasticity:                   0,
		BounceElasticity:             0.5,
		BounceMagnitude:              60,
		OpenWideEdgeOffset:           geometry.DefaultOpenWideEdgeOffset,
		ImpulseVelocityScale:         DefaultImpulseVelocityScale,
		EdgeThreshold:                gesture.DefaultEdgeThreshold,
		VelocityThreshold:            gesture.DefaultVelocityThreshold,
		VelocityMultiplier:           gesture.DefaultVelocityMultiplier,
		PositionEpsilon:              geometry.DefaultValidityEpsilon,
		FrameInterval:                physics.DefaultFrameInterval,
		MaxStepDuration:              DefaultMaxStepDuration,
		SlideOffAnimation:            true,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.GravityMagnitude <= 0 {
		o.GravityMagnitude = d.GravityMagnitude
	}
	if o.BounceMagnitude <= 0 {
		o.BounceMagnitude = d.BounceMagnitude
	}
	if o.OpenWideEdgeOffset <= 0 {
		o.OpenWideEdgeOffset = d.OpenWideEdgeOffset
	}
	if o.ImpulseVelocityScale <= 0 {
		o.ImpulseVelocityScale = d.ImpulseVelocityScale
	}
	if o.EdgeThreshold <= 0 {
		o.EdgeThreshold = d.EdgeThreshold
	}
	if o.VelocityThreshold <= 0 {
		o.VelocityThreshold = d.VelocityThreshold
	}
	if o.VelocityMultiplier <= 0 {
		o.VelocityMultiplier = d.VelocityMultiplier
	}
	if o.PositionEpsilon <= 0 {
		o.PositionEpsilon = d.PositionEpsilon
	}
	if o.FrameInterval <= 0 {
		o.FrameInterval = d.FrameInterval
	}
	if o.MaxStepDuration < 0 {
		o.MaxStepDuration = 0
	} else if o.MaxStepDuration == 0 {
		o.MaxStepDuration = d.MaxStepDuration
	}
	return o
}

// Deps are the collaborators the controller calls out to. Only Post is
// required; missing collaborators are treated as having no recipient.
type Deps struct {
	// Post schedules a function on the host's event loop.
	Post        func(func())
	Host        port.ContainerHost
	Delegate    port.TransitionDelegate
	Interaction port.InteractionToggle
}

type nopHost struct{}

func (nopHost) Embed(entity.DrawerContent, port.SlotID) {}
func (nopHost) Unembed(entity.DrawerContent)            {}

type nopDelegate struct{}

func (nopDelegate) MayTransition(entity.PaneState, entity.Direction) {}
func (nopDelegate) DidTransition(entity.PaneState, entity.Direction) {}
func (nopDelegate) ShouldBeginGesture() bool                         { return true }

type nopInteraction struct{}

func (nopInteraction) SetUserInteractionEnabled(bool) {}
func (nopInteraction) SetPaneInteractionEnabled(bool) {}

func (d Deps) withDefaults() Deps {
	if d.Host == nil {
		d.Host = nopHost{}
	}
	if d.Delegate == nil {
		d.Delegate = nopDelegate{}
	}
	if d.Interaction == nil {
		d.Interaction = nopInteraction{}
	}
	return d
}

// directionFlags resolves per-direction booleans that default to true.
type directionFlags map[entity.Direction]bool

func newDirectionFlags(src map[entity.Direction]bool) directionFlags {
	flags := make(directionFlags, 4)
	for _, mask := range specificityOrder {
		if enabled, ok := src[mask]; ok {
			flags.set(mask, enabled)
		}
	}
	return flags
}

// specificityOrder lists masks from broadest to narrowest so narrower
// entries override broader ones when applied in order.
var specificityOrder = []entity.Direction{
	entity.DirectionAll,
	entity.DirectionHorizontal,
	entity.DirectionVertical,
	entity.DirectionTop,
	entity.DirectionLeft,
	entity.DirectionBottom,
	entity.DirectionRight,
}

func (f directionFlags) set(mask entity.Direction, enabled bool) {
	for _, d := range mask.Cardinals() {
		f[d] = enabled
	}
}

func (f directionFlags) enabled(d entity.Direction) bool {
	enabled, ok := f[d]
	return !ok || enabled
}

// Reconfigure applies new tuning to a running controller. Physics and
// gesture settings take effect on the next step or pan. Reveal widths are
// only replaced while the pane rests closed.
func (c *DrawerController) Reconfigure(opts Options) {
	opts = opts.withDefaults()
	c.opts = opts
	c.geo.OpenWideEdgeOffset = opts.OpenWideEdgeOffset
	c.geo.Epsilon = opts.PositionEpsilon

	c.dragReveal = newDirectionFlags(opts.DragReveal)
	c.tapToClose = newDirectionFlags(opts.TapToClose)
	c.tracker.DragEnabled = c.dragReveal.enabled

	if c.state != entity.PaneStateClosed || c.step != nil || c.tracker.Active() {
		c.logger.Info().Msg("reveal widths kept until the pane is closed")
		return
	}
	reveal := entity.NewRevealWidths(opts.DefaultRevealWidthHorizontal, opts.DefaultRevealWidthVertical)
	for _, mask := range specificityOrder {
		if w, ok := opts.RevealWidths[mask]; ok {
			reveal.Set(mask, w)
		}
	}
	*c.reveal = *reveal
	c.setOrigin(c.geo.CanonicalOrigin(c.state, c.direction))
}
