package controller

import (
	"context"

	"github.com/bnema/panedrawer/internal/application/port"
	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/ui/gesture"
	"github.com/bnema/panedrawer/internal/ui/mainloop"
)

// Driver runs a DrawerController on a private queue. It implements
// port.PaneDriver for headless hosts.
type Driver struct {
	*DrawerController
	queue *mainloop.Queue
}

var _ port.PaneDriver = (*Driver)(nil)

// NewDriver creates a headless controller. deps.Post is replaced by the
// driver's own queue.
func NewDriver(ctx context.Context, paneSize entity.Point, opts Options, deps Deps) *Driver {
	q := &mainloop.Queue{}
	deps.Post = q.Post
	return &Driver{DrawerController: New(ctx, paneSize, opts, deps), queue: q}
}

// MovePan feeds a location-only sample.
func (d *Driver) MovePan(location entity.Point) bool {
	return d.DrawerController.MovePan(gesture.Sample{Location: location}) == gesture.Applied
}

// EndPan releases with a measured velocity.
func (d *Driver) EndPan(location, velocity entity.Point) {
	d.DrawerController.EndPan(gesture.Sample{Location: location, Velocity: velocity})
}

// RequestState requests a state without a completion callback.
func (d *Driver) RequestState(state entity.PaneState, direction entity.Direction, animated bool) {
	d.DrawerController.RequestState(Request{
		State:         state,
		Direction:     direction,
		Animated:      animated,
		Interruptible: true,
	})
}

// Bounce bounces the pane open in direction.
func (d *Driver) Bounce(direction entity.Direction) {
	d.BouncePaneOpen(direction, true, nil)
}

// Advance runs one round of queued work.
func (d *Driver) Advance() bool {
	d.queue.RunOnce()
	return d.queue.Len() > 0
}

// Snapshot captures the current pane state.
func (c *DrawerController) Snapshot() entity.PaneSnapshot {
	return entity.PaneSnapshot{
		State:          c.state,
		Potential:      c.potential,
		Direction:      c.direction,
		Origin:         c.origin,
		ClosedFraction: c.ClosedFraction(),
	}
}

// Pending reports whether the driver's queue holds work.
func (d *Driver) Pending() bool {
	return d.queue.Len() > 0
}
