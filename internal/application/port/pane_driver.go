package port

import "github.com/bnema/panedrawer/internal/domain/entity"

// PaneDriver drives a pane state machine frame by frame, without a real
// event loop. Implementations own the loop the physics ticks are posted to.
type PaneDriver interface {
	BeginPan(location entity.Point) bool
	// MovePan reports whether the sample moved the pane.
	MovePan(location entity.Point) bool
	EndPan(location, velocity entity.Point)

	RequestState(state entity.PaneState, direction entity.Direction, animated bool)
	Bounce(direction entity.Direction)

	// Advance runs one loop iteration and reports whether more work is queued.
	Advance() bool
	Snapshot() entity.PaneSnapshot
}
