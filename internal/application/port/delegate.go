package port

import "github.com/bnema/panedrawer/internal/domain/entity"

// TransitionDelegate observes pane state transitions.
type TransitionDelegate interface {
	// MayTransition is advisory: it is called before a transition starts and
	// cannot veto it.
	MayTransition(state entity.PaneState, direction entity.Direction)

	// DidTransition is called once the pane has settled into state.
	DidTransition(state entity.PaneState, direction entity.Direction)

	// ShouldBeginGesture lets the delegate refuse a pan before it starts.
	ShouldBeginGesture() bool
}
