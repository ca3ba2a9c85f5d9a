package port

import "github.com/bnema/panedrawer/internal/domain/entity"

// StylerPlugin receives the pane's closed fraction as it moves so it can drive
// visual effects on the drawer or pane.
//
// OnAttach is called before the first OnUpdate and OnDetach after the last one.
type StylerPlugin interface {
	// OnAttach is called when the styler becomes registered under any direction.
	OnAttach(mask entity.Direction)

	// OnDetach is called when the styler is no longer registered under any direction.
	OnDetach(mask entity.Direction)

	// OnUpdate reports the closed fraction (1 closed, 0 open) for direction.
	// A None direction with fraction 1 signals the outgoing direction is done.
	OnUpdate(closedFraction float64, direction entity.Direction)
}
