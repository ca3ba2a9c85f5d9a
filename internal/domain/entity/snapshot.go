package entity

// PaneSnapshot is a read-only view of the pane at one instant.
type PaneSnapshot struct {
	State          PaneState
	Potential      PaneState
	Direction      Direction
	Origin         Point
	ClosedFraction float64
}

// Moving reports whether a transition is in flight.
func (s PaneSnapshot) Moving() bool {
	return s.Potential != PaneStateNone
}
