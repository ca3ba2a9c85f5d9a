package entity

// PaneState is the visibility state of the pane relative to its drawers.
// Values are ordered: None < Closed < Open < OpenWide.
type PaneState uint8

const (
	PaneStateNone     PaneState = 0
	PaneStateClosed   PaneState = 1
	PaneStateOpen     PaneState = 2
	PaneStateOpenWide PaneState = 3
)

// SettleStates are the states a pane can come to rest in, in resolution order.
var SettleStates = [...]PaneState{PaneStateClosed, PaneStateOpen, PaneStateOpenWide}

// Revealed reports whether the state exposes a drawer.
func (s PaneState) Revealed() bool {
	return s == PaneStateOpen || s == PaneStateOpenWide
}

func (s PaneState) String() string {
	switch s {
	case PaneStateClosed:
		return "closed"
	case PaneStateOpen:
		return "open"
	case PaneStateOpenWide:
		return "open_wide"
	default:
		return "none"
	}
}

// ParsePaneState maps a CLI/config name back to a PaneState.
func ParsePaneState(name string) (PaneState, bool) {
	switch name {
	case "closed":
		return PaneStateClosed, true
	case "open":
		return PaneStateOpen, true
	case "open_wide", "openwide", "wide":
		return PaneStateOpenWide, true
	case "none", "":
		return PaneStateNone, true
	default:
		return PaneStateNone, false
	}
}
