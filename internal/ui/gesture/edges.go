package gesture

import "github.com/bnema/panedrawer/internal/domain/entity"

// DefaultEdgeThreshold is the distance from a pane edge within which a pan
// counts as an edge pan.
const DefaultEdgeThreshold = 24.0

// StartEdges returns the mask of pane edges the start point lies within
// threshold of. start is relative to the pane's own origin.
func StartEdges(start, paneSize entity.Point, threshold float64) entity.Direction {
	var edges entity.Direction
	if start.Y < threshold {
		edges |= entity.DirectionTop
	}
	if start.X < threshold {
		edges |= entity.DirectionLeft
	}
	if paneSize.Y-start.Y < threshold {
		edges |= entity.DirectionBottom
	}
	if paneSize.X-start.X < threshold {
		edges |= entity.DirectionRight
	}
	return edges
}

// EdgeGate reports whether a gesture starting at start may proceed when edge
// pans are required: it must begin near an edge that has a drawer.
func EdgeGate(start, paneSize entity.Point, threshold float64, possible entity.Direction) bool {
	return StartEdges(start, paneSize, threshold).Has(possible)
}
