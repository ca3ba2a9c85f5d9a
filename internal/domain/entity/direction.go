// Package entity contains domain entities representing core drawer concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "strings"

// Direction is a bitmask over the four pane edges a drawer can be revealed from.
// Cardinal values name a single edge; Horizontal, Vertical and All are composite
// masks used only for batch operations and are never valid runtime state.
type Direction uint8

const (
	DirectionNone   Direction = 0
	DirectionTop    Direction = 1 << 0
	DirectionLeft   Direction = 1 << 1
	DirectionBottom Direction = 1 << 2
	DirectionRight  Direction = 1 << 3

	DirectionHorizontal = DirectionLeft | DirectionRight
	DirectionVertical   = DirectionTop | DirectionBottom
	DirectionAll        = DirectionTop | DirectionLeft | DirectionBottom | DirectionRight
)

// canonicalDirections is the fixed enumeration order. Notification ordering
// depends on it, so it must not be reordered.
var canonicalDirections = [...]Direction{
	DirectionNone,
	DirectionTop,
	DirectionLeft,
	DirectionBottom,
	DirectionRight,
	DirectionHorizontal,
	DirectionVertical,
	DirectionAll,
}

// CanonicalDirections returns the eight canonical direction values in their fixed order.
func CanonicalDirections() []Direction {
	out := make([]Direction, len(canonicalDirections))
	copy(out, canonicalDirections[:])
	return out
}

// And returns the intersection of two masks.
func (d Direction) And(other Direction) Direction { return d & other }

// Or returns the union of two masks.
func (d Direction) Or(other Direction) Direction { return d | other }

// Xor toggles the bits of other in d.
func (d Direction) Xor(other Direction) Direction { return d ^ other }

// Has reports whether any bit of other is set in d.
func (d Direction) Has(other Direction) bool { return d&other != DirectionNone }

// Contains reports whether every bit of other is set in d.
func (d Direction) Contains(other Direction) bool { return d&other == other }

// IsValid reports whether d is one of the eight canonical values.
func (d Direction) IsValid() bool {
	for _, c := range canonicalDirections {
		if c == d {
			return true
		}
	}
	return false
}

// IsCardinal reports whether d names exactly one edge.
func (d Direction) IsCardinal() bool {
	switch d {
	case DirectionTop, DirectionLeft, DirectionBottom, DirectionRight:
		return true
	default:
		return false
	}
}

// IsNonMasked reports whether d is cardinal or None.
func (d Direction) IsNonMasked() bool {
	return d == DirectionNone || d.IsCardinal()
}

// IsHorizontal reports whether d has a bit on the left/right axis.
func (d Direction) IsHorizontal() bool { return d.Has(DirectionHorizontal) }

// IsVertical reports whether d has a bit on the top/bottom axis.
func (d Direction) IsVertical() bool { return d.Has(DirectionVertical) }

// Axis returns the composite mask of the axis d lies on, or None.
// A mask spanning both axes reports Horizontal.
func (d Direction) Axis() Direction {
	switch {
	case d.IsHorizontal():
		return DirectionHorizontal
	case d.IsVertical():
		return DirectionVertical
	default:
		return DirectionNone
	}
}

// Leading reports whether d opens toward positive coordinates (Top or Left).
func (d Direction) Leading() bool {
	return d.Has(DirectionTop | DirectionLeft)
}

// Opposite returns the other cardinal direction on the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionTop:
		return DirectionBottom
	case DirectionBottom:
		return DirectionTop
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	default:
		return DirectionNone
	}
}

// ForEachMaskedDirection invokes action once per non-None canonical direction
// whose bits are all contained in mask, in canonical order.
func ForEachMaskedDirection(mask Direction, action func(Direction)) {
	for _, c := range canonicalDirections {
		if c == DirectionNone {
			continue
		}
		if mask.Contains(c) {
			action(c)
		}
	}
}

// Cardinals fans d out into the cardinal directions it covers, in canonical order.
func (d Direction) Cardinals() []Direction {
	var out []Direction
	ForEachMaskedDirection(d, func(c Direction) {
		if c.IsCardinal() {
			out = append(out, c)
		}
	})
	return out
}

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionTop:
		return "top"
	case DirectionLeft:
		return "left"
	case DirectionBottom:
		return "bottom"
	case DirectionRight:
		return "right"
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	case DirectionAll:
		return "all"
	}
	parts := make([]string, 0, 4)
	for _, c := range d.Cardinals() {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, "|")
}

// ParseDirection maps a config/CLI name back to a Direction.
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return DirectionNone, true
	case "top", "up":
		return DirectionTop, true
	case "left":
		return DirectionLeft, true
	case "bottom", "down":
		return DirectionBottom, true
	case "right":
		return DirectionRight, true
	case "horizontal":
		return DirectionHorizontal, true
	case "vertical":
		return DirectionVertical, true
	case "all":
		return DirectionAll, true
	default:
		return DirectionNone, false
	}
}
