package entity

// Axis default reveal widths used when a direction has no explicit width.
const (
	DefaultRevealWidthHorizontal = 266.0
	DefaultRevealWidthVertical   = 300.0
)

// RevealWidths holds the per-direction travel distance to the Open state.
type RevealWidths struct {
	widths     map[Direction]float64
	horizontal float64
	vertical   float64
}

// NewRevealWidths creates widths with the given axis fallbacks.
// Non-positive fallbacks select the package defaults.
func NewRevealWidths(horizontal, vertical float64) *RevealWidths {
	if horizontal <= 0 {
		horizontal = DefaultRevealWidthHorizontal
	}
	if vertical <= 0 {
		vertical = DefaultRevealWidthVertical
	}
	return &RevealWidths{
		widths:     make(map[Direction]float64, 4),
		horizontal: horizontal,
		vertical:   vertical,
	}
}

// Set stores width for every cardinal direction covered by mask.
func (r *RevealWidths) Set(mask Direction, width float64) {
	for _, d := range mask.Cardinals() {
		r.widths[d] = width
	}
}

// Get returns the reveal width for d, falling back to the axis default when
// unset or zero. None yields 0.
func (r *RevealWidths) Get(d Direction) float64 {
	if !d.IsValid() {
		Violate("RevealWidths.Get", d, ErrNotNonMasked)
	}
	if w := r.widths[d]; w > 0 {
		return w
	}
	switch {
	case d.IsHorizontal():
		return r.horizontal
	case d.IsVertical():
		return r.vertical
	default:
		return 0
	}
}
