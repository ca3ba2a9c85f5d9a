package entity

// DrawerContent is an opaque handle to the content shown in a drawer or pane.
// Handles are compared with ==, so the dynamic type must be comparable;
// registering a non-comparable handle is a precondition violation. Pointers
// give identity semantics.
type DrawerContent interface {
	ContentID() string
}

// DrawerSlots maps cardinal directions to drawer content. The occupied
// directions always lie on a single axis.
type DrawerSlots struct {
	slots    map[Direction]DrawerContent
	possible Direction
}

// NewDrawerSlots creates an empty registry.
func NewDrawerSlots() *DrawerSlots {
	return &DrawerSlots{slots: make(map[Direction]DrawerContent, 2)}
}

// SlotChange describes the effect of a Set call.
type SlotChange int

const (
	SlotUnchanged SlotChange = iota
	SlotAdded
	SlotRemoved
	SlotReplaced
)

// Set registers content for direction, or clears it when content is nil.
// It returns the previous content along with what changed.
func (s *DrawerSlots) Set(direction Direction, content DrawerContent) (DrawerContent, SlotChange) {
	const op = "DrawerSlots.Set"
	MustBeCardinal(op, direction)

	if content != nil {
		MustBeComparable(op, direction, content)
		for d, existing := range s.slots {
			if d != direction && existing == content {
				Violate(op, direction, ErrDuplicateDrawer)
			}
		}
		if direction.IsHorizontal() && s.possible.IsVertical() {
			Violate(op, direction, ErrCrossAxisDrawer)
		}
		if direction.IsVertical() && s.possible.IsHorizontal() {
			Violate(op, direction, ErrCrossAxisDrawer)
		}
	}

	existing, ok := s.slots[direction]
	switch {
	case content != nil && !ok:
		s.possible = s.possible.Or(direction)
		s.slots[direction] = content
		return nil, SlotAdded
	case content == nil && ok:
		s.possible = s.possible.Xor(direction)
		delete(s.slots, direction)
		return existing, SlotRemoved
	case content != nil && ok:
		s.slots[direction] = content
		if existing == content {
			return existing, SlotUnchanged
		}
		return existing, SlotReplaced
	default:
		return nil, SlotUnchanged
	}
}

// Get returns the content registered for a cardinal direction.
func (s *DrawerSlots) Get(direction Direction) DrawerContent {
	MustBeCardinal("DrawerSlots.Get", direction)
	return s.slots[direction]
}

// Lookup is Get without the cardinality precondition; None yields nil.
func (s *DrawerSlots) Lookup(direction Direction) DrawerContent {
	return s.slots[direction]
}

// Possible returns the OR of all occupied directions.
func (s *DrawerSlots) Possible() Direction {
	return s.possible
}

// Occupied returns the occupied directions in canonical order.
func (s *DrawerSlots) Occupied() []Direction {
	return s.possible.Cardinals()
}

// Len returns the number of registered drawers.
func (s *DrawerSlots) Len() int {
	return len(s.slots)
}
