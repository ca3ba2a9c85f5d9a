package model

import (
	"fmt"

	"github.com/bnema/panedrawer/internal/application/port"
	"github.com/bnema/panedrawer/internal/domain/entity"
)

const maxEvents = 4

// label is a named piece of playground content.
type label struct {
	name string
}

func (l *label) ContentID() string { return l.name }

// surface is the terminal side of the drawer controller. It tracks what sits
// in each slot, records transitions, and mirrors styler updates and input
// locks for the status line.
type surface struct {
	slots map[port.SlotID]entity.DrawerContent

	events []string

	fraction  float64
	styled    entity.Direction
	attached  bool
	inputLock bool
	paneLock  bool
}

func newSurface() *surface {
	return &surface{
		slots:    make(map[port.SlotID]entity.DrawerContent, 2),
		fraction: 1,
	}
}

func (s *surface) Embed(content entity.DrawerContent, slot port.SlotID) {
	s.slots[slot] = content
}

func (s *surface) Unembed(content entity.DrawerContent) {
	for slot, c := range s.slots {
		if c == content {
			delete(s.slots, slot)
		}
	}
}

func (s *surface) slotName(slot port.SlotID) string {
	if c, ok := s.slots[slot]; ok && c != nil {
		return c.ContentID()
	}
	return ""
}

func (s *surface) MayTransition(state entity.PaneState, direction entity.Direction) {
	s.record(fmt.Sprintf("may %s %s", state, direction))
}

func (s *surface) DidTransition(state entity.PaneState, direction entity.Direction) {
	s.record(fmt.Sprintf("did %s %s", state, direction))
}

func (s *surface) ShouldBeginGesture() bool { return true }

func (s *surface) SetUserInteractionEnabled(enabled bool) { s.inputLock = !enabled }
func (s *surface) SetPaneInteractionEnabled(enabled bool) { s.paneLock = !enabled }

func (s *surface) OnAttach(entity.Direction) { s.attached = true }
func (s *surface) OnDetach(entity.Direction) { s.attached = false }

func (s *surface) OnUpdate(closedFraction float64, direction entity.Direction) {
	s.fraction = closedFraction
	s.styled = direction
}

func (s *surface) record(event string) {
	s.events = append(s.events, event)
	if len(s.events) > maxEvents {
		s.events = s.events[len(s.events)-maxEvents:]
	}
}

var (
	_ port.ContainerHost      = (*surface)(nil)
	_ port.TransitionDelegate = (*surface)(nil)
	_ port.InteractionToggle  = (*surface)(nil)
	_ port.StylerPlugin       = (*surface)(nil)
)
