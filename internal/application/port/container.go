package port

import "github.com/bnema/panedrawer/internal/domain/entity"

// SlotID names a place in the host container that content can be embedded into.
type SlotID string

const (
	// SlotPane holds the primary pane content.
	SlotPane SlotID = "pane"
	// SlotDrawer holds the drawer revealed behind the pane.
	SlotDrawer SlotID = "drawer"
)

// ContainerHost embeds pane and drawer content into the host view hierarchy.
// The drawer controller decides what goes where; the host owns layout.
type ContainerHost interface {
	// Embed places content into slot, replacing nothing: callers unembed first.
	Embed(content entity.DrawerContent, slot SlotID)

	// Unembed removes content from whichever slot holds it.
	Unembed(content entity.DrawerContent)
}
