package controller

import (
	"github.com/bnema/panedrawer/internal/application/port"
	"github.com/bnema/panedrawer/internal/domain/entity"
)

// PaneContent returns the content embedded in the pane.
func (c *DrawerController) PaneContent() entity.DrawerContent { return c.paneContent }

// SetPaneContent swaps the pane content without moving the pane.
func (c *DrawerController) SetPaneContent(content entity.DrawerContent) {
	entity.MustBeComparable("DrawerController.SetPaneContent", entity.DirectionNone, content)
	if content == c.paneContent {
		return
	}
	if c.paneContent != nil {
		c.deps.Host.Unembed(c.paneContent)
	}
	c.paneContent = content
	if content != nil {
		c.deps.Host.Embed(content, port.SlotPane)
	}
}

// ReplacePaneContent swaps the pane content and closes the pane.
//
// When animated and the content differs, an open pane first slides off to
// OpenWide, the swap happens off screen, and the pane then falls closed.
// onComplete runs once the pane has closed.
func (c *DrawerController) ReplacePaneContent(content entity.DrawerContent, animated bool, onComplete func()) {
	entity.MustBeComparable("DrawerController.ReplacePaneContent", entity.DirectionNone, content)
	if !animated {
		c.SetPaneContent(content)
		c.RequestState(Request{State: entity.PaneStateClosed, OnComplete: onComplete})
		return
	}

	closeAnimated := func() {
		c.RequestState(Request{
			State:         entity.PaneStateClosed,
			Animated:      true,
			Interruptible: true,
			OnComplete:    onComplete,
		})
	}

	if content == c.paneContent {
		closeAnimated()
		return
	}
	if !c.opts.SlideOffAnimation || !c.canSlideOff() {
		c.SetPaneContent(content)
		closeAnimated()
		return
	}

	c.logger.Debug().Stringer("direction", c.slideOffDirection()).Msg("sliding pane off to replace content")
	c.RequestState(Request{
		State:     entity.PaneStateOpenWide,
		Direction: c.slideOffDirection(),
		Animated:  true,
		OnComplete: func() {
			c.SetPaneContent(content)
			closeAnimated()
		},
	})
}

func (c *DrawerController) slideOffDirection() entity.Direction {
	if c.direction != entity.DirectionNone {
		return c.direction
	}
	return c.slots.Possible()
}

func (c *DrawerController) canSlideOff() bool {
	return c.slideOffDirection().IsCardinal()
}
