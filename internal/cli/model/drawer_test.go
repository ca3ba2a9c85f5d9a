package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panedrawer/internal/cli/styles"
	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/ui/controller"
)

const frameLimit = 1000

func newTestModel(t *testing.T, axis entity.Direction) DrawerModel {
	t.Helper()
	m := NewDrawerModel(context.Background(), styles.NewTheme(), controller.DefaultOptions(), axis)
	t.Cleanup(m.driver.Destroy)
	return m
}

func press(m DrawerModel, msg tea.Msg) (DrawerModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(DrawerModel), cmd
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// settle feeds frames for as long as the model keeps asking for them.
func settle(t *testing.T, m DrawerModel, cmd tea.Cmd) DrawerModel {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, frameLimit, "pane never settled")
		m, cmd = press(m, frameMsg{})
	}
	return m
}

func TestDrawerModel_OpenAnimatesToOpen(t *testing.T) {
	m := newTestModel(t, entity.DirectionHorizontal)

	m, cmd := press(m, keyMsg('o'))
	require.NotNil(t, cmd, "animated open schedules frames")
	assert.True(t, m.ticking)

	m = settle(t, m, cmd)

	snap := m.Snapshot()
	assert.Equal(t, entity.PaneStateOpen, snap.State)
	assert.Equal(t, entity.DirectionLeft, snap.Direction)
	assert.False(t, m.ticking)
	assert.Contains(t, m.surface.events, "did open left")
	assert.Contains(t, m.surface.events, "settled open")
}

func TestDrawerModel_InstantOpenWideThenClose(t *testing.T) {
	m := newTestModel(t, entity.DirectionHorizontal)

	m, _ = press(m, keyMsg('a'))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := press(m, keyMsg('w'))

	assert.Nil(t, cmd)
	assert.Equal(t, entity.PaneStateOpenWide, m.Snapshot().State)
	assert.Equal(t, entity.DirectionRight, m.Snapshot().Direction)
	assert.Equal(t, "right drawer", m.surface.slotName("drawer"))

	m, cmd = press(m, keyMsg('c'))
	assert.Nil(t, cmd)
	assert.Equal(t, entity.PaneStateClosed, m.Snapshot().State)
}

func TestDrawerModel_SelectIgnoresImpossibleDirection(t *testing.T) {
	m := newTestModel(t, entity.DirectionHorizontal)

	m, _ = press(m, keyMsg('k'))

	assert.Equal(t, entity.DirectionLeft, m.selected)
}

func TestDrawerModel_MouseDragOpensLeft(t *testing.T) {
	m := newTestModel(t, entity.DirectionHorizontal)

	m, _ = press(m, mouse(tea.MouseActionPress, 1, 5))
	require.True(t, m.dragging)
	m, _ = press(m, mouse(tea.MouseActionMotion, 30, 5))
	assert.True(t, m.moved)
	m, cmd := press(m, mouse(tea.MouseActionRelease, 30, 5))
	assert.False(t, m.dragging)

	m = settle(t, m, cmd)

	snap := m.Snapshot()
	assert.True(t, snap.State.Revealed(), "state %s", snap.State)
	assert.Equal(t, entity.DirectionLeft, snap.Direction)
}

func TestDrawerModel_TapClosesOpenPane(t *testing.T) {
	m := newTestModel(t, entity.DirectionHorizontal)
	m, _ = press(m, keyMsg('a'))
	m, _ = press(m, keyMsg('o'))
	require.Equal(t, entity.PaneStateOpen, m.Snapshot().State)

	// Column 60 is inside the pane once it is shifted right by the reveal width.
	m, _ = press(m, mouse(tea.MouseActionPress, 60, 5))
	m, cmd := press(m, mouse(tea.MouseActionRelease, 60, 5))
	m = settle(t, m, cmd)

	assert.Equal(t, entity.PaneStateClosed, m.Snapshot().State)
}

func TestDrawerModel_ResizeUpdatesPaneSize(t *testing.T) {
	m := newTestModel(t, entity.DirectionVertical)

	m, _ = press(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, entity.Point{X: 800, Y: 37 * CellHeight}, m.driver.PaneSize())
	assert.Equal(t, entity.DirectionTop, m.selected)
}

func TestDrawerModel_ReplacePaneContent(t *testing.T) {
	m := newTestModel(t, entity.DirectionHorizontal)

	m, cmd := press(m, keyMsg('r'))
	m = settle(t, m, cmd)

	assert.Equal(t, "pane #1", m.surface.slotName("pane"))
	assert.Contains(t, m.surface.events, "replaced pane #1")
	assert.Equal(t, entity.PaneStateClosed, m.Snapshot().State)
}

func TestDrawerModel_ConfigReload(t *testing.T) {
	m := newTestModel(t, entity.DirectionHorizontal)
	opts := controller.DefaultOptions()
	opts.RevealWidths = map[entity.Direction]float64{entity.DirectionHorizontal: 160}

	m, _ = press(m, ConfigReloadedMsg{Options: opts})

	assert.Equal(t, 160.0, m.driver.RevealWidth(entity.DirectionLeft))
	assert.Contains(t, m.surface.events, "config reloaded")
}

func TestDrawerModel_ViewShowsLabelsAndState(t *testing.T) {
	m := newTestModel(t, entity.DirectionHorizontal)
	m, _ = press(m, keyMsg('a'))
	m, _ = press(m, keyMsg('o'))

	view := m.View()

	assert.Contains(t, view, "pane")
	assert.Contains(t, view, "left drawer")
	assert.Contains(t, view, "instant")
}

func TestDrawerModel_Quit(t *testing.T) {
	m := newTestModel(t, entity.DirectionHorizontal)

	_, cmd := press(m, keyMsg('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
