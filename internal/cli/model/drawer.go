package model

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/panedrawer/internal/application/port"
	"github.com/bnema/panedrawer/internal/cli/styles"
	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/logging"
	"github.com/bnema/panedrawer/internal/ui/controller"
)

// Terminal cells are mapped onto pane units with a fixed size.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// status line, event line, help line
	chromeLines = 3
)

// frameMsg advances the physics loop by one frame.
type frameMsg struct{}

// ConfigReloadedMsg carries new controller tuning from a watched config file.
type ConfigReloadedMsg struct {
	Options controller.Options
}

// DrawerModel is an interactive playground for the drawer controller. The
// whole terminal is the container; the pane is dragged with the mouse and
// driven from the keyboard.
type DrawerModel struct {
	driver  *controller.Driver
	surface *surface

	keys     styles.DrawerKeyMap
	help     help.Model
	theme    *styles.Theme
	trace    *styles.TraceRenderer
	showHelp bool

	axis     entity.Direction
	selected entity.Direction
	animated bool
	frame    time.Duration
	ticking  bool

	width  int
	height int

	dragging bool
	moved    bool
	pressAt  entity.Point
	replaced int

	ctx context.Context
}

// NewDrawerModel creates a playground with drawers on both edges of axis.
func NewDrawerModel(ctx context.Context, theme *styles.Theme, opts controller.Options, axis entity.Direction) DrawerModel {
	if axis != entity.DirectionVertical {
		axis = entity.DirectionHorizontal
	}

	s := newSurface()
	ctx = logging.WithComponent(ctx, "playground")
	driver := controller.NewDriver(ctx, paneSize(defaultWidth, defaultHeight), opts, controller.Deps{
		Host:        s,
		Delegate:    s,
		Interaction: s,
	})

	cardinals := axis.Cardinals()
	for _, d := range cardinals {
		driver.SetDrawer(d, &label{name: d.String() + " drawer"})
	}
	driver.SetPaneContent(&label{name: "pane"})
	driver.AddStyler(s, axis)

	frame := opts.FrameInterval
	if frame <= 0 {
		frame = controller.DefaultOptions().FrameInterval
	}

	return DrawerModel{
		driver:   driver,
		surface:  s,
		keys:     styles.DefaultDrawerKeyMap(),
		help:     styles.NewStyledHelp(theme),
		theme:    theme,
		trace:    styles.NewTraceRenderer(theme),
		axis:     axis,
		selected: cardinals[0],
		animated: true,
		frame:    frame,
		width:    defaultWidth,
		height:   defaultHeight,
		ctx:      ctx,
	}
}

// Init implements tea.Model.
func (DrawerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DrawerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.driver.SetPaneSize(paneSize(m.width, m.height))
		return m, nil

	case frameMsg:
		if m.driver.Advance() {
			return m, m.tick()
		}
		m.ticking = false
		return m, nil

	case ConfigReloadedMsg:
		m.driver.Reconfigure(msg.Options)
		if msg.Options.FrameInterval > 0 {
			m.frame = msg.Options.FrameInterval
		}
		m.surface.record("config reloaded")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, m.ensureTicking()
	}
	return m, nil
}

func (m DrawerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.driver.Destroy()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Left):
		m.selectDirection(entity.DirectionLeft)
	case key.Matches(msg, m.keys.Right):
		m.selectDirection(entity.DirectionRight)
	case key.Matches(msg, m.keys.Up):
		m.selectDirection(entity.DirectionTop)
	case key.Matches(msg, m.keys.Down):
		m.selectDirection(entity.DirectionBottom)
	case key.Matches(msg, m.keys.Animate):
		m.animated = !m.animated
	case key.Matches(msg, m.keys.Open):
		m.request(entity.PaneStateOpen, m.selected)
	case key.Matches(msg, m.keys.OpenWide):
		m.request(entity.PaneStateOpenWide, m.selected)
	case key.Matches(msg, m.keys.Close):
		m.request(entity.PaneStateClosed, entity.DirectionNone)
	case key.Matches(msg, m.keys.Bounce):
		m.driver.BouncePaneOpen(m.selected, true, func() { m.surface.record("bounced") })
	case key.Matches(msg, m.keys.Replace):
		m.replaced++
		next := &label{name: fmt.Sprintf("pane #%d", m.replaced)}
		m.driver.ReplacePaneContent(next, m.animated, func() { m.surface.record("replaced " + next.name) })
	case key.Matches(msg, m.keys.Tap):
		if !m.driver.Tap() {
			m.surface.record("tap ignored")
		}
	}
	return m, m.ensureTicking()
}

func (m *DrawerModel) selectDirection(d entity.Direction) {
	if m.driver.PossibleDirections().Has(d) {
		m.selected = d
	}
}

func (m *DrawerModel) request(state entity.PaneState, direction entity.Direction) {
	if !m.driver.UserInteractionEnabled() {
		m.surface.record("locked")
		return
	}
	m.driver.DrawerController.RequestState(controller.Request{
		State:         state,
		Direction:     direction,
		Animated:      m.animated,
		Interruptible: true,
		OnComplete:    func() { m.surface.record("settled " + state.String()) },
	})
}

func (m *DrawerModel) handleMouse(msg tea.MouseMsg) {
	if tea.MouseEvent(msg).IsWheel() || (msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonLeft) {
		return
	}
	loc := cellCenter(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Y >= m.stageRows() {
			return
		}
		m.pressAt = loc
		m.moved = false
		m.dragging = m.driver.BeginPan(loc)
	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		if loc != m.pressAt {
			m.moved = true
		}
		m.driver.MovePan(loc)
		if !m.driver.Panning() {
			m.dragging = false
		}
	case tea.MouseActionRelease:
		wasDragging := m.dragging
		m.dragging = false
		if wasDragging && m.moved {
			m.driver.EndPan(loc, entity.Point{})
			return
		}
		if wasDragging {
			m.driver.CancelPan()
		}
		if m.onPane(loc) {
			m.driver.Tap()
		}
	}
}

func (m DrawerModel) onPane(loc entity.Point) bool {
	rect := entity.PaneRect{Origin: m.driver.Origin(), Size: m.driver.PaneSize()}
	return rect.Box().Contains(loc)
}

func (m *DrawerModel) ensureTicking() tea.Cmd {
	if m.ticking || !m.driver.Pending() {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m DrawerModel) tick() tea.Cmd {
	return tea.Tick(m.frame, func(time.Time) tea.Msg { return frameMsg{} })
}

// View implements tea.Model.
func (m DrawerModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderStage())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(m.theme.Subtle.Render(strings.Join(m.surface.events, "  ·  ")))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m DrawerModel) renderStatus() string {
	parts := []string{m.trace.RenderSnapshot(m.driver.Snapshot())}

	mode := "instant"
	if m.animated {
		mode = "animated"
	}
	parts = append(parts,
		m.theme.BadgeMuted.Render(mode),
		m.theme.Subtle.Render("target "+m.selected.String()),
	)
	if m.surface.attached {
		parts = append(parts, m.theme.Subtle.Render(fmt.Sprintf("fx %.2f %s", m.surface.fraction, m.surface.styled)))
	}
	if m.surface.inputLock {
		parts = append(parts, m.theme.WarningStyle.Render(styles.IconWarning+" locked"))
	}
	return strings.Join(parts, " ")
}

func (m DrawerModel) stageRows() int {
	return max(m.height-chromeLines, 1)
}

// renderStage draws the container: drawer cells behind the pane, pane cells
// at the pane origin, each with its content label.
func (m DrawerModel) renderStage() string {
	cols, rows := max(m.width, 1), m.stageRows()
	origin := m.driver.Origin()
	px := int(math.Round(origin.X / CellWidth))
	py := int(math.Round(origin.Y / CellHeight))

	grid := make([][]rune, rows)
	pane := make([][]bool, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
		pane[r] = make([]bool, cols)
		for c := range pane[r] {
			pane[r][c] = r >= py && r < py+rows && c >= px && c < px+cols
		}
	}

	place(grid, px+cols/2, py+rows/2, m.surface.slotName(port.SlotPane))

	x0, x1, y0, y1 := 0, cols, 0, rows
	switch {
	case px > 0:
		x1 = px
	case px < 0:
		x0 = px + cols
	case py > 0:
		y1 = py
	case py < 0:
		y0 = py + rows
	default:
		x1 = 0
	}
	if x1 > x0 && y1 > y0 {
		place(grid, (x0+x1)/2, (y0+y1)/2, m.surface.slotName(port.SlotDrawer))
	}

	lines := make([]string, rows)
	for r := range grid {
		lines[r] = m.renderRow(grid[r], pane[r])
	}
	return strings.Join(lines, "\n")
}

func (m DrawerModel) renderRow(cells []rune, pane []bool) string {
	var sb strings.Builder
	start := 0
	for c := 1; c <= len(cells); c++ {
		if c < len(cells) && pane[c] == pane[start] {
			continue
		}
		style := m.theme.Drawer
		if pane[start] {
			style = m.theme.Pane
		}
		sb.WriteString(style.Render(string(cells[start:c])))
		start = c
	}
	return sb.String()
}

// place writes text centered on column cx of row cy, clipped to the grid.
func place(grid [][]rune, cx, cy int, text string) {
	if text == "" || cy < 0 || cy >= len(grid) {
		return
	}
	row := grid[cy]
	runes := []rune(text)
	start := cx - lipgloss.Width(text)/2
	for i, r := range runes {
		if c := start + i; c >= 0 && c < len(row) {
			row[c] = r
		}
	}
}

func paneSize(width, height int) entity.Point {
	return entity.Point{
		X: float64(max(width, 1)) * CellWidth,
		Y: float64(max(height-chromeLines, 1)) * CellHeight,
	}
}

func cellCenter(x, y int) entity.Point {
	return entity.Point{
		X: (float64(x) + 0.5) * CellWidth,
		Y: (float64(y) + 0.5) * CellHeight,
	}
}

// Snapshot exposes the pane state for callers embedding the model.
func (m DrawerModel) Snapshot() entity.PaneSnapshot {
	return m.driver.Snapshot()
}
