package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// DrawerKeyMap defines keybindings for the drawer playground.
type DrawerKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	OpenWide key.Binding
	Close    key.Binding
	Bounce   key.Binding
	Replace  key.Binding
	Tap      key.Binding
	Animate  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DrawerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.OpenWide, k.Close, k.Bounce, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k DrawerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Open, k.OpenWide, k.Close},
		{k.Bounce, k.Replace, k.Tap, k.Animate},
		{k.Help, k.Quit},
	}
}

// DefaultDrawerKeyMap returns the default playground keybindings.
func DefaultDrawerKeyMap() DrawerKeyMap {
	return DrawerKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left drawer"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right drawer"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "top drawer"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "bottom drawer"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open"),
		),
		OpenWide: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "open wide"),
		),
		Close: key.NewBinding(
			key.WithKeys("c", "esc"),
			key.WithHelp("c", "close"),
		),
		Bounce: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bounce"),
		),
		Replace: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replace pane"),
		),
		Tap: key.NewBinding(
			key.WithKeys("t", "enter"),
			key.WithHelp("t", "tap pane"),
		),
		Animate: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle animation"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
