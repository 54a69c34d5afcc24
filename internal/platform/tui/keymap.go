package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zukko-arcade/internal/core"
)

// KeyMapper translates Bubble Tea input to activity input events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an input event for the mounted game.
// The second result is false for keys games do not use.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.InputEvent, bool) {
	switch k := msg.String(); k {
	case "left", "a", "h":
		return core.Press(core.ActionLeft), true
	case "right", "d", "l":
		return core.Press(core.ActionRight), true
	case "up", "w", "k":
		return core.Press(core.ActionUp), true
	case "down", "s", "j":
		return core.Press(core.ActionDown), true
	case "enter", " ":
		return core.Press(core.ActionConfirm), true
	case "r":
		return core.Press(core.ActionRestart), true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return core.Choice(int(k[0] - '0')), true
	}
	return core.InputEvent{}, false
}

// MapMouse translates a mouse message. Motion becomes a pointer sample and a
// left press becomes a click.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.InputEvent, bool) {
	switch {
	case msg.Action == tea.MouseActionMotion:
		return core.Pointer(msg.X, msg.Y), true
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return core.InputEvent{Kind: core.InputClick, X: msg.X, Y: msg.Y}, true
	}
	return core.InputEvent{}, false
}

// GlobalKeyMap holds the keys handled by the host on every screen.
type GlobalKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

// DefaultGlobalKeyMap returns default global bindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "home"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// HomeKeyMap defines the key bindings for the home menu.
type HomeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HomeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HomeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Quit}}
}

// DefaultHomeKeyMap returns default home bindings.
func DefaultHomeKeyMap() HomeKeyMap {
	return HomeKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RewardKeyMap defines the key bindings for the buddy reward screen.
type RewardKeyMap struct {
	Riddle key.Binding
	Praise key.Binding
	Fact   key.Binding
	Home   key.Binding
	Up     key.Binding
	Down   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RewardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Riddle, k.Praise, k.Fact, k.Home}
}

// FullHelp returns key bindings for the full help view.
func (k RewardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Riddle, k.Praise, k.Fact}, {k.Up, k.Down, k.Home}}
}

// DefaultRewardKeyMap returns default reward bindings.
func DefaultRewardKeyMap() RewardKeyMap {
	return RewardKeyMap{
		Riddle: key.NewBinding(
			key.WithKeys("r", "1"),
			key.WithHelp("r", "riddle"),
		),
		Praise: key.NewBinding(
			key.WithKeys("p", "2"),
			key.WithHelp("p", "praise me"),
		),
		Fact: key.NewBinding(
			key.WithKeys("f", "3"),
			key.WithHelp("f", "fun fact"),
		),
		Home: key.NewBinding(
			key.WithKeys("h", "enter"),
			key.WithHelp("h/esc", "home"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "scroll"),
		),
	}
}
