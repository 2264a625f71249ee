package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tower-climber/internal/core"
)

// PlayerKeys are the movement bindings of one player slot.
type PlayerKeys struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Shoot key.Binding
}

// bindings pairs each binding with the action it produces.
func (p PlayerKeys) bindings() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{p.Left, core.ActionLeft},
		{p.Right, core.ActionRight},
		{p.Up, core.ActionUp},
		{p.Down, core.ActionDown},
		{p.Shoot, core.ActionShoot},
	}
}

// KeyMap holds the in-game bindings for both players plus global keys.
type KeyMap struct {
	Players [core.MaxPlayers]PlayerKeys
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings: P1 on WASD and space,
// P2 on the arrows and slash.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Players: [core.MaxPlayers]PlayerKeys{
			{
				Left:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "P1 left")),
				Right: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "P1 right")),
				Up:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "P1 jump/climb")),
				Down:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "P1 down")),
				Shoot: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "P1 shoot")),
			},
			{
				Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "P2 left")),
				Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "P2 right")),
				Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "P2 jump/climb")),
				Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "P2 down")),
				Shoot: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "P2 shoot")),
			},
		},
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	p1, p2 := k.Players[0], k.Players[1]
	return [][]key.Binding{
		{p1.Left, p1.Right, p1.Up, p1.Down, p1.Shoot},
		{p2.Left, p2.Right, p2.Up, p2.Down, p2.Shoot},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// Lookup translates a key message to a player action. Global keys other than
// quit and back map to Player1. ok is false for unbound keys.
func (k KeyMap) Lookup(msg tea.KeyMsg) (id core.PlayerID, action core.Action, ok bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Player1, core.ActionQuit, true
	case key.Matches(msg, k.Pause):
		return core.Player1, core.ActionPause, true
	case key.Matches(msg, k.Restart):
		return core.Player1, core.ActionRestart, true
	}

	for slot, p := range k.Players {
		for _, b := range p.bindings() {
			if key.Matches(msg, b.binding) {
				return core.PlayerID(slot), b.action, true
			}
		}
	}
	return core.Player1, core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
