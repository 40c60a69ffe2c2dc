// Package keymap holds the terminal key bindings shared by the tui and
// console frontends. Bindings are bubbles key.Binding values so both hosts
// render the same help text.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyMap defines the keybindings for a running game.
type KeyMap struct {
	RotateLeft  key.Binding
	RotateRight key.Binding
	Thrust      key.Binding
	Shoot       key.Binding
	Pause       key.Binding
	Help        key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RotateLeft, k.RotateRight, k.Thrust, k.Shoot, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RotateLeft, k.RotateRight, k.Thrust, k.Shoot},
		{k.Pause, k.Screenshot, k.Help, k.Quit},
	}
}

// Default returns the standard bindings.
func Default() KeyMap {
	return KeyMap{
		RotateLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "rotate left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "rotate right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust"),
		),
		Shoot: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "shoot"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key name, as produced by tea.KeyMsg.String(), into a
// game action. Unbound keys map to ActionNone.
func (k KeyMap) Action(name string) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.RotateLeft, core.ActionRotateLeft},
		{k.RotateRight, core.ActionRotateRight},
		{k.Thrust, core.ActionThrust},
		{k.Shoot, core.ActionShoot},
		{k.Pause, core.ActionPause},
		{k.Help, core.ActionHelp},
		{k.Screenshot, core.ActionScreenshot},
	}

	for _, b := range bindings {
		if !b.binding.Enabled() {
			continue
		}
		for _, bound := range b.binding.Keys() {
			if bound == name {
				return b.action
			}
		}
	}
	return core.ActionNone
}
