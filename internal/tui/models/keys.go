// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings shared by the screens. Each screen uses the
// subset that applies to it.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Start      key.Binding
	Middle     key.Binding
	End        key.Binding
	Jump       key.Binding
	Toggle     key.Binding
	ToggleAll  key.Binding
	Continue   key.Binding
	Back       key.Binding
	Retry      key.Binding
	Restart    key.Binding
	Copy       key.Binding
	PrevMetric key.Binding
	NextMetric key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "K"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "J"),
			key.WithHelp("pgdn", "page down"),
		),
		Start: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "start"),
		),
		Middle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "middle"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "end"),
		),
		Jump: key.NewBinding(
			key.WithKeys("/", ":"),
			key.WithHelp("/", "jump"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		Continue: key.NewBinding(
			key.WithKeys(KeyEnter),
			key.WithHelp("enter", "continue"),
		),
		Back: key.NewBinding(
			key.WithKeys(KeyEsc, "backspace"),
			key.WithHelp("esc", "back"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Restart: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new run"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		PrevMetric: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev metric"),
		),
		NextMetric: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→", "next metric"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", KeyCtrlC),
			key.WithHelp("q", "quit"),
		),
	}
}
