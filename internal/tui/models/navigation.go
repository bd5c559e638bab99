// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements the TUI screens of the benchmark dashboard.
package models

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg is a message sent to request navigation to a specific screen.
type NavigateMsg struct {
	Screen Screen
	Reset  bool // Restart the wizard the screen belongs to
}

// Screen identifies a TUI screen.
type Screen int

// Screen constants for navigation.
const (
	DashboardScreen Screen = iota
	SortSelectScreen
	SortResultsScreen
	SearchMoviesScreen
	SearchAlgorithmsScreen
	SearchResultsScreen
)

func (s Screen) String() string {
	switch s {
	case SortSelectScreen:
		return "sort-select"
	case SortResultsScreen:
		return "sort-results"
	case SearchMoviesScreen:
		return "search-movies"
	case SearchAlgorithmsScreen:
		return "search-algorithms"
	case SearchResultsScreen:
		return "search-results"
	default:
		return "dashboard"
	}
}

// Key constants for common key inputs.
const (
	KeyCtrlC = "ctrl+c"
	KeyEnter = "enter"
	KeyEsc   = "esc"
)

// UI constants shared by list screens.
const (
	SelectedPrefix   = "❯ "
	UnselectedPrefix = "  "
	GoodbyeMessage   = "Goodbye!\n"
)

// ActivatedMsg is sent to a screen model each time it becomes the current screen.
type ActivatedMsg struct{}

// Navigate returns a command requesting navigation to screen.
func Navigate(screen Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Screen: screen} }
}

// Restart returns a command that restarts the wizard of screen and shows it.
func Restart(screen Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Screen: screen, Reset: true} }
}
