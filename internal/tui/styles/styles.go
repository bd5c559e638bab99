// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles defines consistent visual styling for TUI components.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/algolab/algolab/internal/domain"
)

// Styles contains all the styles used in the TUI.
type Styles struct {
	// Color palette
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color
	Muted     lipgloss.Color

	// Component styles
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Card       lipgloss.Style
	ActiveCard lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Cursor     lipgloss.Style
	Border     lipgloss.Style

	// Text styles (cached for performance)
	MutedText   lipgloss.Style
	PrimaryText lipgloss.Style
	SuccessText lipgloss.Style
	ErrorText   lipgloss.Style
	WarningText lipgloss.Style

	// Layout styles
	Container lipgloss.Style
}

// New creates a new Styles instance with default Tokyo Night theme.
func New() *Styles {
	// Tokyo Night color palette
	primary := lipgloss.Color("#7aa2f7")    // Blue
	secondary := lipgloss.Color("#bb9af7")  // Purple
	success := lipgloss.Color("#9ece6a")    // Green
	warning := lipgloss.Color("#e0af68")    // Yellow
	errorColor := lipgloss.Color("#f7768e") // Red
	info := lipgloss.Color("#7dcfff")       // Cyan
	muted := lipgloss.Color("#565f89")      // Gray

	foreground := lipgloss.Color("#c0caf5") // Light foreground

	return &Styles{
		Primary:   primary,
		Secondary: secondary,
		Success:   success,
		Warning:   warning,
		Error:     errorColor,
		Info:      info,
		Muted:     muted,

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(secondary).
			Italic(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),

		ActiveCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),

		Unselected: lipgloss.NewStyle().
			Foreground(foreground),

		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color("#292e42")).
			Foreground(foreground),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary),

		MutedText: lipgloss.NewStyle().
			Foreground(muted),

		PrimaryText: lipgloss.NewStyle().
			Foreground(primary),

		SuccessText: lipgloss.NewStyle().
			Foreground(success),

		ErrorText: lipgloss.NewStyle().
			Foreground(errorColor),

		WarningText: lipgloss.NewStyle().
			Foreground(warning),

		Container: lipgloss.NewStyle().
			Padding(1, 2),
	}
}

// Logo returns the styled algolab banner.
func (s *Styles) Logo() string {
	return s.Title.Render("algolab") + " " + s.MutedText.Render("algorithm benchmarks")
}

// Checkbox renders the selection mark of a row.
func (s *Styles) Checkbox(selected bool) string {
	if selected {
		return s.Selected.Render("[x]")
	}

	return s.MutedText.Render("[ ]")
}

// ComplexityColor maps a complexity level to its badge color.
func (s *Styles) ComplexityColor(level domain.ComplexityLevel) lipgloss.Color {
	switch level {
	case domain.ComplexityLow:
		return s.Success
	case domain.ComplexityMedium:
		return s.Warning
	case domain.ComplexityHigh:
		return s.Error
	default:
		return s.Muted
	}
}

// ComplexityBadge renders an asymptotic notation colored by its level.
func (s *Styles) ComplexityBadge(label, notation string, level domain.ComplexityLevel) string {
	if notation == "" {
		return ""
	}

	return lipgloss.NewStyle().
		Foreground(s.ComplexityColor(level)).
		Render(label + " " + notation)
}

// StatusIcon returns styled status icons.
func (s *Styles) StatusIcon(status string) string {
	style := s.Unselected

	var icon string

	switch status {
	case "success", "ready":
		style = s.SuccessText
		icon = "✓"
	case "error", "failed":
		style = s.ErrorText
		icon = "✗"
	case "warning", "stale":
		style = s.WarningText
		icon = "!"
	case "loading":
		style = s.PrimaryText
		icon = "⚬"
	default:
		icon = "•"
	}

	return style.Render(icon)
}

// ProgressBar renders value relative to peak as a bar of width cells.
func (s *Styles) ProgressBar(value, peak float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if peak > 0 && value > 0 {
		filled = min(width, max(1, int(value/peak*float64(width)+0.5)))
	}

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		s.MutedText.Render(strings.Repeat("░", width-filled))
}

// Keybinding returns styled keybinding text.
func (s *Styles) Keybinding(key, desc string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	return keyStyle.Render("["+key+"]") + " " + s.MutedText.Render(desc)
}
