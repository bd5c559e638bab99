// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/algolab/algolab/internal/tui/styles"
)

// HelpSection represents a help documentation section.
type HelpSection struct {
	Title   string
	Screens []Screen
	Content string
}

// Help is the help overlay. It opens on the section of the current screen.
type Help struct {
	styles         *styles.Styles
	width          int
	height         int
	visible        bool
	sections       []HelpSection
	viewport       viewport.Model
	renderer       *glamour.TermRenderer
	currentSection int
	keyMap         HelpKeyMap
}

// HelpKeyMap defines key bindings for the help overlay.
type HelpKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding
	Close key.Binding
}

// DefaultHelpKeyMap returns the default key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous section"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next section"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Close: key.NewBinding(
			key.WithKeys(KeyEsc, "?", "q"),
			key.WithHelp("esc", "close"),
		),
	}
}

// DefaultHelpSections returns the help content, one section per screen family.
func DefaultHelpSections() []HelpSection {
	return []HelpSection{
		{
			Title:   "Dashboard",
			Screens: []Screen{DashboardScreen},
			Content: `# Dashboard

Two modules are available. Each card lists the data structures the
benchmark service exposes for it.

| Key | Action |
|-----|--------|
| ←/→ | Choose a module |
| Enter | Start the wizard |
| r | Reload the modules |
| q | Quit |

Starting a wizard from the dashboard always begins with an empty selection.`,
		},
		{
			Title:   "Algorithms",
			Screens: []Screen{SortSelectScreen, SearchAlgorithmsScreen},
			Content: `# Selecting algorithms

Algorithms are grouped by data structure. Badges show the time (**T**) and
space (**S**) complexity, colored green, yellow or red from low to high.
Search algorithms marked *sorted* need a sorted collection.

| Key | Action |
|-----|--------|
| ↑/↓ | Move |
| Space | Toggle the algorithm under the cursor |
| a | Select all, or deselect all when everything is selected |
| Enter | Run the benchmark |
| Esc | Back |

The benchmark runs once at least one algorithm is selected.`,
		},
		{
			Title:   "Movies",
			Screens: []Screen{SearchMoviesScreen},
			Content: `# Picking target movies

The sorted collection can hold many thousands of movies. Only the rows on
screen are drawn.

| Key | Action |
|-----|--------|
| ↑/↓, PgUp/PgDn | Move |
| g / m / G | Jump to start, middle or end |
| / | Jump to a position, or type *start*, *middle*, *end* |
| Space | Toggle the movie under the cursor |
| Enter | Continue to algorithms |
| Esc | Back to the dashboard |

Positions are 1-based. Entering a position outside the collection leaves
the list where it was.`,
		},
		{
			Title:   "Results",
			Screens: []Screen{SortResultsScreen, SearchResultsScreen},
			Content: `# Results

Cards are ranked by the selected metric, lowest first. Ties keep the order
the service returned them in.

| Key | Action |
|-----|--------|
| ←/→ | Cycle time, memory, operations and iterations |
| ↑/↓ | Scroll |
| r | Run again |
| y | Copy the ranking to the clipboard |
| n | Start over with an empty selection |
| Esc | Back to the selection |

Search results also show the position each target was found at and the
metrics per target.`,
		},
	}
}

// NewHelp creates a new help overlay.
func NewHelp(styleConfig *styles.Styles) *Help {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer, _ = glamour.NewTermRenderer()
	}

	viewPort := viewport.New(80, 20)
	viewPort.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleConfig.Primary)

	helpModel := &Help{
		styles:   styleConfig,
		sections: DefaultHelpSections(),
		viewport: viewPort,
		renderer: renderer,
		keyMap:   DefaultHelpKeyMap(),
	}

	helpModel.updateContent()

	return helpModel
}

// Show opens the overlay on the section describing screen.
func (m *Help) Show(screen Screen) {
	m.visible = true
	m.currentSection = 0

	for i, section := range m.sections {
		for _, s := range section.Screens {
			if s == screen {
				m.currentSection = i
			}
		}
	}

	m.updateContent()
	m.viewport.GotoTop()
}

// Hide closes the overlay.
func (m *Help) Hide() {
	m.visible = false
}

// IsVisible reports whether the overlay is shown.
func (m *Help) IsVisible() bool {
	return m.visible
}

// CurrentSection returns the title of the shown section.
func (m *Help) CurrentSection() string {
	return m.sections[m.currentSection].Title
}

// SetSize updates the overlay dimensions.
func (m *Help) SetSize(width, height int) {
	m.width = width
	m.height = height

	frame := m.viewport.Style.GetVerticalFrameSize()
	m.viewport.Width = width
	m.viewport.Height = max(height-lipgloss.Height(m.renderHeader())-lipgloss.Height(m.renderFooter())-frame, 1)

	m.updateContent()
}

// Update handles key events while the overlay is visible.
func (m *Help) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keyMap.Close):
		m.Hide()
	case key.Matches(keyMsg, m.keyMap.Left):
		m.moveSection(-1)
	case key.Matches(keyMsg, m.keyMap.Right):
		m.moveSection(1)
	case key.Matches(keyMsg, m.keyMap.Home):
		m.viewport.GotoTop()
	case key.Matches(keyMsg, m.keyMap.End):
		m.viewport.GotoBottom()
	default:
		var cmd tea.Cmd

		m.viewport, cmd = m.viewport.Update(msg)

		return cmd
	}

	return nil
}

// View renders the overlay.
func (m *Help) View() string {
	if !m.visible {
		return ""
	}

	return m.renderHeader() + "\n" + m.viewport.View() + "\n" + m.renderFooter()
}

func (m *Help) moveSection(direction int) {
	next := m.currentSection + direction
	if next >= 0 && next < len(m.sections) {
		m.currentSection = next
		m.updateContent()
		m.viewport.GotoTop()
	}
}

func (m *Help) renderHeader() string {
	tabs := make([]string, 0, len(m.sections))

	for i, section := range m.sections {
		style := m.styles.Unselected.Padding(0, 1).Faint(true)
		if i == m.currentSection {
			style = m.styles.Selected.Padding(0, 1)
		}

		tabs = append(tabs, style.Render(section.Title))
	}

	return m.styles.Title.Render("Help") + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Help) renderFooter() string {
	return strings.Join([]string{
		m.styles.Keybinding("↑↓", "scroll"),
		m.styles.Keybinding("←→", "sections"),
		m.styles.Keybinding("g/G", "top/bottom"),
		m.styles.Keybinding("esc", "close"),
	}, "  ")
}

func (m *Help) updateContent() {
	section := m.sections[m.currentSection]

	rendered, err := m.renderer.Render(section.Content)
	if err != nil {
		rendered = section.Content
	}

	m.viewport.SetContent(rendered)
}
