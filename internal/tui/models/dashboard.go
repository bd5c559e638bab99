// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/session"
	"github.com/algolab/algolab/internal/tui/styles"
)

// module is one card on the dashboard.
type module struct {
	title       string
	description string
	target      Screen
	groups      func(domain.Dashboard) []domain.DataStructure
}

var dashboardModules = []module{
	{
		title:       "Sort",
		description: "Benchmark sort algorithms on the movie collection",
		target:      SortSelectScreen,
		groups:      func(d domain.Dashboard) []domain.DataStructure { return d.Sort },
	},
	{
		title:       "Search",
		description: "Find target movies with search algorithms",
		target:      SearchMoviesScreen,
		groups:      func(d domain.Dashboard) []domain.DataStructure { return d.Search },
	},
}

// Dashboard is the landing screen listing the benchmark modules.
type Dashboard struct {
	styles  *styles.Styles
	loader  *Loader
	spinner spinner.Model
	keyMap  KeyMap
	cursor  int
	width   int
	height  int
}

// NewDashboard creates the dashboard screen.
func NewDashboard(styleConfig *styles.Styles, loader *Loader) *Dashboard {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleConfig.PrimaryText

	return &Dashboard{
		styles:  styleConfig,
		loader:  loader,
		spinner: spin,
		keyMap:  DefaultKeyMap(),
	}
}

func (m *Dashboard) fetch() *session.Fetch[domain.Dashboard] {
	return m.loader.Session().Dashboard
}

// Init starts loading the modules unless they are already loaded.
func (m *Dashboard) Init() tea.Cmd {
	if m.fetch().Ready() || m.fetch().Loading() {
		return nil
	}

	return tea.Batch(m.loader.Dashboard(), m.spinner.Tick)
}

// Cursor returns the index of the highlighted module.
func (m *Dashboard) Cursor() int {
	return m.cursor
}

// Update handles messages for the dashboard.
func (m *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case ActivatedMsg:
		return m, m.Init()
	case spinner.TickMsg:
		if !m.fetch().Loading() {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Left), key.Matches(msg, m.keyMap.Up):
		m.cursor = (m.cursor + len(dashboardModules) - 1) % len(dashboardModules)
	case key.Matches(msg, m.keyMap.Right), key.Matches(msg, m.keyMap.Down):
		m.cursor = (m.cursor + 1) % len(dashboardModules)
	case key.Matches(msg, m.keyMap.Continue):
		return m, Restart(dashboardModules[m.cursor].target)
	case key.Matches(msg, m.keyMap.Retry):
		if m.fetch().Loading() {
			return m, nil
		}

		return m, tea.Batch(m.loader.Dashboard(), m.spinner.Tick)
	}

	return m, nil
}

// View renders the dashboard.
func (m *Dashboard) View() string {
	var builder strings.Builder

	builder.WriteString(m.styles.Logo())
	builder.WriteString("\n\n")

	fetch := m.fetch()

	switch {
	case fetch.Loading():
		builder.WriteString(m.spinner.View() + " Loading modules…")
	case fetch.State() == session.Failed:
		builder.WriteString(m.styles.ErrorText.Render("✗ Could not load the modules: " + fetch.Err().Error()))
		builder.WriteString("\n")
		builder.WriteString(m.styles.MutedText.Render("Press r to retry."))
	default:
		builder.WriteString(m.renderCards(fetch.Data()))
	}

	builder.WriteString("\n\n")
	builder.WriteString(RenderFooter(m.styles, m.width, ActionsOf(
		m.keyMap.Left, m.keyMap.Continue, m.keyMap.Retry, m.keyMap.Quit,
	), true))

	return builder.String()
}

func (m *Dashboard) renderCards(dashboard domain.Dashboard) string {
	cardWidth := 36
	if m.width > 0 {
		cardWidth = min(max((m.width-8)/len(dashboardModules), 24), 48)
	}

	cards := make([]string, 0, len(dashboardModules))

	for i, mod := range dashboardModules {
		style := m.styles.Card
		if i == m.cursor {
			style = m.styles.ActiveCard
		}

		var body strings.Builder

		body.WriteString(m.styles.PrimaryText.Bold(true).Render(mod.title))
		body.WriteString("\n")
		body.WriteString(m.styles.MutedText.Render(Truncate(mod.description, cardWidth-4)))
		body.WriteString("\n\n")

		groups := mod.groups(dashboard)
		if len(groups) == 0 {
			body.WriteString(m.styles.MutedText.Render("No data structures available"))
		}

		for _, group := range groups {
			line := "• " + DisplayName(group.Key, group.Name)
			if n := len(group.Algorithms); n > 0 {
				line += m.styles.MutedText.Render(" (" + pluralize(n, "algorithm") + ")")
			}

			body.WriteString(line + "\n")
		}

		cards = append(cards, style.Width(cardWidth).Render(strings.TrimRight(body.String(), "\n")))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
