// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/ordering"
	"github.com/algolab/algolab/internal/session"
	"github.com/algolab/algolab/internal/tui/styles"
)

// resultsChrome is the number of lines around the result cards.
const resultsChrome = 7

// Results shows benchmark results ranked by the selected metric.
type Results struct {
	styles   *styles.Styles
	loader   *Loader
	wizard   Wizard
	step     *session.ResultsStep
	spinner  spinner.Model
	viewport viewport.Model
	keyMap   KeyMap
	notice   string
	copyText func(string) error

	width  int
	height int
}

// NewResults creates the results screen of wizard.
func NewResults(styleConfig *styles.Styles, loader *Loader, wizard Wizard) *Results {
	step := loader.Session().SortResults
	if wizard == SearchWizard {
		step = loader.Session().SearchResults
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleConfig.PrimaryText

	return &Results{
		styles:   styleConfig,
		loader:   loader,
		wizard:   wizard,
		step:     step,
		spinner:  spin,
		viewport: viewport.New(80, 20),
		keyMap:   DefaultKeyMap(),
		copyText: clipboard.WriteAll,
	}
}

// Init starts the spinner while the run is outstanding.
func (m *Results) Init() tea.Cmd {
	m.updateContent()

	if m.step.Loading() {
		return m.spinner.Tick
	}

	return nil
}

// Metric returns the metric the cards are ranked by.
func (m *Results) Metric() domain.Metric {
	return m.step.Metric()
}

// Update handles messages for the results screen.
func (m *Results) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-resultsChrome, 1)
		m.updateContent()
	case ActivatedMsg:
		m.notice = ""
		m.viewport.GotoTop()

		return m, m.Init()
	case ResultsLoadedMsg:
		if msg.Wizard == m.wizard {
			m.updateContent()
			m.viewport.GotoTop()
		}
	case spinner.TickMsg:
		if !m.step.Loading() {
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

func (m *Results) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keyMap.PrevMetric):
		m.step.SetMetric(m.step.Metric().Prev())
		m.updateContent()
	case key.Matches(msg, m.keyMap.NextMetric):
		m.step.SetMetric(m.step.Metric().Next())
		m.updateContent()
	case key.Matches(msg, m.keyMap.Retry):
		if m.step.Loading() {
			return m, nil
		}

		cmd, err := m.loader.Run(m.wizard)
		if err != nil {
			m.notice = noticeFor(err)

			return m, nil
		}

		return m, tea.Batch(cmd, m.spinner.Tick)
	case key.Matches(msg, m.keyMap.Copy):
		m.copyRanking()
	case key.Matches(msg, m.keyMap.Restart):
		if m.wizard == SearchWizard {
			return m, Restart(SearchMoviesScreen)
		}

		return m, Restart(SortSelectScreen)
	case key.Matches(msg, m.keyMap.Back):
		if m.wizard == SearchWizard {
			return m, Navigate(SearchAlgorithmsScreen)
		}

		return m, Navigate(SortSelectScreen)
	default:
		var cmd tea.Cmd

		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}

	return m, nil
}

// View renders the results screen.
func (m *Results) View() string {
	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render(m.title()))
	builder.WriteString("\n")
	builder.WriteString(m.renderTabs())
	builder.WriteString("\n\n")

	switch {
	case m.step.Loading():
		builder.WriteString(m.spinner.View() + " Running benchmark…")
	case m.step.State() == session.Failed:
		builder.WriteString(m.styles.ErrorText.Render("✗ The benchmark failed: " + m.step.Err().Error()))
		builder.WriteString("\n")
		builder.WriteString(m.styles.MutedText.Render("Press r to run it again."))
	case len(m.step.Data()) == 0:
		builder.WriteString(m.styles.MutedText.Render("No results."))
	default:
		builder.WriteString(m.viewport.View())
	}

	builder.WriteString("\n")

	if m.notice != "" {
		builder.WriteString(m.styles.WarningText.Render(m.notice))
	}

	builder.WriteString("\n")
	builder.WriteString(RenderFooter(m.styles, m.width, ActionsOf(
		m.keyMap.PrevMetric, m.keyMap.NextMetric, m.keyMap.Retry, m.keyMap.Copy, m.keyMap.Restart, m.keyMap.Back,
	), true))

	return builder.String()
}

func (m *Results) title() string {
	if m.wizard == SearchWizard {
		return "Search · results"
	}

	return "Sort · results"
}

func (m *Results) renderTabs() string {
	tabs := make([]string, 0, len(domain.AllMetrics()))

	for _, metric := range domain.AllMetrics() {
		style := m.styles.Unselected.Padding(0, 1).Faint(true)
		if metric == m.step.Metric() {
			style = m.styles.Selected.Padding(0, 1)
		}

		tabs = append(tabs, style.Render(metric.Label()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// copyRanking puts the ranking as plain text on the system clipboard.
func (m *Results) copyRanking() {
	ranks := m.step.Ranked()
	if m.step.Loading() || len(ranks) == 0 {
		m.notice = "Nothing to copy"

		return
	}

	metric := m.step.Metric()

	var builder strings.Builder

	fmt.Fprintf(&builder, "%s by %s\n", m.title(), metric.Label())

	for _, rank := range ranks {
		result := rank.Result
		fmt.Fprintf(&builder, "%d. %s:%s  %s\n", rank.Position,
			result.DataStructure, result.Algorithm, metric.Format(result.Metrics.Value(metric)))
	}

	if err := m.copyText(builder.String()); err != nil {
		m.notice = "Clipboard error: " + err.Error()

		return
	}

	m.notice = fmt.Sprintf("Copied %d results", len(ranks))
}

// updateContent re-renders the cards for the current metric.
func (m *Results) updateContent() {
	ranks := m.step.Ranked()
	metric := m.step.Metric()

	peak := 0.0
	for _, rank := range ranks {
		peak = max(peak, rank.Result.Metrics.Value(metric))
	}

	cards := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		cards = append(cards, m.renderCard(rank, metric, peak))
	}

	m.viewport.SetContent(strings.Join(cards, "\n"))
}

func (m *Results) renderCard(rank ordering.Rank, metric domain.Metric, peak float64) string {
	result := rank.Result
	cardWidth := max(min(m.width-4, 96), 40)
	barWidth := max(cardWidth-40, 10)

	var body strings.Builder

	heading := m.styles.PrimaryText.Bold(true).Render("#"+strconv.Itoa(rank.Position)) + "  " +
		DisplayName(result.DataStructure, "") + " · " + DisplayName(result.Algorithm, "")
	body.WriteString(heading)
	body.WriteString("\n")

	value := result.Metrics.Value(metric)
	body.WriteString(m.styles.ProgressBar(value, peak, barWidth, m.styles.Primary))
	body.WriteString(" " + metric.Format(value))
	body.WriteString("\n")

	others := make([]string, 0, len(domain.AllMetrics())-1)
	for _, other := range domain.AllMetrics() {
		if other != metric {
			others = append(others, other.Label()+": "+other.Format(result.Metrics.Value(other)))
		}
	}

	body.WriteString(m.styles.MutedText.Render(strings.Join(others, " · ")))

	badges := strings.TrimSpace(
		m.styles.ComplexityBadge("T", result.TimeComplexity, result.TimeComplexityLevel) + "  " +
			m.styles.ComplexityBadge("S", result.SpaceComplexity, result.SpaceComplexityLevel))
	if badges != "" {
		body.WriteString("\n" + badges)
	}

	if result.ItemCount > 0 {
		body.WriteString(m.styles.MutedText.Render(fmt.Sprintf("  %d items", result.ItemCount)))
	}

	if m.wizard == SearchWizard {
		body.WriteString("\n" + m.renderFound(result, metric))
	}

	style := m.styles.Card
	if rank.Position == 1 {
		style = m.styles.ActiveCard
	}

	return style.Width(cardWidth).Render(body.String())
}

func (m *Results) renderFound(result domain.AlgorithmResult, metric domain.Metric) string {
	var builder strings.Builder

	switch {
	case result.ItemFoundPosition != nil:
		found := "Found at position " + strconv.Itoa(*result.ItemFoundPosition)
		if result.ItemFound != nil {
			found += ": " + result.ItemFound.Title
		}

		builder.WriteString(m.styles.SuccessText.Render(found))
	case len(result.SubMetrics) == 0:
		builder.WriteString(m.styles.ErrorText.Render("Not found"))
	}

	for i, sub := range ordering.SortSubMetrics(result.SubMetrics, metric) {
		if i > 0 || builder.Len() > 0 {
			builder.WriteString("\n")
		}

		position := "not found"
		if sub.ItemFoundPosition != nil {
			position = "position " + strconv.Itoa(*sub.ItemFoundPosition)
		}

		builder.WriteString(m.styles.MutedText.Render(fmt.Sprintf("  target %d · %s · %s",
			i+1, position, metric.Format(sub.Value(metric)))))
	}

	return builder.String()
}
