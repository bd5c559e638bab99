// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/session"
	"github.com/algolab/algolab/internal/tui/styles"
	"github.com/algolab/algolab/internal/window"
)

// selectChrome is the number of lines around the algorithm list.
const selectChrome = 8

var badgeColumn = lipgloss.NewStyle().Width(16)

// algorithmRow is one line of the grouped list. Group headers have algorithm -1.
type algorithmRow struct {
	group     int
	algorithm int
}

func (r algorithmRow) header() bool {
	return r.algorithm < 0
}

// AlgorithmSelect lets the user pick algorithms grouped by data structure.
// The sort wizard and the second step of the search wizard share it.
type AlgorithmSelect struct {
	styles  *styles.Styles
	loader  *Loader
	wizard  Wizard
	step    *session.AlgorithmStep
	spinner spinner.Model
	keyMap  KeyMap

	rows   []algorithmRow
	cursor int
	list   *window.Controller
	notice string

	width  int
	height int
}

// NewAlgorithmSelect creates the algorithm selection screen of wizard.
func NewAlgorithmSelect(styleConfig *styles.Styles, loader *Loader, wizard Wizard) *AlgorithmSelect {
	step := loader.Session().Sort
	if wizard == SearchWizard {
		step = loader.Session().Search
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleConfig.PrimaryText

	return &AlgorithmSelect{
		styles:  styleConfig,
		loader:  loader,
		wizard:  wizard,
		step:    step,
		spinner: spin,
		keyMap:  DefaultKeyMap(),
		list:    window.NewController(1, 0),
	}
}

// Init loads the catalog unless it is loaded or loading.
func (m *AlgorithmSelect) Init() tea.Cmd {
	m.syncRows()

	if m.step.Ready() || m.step.Loading() {
		return nil
	}

	return m.load()
}

func (m *AlgorithmSelect) load() tea.Cmd {
	return tea.Batch(m.loader.Catalog(m.wizard), m.spinner.Tick)
}

// Update handles messages for the algorithm selection.
func (m *AlgorithmSelect) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.Resize(float64(max(msg.Height-selectChrome, 1)))
		m.list.EnsureVisible(m.cursor)
	case ActivatedMsg:
		m.notice = ""

		return m, m.Init()
	case CatalogLoadedMsg:
		if msg.Wizard == m.wizard {
			m.syncRows()
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

func (m *AlgorithmSelect) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.move(-1)
	case key.Matches(msg, m.keyMap.Down):
		m.move(1)
	case key.Matches(msg, m.keyMap.Start):
		m.cursor = 0
		m.move(1)
	case key.Matches(msg, m.keyMap.End):
		m.cursor = len(m.rows)
		m.move(-1)
	case key.Matches(msg, m.keyMap.Toggle):
		m.toggle()
	case key.Matches(msg, m.keyMap.ToggleAll):
		if err := m.step.ToggleSelectAll(); err != nil {
			m.notice = noticeFor(err)
		}
	case key.Matches(msg, m.keyMap.Continue):
		return m, m.run()
	case key.Matches(msg, m.keyMap.Retry):
		if !m.step.Loading() {
			return m, m.load()
		}
	case key.Matches(msg, m.keyMap.Back):
		if m.wizard == SearchWizard {
			return m, Navigate(SearchMoviesScreen)
		}

		return m, Restart(DashboardScreen)
	}

	return m, nil
}

func (m *AlgorithmSelect) toggle() {
	row, ok := m.currentRow()
	if !ok {
		return
	}

	group := m.step.Catalog()[row.group]
	algorithm := group.Algorithms[row.algorithm]

	if _, err := m.step.ToggleAlgorithm(group.Key, algorithm.Key); err != nil {
		m.notice = noticeFor(err)
	}
}

func (m *AlgorithmSelect) run() tea.Cmd {
	cmd, err := m.loader.Run(m.wizard)
	if err != nil {
		m.notice = noticeFor(err)

		return nil
	}

	next := SortResultsScreen
	if m.wizard == SearchWizard {
		next = SearchResultsScreen
	}

	return tea.Batch(cmd, Navigate(next))
}

// syncRows rebuilds the flattened rows from the loaded catalog.
func (m *AlgorithmSelect) syncRows() {
	catalog := m.step.Catalog()

	m.rows = m.rows[:0]
	for g, group := range catalog {
		m.rows = append(m.rows, algorithmRow{group: g, algorithm: -1})
		for a := range group.Algorithms {
			m.rows = append(m.rows, algorithmRow{group: g, algorithm: a})
		}
	}

	m.list.SetTotal(len(m.rows))

	if m.cursor >= len(m.rows) || m.cursor < 0 {
		m.cursor = 0
	}

	if row, ok := m.rowAt(m.cursor); !ok || row.header() {
		m.move(1)
	}
}

// move shifts the cursor by delta algorithm rows, skipping group headers.
func (m *AlgorithmSelect) move(delta int) {
	next := m.cursor

	for {
		next += delta
		if next < 0 || next >= len(m.rows) {
			return
		}

		if !m.rows[next].header() {
			break
		}
	}

	m.cursor = next

	if next > 0 && m.rows[next-1].header() {
		m.list.EnsureVisible(next - 1)
	}

	m.list.EnsureVisible(next)
}

func (m *AlgorithmSelect) rowAt(index int) (algorithmRow, bool) {
	if index < 0 || index >= len(m.rows) {
		return algorithmRow{}, false
	}

	return m.rows[index], true
}

func (m *AlgorithmSelect) currentRow() (algorithmRow, bool) {
	row, ok := m.rowAt(m.cursor)
	if !ok || row.header() {
		return algorithmRow{}, false
	}

	return row, true
}

// Cursor returns the selected row.
func (m *AlgorithmSelect) Cursor() (domain.AlgorithmRef, bool) {
	row, ok := m.currentRow()
	if !ok {
		return domain.AlgorithmRef{}, false
	}

	group := m.step.Catalog()[row.group]

	return domain.AlgorithmRef{DataStructure: group.Key, Algorithm: group.Algorithms[row.algorithm].Key}, true
}

// Notice returns the message shown under the list.
func (m *AlgorithmSelect) Notice() string {
	return m.notice
}

// View renders the algorithm selection.
func (m *AlgorithmSelect) View() string {
	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render(m.title()))
	builder.WriteString("\n")

	switch {
	case m.step.Loading():
		builder.WriteString(m.spinner.View() + " Loading algorithms…")
	case m.step.State() == session.Failed:
		builder.WriteString(m.styles.ErrorText.Render("✗ Could not load the algorithms: " + m.step.Err().Error()))
		builder.WriteString("\n")
		builder.WriteString(m.styles.MutedText.Render("Press r to retry."))
	case len(m.rows) == 0:
		builder.WriteString(m.styles.MutedText.Render("No algorithms available."))
	default:
		builder.WriteString(m.renderCounter())
		builder.WriteString("\n\n")
		builder.WriteString(m.renderRows())
	}

	builder.WriteString("\n")

	if m.notice != "" {
		builder.WriteString(m.styles.WarningText.Render(m.notice))
	}

	builder.WriteString("\n")

	toggleAll := m.keyMap.ToggleAll
	if m.step.IsAllSelected() {
		toggleAll.SetHelp("a", "deselect all")
	}

	builder.WriteString(RenderFooter(m.styles, m.width, ActionsOf(
		m.keyMap.Up, m.keyMap.Toggle, toggleAll, m.keyMap.Continue, m.keyMap.Back,
	), true))

	return builder.String()
}

func (m *AlgorithmSelect) title() string {
	if m.wizard == SearchWizard {
		return "Search · step 2 of 2 · algorithms"
	}

	return "Sort · algorithms"
}

func (m *AlgorithmSelect) renderCounter() string {
	selected := m.step.SelectedCount()
	total := m.step.Catalog().AlgorithmCount()

	counter := fmt.Sprintf("Selected: %d / %d", selected, total)
	if selected == 0 {
		return m.styles.MutedText.Render(counter)
	}

	return m.styles.SuccessText.Render(counter)
}

func (m *AlgorithmSelect) renderRows() string {
	visible := m.list.Visible()
	if visible.Empty() {
		return ""
	}

	catalog := m.step.Catalog()
	nameWidth := max(min(m.width-40, 32), 12)
	lines := make([]string, 0, visible.Len())

	for index := visible.Start; index <= visible.End; index++ {
		row := m.rows[index]
		group := catalog[row.group]

		if row.header() {
			selected, total := m.step.Tracker().GroupCount(group)
			lines = append(lines, m.styles.PrimaryText.Bold(true).Render("▸ "+DisplayName(group.Key, group.Name))+
				m.styles.MutedText.Render(fmt.Sprintf(" (%d/%d)", selected, total)))

			continue
		}

		algorithm := group.Algorithms[row.algorithm]

		prefix := UnselectedPrefix
		if index == m.cursor {
			prefix = SelectedPrefix
		}

		line := prefix +
			m.styles.Checkbox(m.step.IsAlgorithmSelected(group.Key, algorithm.Key)) + " " +
			PadRight(DisplayName(algorithm.Key, algorithm.Name), nameWidth) + "  " +
			badgeColumn.Render(m.styles.ComplexityBadge("T", algorithm.TimeComplexity, algorithm.TimeComplexityLevel)) +
			m.styles.ComplexityBadge("S", algorithm.SpaceComplexity, algorithm.SpaceComplexityLevel)

		if m.wizard == SearchWizard && algorithm.NeedsSort {
			line += "  " + m.styles.WarningText.Render("sorted")
		}

		if index == m.cursor {
			line = m.styles.Cursor.Render(line)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// noticeFor turns a refused action into a short message.
func noticeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptySelection):
		return "Select at least one item to continue."
	case errors.Is(err, domain.ErrNotLoaded):
		return "Nothing is loaded yet."
	case errors.Is(err, domain.ErrInvalidPosition):
		return "No such position in the list."
	default:
		return err.Error()
	}
}
