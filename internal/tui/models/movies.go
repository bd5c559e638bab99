// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/algolab/algolab/internal/session"
	"github.com/algolab/algolab/internal/tui/styles"
	"github.com/algolab/algolab/internal/window"
)

// movieChrome is the number of lines around the movie list.
const movieChrome = 9

// movieRow is the cached part of a rendered movie row. The checkbox is not
// cached: it is drawn from the tracker every frame.
type movieRow struct {
	id       int
	position string
	title    string
}

// MovieSelect is the first step of the search wizard: picking target movies
// out of the sorted collection. Rows are rendered only for the visible
// window plus overscan; the rest of the collection is never touched.
type MovieSelect struct {
	styles  *styles.Styles
	loader  *Loader
	step    *session.CollectionStep
	spinner spinner.Model
	keyMap  KeyMap

	jump    textinput.Model
	jumping bool

	cursor int
	notice string
	rows   map[int]movieRow

	width  int
	height int
}

// NewMovieSelect creates the movie selection screen.
func NewMovieSelect(styleConfig *styles.Styles, loader *Loader) *MovieSelect {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleConfig.PrimaryText

	input := textinput.New()
	input.Prompt = "Jump to: "
	input.Placeholder = "position, start, middle or end"
	input.CharLimit = 12
	input.Width = 32

	return &MovieSelect{
		styles:  styleConfig,
		loader:  loader,
		step:    loader.Session().Movies,
		spinner: spin,
		keyMap:  DefaultKeyMap(),
		jump:    input,
		rows:    make(map[int]movieRow),
	}
}

// Init loads the collection unless it is loaded or loading.
func (m *MovieSelect) Init() tea.Cmd {
	m.refreshRows()

	if m.step.Ready() || m.step.Loading() {
		return nil
	}

	return m.load()
}

func (m *MovieSelect) load() tea.Cmd {
	return tea.Batch(m.loader.Movies(), m.spinner.Tick)
}

// CapturesInput reports whether keys go to the jump bar.
func (m *MovieSelect) CapturesInput() bool {
	return m.jumping
}

// Cursor returns the 0-based index of the highlighted movie.
func (m *MovieSelect) Cursor() int {
	return m.cursor
}

// Notice returns the message shown under the list.
func (m *MovieSelect) Notice() string {
	return m.notice
}

// RenderedRows returns the indices that currently have a rendered row.
func (m *MovieSelect) RenderedRows() int {
	return len(m.rows)
}

// Update handles messages for the movie selection.
func (m *MovieSelect) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width != m.width {
			clear(m.rows)
		}

		m.width, m.height = msg.Width, msg.Height
		m.step.Window().Resize(float64(max(msg.Height-movieChrome, 1)))
		m.step.Window().EnsureVisible(m.cursor)
		m.refreshRows()
	case ActivatedMsg:
		clear(m.rows)
		m.notice = ""
		m.cursor = min(m.cursor, max(m.step.Len()-1, 0))

		return m, m.Init()
	case MoviesLoadedMsg:
		clear(m.rows)
		m.cursor = min(m.cursor, max(m.step.Len()-1, 0))
		m.refreshRows()
	case spinner.TickMsg:
		if !m.step.Loading() {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case tea.KeyMsg:
		if m.jumping {
			return m.handleJumpKey(msg)
		}

		cmd := m.handleKey(msg)
		m.refreshRows()

		return m, cmd
	}

	return m, nil
}

func (m *MovieSelect) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""
	page := m.pageRows()

	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.moveTo(m.cursor - 1)
	case key.Matches(msg, m.keyMap.Down):
		m.moveTo(m.cursor + 1)
	case key.Matches(msg, m.keyMap.PageUp):
		m.moveTo(m.cursor - page)
	case key.Matches(msg, m.keyMap.PageDown):
		m.moveTo(m.cursor + page)
	case key.Matches(msg, m.keyMap.Start):
		m.jumpTo(window.Start())
	case key.Matches(msg, m.keyMap.Middle):
		m.jumpTo(window.Middle())
	case key.Matches(msg, m.keyMap.End):
		m.jumpTo(window.End())
	case key.Matches(msg, m.keyMap.Jump):
		if !m.step.Ready() {
			return nil
		}

		m.jumping = true
		m.jump.SetValue("")

		return m.jump.Focus()
	case key.Matches(msg, m.keyMap.Toggle):
		if _, err := m.step.ToggleAt(m.cursor); err != nil {
			m.notice = noticeFor(err)
		}
	case key.Matches(msg, m.keyMap.Continue):
		if m.step.SelectedCount() == 0 {
			m.notice = "Select at least one movie to continue."

			return nil
		}

		return Navigate(SearchAlgorithmsScreen)
	case key.Matches(msg, m.keyMap.Retry):
		if !m.step.Loading() {
			return m.load()
		}
	case key.Matches(msg, m.keyMap.Back):
		return Restart(DashboardScreen)
	}

	return nil
}

func (m *MovieSelect) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc:
		m.closeJump()

		return m, nil
	case KeyEnter:
		input := m.jump.Value()
		m.closeJump()

		target, err := window.ParseTarget(input)
		if err != nil {
			m.notice = noticeFor(err)

			return m, nil
		}

		m.jumpTo(target)
		m.refreshRows()

		return m, nil
	}

	var cmd tea.Cmd

	m.jump, cmd = m.jump.Update(msg)

	return m, cmd
}

func (m *MovieSelect) closeJump() {
	m.jumping = false
	m.jump.Blur()
}

// jumpTo scrolls to target and puts the cursor on the row it names.
// A rejected target leaves the list where it was.
func (m *MovieSelect) jumpTo(target window.Target) {
	index, err := m.step.Jump(target)
	if err != nil {
		m.notice = noticeFor(err)

		return
	}

	m.cursor = index
}

func (m *MovieSelect) moveTo(index int) {
	if m.step.Len() == 0 {
		return
	}

	m.cursor = max(0, min(index, m.step.Len()-1))
	m.step.Window().EnsureVisible(m.cursor)
}

func (m *MovieSelect) pageRows() int {
	_, count := m.step.Window().State().Rows()

	return max(count, 1)
}

// refreshRows renders the rows of the visible range plus overscan and
// evicts everything outside it.
func (m *MovieSelect) refreshRows() {
	visible := m.step.Window().Visible()

	for index := range m.rows {
		if !visible.Contains(index) {
			delete(m.rows, index)
		}
	}

	if visible.Empty() {
		return
	}

	for index := visible.Start; index <= visible.End; index++ {
		if _, ok := m.rows[index]; !ok {
			m.rows[index] = m.renderRow(index)
		}
	}
}

func (m *MovieSelect) renderRow(index int) movieRow {
	movie, ok := m.step.MovieAt(index)
	if !ok {
		return movieRow{}
	}

	positionWidth := len(strconv.Itoa(m.step.Len()))
	titleWidth := max(m.width-positionWidth-20, 16)

	year := ""
	if movie.ReleaseYear > 0 {
		year = strconv.Itoa(movie.ReleaseYear)
	}

	return movieRow{
		id:       movie.ID,
		position: fmt.Sprintf("%*d ", positionWidth, index+1),
		title:    PadRight(movie.Title, titleWidth) + " " + m.styles.MutedText.Render(year),
	}
}

// line joins a cached row with the checkbox for the current selection.
func (m *MovieSelect) line(row movieRow) string {
	if row.position == "" {
		return ""
	}

	return row.position + m.styles.Checkbox(m.step.IsItemSelected(row.id)) + " " + row.title
}

// View renders the movie selection.
func (m *MovieSelect) View() string {
	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render("Search · step 1 of 2 · target movies"))
	builder.WriteString("\n")

	switch {
	case m.step.Loading():
		builder.WriteString(m.spinner.View() + " Loading movies…")
	case m.step.State() == session.Failed:
		builder.WriteString(m.styles.ErrorText.Render("✗ Could not load the movies: " + m.step.Err().Error()))
		builder.WriteString("\n")
		builder.WriteString(m.styles.MutedText.Render("Press r to retry."))
	case m.step.Len() == 0:
		builder.WriteString(m.styles.MutedText.Render("No movies available."))
		builder.WriteString("\n")
		builder.WriteString(m.styles.MutedText.Render("Press r to retry."))
	default:
		builder.WriteString(m.renderCounter())
		builder.WriteString("\n\n")
		builder.WriteString(m.renderList())
	}

	builder.WriteString("\n")

	if m.jumping {
		builder.WriteString(m.jump.View())
	}

	builder.WriteString("\n")

	if m.notice != "" {
		builder.WriteString(m.styles.WarningText.Render(m.notice))
	}

	builder.WriteString("\n")
	builder.WriteString(RenderFooter(m.styles, m.width, ActionsOf(
		m.keyMap.Toggle, m.keyMap.Jump, m.keyMap.Start, m.keyMap.Middle, m.keyMap.End,
		m.keyMap.Continue, m.keyMap.Back,
	), true))

	return builder.String()
}

func (m *MovieSelect) renderCounter() string {
	counter := fmt.Sprintf("Selected: %d · %d movies · row %d", m.step.SelectedCount(), m.step.Len(), m.cursor+1)
	if m.step.SelectedCount() == 0 {
		return m.styles.MutedText.Render(counter)
	}

	return m.styles.SuccessText.Render(counter)
}

// renderList shows the rows inside the viewport. Overscan rows stay rendered
// in the cache so short scrolls do not render anything.
func (m *MovieSelect) renderList() string {
	first, count := m.step.Window().State().Rows()
	lines := make([]string, 0, count)

	for index := first; index < first+count; index++ {
		row, ok := m.rows[index]
		if !ok {
			row = m.renderRow(index)
		}

		line := m.line(row)

		prefix := UnselectedPrefix
		if index == m.cursor {
			prefix = SelectedPrefix
			line = m.styles.Cursor.Render(line)
		}

		lines = append(lines, prefix+line)
	}

	return strings.Join(lines, "\n")
}
