// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/session"
)

// Wizard names the flow a catalog or result belongs to.
type Wizard int

// Wizards.
const (
	SortWizard Wizard = iota
	SearchWizard
)

func (w Wizard) String() string {
	if w == SearchWizard {
		return "search"
	}

	return "sort"
}

// DashboardLoadedMsg carries the dashboard modules.
type DashboardLoadedMsg struct {
	Ticket    session.Ticket
	Dashboard domain.Dashboard
	Err       error
}

// CatalogLoadedMsg carries the catalog of one wizard.
type CatalogLoadedMsg struct {
	Wizard  Wizard
	Ticket  session.Ticket
	Catalog domain.Catalog
	Err     error
}

// MoviesLoadedMsg carries the sorted movie collection.
type MoviesLoadedMsg struct {
	Ticket session.Ticket
	Movies []domain.Movie
	Err    error
}

// ResultsLoadedMsg carries the results of a benchmark run.
type ResultsLoadedMsg struct {
	Wizard  Wizard
	Ticket  session.Ticket
	Results []domain.AlgorithmResult
	Err     error
}

// Loader starts fetches against the benchmark service. Begin runs on the UI
// loop when the command is built; only the service call runs inside the
// command. Results come back as messages that Apply stores in the session.
//
//nolint:containedctx // TUI commands require context for cancellation propagation
type Loader struct {
	ctx     context.Context
	session *session.Session
	service domain.BenchmarkService
	logger  *log.Logger
}

// NewLoader creates a loader for sess backed by service.
func NewLoader(ctx context.Context, sess *session.Session, service domain.BenchmarkService, logger *log.Logger) *Loader {
	return &Loader{ctx: ctx, session: sess, service: service, logger: logger}
}

// Session returns the session the loader writes to.
func (l *Loader) Session() *session.Session {
	return l.session
}

// Dashboard fetches the dashboard modules.
func (l *Loader) Dashboard() tea.Cmd {
	ticket := l.session.Dashboard.Begin()

	return func() tea.Msg {
		dashboard, err := l.service.DashboardDataStructures(l.ctx)

		return DashboardLoadedMsg{Ticket: ticket, Dashboard: dashboard, Err: err}
	}
}

// Catalog fetches the catalog of wizard.
func (l *Loader) Catalog(wizard Wizard) tea.Cmd {
	step, fetch := l.session.Sort, l.service.SortDataStructures
	if wizard == SearchWizard {
		step, fetch = l.session.Search, l.service.SearchDataStructures
	}

	ticket := step.Begin()

	return func() tea.Msg {
		catalog, err := fetch(l.ctx)

		return CatalogLoadedMsg{Wizard: wizard, Ticket: ticket, Catalog: catalog, Err: err}
	}
}

// Movies fetches the sorted movie collection.
func (l *Loader) Movies() tea.Cmd {
	ticket := l.session.Movies.Begin()

	return func() tea.Msg {
		movies, err := l.service.SortedMovies(l.ctx)

		return MoviesLoadedMsg{Ticket: ticket, Movies: movies, Err: err}
	}
}

// Run shapes the request of wizard from the current selection and starts
// the benchmark. It fails with domain.ErrEmptySelection before any request
// is made.
func (l *Loader) Run(wizard Wizard) (tea.Cmd, error) {
	if wizard == SearchWizard {
		req, err := l.session.SearchRequest()
		if err != nil {
			return nil, err
		}

		ticket := l.session.SearchResults.Begin()

		return func() tea.Msg {
			results, err := l.service.SearchResults(l.ctx, req)

			return ResultsLoadedMsg{Wizard: wizard, Ticket: ticket, Results: results, Err: err}
		}, nil
	}

	req, err := l.session.SortRequest()
	if err != nil {
		return nil, err
	}

	ticket := l.session.SortResults.Begin()

	return func() tea.Msg {
		results, err := l.service.SortResults(l.ctx, req)

		return ResultsLoadedMsg{Wizard: wizard, Ticket: ticket, Results: results, Err: err}
	}, nil
}

// Apply stores a loaded message in the session. It reports whether msg was
// a load result. A 401 from any fetch logs the session out.
func (l *Loader) Apply(msg tea.Msg) bool {
	var err error

	switch msg := msg.(type) {
	case DashboardLoadedMsg:
		err = msg.Err
		if err == nil {
			l.session.Dashboard.Complete(msg.Ticket, msg.Dashboard)
		} else {
			l.session.Dashboard.Fail(msg.Ticket, err)
		}

	case CatalogLoadedMsg:
		err = msg.Err
		l.applyCatalog(msg)

	case MoviesLoadedMsg:
		err = msg.Err
		if err == nil {
			if dropped, ok := l.session.Movies.Complete(msg.Ticket, msg.Movies); ok {
				l.logf("movies loaded: %d, dropped %d stale selections", len(msg.Movies), len(dropped))
			}
		} else {
			l.session.Movies.Fail(msg.Ticket, err)
		}

	case ResultsLoadedMsg:
		err = msg.Err

		step := l.session.SortResults
		if msg.Wizard == SearchWizard {
			step = l.session.SearchResults
		}

		if err == nil {
			step.Complete(msg.Ticket, msg.Results)
		} else {
			step.Fail(msg.Ticket, err)
		}

	default:
		return false
	}

	if err != nil {
		l.logf("fetch failed: %v", err)
	}

	if errors.Is(err, domain.ErrUnauthorized) {
		l.session.Logout()
	}

	return true
}

func (l *Loader) applyCatalog(msg CatalogLoadedMsg) {
	step := l.session.Sort
	if msg.Wizard == SearchWizard {
		step = l.session.Search
	}

	if msg.Err != nil {
		step.Fail(msg.Ticket, msg.Err)

		return
	}

	if dropped, ok := step.Complete(msg.Ticket, msg.Catalog); ok {
		l.logf("%s catalog loaded: %d algorithms, dropped %d stale selections",
			msg.Wizard, msg.Catalog.AlgorithmCount(), len(dropped))
	}
}

func (l *Loader) logf(format string, args ...any) {
	if l.logger != nil {
		l.logger.Printf(format, args...)
	}
}
