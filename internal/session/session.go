// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package session holds the selection and navigation state of one dashboard
// session. A Session is created explicitly at start-up and handed to the TUI
// or the CLI command that owns it; there is no process-wide store. It is not
// safe for concurrent use: fetch results are applied from the UI loop.
package session

import (
	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/selection"
	"github.com/algolab/algolab/internal/window"
)

// Options configures a Session.
type Options struct {
	StalePolicy selection.StalePolicy
	RowHeight   float64
	Overscan    int
	Metric      domain.Metric
	Token       string
}

// DefaultOptions returns options for a terminal list with one line per row.
func DefaultOptions() Options {
	return Options{
		StalePolicy: selection.StaleKeep,
		RowHeight:   1,
		Overscan:    window.DefaultOverscan,
		Metric:      domain.MetricTime,
	}
}

// Session is the single source of truth for what the user picked.
type Session struct {
	opts  Options
	token string

	Dashboard *Fetch[domain.Dashboard]

	Sort        *AlgorithmStep
	SortResults *ResultsStep

	Movies        *CollectionStep
	Search        *AlgorithmStep
	SearchResults *ResultsStep
}

// New creates a session with empty selections.
func New(opts Options) *Session {
	if opts.Metric == "" {
		opts.Metric = domain.MetricTime
	}

	return &Session{
		opts:          opts,
		token:         opts.Token,
		Dashboard:     &Fetch[domain.Dashboard]{},
		Sort:          newAlgorithmStep(opts.StalePolicy),
		SortResults:   newResultsStep(opts.Metric),
		Movies:        newCollectionStep(opts.StalePolicy, opts.RowHeight, opts.Overscan),
		Search:        newAlgorithmStep(opts.StalePolicy),
		SearchResults: newResultsStep(opts.Metric),
	}
}

// Options returns the options the session was created with.
func (s *Session) Options() Options {
	return s.opts
}

// Token returns the bearer token of the session.
func (s *Session) Token() string {
	return s.token
}

// SetToken replaces the bearer token.
func (s *Session) SetToken(token string) {
	s.token = token
}

// SortRequest shapes the sort benchmark request from the current selection.
func (s *Session) SortRequest() (domain.SortRequest, error) {
	algorithms := s.Sort.SelectedAlgorithms()
	if len(algorithms) == 0 {
		return domain.SortRequest{}, domain.ErrEmptySelection
	}

	return domain.SortRequest{Algorithms: algorithms}, nil
}

// SearchRequest shapes the search benchmark request from the selected
// algorithms and target movies.
func (s *Session) SearchRequest() (domain.SearchRequest, error) {
	algorithms := s.Search.SelectedAlgorithms()
	movieIDs := s.Movies.SelectedIDs()

	if len(algorithms) == 0 || len(movieIDs) == 0 {
		return domain.SearchRequest{}, domain.ErrEmptySelection
	}

	return domain.SearchRequest{Algorithms: algorithms, MovieIDs: movieIDs}, nil
}

// ResetSort restarts the sort wizard.
func (s *Session) ResetSort() {
	s.Sort.Reset()
	s.SortResults.Reset()
}

// ResetSearch restarts the search wizard.
func (s *Session) ResetSearch() {
	s.Movies.Reset()
	s.Search.Reset()
	s.SearchResults.Reset()
}

// Reset restarts both wizards.
func (s *Session) Reset() {
	s.ResetSort()
	s.ResetSearch()
}

// Logout drops the token and every selection.
func (s *Session) Logout() {
	s.token = ""
	s.Reset()
}
