// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package session

import (
	"context"

	"github.com/algolab/algolab/internal/domain"
)

// load runs one fetch to completion under a fresh ticket.
func load[T any](ctx context.Context, f *Fetch[T], fetch func(context.Context) (T, error), complete func(Ticket, T)) error {
	ticket := f.Begin()

	data, err := fetch(ctx)
	if err != nil {
		f.Fail(ticket, err)

		return err
	}

	complete(ticket, data)

	return nil
}

// LoadDashboard fetches the data structures shown on the dashboard.
func (s *Session) LoadDashboard(ctx context.Context, source domain.CatalogSource) error {
	return load(ctx, s.Dashboard, source.DashboardDataStructures, func(t Ticket, d domain.Dashboard) {
		s.Dashboard.Complete(t, d)
	})
}

// LoadSortCatalog fetches the sort wizard catalog.
func (s *Session) LoadSortCatalog(ctx context.Context, source domain.CatalogSource) error {
	return load(ctx, &s.Sort.Fetch, source.SortDataStructures, func(t Ticket, c domain.Catalog) {
		s.Sort.Complete(t, c)
	})
}

// LoadSearchCatalog fetches the search wizard catalog.
func (s *Session) LoadSearchCatalog(ctx context.Context, source domain.CatalogSource) error {
	return load(ctx, &s.Search.Fetch, source.SearchDataStructures, func(t Ticket, c domain.Catalog) {
		s.Search.Complete(t, c)
	})
}

// LoadMovies fetches the sorted movie collection.
func (s *Session) LoadMovies(ctx context.Context, source domain.CollectionSource) error {
	return load(ctx, &s.Movies.Fetch, source.SortedMovies, func(t Ticket, m []domain.Movie) {
		s.Movies.Complete(t, m)
	})
}

// RunSort sends the sort selection and stores the results.
func (s *Session) RunSort(ctx context.Context, source domain.ResultsSource) error {
	req, err := s.SortRequest()
	if err != nil {
		return err
	}

	return load(ctx, &s.SortResults.Fetch, func(ctx context.Context) ([]domain.AlgorithmResult, error) {
		return source.SortResults(ctx, req)
	}, func(t Ticket, r []domain.AlgorithmResult) {
		s.SortResults.Complete(t, r)
	})
}

// RunSearch sends the search selection and stores the results.
func (s *Session) RunSearch(ctx context.Context, source domain.ResultsSource) error {
	req, err := s.SearchRequest()
	if err != nil {
		return err
	}

	return load(ctx, &s.SearchResults.Fetch, func(ctx context.Context) ([]domain.AlgorithmResult, error) {
		return source.SearchResults(ctx, req)
	}, func(t Ticket, r []domain.AlgorithmResult) {
		s.SearchResults.Complete(t, r)
	})
}
