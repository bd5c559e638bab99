// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "context"

// SortRequest asks the service to benchmark sort algorithms.
type SortRequest struct {
	Algorithms []string `json:"algorithms"`
}

// SearchRequest asks the service to benchmark search algorithms against target movies.
type SearchRequest struct {
	Algorithms []string `json:"algorithms"`
	MovieIDs   []int    `json:"movie_ids"`
}

// CatalogSource fetches the algorithm catalogs for each wizard.
type CatalogSource interface {
	// DashboardDataStructures returns the data structures per module for the dashboard.
	DashboardDataStructures(ctx context.Context) (Dashboard, error)

	// SortDataStructures returns the catalog of the sort wizard.
	SortDataStructures(ctx context.Context) (Catalog, error)

	// SearchDataStructures returns the catalog of the search wizard.
	SearchDataStructures(ctx context.Context) (Catalog, error)
}

// CollectionSource fetches the ordered movie collection.
type CollectionSource interface {
	SortedMovies(ctx context.Context) ([]Movie, error)
}

// ResultsSource runs benchmarks on the service.
type ResultsSource interface {
	SortResults(ctx context.Context, req SortRequest) ([]AlgorithmResult, error)
	SearchResults(ctx context.Context, req SearchRequest) ([]AlgorithmResult, error)
}

// BenchmarkService is everything the dashboard needs from the service.
type BenchmarkService interface {
	Metadata(ctx context.Context) (Metadata, error)
	CatalogSource
	CollectionSource
	ResultsSource
}

// Dashboard lists the data structures each module exposes.
type Dashboard struct {
	Sort   []DataStructure `json:"sort"`
	Search []DataStructure `json:"search"`
}

// OutputPort renders command results.
type OutputPort interface {
	Success(message string, data any) error
	Info(message string) error
	Table(headers []string, rows [][]string, data any) error
	IsQuiet() bool
	IsJSON() bool
}
