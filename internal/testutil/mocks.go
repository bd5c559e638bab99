// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides mocks and fixtures shared by package tests.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/algolab/algolab/internal/domain"
)

// MockBenchmarkService mocks the domain.BenchmarkService port for testing.
type MockBenchmarkService struct {
	mock.Mock
}

var _ domain.BenchmarkService = (*MockBenchmarkService)(nil)

// Metadata mocks fetching service metadata.
func (m *MockBenchmarkService) Metadata(ctx context.Context) (domain.Metadata, error) {
	args := m.Called(ctx)
	if metadata, ok := args.Get(0).(domain.Metadata); ok {
		return metadata, args.Error(1)
	}

	return domain.Metadata{}, args.Error(1)
}

// DashboardDataStructures mocks fetching the dashboard modules.
func (m *MockBenchmarkService) DashboardDataStructures(ctx context.Context) (domain.Dashboard, error) {
	args := m.Called(ctx)
	if dashboard, ok := args.Get(0).(domain.Dashboard); ok {
		return dashboard, args.Error(1)
	}

	return domain.Dashboard{}, args.Error(1)
}

// SortDataStructures mocks fetching the sort catalog.
func (m *MockBenchmarkService) SortDataStructures(ctx context.Context) (domain.Catalog, error) {
	args := m.Called(ctx)

	return catalogArg(args), args.Error(1)
}

// SearchDataStructures mocks fetching the search catalog.
func (m *MockBenchmarkService) SearchDataStructures(ctx context.Context) (domain.Catalog, error) {
	args := m.Called(ctx)

	return catalogArg(args), args.Error(1)
}

// SortedMovies mocks fetching the movie collection.
func (m *MockBenchmarkService) SortedMovies(ctx context.Context) ([]domain.Movie, error) {
	args := m.Called(ctx)
	if movies, ok := args.Get(0).([]domain.Movie); ok {
		return movies, args.Error(1)
	}

	return nil, args.Error(1)
}

// SortResults mocks running a sort benchmark.
func (m *MockBenchmarkService) SortResults(ctx context.Context, req domain.SortRequest) ([]domain.AlgorithmResult, error) {
	args := m.Called(ctx, req)

	return resultsArg(args), args.Error(1)
}

// SearchResults mocks running a search benchmark.
func (m *MockBenchmarkService) SearchResults(ctx context.Context, req domain.SearchRequest) ([]domain.AlgorithmResult, error) {
	args := m.Called(ctx, req)

	return resultsArg(args), args.Error(1)
}

func catalogArg(args mock.Arguments) domain.Catalog {
	if catalog, ok := args.Get(0).(domain.Catalog); ok {
		return catalog
	}

	return nil
}

func resultsArg(args mock.Arguments) []domain.AlgorithmResult {
	if results, ok := args.Get(0).([]domain.AlgorithmResult); ok {
		return results
	}

	return nil
}

// SortCatalog returns a small sort catalog with a repeated algorithm key.
func SortCatalog() domain.Catalog {
	return domain.Catalog{
		{
			Key:  "array",
			Name: "Array",
			Algorithms: []domain.Algorithm{
				{Key: "quickSort", Name: "Quick Sort", TimeComplexity: "O(n log n)", TimeComplexityLevel: domain.ComplexityMedium},
				{Key: "bubbleSort", Name: "Bubble Sort", TimeComplexity: "O(n²)", TimeComplexityLevel: domain.ComplexityHigh},
			},
		},
		{
			Key:  "linkedList",
			Name: "Linked List",
			Algorithms: []domain.Algorithm{
				{Key: "quickSort", Name: "Quick Sort", TimeComplexity: "O(n log n)", TimeComplexityLevel: domain.ComplexityMedium},
			},
		},
	}
}

// Movies returns n movies with ids 1..n.
func Movies(n int) []domain.Movie {
	movies := make([]domain.Movie, n)
	for i := range movies {
		movies[i] = domain.Movie{ID: i + 1, Title: "Movie " + string(rune('A'+i%26)), ReleaseYear: 1950 + i%70}
	}

	return movies
}
