// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolab/algolab/internal/domain"
)

func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		{Key: "array", Algorithms: []domain.Algorithm{{Key: "binarySearch", Name: "Binary Search"}, {Key: "linearSearch"}}},
		{Key: "linkedList", Algorithms: []domain.Algorithm{{Key: "binarySearch", Name: "Binary Search (list)"}}},
		{Key: "empty"},
	}
}

func TestCatalogRefsAndLookup(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()

	assert.Equal(t, 3, catalog.AlgorithmCount())
	assert.Equal(t, []domain.AlgorithmRef{
		{DataStructure: "array", Algorithm: "binarySearch"},
		{DataStructure: "array", Algorithm: "linearSearch"},
		{DataStructure: "linkedList", Algorithm: "binarySearch"},
	}, catalog.Refs())

	algorithm, ok := catalog.Lookup(domain.AlgorithmRef{DataStructure: "linkedList", Algorithm: "binarySearch"})
	require.True(t, ok)
	assert.Equal(t, "Binary Search (list)", algorithm.Name)

	assert.False(t, catalog.Contains(domain.AlgorithmRef{DataStructure: "empty", Algorithm: "binarySearch"}))
	assert.Zero(t, domain.Catalog(nil).AlgorithmCount())
}

func TestParseAlgorithmRef(t *testing.T) {
	t.Parallel()

	ref, err := domain.ParseAlgorithmRef(" array:quickSort ")
	require.NoError(t, err)
	assert.Equal(t, domain.AlgorithmRef{DataStructure: "array", Algorithm: "quickSort"}, ref)
	assert.Equal(t, "array:quickSort", ref.Key())
	assert.Equal(t, "array:quickSort", ref.String())

	for _, input := range []string{"", "quickSort", ":quickSort", "array:"} {
		_, err := domain.ParseAlgorithmRef(input)
		require.ErrorIs(t, err, domain.ErrInvalidAlgorithmRef, input)
	}
}

func TestMovieIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{3, 1}, domain.MovieIDs([]domain.Movie{{ID: 3}, {ID: 1}}))
	assert.Empty(t, domain.MovieIDs(nil))
}
