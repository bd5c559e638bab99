// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"strconv"

	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/ordering"
	"github.com/algolab/algolab/internal/window"
)

// CatalogHeaders are the columns of a catalog listing.
var CatalogHeaders = []string{"KEY", "DATA STRUCTURE", "ALGORITHM", "TIME", "SPACE"} //nolint:gochecknoglobals

// CatalogRows flattens a catalog into one row per algorithm, keyed by its
// composite key.
func CatalogRows(catalog domain.Catalog) [][]string {
	rows := make([][]string, 0, catalog.AlgorithmCount())

	for _, group := range catalog {
		for _, algorithm := range group.Algorithms {
			ref := domain.AlgorithmRef{DataStructure: group.Key, Algorithm: algorithm.Key}
			rows = append(rows, []string{
				ref.Key(),
				group.Name,
				algorithm.Name,
				complexityCell(algorithm.TimeComplexity, algorithm.TimeComplexityLevel),
				complexityCell(algorithm.SpaceComplexity, algorithm.SpaceComplexityLevel),
			})
		}
	}

	return rows
}

// RankingHeaders returns the columns of a result ranking ordered by metric.
func RankingHeaders(metric domain.Metric) []string {
	return []string{"#", "DATA STRUCTURE", "ALGORITHM", metric.Label(), "TIME", "SPACE", "FOUND AT"}
}

// RankingRows renders ranked results, showing the ordering metric first.
func RankingRows(ranks []ordering.Rank, metric domain.Metric) [][]string {
	rows := make([][]string, len(ranks))

	for i, rank := range ranks {
		result := rank.Result
		rows[i] = []string{
			strconv.Itoa(rank.Position),
			result.DataStructure,
			result.Algorithm,
			metric.Format(result.Metrics.Value(metric)),
			result.TimeComplexity,
			result.SpaceComplexity,
			foundCell(result.ItemFoundPosition),
		}
	}

	return rows
}

// MovieHeaders are the columns of a movie window listing.
var MovieHeaders = []string{"POS", "ID", "TITLE", "YEAR"} //nolint:gochecknoglobals

// MovieRows renders the movies inside r with their 1-based positions.
func MovieRows(movies []domain.Movie, r window.Range) [][]string {
	if r.Empty() {
		return nil
	}

	rows := make([][]string, 0, r.Len())

	for index := r.Start; index <= r.End && index < len(movies); index++ {
		movie := movies[index]

		year := ""
		if movie.ReleaseYear > 0 {
			year = strconv.Itoa(movie.ReleaseYear)
		}

		rows = append(rows, []string{
			strconv.Itoa(index + 1),
			strconv.Itoa(movie.ID),
			movie.Title,
			year,
		})
	}

	return rows
}

func complexityCell(notation string, level domain.ComplexityLevel) string {
	if notation == "" {
		return "-"
	}

	if level == "" {
		return notation
	}

	return notation + " (" + string(level) + ")"
}

func foundCell(position *int) string {
	if position == nil {
		return "-"
	}

	return strconv.Itoa(*position)
}
