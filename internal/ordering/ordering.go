// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package ordering ranks benchmark results by a chosen metric.
package ordering

import (
	"cmp"
	"slices"

	"github.com/algolab/algolab/internal/domain"
)

// SortByMetric returns a copy of results ordered ascending by metric. Ties
// keep their fetch order, so switching metrics back and forth always yields
// the same ranking. The input slice is not modified.
func SortByMetric(results []domain.AlgorithmResult, metric domain.Metric) []domain.AlgorithmResult {
	return SortFunc(results, func(r domain.AlgorithmResult) float64 {
		return r.Metrics.Value(metric)
	})
}

// SortSubMetrics orders per-target measurements the same way.
func SortSubMetrics(subs []domain.SubMetrics, metric domain.Metric) []domain.SubMetrics {
	return SortFunc(subs, func(s domain.SubMetrics) float64 {
		return s.Value(metric)
	})
}

// SortFunc returns a copy of items stably ordered ascending by key.
func SortFunc[T any](items []T, key func(T) float64) []T {
	sorted := slices.Clone(items)

	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})

	return sorted
}

// Rank pairs a result with its 1-based position after ordering.
type Rank struct {
	Position int
	Result   domain.AlgorithmResult
}

// Ranked orders results by metric and numbers them from 1.
func Ranked(results []domain.AlgorithmResult, metric domain.Metric) []Rank {
	sorted := SortByMetric(results, metric)

	ranks := make([]Rank, len(sorted))
	for i, result := range sorted {
		ranks[i] = Rank{Position: i + 1, Result: result}
	}

	return ranks
}
