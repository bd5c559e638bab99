// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Metric selects one of the comparable measurements of a result.
type Metric string

// Metrics reported by the benchmark service.
const (
	MetricTime       Metric = "time"
	MetricMemory     Metric = "memory"
	MetricOperations Metric = "operations"
	MetricIterations Metric = "iterations"
)

// AllMetrics lists the metrics in selector order.
func AllMetrics() []Metric {
	return []Metric{MetricTime, MetricMemory, MetricOperations, MetricIterations}
}

// ParseMetric parses a metric name, case-insensitively.
func ParseMetric(name string) (Metric, error) {
	metric := Metric(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllMetrics() {
		if metric == known {
			return known, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

// Label returns the human readable name of the metric.
func (m Metric) Label() string {
	switch m {
	case MetricTime:
		return "Time"
	case MetricMemory:
		return "Memory"
	case MetricOperations:
		return "Operations"
	case MetricIterations:
		return "Iterations"
	default:
		return string(m)
	}
}

// Unit returns the display unit of the metric values.
func (m Metric) Unit() string {
	switch m {
	case MetricTime:
		return "µs"
	case MetricMemory:
		return "bytes"
	default:
		return ""
	}
}

// Format renders value with the precision and unit of the metric.
func (m Metric) Format(value float64) string {
	text := strconv.FormatFloat(value, 'f', -1, 64)
	if m == MetricTime {
		text = strconv.FormatFloat(value, 'f', 2, 64)
	}

	if unit := m.Unit(); unit != "" {
		return text + " " + unit
	}

	return text
}

// Next returns the metric after m, wrapping around.
func (m Metric) Next() Metric {
	return m.shift(1)
}

// Prev returns the metric before m, wrapping around.
func (m Metric) Prev() Metric {
	return m.shift(-1)
}

func (m Metric) shift(delta int) Metric {
	all := AllMetrics()
	for i, known := range all {
		if known == m {
			return all[(i+delta+len(all))%len(all)]
		}
	}

	return MetricTime
}

// Metrics is the measurement record of one algorithm run.
type Metrics struct {
	Time       float64 `json:"time"`
	Memory     float64 `json:"memory"`
	Operations float64 `json:"operations"`
	Iterations float64 `json:"iterations"`
}

// Value returns the measurement selected by metric. Unknown metrics read as zero.
func (m Metrics) Value(metric Metric) float64 {
	switch metric {
	case MetricTime:
		return m.Time
	case MetricMemory:
		return m.Memory
	case MetricOperations:
		return m.Operations
	case MetricIterations:
		return m.Iterations
	default:
		return 0
	}
}

// SubMetrics is the per-target measurement of a search run.
type SubMetrics struct {
	Metrics

	ItemFoundPosition *int `json:"item_found_position,omitempty"`
}

// AlgorithmResult is the service's report for one algorithm on one data structure.
type AlgorithmResult struct {
	Algorithm            string          `json:"algorithm"`
	DataStructure        string          `json:"data_structure"`
	ItemCount            int             `json:"item_count"`
	NeedsSort            bool            `json:"needs_sort,omitempty"`
	TimeComplexity       string          `json:"time_complexity"`
	SpaceComplexity      string          `json:"space_complexity"`
	TimeComplexityLevel  ComplexityLevel `json:"time_complexity_level"`
	SpaceComplexityLevel ComplexityLevel `json:"space_complexity_level"`
	Metrics              Metrics         `json:"metrics"`
	SubMetrics           []SubMetrics    `json:"sub_metrics,omitempty"`
	ItemFound            *Movie          `json:"item_found,omitempty"`
	ItemFoundPosition    *int            `json:"item_found_position,omitempty"`
}

// Ref returns the algorithm ref the result belongs to.
func (r AlgorithmResult) Ref() AlgorithmRef {
	return AlgorithmRef{DataStructure: r.DataStructure, Algorithm: r.Algorithm}
}

// Metadata describes the benchmark service.
type Metadata struct {
	Version     string `json:"version"`
	MovieCount  int    `json:"movie_count"`
	Description string `json:"description,omitempty"`
}
