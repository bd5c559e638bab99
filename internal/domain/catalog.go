// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain defines the benchmark catalog, the movie collection, result
// records and the ports the session uses to reach the benchmark service.
package domain

import (
	"fmt"
	"strings"
)

// ComplexityLevel grades an asymptotic complexity for display.
type ComplexityLevel string

// Complexity levels reported by the service.
const (
	ComplexityHigh   ComplexityLevel = "high"
	ComplexityMedium ComplexityLevel = "medium"
	ComplexityLow    ComplexityLevel = "low"
)

// Algorithm is one benchmarkable algorithm inside a data structure group.
type Algorithm struct {
	Key                  string          `json:"key"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	NeedsSort            bool            `json:"needs_sort,omitempty"`
	TimeComplexity       string          `json:"time_complexity"`
	SpaceComplexity      string          `json:"space_complexity"`
	TimeComplexityLevel  ComplexityLevel `json:"time_complexity_level"`
	SpaceComplexityLevel ComplexityLevel `json:"space_complexity_level"`
}

// DataStructure is a named group of algorithms. Catalogs are read-only once fetched.
type DataStructure struct {
	Key         string      `json:"key"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Algorithms  []Algorithm `json:"algorithms"`
}

// Catalog is the ordered list of data structure groups for one wizard.
type Catalog []DataStructure

// AlgorithmCount returns the number of algorithms across every group.
func (c Catalog) AlgorithmCount() int {
	total := 0
	for _, group := range c {
		total += len(group.Algorithms)
	}

	return total
}

// Refs flattens the catalog into algorithm refs, group order first.
func (c Catalog) Refs() []AlgorithmRef {
	refs := make([]AlgorithmRef, 0, c.AlgorithmCount())
	for _, group := range c {
		for _, algorithm := range group.Algorithms {
			refs = append(refs, AlgorithmRef{DataStructure: group.Key, Algorithm: algorithm.Key})
		}
	}

	return refs
}

// Contains reports whether ref names an algorithm of this catalog.
func (c Catalog) Contains(ref AlgorithmRef) bool {
	_, ok := c.Lookup(ref)

	return ok
}

// Lookup returns the algorithm a ref points at.
func (c Catalog) Lookup(ref AlgorithmRef) (Algorithm, bool) {
	for _, group := range c {
		if group.Key != ref.DataStructure {
			continue
		}

		for _, algorithm := range group.Algorithms {
			if algorithm.Key == ref.Algorithm {
				return algorithm, true
			}
		}
	}

	return Algorithm{}, false
}

// AlgorithmRef identifies an algorithm inside its data structure group.
// Algorithm keys repeat across groups, so the group always travels along.
type AlgorithmRef struct {
	DataStructure string
	Algorithm     string
}

// compositeSeparator joins the group and algorithm keys on the wire.
const compositeSeparator = ":"

// Key returns the composite "group:algorithm" form sent to the service.
func (r AlgorithmRef) Key() string {
	return r.DataStructure + compositeSeparator + r.Algorithm
}

func (r AlgorithmRef) String() string {
	return r.Key()
}

// ParseAlgorithmRef parses a composite "group:algorithm" key.
func ParseAlgorithmRef(composite string) (AlgorithmRef, error) {
	group, algorithm, found := strings.Cut(strings.TrimSpace(composite), compositeSeparator)
	if !found || group == "" || algorithm == "" {
		return AlgorithmRef{}, fmt.Errorf("%w: %q (want group:algorithm)", ErrInvalidAlgorithmRef, composite)
	}

	return AlgorithmRef{DataStructure: group, Algorithm: algorithm}, nil
}

// Movie is one record of the sorted collection used as a search target.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

// MovieIDs returns the identifiers of movies in collection order.
func MovieIDs(movies []Movie) []int {
	ids := make([]int, len(movies))
	for i, movie := range movies {
		ids[i] = movie.ID
	}

	return ids
}
