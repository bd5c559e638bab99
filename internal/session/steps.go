// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package session

import (
	"fmt"

	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/ordering"
	"github.com/algolab/algolab/internal/selection"
	"github.com/algolab/algolab/internal/window"
)

// AlgorithmStep is a wizard step picking algorithms from a fetched catalog.
type AlgorithmStep struct {
	Fetch[domain.Catalog]

	tracker *selection.GroupedTracker
}

func newAlgorithmStep(policy selection.StalePolicy) *AlgorithmStep {
	return &AlgorithmStep{tracker: selection.NewGroupedTracker(policy)}
}

// Complete stores a fetched catalog and applies the stale policy to the
// current selection. It returns the refs the policy dropped.
func (s *AlgorithmStep) Complete(ticket Ticket, catalog domain.Catalog) ([]domain.AlgorithmRef, bool) {
	if !s.Fetch.Complete(ticket, catalog) {
		return nil, false
	}

	return s.tracker.Reconcile(catalog), true
}

// Catalog returns the loaded catalog.
func (s *AlgorithmStep) Catalog() domain.Catalog {
	return s.Data()
}

// Tracker exposes the read side of the selection.
func (s *AlgorithmStep) Tracker() *selection.GroupedTracker {
	return s.tracker
}

// ToggleAlgorithm flips one algorithm. Algorithms outside the catalog can
// only be deselected.
func (s *AlgorithmStep) ToggleAlgorithm(group, algorithm string) (bool, error) {
	return s.Toggle(domain.AlgorithmRef{DataStructure: group, Algorithm: algorithm})
}

// Toggle flips ref.
func (s *AlgorithmStep) Toggle(ref domain.AlgorithmRef) (bool, error) {
	if !s.Ready() {
		return false, domain.ErrNotLoaded
	}

	if !s.Catalog().Contains(ref) && !s.tracker.IsSelected(ref) {
		return false, fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, ref)
	}

	return s.tracker.Toggle(ref), nil
}

// Select makes sure every ref is selected, validating each against the catalog.
func (s *AlgorithmStep) Select(refs ...domain.AlgorithmRef) error {
	if !s.Ready() {
		return domain.ErrNotLoaded
	}

	for _, ref := range refs {
		if !s.Catalog().Contains(ref) {
			return fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, ref)
		}
	}

	for _, ref := range refs {
		if !s.tracker.IsSelected(ref) {
			s.tracker.Toggle(ref)
		}
	}

	return nil
}

// ToggleSelectAll selects the whole catalog, or clears it when all is selected.
func (s *AlgorithmStep) ToggleSelectAll() error {
	if !s.Ready() {
		return domain.ErrNotLoaded
	}

	s.tracker.ToggleSelectAll(s.Catalog())

	return nil
}

// IsAlgorithmSelected reports whether algorithm inside group is selected.
func (s *AlgorithmStep) IsAlgorithmSelected(group, algorithm string) bool {
	return s.tracker.IsAlgorithmSelected(group, algorithm)
}

// IsAllSelected reports whether the whole loaded catalog is selected.
func (s *AlgorithmStep) IsAllSelected() bool {
	return s.tracker.IsAllSelected(s.Catalog())
}

// SelectedCount returns the number of selected algorithms.
func (s *AlgorithmStep) SelectedCount() int {
	return s.tracker.SelectedCount()
}

// SelectedAlgorithms returns the composite keys for the results request.
func (s *AlgorithmStep) SelectedAlgorithms() []string {
	return s.tracker.SelectedAlgorithms()
}

// Reset clears the selection. The catalog stays loaded.
func (s *AlgorithmStep) Reset() {
	s.tracker.Clear()
}

// CollectionStep picks target movies out of the sorted collection, shown
// through a windowed list.
type CollectionStep struct {
	Fetch[[]domain.Movie]

	tracker *selection.ItemTracker[int]
	window  *window.Controller
}

func newCollectionStep(policy selection.StalePolicy, rowHeight float64, overscan int) *CollectionStep {
	return &CollectionStep{
		tracker: selection.NewItemTracker[int](policy),
		window:  window.NewController(rowHeight, overscan),
	}
}

// Complete stores the fetched movies, resizes the window and applies the
// stale policy. It returns the identifiers the policy dropped.
func (s *CollectionStep) Complete(ticket Ticket, movies []domain.Movie) ([]int, bool) {
	if !s.Fetch.Complete(ticket, movies) {
		return nil, false
	}

	s.window.SetTotal(len(movies))

	return s.tracker.Reconcile(domain.MovieIDs(movies)), true
}

// Movies returns the loaded collection.
func (s *CollectionStep) Movies() []domain.Movie {
	return s.Data()
}

// Len returns the size of the loaded collection.
func (s *CollectionStep) Len() int {
	return len(s.Data())
}

// MovieAt returns the movie at a 0-based index.
func (s *CollectionStep) MovieAt(index int) (domain.Movie, bool) {
	movies := s.Data()
	if index < 0 || index >= len(movies) {
		return domain.Movie{}, false
	}

	return movies[index], true
}

// Window returns the windowing controller of the list.
func (s *CollectionStep) Window() *window.Controller {
	return s.window
}

// Tracker exposes the read side of the selection.
func (s *CollectionStep) Tracker() *selection.ItemTracker[int] {
	return s.tracker
}

// ToggleItem flips the selection of a movie id.
func (s *CollectionStep) ToggleItem(id int) (bool, error) {
	if !s.Ready() {
		return false, domain.ErrNotLoaded
	}

	return s.tracker.ToggleItem(id), nil
}

// ToggleAt flips the selection of the movie at a 0-based index.
func (s *CollectionStep) ToggleAt(index int) (bool, error) {
	if !s.Ready() {
		return false, domain.ErrNotLoaded
	}

	movie, ok := s.MovieAt(index)
	if !ok {
		return false, fmt.Errorf("%w: index %d", domain.ErrInvalidPosition, index)
	}

	return s.tracker.ToggleItem(movie.ID), nil
}

// IsItemSelected reports whether a movie id is selected.
func (s *CollectionStep) IsItemSelected(id int) bool {
	return s.tracker.IsItemSelected(id)
}

// SelectedCount returns the number of selected movies.
func (s *CollectionStep) SelectedCount() int {
	return s.tracker.SelectedCount()
}

// SelectedIDs returns the selected ids in selection order.
func (s *CollectionStep) SelectedIDs() []int {
	return s.tracker.SelectedIDs()
}

// Jump scrolls the list to target and returns the row it points at.
func (s *CollectionStep) Jump(target window.Target) (int, error) {
	if !s.Ready() {
		return 0, domain.ErrNotLoaded
	}

	index, err := window.TargetIndex(s.window.State(), target)
	if err != nil {
		return 0, err
	}

	if err := s.window.Jump(target); err != nil {
		return 0, err
	}

	return index, nil
}

// Reset clears the selection and scrolls back to the top.
func (s *CollectionStep) Reset() {
	s.tracker.Clear()
	s.window.ScrollTo(0)
}

// ResultsStep holds fetched results and the metric they are ranked by.
// Changing the metric re-sorts the same results without refetching.
type ResultsStep struct {
	Fetch[[]domain.AlgorithmResult]

	metric domain.Metric
}

func newResultsStep(metric domain.Metric) *ResultsStep {
	return &ResultsStep{metric: metric}
}

// Metric returns the selected metric.
func (s *ResultsStep) Metric() domain.Metric {
	return s.metric
}

// SetMetric changes the ranking metric.
func (s *ResultsStep) SetMetric(metric domain.Metric) {
	s.metric = metric
}

// Sorted returns the results ordered by the selected metric.
func (s *ResultsStep) Sorted() []domain.AlgorithmResult {
	return ordering.SortByMetric(s.Data(), s.metric)
}

// Ranked returns the ordered results with their rank.
func (s *ResultsStep) Ranked() []ordering.Rank {
	return ordering.Ranked(s.Data(), s.metric)
}
