// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package selection

import "github.com/algolab/algolab/internal/domain"

// GroupedTracker tracks the algorithms selected in one wizard. Selection is
// keyed by (data structure, algorithm) because algorithm keys repeat across
// data structures.
type GroupedTracker struct {
	set    Set[domain.AlgorithmRef]
	policy StalePolicy
}

// NewGroupedTracker creates an empty tracker using the given stale policy.
func NewGroupedTracker(policy StalePolicy) *GroupedTracker {
	return &GroupedTracker{policy: policy}
}

// Policy returns the stale policy of the tracker.
func (t *GroupedTracker) Policy() StalePolicy {
	return t.policy
}

// ToggleAlgorithm flips the selection of algorithm inside group and reports
// whether it is selected afterwards.
func (t *GroupedTracker) ToggleAlgorithm(group, algorithm string) bool {
	return t.Toggle(domain.AlgorithmRef{DataStructure: group, Algorithm: algorithm})
}

// Toggle flips the selection of ref.
func (t *GroupedTracker) Toggle(ref domain.AlgorithmRef) bool {
	return t.set.Toggle(ref)
}

// IsAlgorithmSelected reports whether algorithm inside group is selected.
func (t *GroupedTracker) IsAlgorithmSelected(group, algorithm string) bool {
	return t.IsSelected(domain.AlgorithmRef{DataStructure: group, Algorithm: algorithm})
}

// IsSelected reports whether ref is selected.
func (t *GroupedTracker) IsSelected(ref domain.AlgorithmRef) bool {
	return t.set.Has(ref)
}

// ToggleSelectAll deselects everything when every catalog algorithm is
// selected, and otherwise selects every catalog algorithm. A partial
// selection always becomes a full one.
func (t *GroupedTracker) ToggleSelectAll(catalog domain.Catalog) {
	if t.IsAllSelected(catalog) {
		t.set.Clear()

		return
	}

	if t.policy == StalePrune {
		t.Reconcile(catalog)
	}

	for _, ref := range catalog.Refs() {
		t.set.Add(ref)
	}
}

// IsAllSelected reports whether every algorithm of a non-empty catalog is
// selected. Stale selections outside the catalog do not count.
func (t *GroupedTracker) IsAllSelected(catalog domain.Catalog) bool {
	total := catalog.AlgorithmCount()
	if total == 0 {
		return false
	}

	return t.SelectedCountIn(catalog) == total
}

// SelectedCount returns the number of selected algorithms, stale ones included.
func (t *GroupedTracker) SelectedCount() int {
	return t.set.Count()
}

// SelectedCountIn returns how many algorithms of catalog are selected.
func (t *GroupedTracker) SelectedCountIn(catalog domain.Catalog) int {
	count := 0

	for _, ref := range catalog.Refs() {
		if t.set.Has(ref) {
			count++
		}
	}

	return count
}

// GroupCount returns the selected and total algorithm counts of one group.
func (t *GroupedTracker) GroupCount(group domain.DataStructure) (int, int) {
	selected := 0

	for _, algorithm := range group.Algorithms {
		if t.IsAlgorithmSelected(group.Key, algorithm.Key) {
			selected++
		}
	}

	return selected, len(group.Algorithms)
}

// SelectedRefs returns the selected algorithms in selection order.
func (t *GroupedTracker) SelectedRefs() []domain.AlgorithmRef {
	return t.set.Keys()
}

// SelectedAlgorithms returns the composite "group:algorithm" keys in
// selection order, in the form the benchmark service expects.
func (t *GroupedTracker) SelectedAlgorithms() []string {
	refs := t.set.Keys()

	keys := make([]string, len(refs))
	for i, ref := range refs {
		keys[i] = ref.Key()
	}

	return keys
}

// Stale returns the selected refs that catalog does not contain.
func (t *GroupedTracker) Stale(catalog domain.Catalog) []domain.AlgorithmRef {
	known := make(map[domain.AlgorithmRef]struct{}, catalog.AlgorithmCount())
	for _, ref := range catalog.Refs() {
		known[ref] = struct{}{}
	}

	var stale []domain.AlgorithmRef

	for _, ref := range t.set.Keys() {
		if _, ok := known[ref]; !ok {
			stale = append(stale, ref)
		}
	}

	return stale
}

// Reconcile applies the stale policy against a freshly fetched catalog and
// returns the refs it dropped.
func (t *GroupedTracker) Reconcile(catalog domain.Catalog) []domain.AlgorithmRef {
	if t.policy != StalePrune {
		return nil
	}

	stale := t.Stale(catalog)
	for _, ref := range stale {
		t.set.Remove(ref)
	}

	return stale
}

// Clear deselects everything.
func (t *GroupedTracker) Clear() {
	t.set.Clear()
}
