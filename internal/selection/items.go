// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package selection

// ItemTracker tracks selected items of a large ordered collection by their
// stable identifier, so selection survives the visible window moving.
type ItemTracker[ID comparable] struct {
	set    Set[ID]
	policy StalePolicy
}

// NewItemTracker creates an empty tracker using the given stale policy.
func NewItemTracker[ID comparable](policy StalePolicy) *ItemTracker[ID] {
	return &ItemTracker[ID]{policy: policy}
}

// ToggleItem flips the selection of id and reports whether it is selected afterwards.
func (t *ItemTracker[ID]) ToggleItem(id ID) bool {
	return t.set.Toggle(id)
}

// IsItemSelected reports whether id is selected. Called once per visible row per frame.
func (t *ItemTracker[ID]) IsItemSelected(id ID) bool {
	return t.set.Has(id)
}

// SelectedCount returns the number of selected items.
func (t *ItemTracker[ID]) SelectedCount() int {
	return t.set.Count()
}

// SelectedIDs returns the selected identifiers in selection order.
func (t *ItemTracker[ID]) SelectedIDs() []ID {
	return t.set.Keys()
}

// Stale returns selected identifiers missing from ids.
func (t *ItemTracker[ID]) Stale(ids []ID) []ID {
	known := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}

	var stale []ID

	for _, id := range t.set.Keys() {
		if _, ok := known[id]; !ok {
			stale = append(stale, id)
		}
	}

	return stale
}

// Reconcile applies the stale policy against a freshly fetched collection
// and returns the identifiers it dropped.
func (t *ItemTracker[ID]) Reconcile(ids []ID) []ID {
	if t.policy != StalePrune {
		return nil
	}

	stale := t.Stale(ids)
	for _, id := range stale {
		t.set.Remove(id)
	}

	return stale
}

// Clear deselects everything.
func (t *ItemTracker[ID]) Clear() {
	t.set.Clear()
}
