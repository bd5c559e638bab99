// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemTrackerToggle(t *testing.T) {
	t.Parallel()

	tracker := NewItemTracker[int](StaleKeep)

	assert.True(t, tracker.ToggleItem(42))
	assert.True(t, tracker.ToggleItem(7))
	assert.True(t, tracker.IsItemSelected(42))
	assert.False(t, tracker.IsItemSelected(8))
	assert.Equal(t, 2, tracker.SelectedCount())
	assert.Equal(t, []int{42, 7}, tracker.SelectedIDs())

	assert.False(t, tracker.ToggleItem(42))
	assert.Equal(t, []int{7}, tracker.SelectedIDs())
}

func TestItemTrackerHandlesLargeSelections(t *testing.T) {
	t.Parallel()

	tracker := NewItemTracker[int](StaleKeep)

	for id := range 10000 {
		tracker.ToggleItem(id)
	}

	assert.Equal(t, 10000, tracker.SelectedCount())
	assert.True(t, tracker.IsItemSelected(9999))

	tracker.Clear()
	assert.Zero(t, tracker.SelectedCount())
}

func TestItemTrackerReconcile(t *testing.T) {
	t.Parallel()

	keep := NewItemTracker[int](StaleKeep)
	prune := NewItemTracker[int](StalePrune)

	for _, tracker := range []*ItemTracker[int]{keep, prune} {
		tracker.ToggleItem(1)
		tracker.ToggleItem(99)
		tracker.ToggleItem(2)
	}

	fresh := []int{1, 2, 3}

	assert.Equal(t, []int{99}, keep.Stale(fresh))
	assert.Nil(t, keep.Reconcile(fresh))
	assert.Equal(t, 3, keep.SelectedCount())

	require.Equal(t, []int{99}, prune.Reconcile(fresh))
	assert.Equal(t, []int{1, 2}, prune.SelectedIDs())
}

func TestParseStalePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  StalePolicy
	}{
		{input: "", want: StaleKeep},
		{input: "keep", want: StaleKeep},
		{input: " Prune ", want: StalePrune},
	}

	for _, testCase := range tests {
		got, err := ParseStalePolicy(testCase.input)
		require.NoError(t, err, testCase.input)
		assert.Equal(t, testCase.want, got)
		assert.Equal(t, got, mustParse(t, got.String()))
	}

	_, err := ParseStalePolicy("forget")
	require.ErrorIs(t, err, ErrUnknownStalePolicy)
}

func mustParse(t *testing.T, name string) StalePolicy {
	t.Helper()

	policy, err := ParseStalePolicy(name)
	require.NoError(t, err)

	return policy
}
