// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key, name, want string
	}{
		{key: "array", want: "Array"},
		{key: "linkedList", want: "Linked List"},
		{key: "binary_search_tree", want: "Binary Search Tree"},
		{key: "quickSort", name: "Quick Sort (Hoare)", want: "Quick Sort (Hoare)"},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, DisplayName(testCase.key, testCase.name))
	}
}

func TestTruncateAndPad(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Star…", Truncate("Star Wars", 5))
	assert.Empty(t, Truncate("x", 0))
	assert.Equal(t, "Heat  ", PadRight("Heat", 6))
	assert.Equal(t, "1 algorithm", pluralize(1, "algorithm"))
	assert.Equal(t, "3 algorithms", pluralize(3, "algorithm"))
}
