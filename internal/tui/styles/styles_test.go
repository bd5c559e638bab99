// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/algolab/algolab/internal/domain"
)

func TestProgressBarWidth(t *testing.T) {
	t.Parallel()

	s := New()

	tests := []struct {
		name  string
		value float64
		peak  float64
	}{
		{name: "empty", value: 0, peak: 10},
		{name: "partial", value: 3, peak: 10},
		{name: "full", value: 10, peak: 10},
		{name: "no peak", value: 5, peak: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			bar := s.ProgressBar(testCase.value, testCase.peak, 20, s.Primary)
			assert.Equal(t, 20, lipgloss.Width(bar))
		})
	}

	assert.Empty(t, s.ProgressBar(1, 1, 0, s.Primary))
}

func TestComplexityColor(t *testing.T) {
	t.Parallel()

	s := New()

	assert.Equal(t, s.Success, s.ComplexityColor(domain.ComplexityLow))
	assert.Equal(t, s.Warning, s.ComplexityColor(domain.ComplexityMedium))
	assert.Equal(t, s.Error, s.ComplexityColor(domain.ComplexityHigh))
	assert.Equal(t, s.Muted, s.ComplexityColor(""))

	assert.Empty(t, s.ComplexityBadge("T", "", domain.ComplexityLow))
	assert.Contains(t, s.ComplexityBadge("T", "O(n)", domain.ComplexityLow), "T O(n)")
}

func TestCheckbox(t *testing.T) {
	t.Parallel()

	s := New()

	assert.Contains(t, s.Checkbox(true), "[x]")
	assert.Contains(t, s.Checkbox(false), "[ ]")
}
