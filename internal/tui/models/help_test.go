// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algolab/algolab/internal/tui/styles"
)

func TestHelp_OpensOnScreenSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		screen Screen
		want   string
	}{
		{screen: DashboardScreen, want: "Dashboard"},
		{screen: SortSelectScreen, want: "Algorithms"},
		{screen: SearchAlgorithmsScreen, want: "Algorithms"},
		{screen: SearchMoviesScreen, want: "Movies"},
		{screen: SortResultsScreen, want: "Results"},
	}

	for _, testCase := range tests {
		t.Run(testCase.screen.String(), func(t *testing.T) {
			t.Parallel()

			help := NewHelp(styles.New())
			help.Show(testCase.screen)

			assert.True(t, help.IsVisible())
			assert.Equal(t, testCase.want, help.CurrentSection())
		})
	}
}

func TestHelp_KeysAndView(t *testing.T) {
	t.Parallel()

	help := NewHelp(styles.New())
	assert.Empty(t, help.View())

	help.SetSize(100, 40)
	help.Show(DashboardScreen)
	assert.Contains(t, help.View(), "Help")

	help.Update(keyRight)
	assert.Equal(t, "Algorithms", help.CurrentSection())

	help.Update(keyEsc)
	assert.False(t, help.IsVisible())
}
