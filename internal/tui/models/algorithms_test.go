// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/testutil"
	"github.com/algolab/algolab/internal/tui/styles"
)

func newLoadedSortSelect(t *testing.T) (*AlgorithmSelect, *Loader, *testutil.MockBenchmarkService) {
	t.Helper()

	service := &testutil.MockBenchmarkService{}
	service.On("SortDataStructures", mock.Anything).Return(testutil.SortCatalog(), nil)

	loader := newTestLoader(service)
	model := NewAlgorithmSelect(styles.New(), loader, SortWizard)
	model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	settle(loader, model, model.Init())

	require.True(t, loader.Session().Sort.Ready())

	return model, loader, service
}

func TestAlgorithmSelect_CursorSkipsGroupHeaders(t *testing.T) {
	t.Parallel()

	model, _, _ := newLoadedSortSelect(t)

	ref, ok := model.Cursor()
	require.True(t, ok)
	assert.Equal(t, domain.AlgorithmRef{DataStructure: "array", Algorithm: "quickSort"}, ref)

	model.Update(keyDown)
	model.Update(keyDown)

	ref, _ = model.Cursor()
	assert.Equal(t, domain.AlgorithmRef{DataStructure: "linkedList", Algorithm: "quickSort"}, ref)

	model.Update(keyDown)

	ref, _ = model.Cursor()
	assert.Equal(t, "linkedList", ref.DataStructure, "cursor stays on the last row")

	model.Update(keyUp)

	ref, _ = model.Cursor()
	assert.Equal(t, domain.AlgorithmRef{DataStructure: "array", Algorithm: "bubbleSort"}, ref)
}

func TestAlgorithmSelect_ToggleScopedToGroup(t *testing.T) {
	t.Parallel()

	model, loader, _ := newLoadedSortSelect(t)
	step := loader.Session().Sort

	model.Update(keySpace)

	assert.True(t, step.IsAlgorithmSelected("array", "quickSort"))
	assert.False(t, step.IsAlgorithmSelected("linkedList", "quickSort"))
	assert.Contains(t, model.View(), "Selected: 1 / 3")

	model.Update(keySpace)
	assert.Equal(t, 0, step.SelectedCount())
}

func TestAlgorithmSelect_SelectAllTogglesWholeCatalog(t *testing.T) {
	t.Parallel()

	model, loader, _ := newLoadedSortSelect(t)
	step := loader.Session().Sort

	model.Update(keySpace)
	model.Update(runes("a"))

	assert.True(t, step.IsAllSelected(), "partial selection becomes full selection")
	assert.Contains(t, model.View(), "deselect all")

	model.Update(runes("a"))
	assert.Equal(t, 0, step.SelectedCount())
}

func TestAlgorithmSelect_ContinueGatedOnSelection(t *testing.T) {
	t.Parallel()

	model, loader, service := newLoadedSortSelect(t)

	_, cmd := model.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, model.Notice())
	service.AssertNotCalled(t, "SortResults", mock.Anything, mock.Anything)

	service.On("SortResults", mock.Anything, domain.SortRequest{Algorithms: []string{"array:quickSort"}}).
		Return([]domain.AlgorithmResult{{Algorithm: "quickSort", DataStructure: "array"}}, nil)

	model.Update(keySpace)

	_, cmd = model.Update(keyEnter)
	navigations := settle(loader, model, cmd)

	require.Len(t, navigations, 1)
	assert.Equal(t, SortResultsScreen, navigations[0].Screen)
	assert.True(t, loader.Session().SortResults.Ready())
}

func TestAlgorithmSelect_LoadFailureOffersRetry(t *testing.T) {
	t.Parallel()

	service := &testutil.MockBenchmarkService{}
	service.On("SearchDataStructures", mock.Anything).Return(nil, errors.New("boom")).Once()
	service.On("SearchDataStructures", mock.Anything).Return(testutil.SortCatalog(), nil).Once()

	loader := newTestLoader(service)
	model := NewAlgorithmSelect(styles.New(), loader, SearchWizard)
	model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	settle(loader, model, model.Init())

	assert.Contains(t, model.View(), "Could not load the algorithms")

	model.Update(runes("a"))
	assert.Equal(t, "Nothing is loaded yet.", model.Notice())

	_, cmd := model.Update(runes("r"))
	settle(loader, model, cmd)

	assert.True(t, loader.Session().Search.Ready())
	assert.Contains(t, model.View(), "Quick Sort")
}

func TestAlgorithmSelect_Back(t *testing.T) {
	t.Parallel()

	model, _, _ := newLoadedSortSelect(t)
	_, cmd := model.Update(keyEsc)
	assert.Equal(t, NavigateMsg{Screen: DashboardScreen, Reset: true}, cmd())

	search := NewAlgorithmSelect(styles.New(), newTestLoader(&testutil.MockBenchmarkService{}), SearchWizard)
	_, cmd = search.Update(keyEsc)
	assert.Equal(t, NavigateMsg{Screen: SearchMoviesScreen}, cmd())
}
