// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/session"
	"github.com/algolab/algolab/internal/testutil"
	"github.com/algolab/algolab/internal/tui/styles"
)

func newResultsWith(t *testing.T, wizard Wizard, results []domain.AlgorithmResult) (*Results, *Loader) {
	t.Helper()

	loader := newTestLoader(&testutil.MockBenchmarkService{})

	step := loader.Session().SortResults
	if wizard == SearchWizard {
		step = loader.Session().SearchResults
	}

	require.True(t, step.Complete(step.Begin(), results))

	model := NewResults(styles.New(), loader, wizard)
	model.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	model.Update(ActivatedMsg{})

	return model, loader
}

func TestResults_CyclesMetricAndReorders(t *testing.T) {
	t.Parallel()

	model, _ := newResultsWith(t, SortWizard, []domain.AlgorithmResult{
		{Algorithm: "r1", DataStructure: "array", Metrics: domain.Metrics{Time: 3, Memory: 1}},
		{Algorithm: "r2", DataStructure: "array", Metrics: domain.Metrics{Time: 1, Memory: 3}},
		{Algorithm: "r3", DataStructure: "array", Metrics: domain.Metrics{Time: 1, Memory: 2}},
	})

	view := model.View()
	assert.Equal(t, domain.MetricTime, model.Metric())
	assert.Less(t, strings.Index(view, "R2"), strings.Index(view, "R3"), "ties keep service order")
	assert.Less(t, strings.Index(view, "R3"), strings.Index(view, "R1"))

	model.Update(keyRight)

	view = model.View()
	assert.Equal(t, domain.MetricMemory, model.Metric())
	assert.Less(t, strings.Index(view, "R1"), strings.Index(view, "R3"))
	assert.Less(t, strings.Index(view, "R3"), strings.Index(view, "R2"))

	model.Update(runes("h"))
	assert.Equal(t, domain.MetricTime, model.Metric())
}

func TestResults_SearchShowsFoundPosition(t *testing.T) {
	t.Parallel()

	position := 41
	model, _ := newResultsWith(t, SearchWizard, []domain.AlgorithmResult{
		{
			Algorithm:         "binarySearch",
			DataStructure:     "array",
			ItemFoundPosition: &position,
			ItemFound:         &domain.Movie{ID: 42, Title: "Heat"},
			SubMetrics: []domain.SubMetrics{
				{Metrics: domain.Metrics{Time: 2}, ItemFoundPosition: &position},
				{Metrics: domain.Metrics{Time: 1}},
			},
		},
	})

	view := model.View()
	assert.Contains(t, view, "Found at position 41: Heat")
	assert.Contains(t, view, "not found")
	assert.Less(t, strings.Index(view, "not found"), strings.Index(view, "position 41 ·"), "targets ordered by metric")
}

func TestResults_Navigation(t *testing.T) {
	t.Parallel()

	model, _ := newResultsWith(t, SearchWizard, nil)

	_, cmd := model.Update(keyEsc)
	assert.Equal(t, NavigateMsg{Screen: SearchAlgorithmsScreen}, cmd())

	_, cmd = model.Update(runes("n"))
	assert.Equal(t, NavigateMsg{Screen: SearchMoviesScreen, Reset: true}, cmd())

	assert.Contains(t, model.View(), "No results.")
}

func TestResults_RerunWithoutSelection(t *testing.T) {
	t.Parallel()

	model, loader := newResultsWith(t, SortWizard, nil)

	_, cmd := model.Update(runes("r"))
	assert.Nil(t, cmd)
	assert.NotEmpty(t, model.notice)
	assert.Equal(t, session.Ready, loader.Session().SortResults.State())
}

func TestResults_CopyRanking(t *testing.T) {
	t.Parallel()

	model, _ := newResultsWith(t, SortWizard, []domain.AlgorithmResult{
		{Algorithm: "quickSort", DataStructure: "array", Metrics: domain.Metrics{Time: 3}},
		{Algorithm: "mergeSort", DataStructure: "array", Metrics: domain.Metrics{Time: 1}},
	})

	var copied string

	model.copyText = func(text string) error {
		copied = text

		return nil
	}

	model.Update(runes("y"))

	assert.Equal(t, "Sort · results by Time\n1. array:mergeSort  1.00 µs\n2. array:quickSort  3.00 µs\n", copied)
	assert.Equal(t, "Copied 2 results", model.notice)

	model.copyText = func(string) error { return errors.New("no clipboard utility") }
	model.Update(runes("y"))
	assert.Equal(t, "Clipboard error: no clipboard utility", model.notice)
}

func TestResults_CopyWithoutResults(t *testing.T) {
	t.Parallel()

	model, _ := newResultsWith(t, SortWizard, nil)
	model.copyText = func(string) error {
		t.Fatal("clipboard must not be written")

		return nil
	}

	model.Update(runes("y"))
	assert.Equal(t, "Nothing to copy", model.notice)
}
