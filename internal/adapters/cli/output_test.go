// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/ordering"
	"github.com/algolab/algolab/internal/window"
)

func TestOutputAdapter_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		format       OutputFormat
		quiet        bool
		message      string
		data         any
		wantContains string
		wantEmpty    bool
	}{
		{
			name:         "text format with message",
			format:       TextFormat,
			message:      "Config written",
			wantContains: "Config written",
		},
		{
			name:      "quiet mode suppresses message",
			format:    TextFormat,
			quiet:     true,
			message:   "Config written",
			wantEmpty: true,
		},
		{
			name:         "JSON format with data",
			format:       JSONFormat,
			message:      "ignored",
			data:         domain.SortRequest{Algorithms: []string{"array:quickSort"}},
			wantContains: `"algorithms"`,
		},
		{
			name:         "JSON format without data shows message",
			format:       JSONFormat,
			message:      "nothing to show",
			wantContains: "nothing to show",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			adapter := NewOutputAdapterWithWriter(&buf, testCase.format, testCase.quiet)
			require.NoError(t, adapter.Success(testCase.message, testCase.data))

			if testCase.wantEmpty {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), testCase.wantContains)
			}
		})
	}
}

func TestOutputAdapter_TableText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, TextFormat, false)
	require.NoError(t, adapter.Table(
		[]string{"KEY", "NAME"},
		[][]string{{"array:quickSort", "Quick Sort"}, {"list:merge", strings.Repeat("x", 80)}},
		nil,
	))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "KEY              NAME", lines[0])
	assert.Equal(t, "---              ----", lines[1])
	assert.True(t, strings.HasSuffix(lines[3], "…"), "long cells are truncated")
}

func TestOutputAdapter_TableJSONPrefersData(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, JSONFormat, true)
	require.NoError(t, adapter.Table([]string{"ID"}, [][]string{{"1"}}, []domain.Movie{{ID: 1, Title: "Alien"}}))

	var movies []domain.Movie
	require.NoError(t, json.Unmarshal(buf.Bytes(), &movies))
	assert.Equal(t, "Alien", movies[0].Title)

	buf.Reset()
	require.NoError(t, adapter.Table([]string{"ID"}, [][]string{{"1"}}, nil))
	assert.JSONEq(t, `{"headers":["ID"],"rows":[["1"]]}`, buf.String())
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	format, err := ParseOutputFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, JSONFormat, format)

	format, err = ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, TextFormat, format)

	_, err = ParseOutputFormat("yaml")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestCatalogRows(t *testing.T) {
	t.Parallel()

	catalog := domain.Catalog{
		{Key: "array", Name: "Array", Algorithms: []domain.Algorithm{
			{Key: "quickSort", Name: "Quick Sort", TimeComplexity: "O(n log n)", TimeComplexityLevel: domain.ComplexityMedium},
		}},
		{Key: "list", Name: "Linked List", Algorithms: []domain.Algorithm{{Key: "merge", Name: "Merge Sort"}}},
	}

	assert.Equal(t, [][]string{
		{"array:quickSort", "Array", "Quick Sort", "O(n log n) (medium)", "-"},
		{"list:merge", "Linked List", "Merge Sort", "-", "-"},
	}, CatalogRows(catalog))
}

func TestRankingRows(t *testing.T) {
	t.Parallel()

	found := 12
	results := []domain.AlgorithmResult{
		{Algorithm: "linear", DataStructure: "array", Metrics: domain.Metrics{Operations: 5}},
		{Algorithm: "binary", DataStructure: "array", Metrics: domain.Metrics{Operations: 2}, ItemFoundPosition: &found},
	}

	rows := RankingRows(ordering.Ranked(results, domain.MetricOperations), domain.MetricOperations)

	assert.Equal(t, [][]string{
		{"1", "array", "binary", "2", "", "", "12"},
		{"2", "array", "linear", "5", "", "", "-"},
	}, rows)
	assert.Equal(t, "Operations", RankingHeaders(domain.MetricOperations)[3])
}

func TestMovieRows(t *testing.T) {
	t.Parallel()

	movies := []domain.Movie{{ID: 10, Title: "A"}, {ID: 20, Title: "B", ReleaseYear: 1999}, {ID: 30, Title: "C"}}

	assert.Equal(t, [][]string{{"2", "20", "B", "1999"}, {"3", "30", "C", ""}}, MovieRows(movies, window.Range{Start: 1, End: 2}))
	assert.Nil(t, MovieRows(movies, window.EmptyRange))
}
