// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/huh"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/algolab/algolab/internal/api"
	"github.com/algolab/algolab/internal/cli/handlers"
	"github.com/algolab/algolab/internal/config"
	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/session"
	"github.com/algolab/algolab/internal/testutil"
)

const testToken = "s3cret"

// newBenchmarkServer serves a small catalog and 100 movies, and ranks sort
// requests by echoing one result per requested algorithm.
func newBenchmarkServer(t *testing.T) *httptest.Server {
	t.Helper()

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/metadata", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, domain.Metadata{Version: "2.0.0", MovieCount: 100})
	})
	mux.HandleFunc("GET /api/data-structures/sort", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, testutil.SortCatalog())
	})
	mux.HandleFunc("GET /api/movies/sorted", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(w, map[string]string{"error": "invalid token"})

			return
		}

		writeJSON(w, testutil.Movies(100))
	})
	mux.HandleFunc("POST /api/algorithms/sort", func(w http.ResponseWriter, r *http.Request) {
		var req domain.SortRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		results := make([]domain.AlgorithmResult, len(req.Algorithms))
		for i, key := range req.Algorithms {
			ref, _ := domain.ParseAlgorithmRef(key)
			results[i] = domain.AlgorithmResult{
				DataStructure: ref.DataStructure,
				Algorithm:     ref.Algorithm,
				Metrics:       domain.Metrics{Time: float64(10 - i), Operations: float64(i + 1)},
			}
		}

		writeJSON(w, results)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

type run struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	err    error
}

func runCLI(t *testing.T, opts []Option, args ...string) *run {
	t.Helper()

	result := &run{}
	opts = append([]Option{WithWriters(&result.stdout, &result.stderr)}, opts...)

	configPath := filepath.Join(t.TempDir(), "config.toml")
	argv := append([]string{"algolab", "--config", configPath}, args...)

	result.err = NewCLI(opts...).Run(context.Background(), argv)

	return result
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	exitErr := &domain.ExitError{}
	require.ErrorAs(t, err, &exitErr)

	return exitErr.Code
}

func TestNewCLI(t *testing.T) {
	t.Parallel()

	app := NewCLI()

	require.NotNil(t, app.app)
	assert.Equal(t, "algolab", app.app.Name)
	assert.NotEmpty(t, app.app.Usage)
	assert.NotEmpty(t, app.app.Description)

	names := make(map[string]bool)
	for _, cmd := range app.app.Commands {
		names[cmd.Name] = true
	}

	for _, expected := range []string{"tui", "info", "catalog", "movies", "sort", "search", "config", "version"} {
		assert.True(t, names[expected], "command %s should exist", expected)
	}
}

func TestCLI_Catalog(t *testing.T) {
	t.Parallel()

	server := newBenchmarkServer(t)

	result := runCLI(t, nil, "--api-url", server.URL, "catalog", "sort")
	require.NoError(t, result.err)

	assert.Contains(t, result.stdout.String(), "array:bubbleSort")
	assert.Contains(t, result.stdout.String(), "linkedList:quickSort")
}

func TestCLI_SortRanksByMetric(t *testing.T) {
	t.Parallel()

	server := newBenchmarkServer(t)

	result := runCLI(t, nil, "--api-url", server.URL, "--json",
		"sort", "--algorithms", "array:quickSort,array:bubbleSort", "--metric", "operations")
	require.NoError(t, result.err)

	var results []domain.AlgorithmResult
	require.NoError(t, json.Unmarshal(result.stdout.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "quickSort", results[0].Algorithm)
	assert.Equal(t, "bubbleSort", results[1].Algorithm)

	result = runCLI(t, nil, "--api-url", server.URL, "--json", "sort", "--all", "--metric", "time")
	require.NoError(t, result.err)

	require.NoError(t, json.Unmarshal(result.stdout.Bytes(), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "linkedList:quickSort", results[0].Ref().Key())
}

func TestCLI_SortErrors(t *testing.T) {
	t.Parallel()

	server := newBenchmarkServer(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{
			name:     "nothing selected",
			args:     []string{"sort"},
			wantCode: domain.ExitUsageError,
		},
		{
			name:     "unknown algorithm",
			args:     []string{"sort", "--algorithms", "array:bogoSort"},
			wantCode: domain.ExitNotFoundError,
		},
		{
			name:     "unknown metric",
			args:     []string{"sort", "--all", "--metric", "speed"},
			wantCode: domain.ExitUsageError,
		},
		{
			name:     "interactive without a terminal",
			args:     []string{"sort", "--interactive"},
			wantCode: domain.ExitUsageError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			opts := []Option{WithPrompt(nil, func() bool { return false })}
			result := runCLI(t, opts, append([]string{"--api-url", server.URL}, testCase.args...)...)

			assert.Equal(t, testCase.wantCode, exitCode(t, result.err))
		})
	}
}

func TestCLI_SortInteractive(t *testing.T) {
	t.Parallel()

	server := newBenchmarkServer(t)

	prompt := func(catalog domain.Catalog, _ []domain.AlgorithmRef) ([]domain.AlgorithmRef, error) {
		return catalog.Refs()[2:], nil
	}

	result := runCLI(t, []Option{WithPrompt(prompt, func() bool { return true })},
		"--api-url", server.URL, "--json", "sort", "-i")
	require.NoError(t, result.err)

	var results []domain.AlgorithmResult
	require.NoError(t, json.Unmarshal(result.stdout.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "linkedList", results[0].DataStructure)
}

func TestCLI_Movies(t *testing.T) {
	t.Parallel()

	server := newBenchmarkServer(t)

	result := runCLI(t, nil, "--api-url", server.URL, "--token", testToken, "--json",
		"movies", "--jump", "50", "--window", "4")
	require.NoError(t, result.err)

	var movies []domain.Movie
	require.NoError(t, json.Unmarshal(result.stdout.Bytes(), &movies))
	assert.Equal(t, []int{48, 49, 50, 51}, domain.MovieIDs(movies))

	result = runCLI(t, nil, "--api-url", server.URL, "--token", testToken, "movies", "--jump", "later")
	assert.Equal(t, domain.ExitUsageError, exitCode(t, result.err))

	result = runCLI(t, nil, "--api-url", server.URL, "--token", testToken, "movies", "--jump", "101")
	assert.Equal(t, domain.ExitUsageError, exitCode(t, result.err))
}

func TestCLI_RejectedToken(t *testing.T) {
	t.Parallel()

	server := newBenchmarkServer(t)

	result := runCLI(t, nil, "--api-url", server.URL, "--token", "wrong", "movies")

	assert.Equal(t, domain.ExitAuthError, exitCode(t, result.err))
	assert.Contains(t, result.stderr.String(), "rejected the token")
}

func TestCLI_ServiceUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	result := runCLI(t, nil, "--api-url", url, "catalog")

	assert.Equal(t, domain.ExitNetworkError, exitCode(t, result.err))
}

func TestCLI_Info(t *testing.T) {
	t.Parallel()

	server := newBenchmarkServer(t)

	result := runCLI(t, nil, "--api-url", server.URL, "--json", "info")
	require.NoError(t, result.err)

	var meta domain.Metadata
	require.NoError(t, json.Unmarshal(result.stdout.Bytes(), &meta))
	assert.Equal(t, "2.0.0", meta.Version)
}

func TestCLI_OutputFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "json and plain", args: []string{"--json", "--plain", "version"}},
		{name: "unknown color mode", args: []string{"--color", "rainbow", "version"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := runCLI(t, nil, testCase.args...)
			assert.Equal(t, domain.ExitUsageError, exitCode(t, result.err))
		})
	}
}

func TestCLI_Version(t *testing.T) {
	t.Parallel()

	result := runCLI(t, nil, "--json", "version")
	require.NoError(t, result.err)

	assert.JSONEq(t, fmt.Sprintf(`{"version":%q}`, Version), result.stdout.String())
}

func TestCLI_Config(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "algolab", "config.toml")
	runIn := func(args ...string) *run {
		result := &run{}
		argv := append([]string{"algolab", "--config", configPath}, args...)
		result.err = NewCLI(WithWriters(&result.stdout, &result.stderr)).Run(context.Background(), argv)

		return result
	}

	result := runIn("config", "path")
	require.NoError(t, result.err)
	assert.Equal(t, configPath+"\n", result.stdout.String())

	result = runIn("config", "init")
	require.NoError(t, result.err)
	assert.FileExists(t, configPath)

	result = runIn("config", "init")
	assert.Equal(t, domain.ExitConfigError, exitCode(t, result.err))

	result = runIn("config", "init", "--force")
	require.NoError(t, result.err)

	result = runIn("--token", testToken, "--timeout", "3s", "config", "show")
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout.String(), "3s")
	assert.Contains(t, result.stdout.String(), redactedToken)
	assert.NotContains(t, result.stdout.String(), testToken)

	result = runIn("--timeout", "3s", "config", "show", "--format", "yaml")
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout.String(), "timeout: 3s")
	assert.Contains(t, result.stdout.String(), "stale_policy: keep")

	result = runIn("config", "show", "--format", "ini")
	assert.Equal(t, domain.ExitUsageError, exitCode(t, result.err))
}

func TestCLI_InvalidConfigFile(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[list]\noverscan = -1\n"), 0o600))

	var stdout, stderr bytes.Buffer

	err := NewCLI(WithWriters(&stdout, &stderr)).Run(context.Background(),
		[]string{"algolab", "--config", configPath, "catalog"})

	assert.Equal(t, domain.ExitConfigError, exitCode(t, err))
}

func TestCLI_DefaultActionLaunchesDashboard(t *testing.T) {
	t.Parallel()

	var (
		launched *session.Session
		service  domain.BenchmarkService
	)

	launcher := func(_ context.Context, sess *session.Session, svc domain.BenchmarkService) error {
		launched = sess
		service = svc

		return nil
	}

	result := runCLI(t, []Option{WithLauncher(launcher)}, "--api-url", "http://bench.example", "--token", testToken)
	require.NoError(t, result.err)

	require.NotNil(t, launched)
	assert.Equal(t, testToken, launched.Token())

	client, ok := service.(*api.Client)
	require.True(t, ok)
	assert.Equal(t, "http://bench.example/api", client.BaseURL())

	result = runCLI(t, []Option{WithLauncher(launcher)}, "benchmark")
	assert.Equal(t, domain.ExitUsageError, exitCode(t, result.err))
}

func TestCLI_ServiceFactory(t *testing.T) {
	t.Parallel()

	mockService := &testutil.MockBenchmarkService{}
	mockService.On("Metadata", mock.Anything).Return(domain.Metadata{Version: "mock"}, nil)

	var got Settings

	factory := func(settings Settings, _ *session.Session) domain.BenchmarkService {
		got = settings

		return mockService
	}

	result := runCLI(t, []Option{WithServiceFactory(factory)}, "--timeout", "2s", "--plain", "info")
	require.NoError(t, result.err)

	assert.Equal(t, config.DefaultAPIURL, got.APIURL)
	assert.Equal(t, "2s", got.Config.API.Timeout)
	assert.NotNil(t, got.OnUnauthorized)
	assert.Contains(t, result.stdout.String(), "version:mock")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: domain.ExitSuccess},
		{name: "exit error", err: domain.NewExitError(domain.ExitSystemError, "disk full", nil), want: domain.ExitSystemError},
		{name: "interrupt", err: context.Canceled, want: domain.ExitInterruptError},
		{name: "form aborted", err: fmt.Errorf("form: %w", huh.ErrUserAborted), want: domain.ExitInterruptError},
		{name: "deadline", err: context.DeadlineExceeded, want: domain.ExitTimeoutError},
		{name: "unauthorized", err: &api.Error{StatusCode: http.StatusUnauthorized}, want: domain.ExitAuthError},
		{name: "not found", err: &api.Error{StatusCode: http.StatusNotFound}, want: domain.ExitNotFoundError},
		{name: "server error", err: &api.Error{StatusCode: http.StatusBadGateway}, want: domain.ExitNetworkError},
		{name: "network", err: fmt.Errorf("%w: dial", domain.ErrNetworkFailure), want: domain.ExitNetworkError},
		{name: "unknown movie", err: handlers.ErrUnknownMovie, want: domain.ExitNotFoundError},
		{name: "empty selection", err: domain.ErrEmptySelection, want: domain.ExitUsageError},
		{name: "invalid position", err: domain.ErrInvalidPosition, want: domain.ExitUsageError},
		{name: "invalid config", err: config.ErrInvalidConfig, want: domain.ExitConfigError},
		{name: "other", err: errors.New("boom"), want: domain.ExitGeneralError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, ExitCode(testCase.err))
		})
	}
}

func TestAlgorithmOptions(t *testing.T) {
	t.Parallel()

	options := AlgorithmOptions(testutil.SortCatalog(), []domain.AlgorithmRef{{DataStructure: "linkedList", Algorithm: "quickSort"}})

	require.Len(t, options, 3)
	assert.Equal(t, "array:quickSort", options[0].Value)
	assert.Equal(t, "Array · Quick Sort  O(n log n)", options[0].Key)
	assert.Equal(t, "linkedList:quickSort", options[2].Value)
}
