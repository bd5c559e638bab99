// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package api is the HTTP client of the benchmark service.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/algolab/algolab/internal/domain"
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 10 * time.Second

// Service paths, relative to the API root.
const (
	pathMetadata        = "/metadata"
	pathDashboard       = "/data-structures/dashboard"
	pathSortCatalog     = "/data-structures/sort"
	pathSearchCatalog   = "/data-structures/search"
	pathSortedMovies    = "/movies/sorted"
	pathSortBenchmark   = "/algorithms/sort"
	pathSearchBenchmark = "/algorithms/search"
)

// defaultErrorMessage is shown when the service fails without an error body.
const defaultErrorMessage = "internal server error"

// Error is a non-2xx reply of the service.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("service returned %d: %s", e.StatusCode, e.Message)
}

// Is maps 401 replies to domain.ErrUnauthorized.
func (e *Error) Is(target error) bool {
	return target == domain.ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client implements domain.BenchmarkService over HTTP.
type Client struct {
	baseURL        string
	client         *http.Client
	token          func() string
	onUnauthorized func()
}

// Option customizes a Client.
type Option func(*Client)

// WithToken sends a fixed bearer token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = func() string { return token }
	}
}

// WithTokenSource reads the bearer token on every request.
func WithTokenSource(source func() string) Option {
	return func(c *Client) {
		c.token = source
	}
}

// WithUnauthorizedHook runs hook whenever the service answers 401.
func WithUnauthorizedHook(hook func()) Option {
	return func(c *Client) {
		c.onUnauthorized = hook
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.client = httpClient
	}
}

// NewClient creates a client for the service rooted at apiURL. Requests go
// to apiURL + "/api".
func NewClient(apiURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL: strings.TrimRight(apiURL, "/") + "/api",
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
			},
		},
		token: func() string { return "" },
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Metadata returns information about the service.
func (c *Client) Metadata(ctx context.Context) (domain.Metadata, error) {
	var metadata domain.Metadata
	err := c.get(ctx, pathMetadata, &metadata)

	return metadata, err
}

// DashboardDataStructures returns the data structures of each module.
func (c *Client) DashboardDataStructures(ctx context.Context) (domain.Dashboard, error) {
	var dashboard domain.Dashboard
	err := c.get(ctx, pathDashboard, &dashboard)

	return dashboard, err
}

// SortDataStructures returns the sort wizard catalog.
func (c *Client) SortDataStructures(ctx context.Context) (domain.Catalog, error) {
	var catalog domain.Catalog
	err := c.get(ctx, pathSortCatalog, &catalog)

	return catalog, err
}

// SearchDataStructures returns the search wizard catalog.
func (c *Client) SearchDataStructures(ctx context.Context) (domain.Catalog, error) {
	var catalog domain.Catalog
	err := c.get(ctx, pathSearchCatalog, &catalog)

	return catalog, err
}

// SortedMovies returns the sorted movie collection.
func (c *Client) SortedMovies(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie
	err := c.get(ctx, pathSortedMovies, &movies)

	return movies, err
}

// SortResults runs a sort benchmark.
func (c *Client) SortResults(ctx context.Context, req domain.SortRequest) ([]domain.AlgorithmResult, error) {
	var results []domain.AlgorithmResult
	err := c.post(ctx, pathSortBenchmark, req, &results)

	return results, err
}

// SearchResults runs a search benchmark.
func (c *Client) SearchResults(ctx context.Context, req domain.SearchRequest) ([]domain.AlgorithmResult, error) {
	var results []domain.AlgorithmResult
	err := c.post(ctx, pathSearchBenchmark, req, &results)

	return results, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}

		return fmt.Errorf("%w: %s %s: %w", domain.ErrNetworkFailure, req.Method, req.URL.Path, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := readError(resp)
		if apiErr.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}

		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", req.URL.Path, err)
	}

	return nil
}

func readError(resp *http.Response) *Error {
	apiErr := &Error{StatusCode: resp.StatusCode, Message: defaultErrorMessage}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var body errorResponse
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
	}

	return apiErr
}
