// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	cliAdapter "github.com/algolab/algolab/internal/adapters/cli"
	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/session"
	"github.com/algolab/algolab/internal/window"
)

var (
	// ErrUnknownModule is returned for a catalog module other than sort, search or dashboard.
	ErrUnknownModule = errors.New("unknown module")
	// ErrUnknownMovie is returned when a movie id is not part of the collection.
	ErrUnknownMovie = errors.New("movie not in collection")
	// ErrInvalidArgument is returned when a command argument is malformed.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Catalog modules.
const (
	ModuleSort      = "sort"
	ModuleSearch    = "search"
	ModuleDashboard = "dashboard"
)

// DashboardHeaders are the columns of the dashboard listing.
var DashboardHeaders = []string{"MODULE", "KEY", "DATA STRUCTURE", "ALGORITHMS"} //nolint:gochecknoglobals

// AlgorithmPrompt lets the user adjust a selection interactively. It gets
// the catalog plus the current selection and returns the new selection.
type AlgorithmPrompt func(catalog domain.Catalog, selected []domain.AlgorithmRef) ([]domain.AlgorithmRef, error)

// SelectionOptions describes which algorithms a benchmark command runs.
type SelectionOptions struct {
	Algorithms []string
	All        bool
	Prompt     AlgorithmPrompt
	Metric     domain.Metric
}

// BenchmarkHandler runs the catalog, movie and benchmark commands against
// one session.
type BenchmarkHandler struct {
	*BaseHandler

	Session *session.Session
	Service domain.BenchmarkService
}

// NewBenchmarkHandler creates a handler for sess backed by service.
func NewBenchmarkHandler(base *BaseHandler, sess *session.Session, service domain.BenchmarkService) *BenchmarkHandler {
	return &BenchmarkHandler{
		BaseHandler: base,
		Session:     sess,
		Service:     service,
	}
}

// Info prints the service metadata.
func (h *BenchmarkHandler) Info(ctx context.Context, apiURL string) error {
	var meta domain.Metadata

	err := h.step(ctx, "service metadata", func(ctx context.Context) error {
		var err error

		meta, err = h.Service.Metadata(ctx)

		return err
	})
	if err != nil {
		return err
	}

	if h.Console.Plain {
		h.Console.PlainKeyValue("url", apiURL)
		h.Console.PlainKeyValue("version", meta.Version)
		h.Console.PlainKeyValue("movies", strconv.Itoa(meta.MovieCount))

		return nil
	}

	message := fmt.Sprintf("%s\nversion: %s\nmovies:  %d", apiURL, meta.Version, meta.MovieCount)
	if meta.Description != "" {
		message += "\n" + meta.Description
	}

	return h.GetOutput().Success(message, meta)
}

// Catalog prints the algorithms of module.
func (h *BenchmarkHandler) Catalog(ctx context.Context, module string) error {
	switch strings.ToLower(module) {
	case "", ModuleSort:
		if err := h.step(ctx, "sort catalog", h.loadSortCatalog); err != nil {
			return err
		}

		return h.printCatalog(h.Session.Sort.Catalog())
	case ModuleSearch:
		if err := h.step(ctx, "search catalog", h.loadSearchCatalog); err != nil {
			return err
		}

		return h.printCatalog(h.Session.Search.Catalog())
	case ModuleDashboard:
		err := h.step(ctx, "dashboard", func(ctx context.Context) error {
			return h.Session.LoadDashboard(ctx, h.Service)
		})
		if err != nil {
			return err
		}

		dashboard := h.Session.Dashboard.Data()

		return h.GetOutput().Table(DashboardHeaders, DashboardRows(dashboard), dashboard)
	default:
		return fmt.Errorf("%w %q (use sort, search or dashboard)", ErrUnknownModule, module)
	}
}

func (h *BenchmarkHandler) printCatalog(catalog domain.Catalog) error {
	if h.Console.Plain {
		h.Console.PlainList(refKeys(catalog.Refs()))

		return nil
	}

	return h.GetOutput().Table(cliAdapter.CatalogHeaders, cliAdapter.CatalogRows(catalog), catalog)
}

// DashboardRows lists every data structure of both modules.
func DashboardRows(dashboard domain.Dashboard) [][]string {
	rows := make([][]string, 0, len(dashboard.Sort)+len(dashboard.Search))

	add := func(module string, groups []domain.DataStructure) {
		for _, group := range groups {
			rows = append(rows, []string{module, group.Key, group.Name, strconv.Itoa(len(group.Algorithms))})
		}
	}

	add(ModuleSort, dashboard.Sort)
	add(ModuleSearch, dashboard.Search)

	return rows
}

// Movies prints size rows of the sorted collection around target, the way
// the windowed list in the dashboard shows them.
func (h *BenchmarkHandler) Movies(ctx context.Context, target window.Target, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %d", ErrInvalidArgument, size)
	}

	if err := h.step(ctx, "movies", h.loadMovies); err != nil {
		return err
	}

	step := h.Session.Movies
	step.Window().Resize(float64(size) * h.rowHeight())

	index, err := step.Jump(target)
	if err != nil {
		return err
	}

	first, count := step.Window().State().Rows()
	rows := window.Range{Start: first, End: first + count - 1}

	h.Console.Progressf("Rows %d-%d of %d, %s is row %d", rows.Start+1, rows.End+1, step.Len(), target, index+1)

	var data []domain.Movie
	if !rows.Empty() {
		data = step.Movies()[rows.Start : rows.End+1]
	}

	return h.GetOutput().Table(cliAdapter.MovieHeaders, cliAdapter.MovieRows(step.Movies(), rows), data)
}

func (h *BenchmarkHandler) rowHeight() float64 {
	if height := h.Session.Options().RowHeight; height > 0 {
		return height
	}

	return 1
}

// Sort runs a sort benchmark on the selected algorithms and prints the ranking.
func (h *BenchmarkHandler) Sort(ctx context.Context, opts SelectionOptions) error {
	if err := h.step(ctx, "sort catalog", h.loadSortCatalog); err != nil {
		return err
	}

	if err := h.selectAlgorithms(h.Session.Sort, opts); err != nil {
		return err
	}

	if opts.Metric != "" {
		h.Session.SortResults.SetMetric(opts.Metric)
	}

	err := h.step(ctx, fmt.Sprintf("results for %d algorithms", h.Session.Sort.SelectedCount()), func(ctx context.Context) error {
		return h.Session.RunSort(ctx, h.Service)
	})
	if err != nil {
		return err
	}

	return h.printRanking(h.Session.SortResults)
}

// Search runs a search benchmark for the given movies and prints the ranking.
func (h *BenchmarkHandler) Search(ctx context.Context, movieIDs []int, opts SelectionOptions) error {
	h.Console.Progressf("Fetching movies and search catalog…")

	// The two loads fill disjoint steps of the session.
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return h.bounded(groupCtx, h.loadMovies) })
	group.Go(func() error { return h.bounded(groupCtx, h.loadSearchCatalog) })

	if err := group.Wait(); err != nil {
		return err
	}

	if err := h.selectMovies(movieIDs); err != nil {
		return err
	}

	if err := h.selectAlgorithms(h.Session.Search, opts); err != nil {
		return err
	}

	if opts.Metric != "" {
		h.Session.SearchResults.SetMetric(opts.Metric)
	}

	err := h.step(ctx, fmt.Sprintf("results for %d algorithms", h.Session.Search.SelectedCount()), func(ctx context.Context) error {
		return h.Session.RunSearch(ctx, h.Service)
	})
	if err != nil {
		return err
	}

	return h.printRanking(h.Session.SearchResults)
}

func (h *BenchmarkHandler) selectMovies(ids []int) error {
	step := h.Session.Movies

	known := make(map[int]struct{}, step.Len())
	for _, movie := range step.Movies() {
		known[movie.ID] = struct{}{}
	}

	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownMovie, id)
		}

		if step.IsItemSelected(id) {
			continue
		}

		if _, err := step.ToggleItem(id); err != nil {
			return err
		}
	}

	return nil
}

func (h *BenchmarkHandler) selectAlgorithms(step *session.AlgorithmStep, opts SelectionOptions) error {
	refs := make([]domain.AlgorithmRef, 0, len(opts.Algorithms))

	for _, key := range opts.Algorithms {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		ref, err := domain.ParseAlgorithmRef(key)
		if err != nil {
			return err
		}

		refs = append(refs, ref)
	}

	if err := step.Select(refs...); err != nil {
		return err
	}

	if opts.All && !step.IsAllSelected() {
		if err := step.ToggleSelectAll(); err != nil {
			return err
		}
	}

	if opts.Prompt == nil {
		return nil
	}

	chosen, err := opts.Prompt(step.Catalog(), step.Tracker().SelectedRefs())
	if err != nil {
		return err
	}

	step.Reset()

	return step.Select(chosen...)
}

func (h *BenchmarkHandler) printRanking(results *session.ResultsStep) error {
	metric := results.Metric()

	return h.GetOutput().Table(
		cliAdapter.RankingHeaders(metric),
		cliAdapter.RankingRows(results.Ranked(), metric),
		results.Sorted(),
	)
}

func (h *BenchmarkHandler) loadSortCatalog(ctx context.Context) error {
	return h.Session.LoadSortCatalog(ctx, h.Service)
}

func (h *BenchmarkHandler) loadSearchCatalog(ctx context.Context) error {
	return h.Session.LoadSearchCatalog(ctx, h.Service)
}

func (h *BenchmarkHandler) loadMovies(ctx context.Context) error {
	return h.Session.LoadMovies(ctx, h.Service)
}

func refKeys(refs []domain.AlgorithmRef) []string {
	keys := make([]string, len(refs))
	for i, ref := range refs {
		keys[i] = ref.Key()
	}

	return keys
}
