// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	cliAdapter "github.com/algolab/algolab/internal/adapters/cli"
	"github.com/algolab/algolab/internal/cli/handlers"
	"github.com/algolab/algolab/internal/config"
	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/window"
)

const (
	defaultMovieWindow = 10
	redactedToken      = "********"

	formatTOML = "toml"
	formatYAML = "yaml"
)

func (app *CLI) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "tui",
			Usage:  "Start the interactive dashboard (default)",
			Action: app.runTUI,
		},
		{
			Name:   "info",
			Usage:  "Show the benchmark service version and collection size",
			Action: app.runInfo,
		},
		{
			Name:      "catalog",
			Usage:     "List the algorithms of a module",
			ArgsUsage: "[sort|search|dashboard]",
			Action:    app.runCatalog,
		},
		{
			Name:  "movies",
			Usage: "Print a window of the sorted movie collection",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "jump",
					Usage: "position to show: start, middle, end or a 1-based row",
					Value: "start",
				},
				&cli.IntFlag{
					Name:  "window",
					Usage: "number of rows to print",
					Value: defaultMovieWindow,
				},
			},
			Action: app.runMovies,
		},
		{
			Name:   "sort",
			Usage:  "Benchmark sort algorithms",
			Flags:  selectionFlags(),
			Action: app.runSort,
		},
		{
			Name:  "search",
			Usage: "Benchmark search algorithms against target movies",
			Flags: append(selectionFlags(),
				&cli.StringSliceFlag{
					Name:  "movies",
					Usage: "movie ids to search for, comma separated",
				},
			),
			Action: app.runSearch,
		},
		app.configCommand(),
		{
			Name:  "version",
			Usage: "Show the algolab version",
			Action: func(_ context.Context, _ *cli.Command) error {
				return app.output().Success("algolab "+Version, map[string]string{"version": Version})
			},
		},
	}
}

func selectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "algorithms",
			Aliases: []string{"a"},
			Usage:   "algorithms as group:algorithm keys, comma separated",
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "select every algorithm of the catalog",
		},
		&cli.BoolFlag{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "pick the algorithms in a form",
		},
		&cli.StringFlag{
			Name:    "metric",
			Aliases: []string{"m"},
			Usage:   "order results by time, memory, operations or iterations (default from config)",
		},
	}
}

func (app *CLI) output() domain.OutputPort {
	return cliAdapter.OutputFromFlags(app.out.Out, app.out.JSON, app.out.Quiet)
}

func (app *CLI) runInfo(ctx context.Context, _ *cli.Command) error {
	handler, settings, err := app.handler()
	if err != nil {
		return err
	}

	return app.fail(handler.Info(ctx, settings.APIURL))
}

func (app *CLI) runCatalog(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return domain.NewExitError(domain.ExitUsageError, "catalog takes at most one module: sort, search or dashboard", nil)
	}

	handler, _, err := app.handler()
	if err != nil {
		return err
	}

	return app.fail(handler.Catalog(ctx, cmd.Args().First()))
}

func (app *CLI) runMovies(ctx context.Context, cmd *cli.Command) error {
	target, err := window.ParseTarget(cmd.String("jump"))
	if err != nil {
		return app.fail(err)
	}

	handler, _, err := app.handler()
	if err != nil {
		return err
	}

	return app.fail(handler.Movies(ctx, target, cmd.Int("window")))
}

func (app *CLI) runSort(ctx context.Context, cmd *cli.Command) error {
	opts, err := app.selectionOptions(cmd)
	if err != nil {
		return err
	}

	handler, _, err := app.handler()
	if err != nil {
		return err
	}

	return app.fail(handler.Sort(ctx, opts))
}

func (app *CLI) runSearch(ctx context.Context, cmd *cli.Command) error {
	opts, err := app.selectionOptions(cmd)
	if err != nil {
		return err
	}

	movieIDs, err := parseMovieIDs(cmd.StringSlice("movies"))
	if err != nil {
		return app.fail(err)
	}

	handler, _, err := app.handler()
	if err != nil {
		return err
	}

	return app.fail(handler.Search(ctx, movieIDs, opts))
}

func (app *CLI) selectionOptions(cmd *cli.Command) (handlers.SelectionOptions, error) {
	opts := handlers.SelectionOptions{
		Algorithms: cmd.StringSlice("algorithms"),
		All:        cmd.Bool("all"),
	}

	if name := cmd.String("metric"); name != "" {
		metric, err := domain.ParseMetric(name)
		if err != nil {
			return opts, app.fail(err)
		}

		opts.Metric = metric
	}

	if cmd.Bool("interactive") {
		if !app.isTerminal() {
			return opts, domain.NewExitError(domain.ExitUsageError, "--interactive needs a terminal", nil)
		}

		opts.Prompt = app.prompt
	}

	return opts, nil
}

func parseMovieIDs(values []string) ([]int, error) {
	ids := make([]int, 0, len(values))

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		id, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: movie id %q is not a number", handlers.ErrInvalidArgument, value)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func (app *CLI) configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the config file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the default config file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing file",
					},
				},
				Action: app.runConfigInit,
			},
			{
				Name:  "path",
				Usage: "Print the config file location",
				Action: func(_ context.Context, _ *cli.Command) error {
					path := app.configFilePath()

					return app.output().Success(path, map[string]string{"path": path})
				},
			},
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "toml or yaml (ignored with --json)",
						Value: formatTOML,
					},
				},
				Action: app.runConfigShow,
			},
		},
	}
}

func (app *CLI) runConfigInit(_ context.Context, cmd *cli.Command) error {
	path := app.configFilePath()

	if err := config.Save(path, config.Default(), cmd.Bool("force")); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return domain.NewExitError(domain.ExitConfigError,
				fmt.Sprintf("✗ %s already exists (use --force to overwrite)", path), err)
		}

		return domain.NewExitError(domain.ExitSystemError, "✗ "+err.Error(), err)
	}

	return app.output().Success("Config written to "+path, map[string]string{"path": path})
}

func (app *CLI) runConfigShow(_ context.Context, cmd *cli.Command) error {
	format := strings.ToLower(cmd.String("format"))
	if format != formatTOML && format != formatYAML {
		return domain.NewExitError(domain.ExitUsageError,
			fmt.Sprintf("✗ Unknown format %q (use toml or yaml)", cmd.String("format")), nil)
	}

	settings, err := app.settings()
	if err != nil {
		return err
	}

	cfg := settings.Config
	if cfg.API.Token != "" {
		cfg.API.Token = redactedToken
	}

	if app.out.JSON {
		return app.output().Success("", cfg)
	}

	marshal := toml.Marshal
	if format == formatYAML {
		marshal = yaml.Marshal
	}

	data, err := marshal(cfg)
	if err != nil {
		return app.fail(err)
	}

	return app.output().Success(strings.TrimRight(string(data), "\n"), nil)
}
