// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the algolab command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/algolab/algolab/internal/api"
	"github.com/algolab/algolab/internal/cli/handlers"
	"github.com/algolab/algolab/internal/config"
	"github.com/algolab/algolab/internal/console"
	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/session"
	"github.com/algolab/algolab/internal/tui"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev" //nolint:gochecknoglobals

// Environment variables read by the global flags.
const (
	EnvAPIURL  = "ALGOLAB_API_URL"
	EnvToken   = "ALGOLAB_TOKEN"
	EnvTimeout = "ALGOLAB_TIMEOUT"
	EnvConfig  = "ALGOLAB_CONFIG"
	EnvColor   = "ALGOLAB_COLOR"
)

// Settings is the effective configuration of one run: the config file with
// flags and environment applied on top.
type Settings struct {
	Config     config.Config
	ConfigPath string
	APIURL     string
	Token      string
	Timeout    time.Duration

	// OnUnauthorized runs when the service rejects the token. Nil inside the TUI.
	OnUnauthorized func()
}

// ServiceFactory builds the benchmark service client for a session.
type ServiceFactory func(settings Settings, sess *session.Session) domain.BenchmarkService

// Launcher starts the interactive dashboard.
type Launcher func(ctx context.Context, sess *session.Session, service domain.BenchmarkService) error

// CLI wires the global flags, configuration and commands together.
type CLI struct {
	app *cli.Command
	out *console.OutputState

	newService ServiceFactory
	launch     Launcher
	prompt     handlers.AlgorithmPrompt
	isTerminal func() bool

	verbose    bool
	json       bool
	quiet      bool
	plain      bool
	color      string
	apiURL     string
	token      string
	configPath string
	timeout    time.Duration
}

// Option customizes a CLI.
type Option func(*CLI)

// WithWriters redirects command output and diagnostics.
func WithWriters(stdout, stderr io.Writer) Option {
	return func(app *CLI) {
		app.out.Out = stdout
		app.out.Err = stderr
	}
}

// WithServiceFactory replaces the HTTP client, for tests.
func WithServiceFactory(factory ServiceFactory) Option {
	return func(app *CLI) {
		app.newService = factory
	}
}

// WithLauncher replaces the interactive dashboard, for tests.
func WithLauncher(launch Launcher) Option {
	return func(app *CLI) {
		app.launch = launch
	}
}

// WithPrompt replaces the interactive algorithm form, for tests.
func WithPrompt(prompt handlers.AlgorithmPrompt, isTerminal func() bool) Option {
	return func(app *CLI) {
		app.prompt = prompt
		app.isTerminal = isTerminal
	}
}

// NewCLI creates the algolab command tree.
func NewCLI(opts ...Option) *CLI {
	app := &CLI{
		out:        console.NewOutput(),
		newService: newAPIService,
		launch:     tui.LaunchInteractive,
		prompt:     PromptAlgorithms,
		isTerminal: stdinIsTerminal,
	}

	for _, opt := range opts {
		opt(app)
	}

	app.app = &cli.Command{
		Name:        "algolab",
		Usage:       "Benchmark sort and search algorithms from the terminal",
		Version:     Version,
		HideVersion: true,
		Suggest:     true,
		Description: `Browse the algorithms of a benchmark service, pick what to compare and
read the measurements ranked by time, memory, operations or iterations.

Without a command the interactive dashboard starts.

EXAMPLES:
  algolab catalog sort
  algolab sort --algorithms array:quickSort,linkedList:mergeSort --metric operations
  algolab movies --jump 5000 --window 20
  algolab search --movies 12,340 --all`,
		Writer:    app.out.Out,
		ErrWriter: app.out.Err,
		Flags:     app.globalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return app.initOutput(ctx, cmd)
		},
		Action:          app.runTUI,
		Commands:        app.commands(),
		CommandNotFound: app.commandNotFound,
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// Verbose reports whether --verbose was given, for error formatting in main.
func (app *CLI) Verbose() bool {
	return app.verbose
}

func (app *CLI) globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "base URL of the benchmark service (default from config)",
			Sources:     cli.EnvVars(EnvAPIURL),
			Destination: &app.apiURL,
		},
		&cli.StringFlag{
			Name:        "token",
			Usage:       "bearer token sent to the service",
			Sources:     cli.EnvVars(EnvToken),
			Destination: &app.token,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "timeout per service request (default from config, 10s)",
			Sources:     cli.EnvVars(EnvTimeout),
			Destination: &app.timeout,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path of the config file",
			Sources:     cli.EnvVars(EnvConfig),
			Destination: &app.configPath,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "show progress messages to stderr",
			Aliases:     []string{"v"},
			Destination: &app.verbose,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "output structured JSON results",
			Aliases:     []string{"j"},
			Destination: &app.json,
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Usage:       "suppress non-essential output",
			Aliases:     []string{"q"},
			Destination: &app.quiet,
		},
		&cli.BoolFlag{
			Name:        "plain",
			Usage:       "output plain text without formatting for scripts",
			Destination: &app.plain,
		},
		&cli.StringFlag{
			Name:        "color",
			Usage:       "color output mode: auto, always, never",
			Value:       string(console.ColorAuto),
			Sources:     cli.EnvVars(EnvColor),
			Destination: &app.color,
		},
	}
}

// initOutput validates the output flags and configures the console.
func (app *CLI) initOutput(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if app.json && app.plain {
		return ctx, domain.NewExitError(domain.ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	mode, err := console.ParseColorMode(app.color)
	if err != nil {
		return ctx, domain.NewExitError(domain.ExitUsageError, "invalid --color value: must be auto, always, or never", err)
	}

	app.out.Color = mode
	app.out.SetMode(app.verbose, app.quiet, app.json, app.plain)

	return ctx, nil
}

// settings loads the config file and applies flag overrides.
func (app *CLI) settings() (Settings, error) {
	path := app.configFilePath()

	cfg, err := config.Load(path)
	if err != nil {
		return Settings{}, configError(err)
	}

	if app.apiURL != "" {
		cfg.API.URL = app.apiURL
	}

	if app.token != "" {
		cfg.API.Token = app.token
	}

	if app.timeout > 0 {
		cfg.API.Timeout = app.timeout.String()
	}

	if err := cfg.Validate(); err != nil {
		return Settings{}, configError(err)
	}

	timeout, err := cfg.Timeout()
	if err != nil {
		return Settings{}, configError(err)
	}

	return Settings{
		Config:     cfg,
		ConfigPath: path,
		APIURL:     cfg.API.URL,
		Token:      cfg.API.Token,
		Timeout:    timeout,
	}, nil
}

func (app *CLI) configFilePath() string {
	if app.configPath != "" {
		return app.configPath
	}

	return config.DefaultPath()
}

// newSession creates the session for one command from the effective settings.
func newSession(settings Settings) (*session.Session, error) {
	policy, err := settings.Config.StalePolicy()
	if err != nil {
		return nil, err
	}

	metric, err := settings.Config.Metric()
	if err != nil {
		return nil, err
	}

	return session.New(session.Options{
		StalePolicy: policy,
		RowHeight:   settings.Config.List.RowHeight,
		Overscan:    settings.Config.List.Overscan,
		Metric:      metric,
		Token:       settings.Token,
	}), nil
}

func newAPIService(settings Settings, sess *session.Session) domain.BenchmarkService {
	opts := []api.Option{api.WithTokenSource(sess.Token)}
	if settings.OnUnauthorized != nil {
		opts = append(opts, api.WithUnauthorizedHook(settings.OnUnauthorized))
	}

	return api.NewClient(settings.APIURL, settings.Timeout, opts...)
}

// handler prepares the session, service and output of a benchmark command.
func (app *CLI) handler() (*handlers.BenchmarkHandler, Settings, error) {
	settings, err := app.settings()
	if err != nil {
		return nil, settings, err
	}

	sess, err := newSession(settings)
	if err != nil {
		return nil, settings, configError(err)
	}

	settings.OnUnauthorized = func() {
		sess.Logout()
		app.out.Warningf("The service rejected the token")
	}

	service := app.newService(settings, sess)

	return handlers.NewBenchmarkHandler(handlers.NewBaseHandler(app.out, settings.Timeout), sess, service), settings, nil
}

// runTUI launches the dashboard. It is the default action.
func (app *CLI) runTUI(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return domain.NewExitError(domain.ExitUsageError,
			fmt.Sprintf("'%s' is not a command. Run 'algolab --help' to see available commands.", cmd.Args().First()), nil)
	}

	settings, err := app.settings()
	if err != nil {
		return err
	}

	sess, err := newSession(settings)
	if err != nil {
		return configError(err)
	}

	if err := app.launch(ctx, sess, app.newService(settings, sess)); err != nil {
		if errors.Is(err, tui.ErrNoTerminal) {
			if app.verbose {
				return domain.NewExitError(domain.ExitGeneralError, fmt.Sprintf("Failed to launch TUI: %v", err), err)
			}

			return domain.NewExitError(domain.ExitGeneralError, "Failed to launch interactive interface (terminal required)", err)
		}

		return app.fail(err)
	}

	return nil
}

func (app *CLI) commandNotFound(_ context.Context, _ *cli.Command, command string) {
	app.out.Errorf("'%s' is not a command.", command)
	_, _ = fmt.Fprintf(app.errWriter(), "\nRun 'algolab --help' to see available commands.\n")
}

func (app *CLI) errWriter() io.Writer {
	if app.out.Err == nil {
		return os.Stderr
	}

	return app.out.Err
}

func configError(err error) error {
	return domain.NewExitError(domain.ExitConfigError, "✗ Invalid configuration: "+err.Error(), err)
}

// fail turns err into an ExitError with a user-facing message.
func (app *CLI) fail(err error) error {
	if err == nil {
		return nil
	}

	exitErr := &domain.ExitError{}
	if errors.As(err, &exitErr) {
		return err
	}

	return domain.NewExitError(ExitCode(err), domain.FormatErrorMessage(err, app.verbose), err)
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	exitErr := &domain.ExitError{}
	apiErr := &api.Error{}

	switch {
	case err == nil:
		return domain.ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, context.Canceled), errors.Is(err, huh.ErrUserAborted):
		return domain.ExitInterruptError
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ExitTimeoutError
	case errors.Is(err, domain.ErrUnauthorized):
		return domain.ExitAuthError
	case errors.Is(err, domain.ErrNetworkFailure):
		return domain.ExitNetworkError
	case errors.Is(err, domain.ErrUnknownAlgorithm), errors.Is(err, handlers.ErrUnknownMovie):
		return domain.ExitNotFoundError
	case errors.Is(err, domain.ErrEmptySelection), errors.Is(err, domain.ErrInvalidPosition),
		errors.Is(err, domain.ErrUnknownMetric), errors.Is(err, domain.ErrInvalidAlgorithmRef),
		errors.Is(err, handlers.ErrUnknownModule), errors.Is(err, handlers.ErrInvalidArgument):
		return domain.ExitUsageError
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, config.ErrConfigExists):
		return domain.ExitConfigError
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound:
		return domain.ExitNotFoundError
	case errors.As(err, &apiErr):
		return domain.ExitNetworkError
	default:
		return domain.ExitGeneralError
	}
}
