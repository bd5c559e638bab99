// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui runs the interactive benchmark dashboard.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/session"
	"github.com/algolab/algolab/internal/tui/models"
	"github.com/algolab/algolab/internal/tui/styles"
)

// DebugEnv names the environment variable holding the debug log path.
const DebugEnv = "ALGOLAB_DEBUG"

// ErrNoTerminal is returned when the TUI is launched in a non-terminal environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// inputCapturer is implemented by screens that sometimes take text input,
// during which global keys such as q go to the screen.
type inputCapturer interface {
	CapturesInput() bool
}

// App is the root model. It owns the session, routes fetch results into it
// and delegates everything else to the current screen model.
type App struct {
	width         int
	height        int
	styles        *styles.Styles
	loader        *models.Loader
	logger        *log.Logger
	currentScreen models.Screen
	contentModel  tea.Model
	models        map[models.Screen]tea.Model
	help          *models.Help
	quitting      bool
}

// NewApp creates the root model for sess backed by service.
func NewApp(ctx context.Context, sess *session.Session, service domain.BenchmarkService) *App {
	logger := log.New(io.Discard, "", log.LstdFlags)
	styleConfig := styles.New()

	app := &App{
		styles:        styleConfig,
		loader:        models.NewLoader(ctx, sess, service, logger),
		logger:        logger,
		currentScreen: models.DashboardScreen,
		models:        make(map[models.Screen]tea.Model),
		help:          models.NewHelp(styleConfig),
	}

	app.contentModel = app.createModelForScreen(models.DashboardScreen)
	app.models[models.DashboardScreen] = app.contentModel

	return app
}

// Session returns the session the app works on.
func (a *App) Session() *session.Session {
	return a.loader.Session()
}

// CurrentScreen returns the screen being shown.
func (a *App) CurrentScreen() models.Screen {
	return a.currentScreen
}

// ContentModel returns the model of the current screen.
func (a *App) ContentModel() tea.Model {
	return a.contentModel
}

// Help returns the help overlay.
func (a *App) Help() *models.Help {
	return a.help
}

// Run starts the program and blocks until it exits.
func (a *App) Run(ctx context.Context) error {
	if path := os.Getenv(DebugEnv); path != "" {
		file, err := tea.LogToFileWith(path, "algolab ", a.logger)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}

		defer func() { _ = file.Close() }()
	}

	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.contentModel.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.loader.Apply(msg) {
		return a.forward(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.SetSize(msg.Width, msg.Height)

		return a.forward(msg)
	case models.NavigateMsg:
		return a.navigateToScreen(msg.Screen, msg.Reset)
	case tea.KeyMsg:
		return a.handleKeyMessage(msg)
	default:
		return a.forward(msg)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return models.GoodbyeMessage
	}

	if a.help.IsVisible() {
		return a.help.View()
	}

	return a.contentModel.View()
}

func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(msg)
	a.models[a.currentScreen] = a.contentModel

	return a, cmd
}

func (a *App) handleKeyMessage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == models.KeyCtrlC {
		a.quitting = true

		return a, tea.Quit
	}

	if a.help.IsVisible() {
		return a, a.help.Update(msg)
	}

	if capturer, ok := a.contentModel.(inputCapturer); ok && capturer.CapturesInput() {
		return a.forward(msg)
	}

	switch msg.String() {
	case "q":
		a.quitting = true

		return a, tea.Quit
	case "?":
		a.help.Show(a.currentScreen)

		return a, nil
	}

	return a.forward(msg)
}

// navigateToScreen shows target, restarting its wizard first when reset is
// set. Screen models are cached; a cached model is resized and told it is
// active again so it can resync with the session.
func (a *App) navigateToScreen(target models.Screen, reset bool) (tea.Model, tea.Cmd) {
	if reset {
		a.resetFor(target)
	}

	a.logger.Printf("navigate %s -> %s (reset=%t)", a.currentScreen, target, reset)

	a.currentScreen = target

	cached, exists := a.models[target]
	if !exists {
		cached = a.createModelForScreen(target)
	}

	a.contentModel = cached
	a.models[target] = cached

	var cmds []tea.Cmd

	if a.width > 0 && a.height > 0 {
		_, cmd := a.forward(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		cmds = append(cmds, cmd)
	}

	_, cmd := a.forward(models.ActivatedMsg{})
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

func (a *App) resetFor(target models.Screen) {
	sess := a.Session()

	switch target {
	case models.SortSelectScreen:
		sess.ResetSort()
	case models.SearchMoviesScreen:
		sess.ResetSearch()
	case models.DashboardScreen:
		sess.Reset()
	case models.SortResultsScreen, models.SearchAlgorithmsScreen, models.SearchResultsScreen:
	}
}

func (a *App) createModelForScreen(screen models.Screen) tea.Model {
	switch screen {
	case models.SortSelectScreen:
		return models.NewAlgorithmSelect(a.styles, a.loader, models.SortWizard)
	case models.SortResultsScreen:
		return models.NewResults(a.styles, a.loader, models.SortWizard)
	case models.SearchMoviesScreen:
		return models.NewMovieSelect(a.styles, a.loader)
	case models.SearchAlgorithmsScreen:
		return models.NewAlgorithmSelect(a.styles, a.loader, models.SearchWizard)
	case models.SearchResultsScreen:
		return models.NewResults(a.styles, a.loader, models.SearchWizard)
	default:
		return models.NewDashboard(a.styles, a.loader)
	}
}

// LaunchInteractive runs the dashboard when stdout is a terminal.
func LaunchInteractive(ctx context.Context, sess *session.Session, service domain.BenchmarkService) error {
	if !isTerminal() {
		return fmt.Errorf("terminal check failed: %w", ErrNoTerminal)
	}

	return NewApp(ctx, sess, service).Run(ctx)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}
