package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/messages"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/styles"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/views/game"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/views/menu"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/views/settings"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/views/stats"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// gameView is the interactive puzzle view.
	gameView *game.View

	// statsView is the session statistics view.
	statsView *stats.View

	// settingsView is the settings configuration view.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	gameView := game.NewView(s, nil, ports.Game, ports.Settings)
	statsView := stats.NewView(s, ports.Session)
	settingsView := settings.NewView(s, ports.Settings)

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menuView,
		gameView:     gameView,
		statsView:    statsView,
		settingsView: settingsView,
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.gameView.WithContext(ctx)
	a.statsView.WithContext(ctx)
	return a
}

// WithDifficulty pins the difficulty for deals, overriding the
// configured default.
func (a *App) WithDifficulty(difficulty domain.Difficulty) *App {
	a.gameView.SetDifficulty(difficulty)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("twentyfour"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.gameView.SetDimensions(msg.Width, msg.Height)
		a.statsView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewGame:
			a.gameView, cmd = a.gameView.Update(msg)
			return a, cmd

		case messages.ViewStats:
			a.statsView, cmd = a.statsView.Update(msg)
			return a, cmd

		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewGame:
			// No reset: an open round is picked up where it was left.
			return a, a.gameView.Init()
		case messages.ViewStats:
			a.statsView.Reset()
			return a, a.statsView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.RoundStarted, messages.VerdictReceived,
		messages.HintReceived, messages.SolutionsRevealed:
		// Game messages always belong to the game view, even when the
		// player has hopped to another view while a command ran.
		a.gameView, cmd = a.gameView.Update(msg)
		return a, cmd

	case messages.StatsLoaded:
		if a.currentView == messages.ViewStats {
			a.statsView, cmd = a.statsView.Update(msg)
			return a, cmd
		}

	case messages.SettingsLoaded, messages.SettingsSaved:
		// Forward to settings view
		if a.currentView == messages.ViewSettings {
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd
		}

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		if a.currentView == messages.ViewGame {
			a.gameView, cmd = a.gameView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewGame:
		a.gameView, cmd = a.gameView.Update(msg)
	case messages.ViewStats:
		a.statsView, cmd = a.statsView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewGame:
		return a.gameView.View()
	case messages.ViewStats:
		return a.statsView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Game:
  (type)      Build an expression from the four numbers
  enter       Submit the expression
  h           Hint
  r           Reveal solutions (forfeits the round)
  n           Deal a new puzzle
  esc         Back to menu (the round keeps running)

Statistics:
  r           Refresh
  esc         Back to menu

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.gameView.SetDimensions(width, height)
	a.statsView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
