package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/logger"
)

// TUIConfig holds the services the interactive game runs on.
type TUIConfig struct {
	GameService     driving.GameService
	SessionService  driving.SessionService
	SettingsService driving.SettingsService
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

var playDifficulty string

// playCmd represents the play command.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the interactive game",
	Long: `Launches the interactive terminal game. Four numbers are dealt; type
an expression that uses each exactly once and reaches the target.

Controls:
  Enter     - Submit expression / select
  h         - Hint
  r         - Reveal solutions
  n         - New puzzle
  Esc       - Back to menu
  Ctrl+C    - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// SetTUIConfig sets the services for the play command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	playCmd.Flags().StringVar(&playDifficulty, "difficulty", "", "difficulty for this session (default: configured setting)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The game is full-screen and interactive; refuse piped stdin.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("play needs an interactive terminal")
	}

	var difficulty domain.Difficulty
	if override := strings.TrimSpace(playDifficulty); override != "" {
		difficulty = domain.Difficulty(strings.ToLower(override))
		if !difficulty.IsValid() {
			return fmt.Errorf("%w: unknown difficulty %q (valid: %s)",
				domain.ErrInvalidInput, playDifficulty, difficultyNames())
		}
	}

	// Panic recovery keeps the stack trace visible after the alternate
	// screen is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{}
	if tuiConfig != nil {
		ports.Game = tuiConfig.GameService
		ports.Session = tuiConfig.SessionService
		ports.Settings = tuiConfig.SettingsService
	} else {
		ports.Game = gameService
		ports.Session = sessionService
		ports.Settings = settingsService
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	if difficulty != "" {
		app.WithDifficulty(difficulty)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// A round still open at quit counts as unsolved.
	if err := ports.Game.Abandon(cmd.Context()); err != nil {
		logger.Warn("Recording abandoned round failed: %v", err)
	}
	return nil
}
