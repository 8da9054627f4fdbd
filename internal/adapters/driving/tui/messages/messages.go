// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewGame is the interactive puzzle view.
	ViewGame
	// ViewStats is the session statistics view.
	ViewStats
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewGame:
		return "game"
	case ViewStats:
		return "stats"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// RoundStarted carries a freshly dealt (or resumed) round.
type RoundStarted struct {
	Round domain.Round
	Err   error
}

// VerdictReceived carries the ruling on a submitted expression.
type VerdictReceived struct {
	Verdict domain.Verdict
	Err     error
}

// HintReceived carries a hint for the open round.
type HintReceived struct {
	Hint string
	Err  error
}

// SolutionsRevealed carries every solution for the current round.
type SolutionsRevealed struct {
	Solutions []domain.Solution
	Err       error
}

// StatsLoaded carries session aggregates for the stats view.
type StatsLoaded struct {
	Overall      domain.SessionStats
	ByDifficulty map[domain.Difficulty]domain.SessionStats
	Err          error
}

// SettingsLoaded carries the game settings.
type SettingsLoaded struct {
	Settings domain.GameSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
