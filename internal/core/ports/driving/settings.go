package driving

import "github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"

// SettingsService manages game settings.
type SettingsService interface {
	// Get retrieves current game settings.
	Get() (domain.GameSettings, error)

	// Save persists game settings.
	Save(settings domain.GameSettings) error

	// SetDifficulty updates the default difficulty.
	SetDifficulty(difficulty domain.Difficulty) error

	// SetTarget updates the target value.
	SetTarget(target int) error

	// SetSymbols updates the display glyph set.
	SetSymbols(set domain.SymbolSet) error

	// Symbols returns the glyph table for the active symbol set.
	Symbols() domain.Symbols

	// GetDefaults returns default settings.
	GetDefaults() domain.GameSettings
}
