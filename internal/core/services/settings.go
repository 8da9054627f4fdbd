package services

import (
	"fmt"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driven"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDifficulty = "game.difficulty"
	keyTarget     = "game.target"
	keySymbols    = "display.symbols"
)

// SettingsService manages game settings backed by the config store.
// Values missing from the store, or no longer recognised, fall back to
// the defaults rather than failing a read.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current game settings.
func (s *SettingsService) Get() (domain.GameSettings, error) {
	defaults := domain.DefaultGameSettings()

	return domain.GameSettings{
		Difficulty: s.getDifficulty(defaults.Difficulty),
		Target:     s.getInt(keyTarget, defaults.Target),
		Symbols:    s.getSymbolSet(defaults.Symbols),
	}, nil
}

// Save persists game settings.
func (s *SettingsService) Save(settings domain.GameSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	if err := s.configStore.Set(keyDifficulty, settings.Difficulty.String()); err != nil {
		return fmt.Errorf("save difficulty: %w", err)
	}
	if err := s.configStore.Set(keyTarget, settings.Target); err != nil {
		return fmt.Errorf("save target: %w", err)
	}
	if err := s.configStore.Set(keySymbols, settings.Symbols.String()); err != nil {
		return fmt.Errorf("save symbols: %w", err)
	}

	return nil
}

// SetDifficulty updates the default difficulty.
func (s *SettingsService) SetDifficulty(difficulty domain.Difficulty) error {
	if !difficulty.IsValid() {
		return fmt.Errorf("%w: unknown difficulty %q", domain.ErrInvalidInput, difficulty)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Difficulty = difficulty
	return s.Save(settings)
}

// SetTarget updates the target value.
func (s *SettingsService) SetTarget(target int) error {
	if target < 1 {
		return fmt.Errorf("%w: target must be at least 1, got %d", domain.ErrInvalidInput, target)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Target = target
	return s.Save(settings)
}

// SetSymbols updates the display glyph set.
func (s *SettingsService) SetSymbols(set domain.SymbolSet) error {
	if !set.IsValid() {
		return fmt.Errorf("%w: unknown symbol set %q", domain.ErrInvalidInput, set)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Symbols = set
	return s.Save(settings)
}

// Symbols returns the glyph table for the active symbol set.
func (s *SettingsService) Symbols() domain.Symbols {
	settings, err := s.Get()
	if err != nil {
		return domain.UnicodeSymbols()
	}
	return settings.Symbols.Symbols()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.GameSettings {
	return domain.DefaultGameSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getDifficulty(defaultVal domain.Difficulty) domain.Difficulty {
	val := s.configStore.GetString(keyDifficulty)
	if val == "" {
		return defaultVal
	}
	difficulty := domain.Difficulty(val)
	if !difficulty.IsValid() {
		return defaultVal
	}
	return difficulty
}

func (s *SettingsService) getSymbolSet(defaultVal domain.SymbolSet) domain.SymbolSet {
	val := s.configStore.GetString(keySymbols)
	if val == "" {
		return defaultVal
	}
	set := domain.SymbolSet(val)
	if !set.IsValid() {
		return defaultVal
	}
	return set
}
