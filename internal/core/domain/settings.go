package domain

import "fmt"

// GameSettings holds all game configuration.
type GameSettings struct {
	// Difficulty is the default difficulty for new rounds.
	Difficulty Difficulty

	// Target is the value expressions must reach.
	Target int

	// Symbols selects the display glyph set.
	Symbols SymbolSet
}

// Validate checks the settings are playable.
func (s GameSettings) Validate() error {
	if !s.Difficulty.IsValid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, s.Difficulty)
	}
	if s.Target < 1 {
		return fmt.Errorf("%w: target must be at least 1, got %d", ErrInvalidInput, s.Target)
	}
	if !s.Symbols.IsValid() {
		return fmt.Errorf("%w: unknown symbol set %q", ErrInvalidInput, s.Symbols)
	}
	return nil
}

// DefaultGameSettings returns settings with classic defaults: normal
// difficulty, target 24, Unicode glyphs.
func DefaultGameSettings() GameSettings {
	return GameSettings{
		Difficulty: DefaultDifficulty(),
		Target:     DefaultTarget,
		Symbols:    SymbolSetUnicode,
	}
}
