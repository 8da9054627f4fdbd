// Package tui provides the interactive terminal game for twentyfour.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Game orchestrates interactive rounds.
	Game driving.GameService

	// Session reports aggregates over past rounds.
	Session driving.SessionService

	// Settings manages game settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	game driving.GameService,
	session driving.SessionService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Game:     game,
		Session:  session,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Game == nil {
		return ErrMissingGameService
	}
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
