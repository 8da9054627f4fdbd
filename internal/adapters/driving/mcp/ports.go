package mcp

import (
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Solver searches puzzles for solutions.
	Solver driving.SolverService

	// Checker rules on player expressions.
	Checker driving.CheckerService

	// Generator deals new puzzles.
	Generator driving.GeneratorService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Solver == nil {
		return ErrMissingSolverService
	}
	if p.Checker == nil {
		return ErrMissingCheckerService
	}
	if p.Generator == nil {
		return ErrMissingGeneratorService
	}
	return nil
}
