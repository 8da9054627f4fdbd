// Package mcp provides an MCP (Model Context Protocol) server adapter for twentyfour.
// It enables AI assistants like Claude to deal, solve, and referee 24-game puzzles.
package mcp

import "errors"

var (
	// ErrMissingSolverService is returned when the solver service is not provided.
	ErrMissingSolverService = errors.New("mcp: solver service is required")

	// ErrMissingCheckerService is returned when the checker service is not provided.
	ErrMissingCheckerService = errors.New("mcp: checker service is required")

	// ErrMissingGeneratorService is returned when the generator service is not provided.
	ErrMissingGeneratorService = errors.New("mcp: generator service is required")
)
