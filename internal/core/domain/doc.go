// Package domain defines the core business entities for the 24 game.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Rational: Exact rational arithmetic with an Undefined state
//   - Operator: One of the four arithmetic operations
//   - Pattern: One of the six expression shapes the solver tries
//   - Combination: One candidate from a puzzle's search space
//   - Puzzle: A dealt round with operands, operators, and target
//   - Solution: One deduplicated way to reach the target
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
