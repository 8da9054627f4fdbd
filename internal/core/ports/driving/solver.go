package driving

import (
	"context"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// SolverService searches a puzzle's combination space.
type SolverService interface {
	// Solve returns every distinct solution for the puzzle, in
	// first-discovered order under the deterministic enumeration.
	// An empty slice means the puzzle is not solvable; that is not an
	// error.
	Solve(ctx context.Context, puzzle domain.Puzzle) ([]domain.Solution, error)

	// IsSolvable reports whether at least one solution exists.
	IsSolvable(ctx context.Context, puzzle domain.Puzzle) (bool, error)

	// Hint returns a nudge toward the first solution, phrased for the
	// puzzle's difficulty.
	Hint(ctx context.Context, puzzle domain.Puzzle) (string, error)
}
