package driving

import (
	"context"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// GeneratorService deals new puzzles according to difficulty policy.
type GeneratorService interface {
	// Generate deals the next puzzle for a difficulty: random sets for
	// easy through hard (falling back to known-solvable deals when
	// sampling keeps missing), solvable non-trivial sets for expert.
	Generate(ctx context.Context, difficulty domain.Difficulty) (domain.Puzzle, error)
}
