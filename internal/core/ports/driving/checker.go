package driving

import (
	"context"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// CheckerService validates player expressions against a puzzle.
type CheckerService interface {
	// Check normalises, validates, and evaluates a player expression.
	// Rejections (bad characters, wrong numbers, forbidden operators,
	// malformed syntax, division by zero, missed target) come back as
	// verdicts, not errors; the error is reserved for infrastructure
	// failures.
	Check(ctx context.Context, puzzle domain.Puzzle, expression string) (domain.Verdict, error)
}
