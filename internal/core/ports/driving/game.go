package driving

import (
	"context"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// GameService orchestrates interactive rounds and session bookkeeping.
type GameService interface {
	// StartRound deals a puzzle at the difficulty and opens a round.
	// A still-open previous round is recorded as unsolved first.
	StartRound(ctx context.Context, difficulty domain.Difficulty) (domain.Round, error)

	// CurrentRound returns the active round.
	// Returns ErrNoPuzzle when nothing has been dealt.
	CurrentRound() (domain.Round, error)

	// Submit checks an expression against the open round. An accepted
	// verdict closes the round as solved and records it.
	// Returns ErrRoundOver once the round has finished.
	Submit(ctx context.Context, expression string) (domain.Verdict, error)

	// Hint returns a nudge for the open round. Hard and expert rounds
	// wait out a cooldown between hints (ErrHintThrottled).
	Hint(ctx context.Context) (string, error)

	// Reveal closes the open round as unsolved, records it, and
	// returns every solution.
	Reveal(ctx context.Context) ([]domain.Solution, error)

	// Solutions returns the active round's solutions without changing
	// its state.
	Solutions(ctx context.Context) ([]domain.Solution, error)

	// Abandon records a still-open round as unsolved and clears it.
	// A no-op when no round is open.
	Abandon(ctx context.Context) error
}
