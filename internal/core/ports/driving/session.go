package driving

import (
	"context"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// SessionService records finished rounds and reports aggregates.
type SessionService interface {
	// Record stores one finished round.
	Record(ctx context.Context, record domain.GameRecord) error

	// Stats returns all-time aggregates across every difficulty.
	Stats(ctx context.Context) (domain.SessionStats, error)

	// StatsByDifficulty returns aggregates grouped by difficulty.
	StatsByDifficulty(ctx context.Context) (map[domain.Difficulty]domain.SessionStats, error)
}
