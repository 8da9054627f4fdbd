package driven

import (
	"context"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// SessionStore persists finished rounds.
type SessionStore interface {
	// Save stores one finished round.
	Save(ctx context.Context, record domain.GameRecord) error

	// List returns all records, most recent first.
	List(ctx context.Context) ([]domain.GameRecord, error)

	// Stats returns all-time aggregates across every record.
	Stats(ctx context.Context) (domain.SessionStats, error)

	// StatsByDifficulty returns aggregates grouped by difficulty.
	StatsByDifficulty(ctx context.Context) (map[domain.Difficulty]domain.SessionStats, error)
}
