package services

import (
	"context"
	"fmt"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driven"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService records finished rounds and reports aggregates.
// Records flow one way: the game layer appends after a round closes,
// and nothing here reaches back into play.
type SessionService struct {
	store driven.SessionStore
}

// NewSessionService creates a new session service.
func NewSessionService(store driven.SessionStore) *SessionService {
	return &SessionService{store: store}
}

// Record stores one finished round.
func (s *SessionService) Record(ctx context.Context, record domain.GameRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	if err := s.store.Save(ctx, record); err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	logger.Debug("Recorded %s round: solved=%t, duration=%s", record.Difficulty, record.Solved, record.Duration)
	return nil
}

// Stats returns all-time aggregates across every difficulty.
func (s *SessionService) Stats(ctx context.Context) (domain.SessionStats, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return domain.SessionStats{}, fmt.Errorf("load stats: %w", err)
	}
	return stats, nil
}

// StatsByDifficulty returns aggregates grouped by difficulty.
func (s *SessionService) StatsByDifficulty(ctx context.Context) (map[domain.Difficulty]domain.SessionStats, error) {
	stats, err := s.store.StatsByDifficulty(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stats by difficulty: %w", err)
	}
	return stats, nil
}
