package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore,
// used in tests and as the fallback when the SQLite store cannot open.
type SessionStore struct {
	mu      sync.RWMutex
	records []domain.GameRecord
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Save stores one finished round, replacing any record with the same ID
// to mirror the SQLite store's upsert.
func (s *SessionStore) Save(_ context.Context, record domain.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == record.ID {
			s.records[i] = record
			return nil
		}
	}
	s.records = append(s.records, record)
	return nil
}

// List returns all records, most recent first.
func (s *SessionStore) List(_ context.Context) ([]domain.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.GameRecord, len(s.records))
	copy(out, s.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayedAt.After(out[j].PlayedAt)
	})
	return out, nil
}

// Stats returns all-time aggregates across every record.
func (s *SessionStore) Stats(_ context.Context) (domain.SessionStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats domain.SessionStats
	for _, record := range s.records {
		stats = stats.Add(record)
	}
	return stats, nil
}

// StatsByDifficulty returns aggregates grouped by difficulty.
func (s *SessionStore) StatsByDifficulty(_ context.Context) (map[domain.Difficulty]domain.SessionStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grouped := make(map[domain.Difficulty]domain.SessionStats)
	for _, record := range s.records {
		grouped[record.Difficulty] = grouped[record.Difficulty].Add(record)
	}
	return grouped, nil
}
