package domain

import (
	"fmt"
	"time"
)

// GameRecord is one finished round, kept for statistics.
type GameRecord struct {
	// ID uniquely identifies the record.
	ID string

	// Operands are the numbers the round dealt.
	Operands OperandSet

	// Difficulty the round was played at.
	Difficulty Difficulty

	// Solved is true when the player found a winning expression.
	Solved bool

	// Duration is how long the round took.
	Duration time.Duration

	// PlayedAt is when the round finished.
	PlayedAt time.Time
}

// Validate checks the record is complete enough to store.
func (r GameRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: record id is required", ErrInvalidInput)
	}
	if !r.Difficulty.IsValid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, r.Difficulty)
	}
	if r.PlayedAt.IsZero() {
		return fmt.Errorf("%w: played_at is required", ErrInvalidInput)
	}
	return nil
}

// SessionStats aggregates finished rounds.
type SessionStats struct {
	// GamesPlayed counts every finished round.
	GamesPlayed int

	// GamesSolved counts rounds the player won.
	GamesSolved int

	// TotalSolveTime sums the durations of solved rounds.
	TotalSolveTime time.Duration

	// BestTime is the fastest solved round, zero while none is solved.
	BestTime time.Duration
}

// Add folds one finished round into the aggregates and returns the
// updated value.
func (s SessionStats) Add(record GameRecord) SessionStats {
	s.GamesPlayed++
	if record.Solved {
		s.GamesSolved++
		s.TotalSolveTime += record.Duration
		if s.BestTime == 0 || record.Duration < s.BestTime {
			s.BestTime = record.Duration
		}
	}
	return s
}

// SuccessRate returns solved rounds as a percentage of rounds played.
func (s SessionStats) SuccessRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.GamesSolved) / float64(s.GamesPlayed) * 100
}

// AverageSolveTime returns the mean duration of solved rounds.
func (s SessionStats) AverageSolveTime() time.Duration {
	if s.GamesSolved == 0 {
		return 0
	}
	return s.TotalSolveTime / time.Duration(s.GamesSolved)
}
