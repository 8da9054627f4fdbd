package domain

import "time"

// RoundOutcome is the lifecycle state of a dealt round.
type RoundOutcome string

// Round lifecycle states.
const (
	// RoundOpen means the player is still working on the puzzle.
	RoundOpen RoundOutcome = "open"

	// RoundSolved means the player reached the target.
	RoundSolved RoundOutcome = "solved"

	// RoundRevealed means the round closed without a win, either by
	// showing the solutions or by being abandoned.
	RoundRevealed RoundOutcome = "revealed"
)

// IsValid returns true if the outcome is recognised.
func (o RoundOutcome) IsValid() bool {
	switch o {
	case RoundOpen, RoundSolved, RoundRevealed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o RoundOutcome) String() string {
	return string(o)
}

// Round is one dealt puzzle together with its lifecycle state.
type Round struct {
	// Puzzle is the dealt puzzle.
	Puzzle Puzzle

	// StartedAt is when the round was dealt.
	StartedAt time.Time

	// FinishedAt is when the round closed; zero while open.
	FinishedAt time.Time

	// HintsUsed counts hints taken this round.
	HintsUsed int

	// Outcome is the lifecycle state.
	Outcome RoundOutcome
}

// IsFinished returns true once the round has closed.
func (r Round) IsFinished() bool {
	return r.Outcome != RoundOpen
}

// Elapsed returns the round's play time: running while open, frozen at
// close once finished.
func (r Round) Elapsed(now time.Time) time.Duration {
	if r.IsFinished() {
		return r.FinishedAt.Sub(r.StartedAt)
	}
	return now.Sub(r.StartedAt)
}
