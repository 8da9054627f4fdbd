package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoPuzzle indicates no round is active.
	ErrNoPuzzle = errors.New("no active puzzle")

	// ErrRoundOver indicates the active round has already finished.
	ErrRoundOver = errors.New("round already finished")

	// ErrHintThrottled indicates the hint cooldown has not elapsed.
	ErrHintThrottled = errors.New("hint not ready yet")
)
