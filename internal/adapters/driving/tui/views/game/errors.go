package game

import "errors"

var (
	// ErrNoGameService indicates that no game service was provided.
	ErrNoGameService = errors.New("game service is required")
)
