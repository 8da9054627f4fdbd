package domain

const unknownDescription = "Unknown"

// Difficulty selects the operator subset, dealing policy, and hint
// behaviour for new puzzles.
type Difficulty string

// Available difficulties.
const (
	// DifficultyEasy allows addition and subtraction only.
	DifficultyEasy Difficulty = "easy"

	// DifficultyNormal allows all four operators.
	DifficultyNormal Difficulty = "normal"

	// DifficultyHard allows all four operators and throttles hints.
	DifficultyHard Difficulty = "hard"

	// DifficultyExpert only deals sets that are solvable and not
	// trivially so.
	DifficultyExpert Difficulty = "expert"
)

// IsValid returns true if the difficulty is recognised.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert:
		return true
	default:
		return false
	}
}

// Operators returns the operator subset this difficulty allows.
func (d Difficulty) Operators() []Operator {
	if d == DifficultyEasy {
		return []Operator{OperatorAdd, OperatorSubtract}
	}
	return AllOperators()
}

// ThrottlesHints returns true if repeat hints are rate limited.
func (d Difficulty) ThrottlesHints() bool {
	return d == DifficultyHard || d == DifficultyExpert
}

// RejectsTrivialDeals returns true if dealt sets must not pass the
// trivial-solution screen.
func (d Difficulty) RejectsTrivialDeals() bool {
	return d == DifficultyExpert
}

// String returns the string representation.
func (d Difficulty) String() string {
	return string(d)
}

// Description returns a human-readable description of the difficulty.
func (d Difficulty) Description() string {
	switch d {
	case DifficultyEasy:
		return "Easy (addition and subtraction only)"
	case DifficultyNormal:
		return "Normal (all four operations)"
	case DifficultyHard:
		return "Hard (all operations, hints throttled)"
	case DifficultyExpert:
		return "Expert (challenging number sets)"
	default:
		return unknownDescription
	}
}

// AllDifficulties returns all difficulties, easiest first.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyEasy,
		DifficultyNormal,
		DifficultyHard,
		DifficultyExpert,
	}
}

// DefaultDifficulty is the difficulty used until the player picks one.
func DefaultDifficulty() Difficulty {
	return DifficultyNormal
}
