package domain

// DefaultTarget is the classic target value.
const DefaultTarget = 24

// Puzzle is one playable round: the dealt operands, the operators the
// round permits, and the value expressions must reach. Consumers treat
// a puzzle as read-only once dealt.
type Puzzle struct {
	// Operands are the four dealt numbers.
	Operands OperandSet

	// Allowed is the operator subset the round permits.
	Allowed []Operator

	// Target is the value expressions must reach.
	Target int

	// Difficulty the puzzle was dealt at.
	Difficulty Difficulty
}

// NewPuzzle builds a puzzle for a dealt operand set, deriving the
// allowed operators from the difficulty.
func NewPuzzle(operands OperandSet, difficulty Difficulty, target int) Puzzle {
	return Puzzle{
		Operands:   operands,
		Allowed:    difficulty.Operators(),
		Target:     target,
		Difficulty: difficulty,
	}
}

// FallbackSets returns hand-picked operand sets known to be solvable
// with all four operators. Dealing falls back to these when random
// sampling keeps missing solvable sets.
func FallbackSets() []OperandSet {
	return []OperandSet{
		{1, 1, 8, 8},
		{1, 2, 3, 4},
		{2, 2, 6, 6},
		{1, 3, 4, 6},
		{2, 3, 4, 4},
		{3, 3, 8, 8},
		{1, 5, 5, 5},
		{2, 4, 6, 8},
	}
}
