package domain

import "fmt"

// Operand bounds shared by dealing and validation.
const (
	// OperandCount is the number of operands in every puzzle.
	OperandCount = 4

	// OperandMin is the smallest dealable operand.
	OperandMin = 1

	// OperandMax is the largest dealable operand.
	OperandMax = 9
)

// OperandSet is the four numbers of one puzzle, in dealt order.
// Duplicates are allowed; order matters only for display.
type OperandSet [OperandCount]int

// NewOperandSet validates and builds an operand set. Exactly
// OperandCount values are required, each within [OperandMin, OperandMax].
func NewOperandSet(values []int) (OperandSet, error) {
	var set OperandSet
	if len(values) != OperandCount {
		return set, fmt.Errorf("%w: need exactly %d numbers, got %d", ErrInvalidInput, OperandCount, len(values))
	}
	for i, v := range values {
		if v < OperandMin || v > OperandMax {
			return set, fmt.Errorf("%w: number %d out of range [%d, %d]", ErrInvalidInput, v, OperandMin, OperandMax)
		}
		set[i] = v
	}
	return set, nil
}

// Values returns the operands as a fresh slice.
func (s OperandSet) Values() []int {
	return []int{s[0], s[1], s[2], s[3]}
}

// Sum returns the sum of the four operands.
func (s OperandSet) Sum() int {
	return s[0] + s[1] + s[2] + s[3]
}

// Contains returns true if n appears anywhere in the set.
func (s OperandSet) Contains(n int) bool {
	for _, v := range s {
		if v == n {
			return true
		}
	}
	return false
}

// IsTrivial reports whether the set admits an obviously easy route to
// the target: some operand divides the target with the quotient also in
// the set, or the four operands sum to the target. This is a cheap
// screen used when dealing expert puzzles, not proof that a trivial
// expression exists among the patterns.
func (s OperandSet) IsTrivial(target int) bool {
	for _, v := range s {
		if v != 0 && target%v == 0 && s.Contains(target/v) {
			return true
		}
	}
	return s.Sum() == target
}

// String renders the operands space-separated, in dealt order.
func (s OperandSet) String() string {
	return fmt.Sprintf("%d %d %d %d", s[0], s[1], s[2], s[3])
}
