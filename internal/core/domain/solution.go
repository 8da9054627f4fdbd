package domain

// Solution is one way to reach the target. Solutions are deduplicated
// by display text, so two combinations that render identically count
// once, in first-discovered order.
type Solution struct {
	// Text is the canonical rendering.
	Text string

	// Combination is the enumeration entry that produced the solution,
	// kept for traceability.
	Combination Combination
}

// Verdict is the outcome of checking a player's expression against a
// puzzle.
type Verdict struct {
	// Accepted is true when the expression is well formed, uses the
	// dealt numbers and allowed operators, and reaches the target.
	Accepted bool

	// Message explains the verdict to the player.
	Message string

	// Value is the expression's exact value. It is Undefined when the
	// expression was rejected before arithmetic or divided by zero.
	Value Rational
}
