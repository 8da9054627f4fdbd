package domain

import "fmt"

// Combination is one candidate from a puzzle's search space: an ordering
// of the four operands, an ordered operator triple, and the pattern that
// shapes them into an expression. Combinations are ephemeral values
// produced by enumeration; nothing mutates them.
type Combination struct {
	// Operands is the operand permutation, in slot order.
	Operands [OperandCount]int

	// Operators fill the pattern's three operator slots.
	Operators [3]Operator

	// Pattern is the expression shape.
	Pattern Pattern
}

// Evaluate computes the combination's exact value. Division by zero
// anywhere in the expression yields Undefined.
func (c Combination) Evaluate() Rational {
	var values [OperandCount]Rational
	for i, v := range c.Operands {
		values[i] = RationalFromInt(v)
	}
	return c.Pattern.Evaluate(values, c.Operators)
}

// Render returns the combination's canonical display text.
func (c Combination) Render(symbols Symbols) string {
	return c.Pattern.Render(c.Operands, c.Operators, symbols)
}

// operandOrders holds every ordering of the four operand slots, lexical
// by slot index, duplicate values included. Built once at start-up and
// read-only thereafter.
var operandOrders = buildOperandOrders()

func buildOperandOrders() [][OperandCount]int {
	orders := make([][OperandCount]int, 0, 24)
	var order [OperandCount]int
	var used [OperandCount]bool
	var build func(depth int)
	build = func(depth int) {
		if depth == OperandCount {
			orders = append(orders, order)
			return
		}
		for i := 0; i < OperandCount; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			order[depth] = i
			build(depth + 1)
			used[i] = false
		}
	}
	build(0)
	return orders
}

// EachCombination enumerates the full search space for an operand set:
// every operand ordering (all 24, duplicates included) crossed with
// every operator triple drawn with repetition from allowed, crossed with
// all six patterns. The order is deterministic: orderings lexically by
// slot index, then triples lexically by position in allowed, then
// patterns by number. Enumeration stops early when fn returns false.
func EachCombination(set OperandSet, allowed []Operator, fn func(Combination) bool) error {
	if len(allowed) == 0 {
		return fmt.Errorf("%w: no operators allowed", ErrInvalidInput)
	}
	for _, op := range allowed {
		if !op.IsValid() {
			return fmt.Errorf("%w: unknown operator %q", ErrInvalidInput, op)
		}
	}

	patterns := Patterns()
	for _, order := range operandOrders {
		var operands [OperandCount]int
		for slot, idx := range order {
			operands[slot] = set[idx]
		}
		for _, a := range allowed {
			for _, b := range allowed {
				for _, c := range allowed {
					for _, p := range patterns {
						combination := Combination{
							Operands:  operands,
							Operators: [3]Operator{a, b, c},
							Pattern:   p,
						}
						if !fn(combination) {
							return nil
						}
					}
				}
			}
		}
	}
	return nil
}

// Combinations materialises the enumeration in its deterministic order.
// The result has 24 * len(allowed)^3 * 6 entries: 9216 with all four
// operators, 1152 with two.
func Combinations(set OperandSet, allowed []Operator) ([]Combination, error) {
	size := 24 * len(allowed) * len(allowed) * len(allowed) * 6
	out := make([]Combination, 0, size)
	err := EachCombination(set, allowed, func(c Combination) bool {
		out = append(out, c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
