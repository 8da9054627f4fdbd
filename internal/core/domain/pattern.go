package domain

import "fmt"

// Pattern is one of the six shapes a candidate expression can take:
// every distinct way of grouping three binary operations over four
// operands, plus the ungrouped form read with conventional precedence.
// Patterns are fixed values shared read-only; they carry no state.
type Pattern struct {
	id     int
	layout string
	eval   func(v [4]Rational, o [3]Operator) Rational
}

// ID returns the 1-based pattern number in enumeration order.
func (p Pattern) ID() int {
	return p.id
}

// Evaluate computes the pattern's exact value for the given operands
// and operators. Division by zero anywhere in the shape propagates as
// Undefined; it never panics.
func (p Pattern) Evaluate(operands [4]Rational, operators [3]Operator) Rational {
	return p.eval(operands, operators)
}

// Render returns the canonical display text for the pattern: operands
// and operator glyphs separated by single spaces, grouped exactly as
// the shape evaluates.
func (p Pattern) Render(operands [4]int, operators [3]Operator, symbols Symbols) string {
	return fmt.Sprintf(p.layout,
		operands[0], symbols.Glyph(operators[0]),
		operands[1], symbols.Glyph(operators[1]),
		operands[2], symbols.Glyph(operators[2]),
		operands[3],
	)
}

// Patterns returns the six shapes in enumeration order.
func Patterns() []Pattern {
	return []Pattern{
		{id: 1, layout: "(%d %s %d) %s (%d %s %d)", eval: evalPairs},
		{id: 2, layout: "((%d %s %d) %s %d) %s %d", eval: evalLeft},
		{id: 3, layout: "(%d %s (%d %s %d)) %s %d", eval: evalInnerLeft},
		{id: 4, layout: "%d %s ((%d %s %d) %s %d)", eval: evalInnerRight},
		{id: 5, layout: "%d %s (%d %s (%d %s %d))", eval: evalRight},
		{id: 6, layout: "%d %s %d %s %d %s %d", eval: evalFlat},
	}
}

// (v0 o0 v1) o1 (v2 o2 v3)
func evalPairs(v [4]Rational, o [3]Operator) Rational {
	return o[1].Apply(o[0].Apply(v[0], v[1]), o[2].Apply(v[2], v[3]))
}

// ((v0 o0 v1) o1 v2) o2 v3
func evalLeft(v [4]Rational, o [3]Operator) Rational {
	return o[2].Apply(o[1].Apply(o[0].Apply(v[0], v[1]), v[2]), v[3])
}

// (v0 o0 (v1 o1 v2)) o2 v3
func evalInnerLeft(v [4]Rational, o [3]Operator) Rational {
	return o[2].Apply(o[0].Apply(v[0], o[1].Apply(v[1], v[2])), v[3])
}

// v0 o0 ((v1 o1 v2) o2 v3)
func evalInnerRight(v [4]Rational, o [3]Operator) Rational {
	return o[0].Apply(v[0], o[2].Apply(o[1].Apply(v[1], v[2]), v[3]))
}

// v0 o0 (v1 o1 (v2 o2 v3))
func evalRight(v [4]Rational, o [3]Operator) Rational {
	return o[0].Apply(v[0], o[1].Apply(v[1], o[2].Apply(v[2], v[3])))
}

// evalFlat reads the ungrouped shape the way a player would: each
// multiplicative run collapses into its neighbouring term first, then
// the remaining additive chain folds left to right.
func evalFlat(v [4]Rational, o [3]Operator) Rational {
	terms := []Rational{v[0]}
	var chain []Operator
	for i, op := range o {
		if op.IsMultiplicative() {
			terms[len(terms)-1] = op.Apply(terms[len(terms)-1], v[i+1])
		} else {
			terms = append(terms, v[i+1])
			chain = append(chain, op)
		}
	}
	result := terms[0]
	for i, op := range chain {
		result = op.Apply(result, terms[i+1])
	}
	return result
}
