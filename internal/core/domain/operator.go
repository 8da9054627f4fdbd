package domain

// Operator is one of the four arithmetic operations a puzzle may use.
type Operator string

// Available operators.
const (
	// OperatorAdd is addition.
	OperatorAdd Operator = "+"

	// OperatorSubtract is subtraction.
	OperatorSubtract Operator = "-"

	// OperatorMultiply is multiplication.
	OperatorMultiply Operator = "*"

	// OperatorDivide is division.
	OperatorDivide Operator = "/"
)

// IsValid returns true if the operator is recognised.
func (o Operator) IsValid() bool {
	switch o {
	case OperatorAdd, OperatorSubtract, OperatorMultiply, OperatorDivide:
		return true
	default:
		return false
	}
}

// IsMultiplicative returns true for the operators that bind before the
// additive ones in an ungrouped expression.
func (o Operator) IsMultiplicative() bool {
	return o == OperatorMultiply || o == OperatorDivide
}

// Apply computes a o b in exact arithmetic. Division by zero yields
// Undefined, as does applying an unrecognised operator.
func (o Operator) Apply(a, b Rational) Rational {
	switch o {
	case OperatorAdd:
		return a.Add(b)
	case OperatorSubtract:
		return a.Sub(b)
	case OperatorMultiply:
		return a.Mul(b)
	case OperatorDivide:
		return a.Div(b)
	default:
		return Undefined()
	}
}

// String returns the string representation.
func (o Operator) String() string {
	return string(o)
}

// Description returns a human-readable description of the operator.
func (o Operator) Description() string {
	switch o {
	case OperatorAdd:
		return "Addition"
	case OperatorSubtract:
		return "Subtraction"
	case OperatorMultiply:
		return "Multiplication"
	case OperatorDivide:
		return "Division"
	default:
		return unknownDescription
	}
}

// AllOperators returns the four operators in canonical order.
func AllOperators() []Operator {
	return []Operator{
		OperatorAdd,
		OperatorSubtract,
		OperatorMultiply,
		OperatorDivide,
	}
}
