package domain

import "math/big"

// Rational is an exact rational number used for all puzzle arithmetic.
// The zero value is Undefined, the absorbing result of division by zero.
// Values are immutable: every operation returns a new Rational and never
// mutates its receiver, so values can be shared freely.
type Rational struct {
	rat *big.Rat
}

// NewRational creates the rational num/den, reduced to lowest terms.
// A zero denominator yields Undefined.
func NewRational(num, den int64) Rational {
	if den == 0 {
		return Rational{}
	}
	return Rational{rat: big.NewRat(num, den)}
}

// RationalFromInt creates the whole-valued rational n/1.
func RationalFromInt(n int) Rational {
	return Rational{rat: big.NewRat(int64(n), 1)}
}

// Undefined returns the not-a-value result of division by zero.
func Undefined() Rational {
	return Rational{}
}

// IsUndefined returns true if the value is the result of division by zero.
func (x Rational) IsUndefined() bool {
	return x.rat == nil
}

// Add returns x + y. Undefined operands propagate.
func (x Rational) Add(y Rational) Rational {
	if x.IsUndefined() || y.IsUndefined() {
		return Rational{}
	}
	return Rational{rat: new(big.Rat).Add(x.rat, y.rat)}
}

// Sub returns x - y. Undefined operands propagate.
func (x Rational) Sub(y Rational) Rational {
	if x.IsUndefined() || y.IsUndefined() {
		return Rational{}
	}
	return Rational{rat: new(big.Rat).Sub(x.rat, y.rat)}
}

// Mul returns x * y. Undefined operands propagate.
func (x Rational) Mul(y Rational) Rational {
	if x.IsUndefined() || y.IsUndefined() {
		return Rational{}
	}
	return Rational{rat: new(big.Rat).Mul(x.rat, y.rat)}
}

// Div returns x / y. A zero or Undefined divisor yields Undefined.
func (x Rational) Div(y Rational) Rational {
	if x.IsUndefined() || y.IsUndefined() || y.rat.Sign() == 0 {
		return Rational{}
	}
	return Rational{rat: new(big.Rat).Quo(x.rat, y.rat)}
}

// Equals reports exact equality, never approximate.
// Undefined equals nothing, itself included.
func (x Rational) Equals(y Rational) bool {
	if x.IsUndefined() || y.IsUndefined() {
		return false
	}
	return x.rat.Cmp(y.rat) == 0
}

// EqualsInt reports exact equality with a whole number.
func (x Rational) EqualsInt(n int) bool {
	if x.IsUndefined() {
		return false
	}
	return x.rat.Cmp(big.NewRat(int64(n), 1)) == 0
}

// IsInt returns true for whole values.
func (x Rational) IsInt() bool {
	return !x.IsUndefined() && x.rat.IsInt()
}

// String renders the value in lowest terms, as "n" for whole values and
// "n/d" otherwise. Undefined renders as "undefined".
func (x Rational) String() string {
	if x.IsUndefined() {
		return "undefined"
	}
	if x.rat.IsInt() {
		return x.rat.Num().String()
	}
	return x.rat.RatString()
}
