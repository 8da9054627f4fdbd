package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRational_ZeroValueIsUndefined tests that the zero value is Undefined
func TestRational_ZeroValueIsUndefined(t *testing.T) {
	var x Rational
	assert.True(t, x.IsUndefined())
	assert.True(t, Undefined().IsUndefined())
	assert.False(t, RationalFromInt(0).IsUndefined())
}

// TestNewRational_ZeroDenominator tests that a zero denominator yields Undefined
func TestNewRational_ZeroDenominator(t *testing.T) {
	assert.True(t, NewRational(1, 0).IsUndefined())
	assert.False(t, NewRational(0, 1).IsUndefined())
}

// TestRational_Arithmetic tests the four operations on defined values
func TestRational_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		result   Rational
		expected Rational
	}{
		{
			name:     "addition",
			result:   RationalFromInt(8).Add(RationalFromInt(16)),
			expected: RationalFromInt(24),
		},
		{
			name:     "subtraction below zero",
			result:   RationalFromInt(3).Sub(RationalFromInt(8)),
			expected: RationalFromInt(-5),
		},
		{
			name:     "multiplication",
			result:   RationalFromInt(6).Mul(RationalFromInt(4)),
			expected: RationalFromInt(24),
		},
		{
			name:     "division keeps exact fractions",
			result:   RationalFromInt(8).Div(RationalFromInt(3)),
			expected: NewRational(8, 3),
		},
		{
			name:     "fractions reduce",
			result:   NewRational(4, 8).Add(NewRational(1, 2)),
			expected: RationalFromInt(1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.result.Equals(tt.expected),
				"got %s, want %s", tt.result, tt.expected)
		})
	}
}

// TestRational_ThirdTimesThreeIsExact tests that no epsilon is needed
func TestRational_ThirdTimesThreeIsExact(t *testing.T) {
	third := RationalFromInt(1).Div(RationalFromInt(3))
	assert.True(t, third.Mul(RationalFromInt(3)).EqualsInt(1))
}

// TestRational_FractionalIntermediate tests the classic 8/(3-8/3) route to 24,
// which requires exact intermediate fractions
func TestRational_FractionalIntermediate(t *testing.T) {
	inner := RationalFromInt(3).Sub(RationalFromInt(8).Div(RationalFromInt(3)))
	require.True(t, inner.Equals(NewRational(1, 3)))

	result := RationalFromInt(8).Div(inner)
	assert.True(t, result.EqualsInt(24))
}

// TestRational_DivisionByZero tests that dividing by zero yields Undefined
func TestRational_DivisionByZero(t *testing.T) {
	result := RationalFromInt(5).Div(RationalFromInt(0))
	assert.True(t, result.IsUndefined())
}

// TestRational_UndefinedPropagates tests that Undefined absorbs every operation
func TestRational_UndefinedPropagates(t *testing.T) {
	u := RationalFromInt(1).Div(RationalFromInt(0))
	five := RationalFromInt(5)

	tests := []struct {
		name   string
		result Rational
	}{
		{"undefined + x", u.Add(five)},
		{"x + undefined", five.Add(u)},
		{"undefined - x", u.Sub(five)},
		{"x - undefined", five.Sub(u)},
		{"undefined * x", u.Mul(five)},
		{"x * undefined", five.Mul(u)},
		{"undefined / x", u.Div(five)},
		{"x / undefined", five.Div(u)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.result.IsUndefined())
		})
	}
}

// TestRational_Equals tests exact equality semantics
func TestRational_Equals(t *testing.T) {
	tests := []struct {
		name     string
		a        Rational
		b        Rational
		expected bool
	}{
		{
			name:     "equal integers",
			a:        RationalFromInt(24),
			b:        RationalFromInt(24),
			expected: true,
		},
		{
			name:     "equal after reduction",
			a:        NewRational(48, 2),
			b:        RationalFromInt(24),
			expected: true,
		},
		{
			name:     "close but not equal",
			a:        NewRational(2399999, 100000),
			b:        RationalFromInt(24),
			expected: false,
		},
		{
			name:     "undefined equals nothing",
			a:        Undefined(),
			b:        RationalFromInt(24),
			expected: false,
		},
		{
			name:     "undefined does not equal undefined",
			a:        Undefined(),
			b:        Undefined(),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equals(tt.b))
		})
	}
}

// TestRational_EqualsInt tests whole-number comparison
func TestRational_EqualsInt(t *testing.T) {
	assert.True(t, RationalFromInt(24).EqualsInt(24))
	assert.True(t, NewRational(72, 3).EqualsInt(24))
	assert.False(t, NewRational(49, 2).EqualsInt(24))
	assert.False(t, Undefined().EqualsInt(24))
}

// TestRational_IsInt tests whole-value detection
func TestRational_IsInt(t *testing.T) {
	assert.True(t, RationalFromInt(7).IsInt())
	assert.True(t, NewRational(24, 3).IsInt())
	assert.False(t, NewRational(8, 3).IsInt())
	assert.False(t, Undefined().IsInt())
}

// TestRational_Immutability tests that operations never mutate operands
func TestRational_Immutability(t *testing.T) {
	a := RationalFromInt(6)
	b := RationalFromInt(4)

	_ = a.Mul(b)
	_ = a.Add(b)
	_ = a.Div(b)

	assert.True(t, a.EqualsInt(6))
	assert.True(t, b.EqualsInt(4))
}

// TestRational_String tests rendering
func TestRational_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Rational
		expected string
	}{
		{
			name:     "whole value has no denominator",
			value:    RationalFromInt(24),
			expected: "24",
		},
		{
			name:     "negative whole value",
			value:    RationalFromInt(-5),
			expected: "-5",
		},
		{
			name:     "fraction in lowest terms",
			value:    NewRational(16, 6),
			expected: "8/3",
		},
		{
			name:     "undefined",
			value:    Undefined(),
			expected: "undefined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}
