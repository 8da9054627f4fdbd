package domain

import "strings"

// SymbolSet selects the glyphs used when rendering expressions.
type SymbolSet string

// Available symbol sets.
const (
	// SymbolSetUnicode renders with the conventional glyphs − × ÷.
	SymbolSetUnicode SymbolSet = "unicode"

	// SymbolSetASCII renders with the keyboard characters - * /.
	SymbolSetASCII SymbolSet = "ascii"
)

// IsValid returns true if the symbol set is recognised.
func (s SymbolSet) IsValid() bool {
	switch s {
	case SymbolSetUnicode, SymbolSetASCII:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s SymbolSet) String() string {
	return string(s)
}

// Description returns a human-readable description of the symbol set.
func (s SymbolSet) Description() string {
	switch s {
	case SymbolSetUnicode:
		return "Unicode (+ − × ÷)"
	case SymbolSetASCII:
		return "ASCII (+ - * /)"
	default:
		return unknownDescription
	}
}

// Symbols returns the glyph table for this symbol set.
// Unrecognised sets fall back to the Unicode glyphs.
func (s SymbolSet) Symbols() Symbols {
	if s == SymbolSetASCII {
		return ASCIISymbols()
	}
	return UnicodeSymbols()
}

// AllSymbolSets returns all available symbol sets.
func AllSymbolSets() []SymbolSet {
	return []SymbolSet{
		SymbolSetUnicode,
		SymbolSetASCII,
	}
}

// Symbols maps each operator to the glyph used to display it.
// Rendering consults this table so the glyph choice is configuration,
// not something baked into the expression shapes.
type Symbols map[Operator]string

// UnicodeSymbols returns the conventional arithmetic glyphs.
func UnicodeSymbols() Symbols {
	return Symbols{
		OperatorAdd:      "+",
		OperatorSubtract: "−",
		OperatorMultiply: "×",
		OperatorDivide:   "÷",
	}
}

// ASCIISymbols returns plain keyboard glyphs.
func ASCIISymbols() Symbols {
	return Symbols{
		OperatorAdd:      "+",
		OperatorSubtract: "-",
		OperatorMultiply: "*",
		OperatorDivide:   "/",
	}
}

// Glyph returns the display glyph for an operator, falling back to the
// operator character itself when the table has no entry.
func (s Symbols) Glyph(o Operator) string {
	if g, ok := s[o]; ok {
		return g
	}
	return o.String()
}

// NormalizeExpression translates display glyphs in player input back to
// operator characters, so an expression pasted from a rendered solution
// parses the same as one typed on a plain keyboard.
func NormalizeExpression(expr string) string {
	for op, glyph := range UnicodeSymbols() {
		if glyph != op.String() {
			expr = strings.ReplaceAll(expr, glyph, op.String())
		}
	}
	return expr
}
