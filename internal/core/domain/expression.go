package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Expr is a parsed player expression: either a literal number or a
// binary operation over two subexpressions.
type Expr struct {
	// Op is the operator of a binary node; empty for literals.
	Op Operator

	// Value is the literal number, valid only when Op is empty.
	Value int

	// Left and Right are the operands of a binary node.
	Left  *Expr
	Right *Expr
}

// IsLiteral returns true for number nodes.
func (e *Expr) IsLiteral() bool {
	return e.Op == ""
}

// Evaluate computes the expression's exact value. Division by zero
// yields Undefined and propagates; it never panics.
func (e *Expr) Evaluate() Rational {
	if e.IsLiteral() {
		return RationalFromInt(e.Value)
	}
	return e.Op.Apply(e.Left.Evaluate(), e.Right.Evaluate())
}

// Numbers returns the literal numbers in left-to-right order,
// duplicates included.
func (e *Expr) Numbers() []int {
	if e.IsLiteral() {
		return []int{e.Value}
	}
	return append(e.Left.Numbers(), e.Right.Numbers()...)
}

// Operators returns the operators used in left-to-right order,
// duplicates included.
func (e *Expr) Operators() []Operator {
	if e.IsLiteral() {
		return nil
	}
	ops := e.Left.Operators()
	ops = append(ops, e.Op)
	return append(ops, e.Right.Operators()...)
}

// ParseExpression parses player input: integers, the four operators,
// and parentheses, read with conventional precedence. Display glyphs
// and whitespace are normalised away first, so an expression pasted
// from a rendered solution parses unchanged. Errors wrap
// ErrInvalidInput.
func ParseExpression(input string) (*Expr, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, NormalizeExpression(input))
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidInput)
	}

	p := &exprParser{input: []rune(cleaned)}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidInput, p.input[p.pos])
	}
	return expr, nil
}

// exprParser is a recursive-descent parser over the grammar
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := number | '(' expr ')'
type exprParser struct {
	input []rune
	pos   int
}

func (p *exprParser) peek() (rune, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *exprParser) parseExpr() (*Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Expr{Op: Operator(c), Left: left, Right: right}
	}
}

func (p *exprParser) parseTerm() (*Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			return left, nil
		}
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &Expr{Op: Operator(c), Left: left, Right: right}
	}
}

func (p *exprParser) parseFactor() (*Expr, error) {
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: expression ends early", ErrInvalidInput)
	}

	if c == '(' {
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		c, ok := p.peek()
		if !ok || c != ')' {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidInput)
		}
		p.pos++
		return inner, nil
	}

	if c < '0' || c > '9' {
		return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidInput, c)
	}
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	n, err := strconv.Atoi(string(p.input[start:p.pos]))
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q", ErrInvalidInput, string(p.input[start:p.pos]))
	}
	return &Expr{Value: n}, nil
}
