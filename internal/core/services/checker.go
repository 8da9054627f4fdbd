package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/logger"
)

// Ensure CheckerService implements the interface.
var _ driving.CheckerService = (*CheckerService)(nil)

// CheckerService validates player expressions against a puzzle. Checks
// run cheapest first: character set, number multiset, operator subset,
// then parse and exact evaluation. Rejections come back as verdicts,
// not errors.
type CheckerService struct{}

// NewCheckerService creates a new checker service.
func NewCheckerService() *CheckerService {
	return &CheckerService{}
}

// Check normalises, validates, and evaluates a player expression.
func (c *CheckerService) Check(
	_ context.Context, puzzle domain.Puzzle, expression string,
) (domain.Verdict, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, domain.NormalizeExpression(expression))

	logger.Debug("Checking expression %q against %s", cleaned, puzzle.Operands)

	if cleaned == "" {
		return reject("Enter an expression using your four numbers."), nil
	}

	if bad := firstBadRune(cleaned); bad != 0 {
		return reject("Invalid characters in expression. Use only numbers, +, −, ×, ÷, and parentheses."), nil
	}

	if !sameNumbers(numbersIn(cleaned), puzzle.Operands) {
		return reject(fmt.Sprintf("You must use each number exactly once: %s", puzzle.Operands)), nil
	}

	if forbidden := forbiddenOperators(operatorsIn(cleaned), puzzle.Allowed); len(forbidden) > 0 {
		return reject(fmt.Sprintf("Operators not allowed in %s mode: %s",
			puzzle.Difficulty, strings.Join(forbidden, ", "))), nil
	}

	expr, err := domain.ParseExpression(cleaned)
	if err != nil {
		return reject(fmt.Sprintf("Invalid expression: %s.", rejectionReason(err))), nil
	}

	value := expr.Evaluate()
	if value.IsUndefined() {
		return reject("Division by zero or invalid operation."), nil
	}

	if !value.EqualsInt(puzzle.Target) {
		return domain.Verdict{
			Accepted: false,
			Message:  fmt.Sprintf("Result is %s, not %d.", value, puzzle.Target),
			Value:    value,
		}, nil
	}

	logger.Debug("Expression accepted: %s = %d", cleaned, puzzle.Target)
	return domain.Verdict{
		Accepted: true,
		Message:  fmt.Sprintf("Correct! %s = %d", cleaned, puzzle.Target),
		Value:    value,
	}, nil
}

// reject builds a verdict for an expression turned away before it had a
// defined value.
func reject(message string) domain.Verdict {
	return domain.Verdict{Accepted: false, Message: message}
}

// rejectionReason strips the sentinel prefix from a validation error,
// leaving the player-facing detail.
func rejectionReason(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
}

// firstBadRune returns the first rune outside the expression alphabet,
// or 0 when every rune is allowed.
func firstBadRune(cleaned string) rune {
	for _, r := range cleaned {
		switch {
		case r >= '0' && r <= '9':
		case r == '(' || r == ')':
		case domain.Operator(r).IsValid():
		default:
			return r
		}
	}
	return 0
}

// numbersIn extracts the literal numbers of a cleaned expression in
// reading order, duplicates included. Multi-digit runs stay one number,
// so "12" never passes as a 1 and a 2.
func numbersIn(cleaned string) []int {
	var numbers []int
	for i := 0; i < len(cleaned); {
		if cleaned[i] < '0' || cleaned[i] > '9' {
			i++
			continue
		}
		j := i
		for j < len(cleaned) && cleaned[j] >= '0' && cleaned[j] <= '9' {
			j++
		}
		n, err := strconv.Atoi(cleaned[i:j])
		if err == nil {
			numbers = append(numbers, n)
		}
		i = j
	}
	return numbers
}

// operatorsIn extracts the operators of a cleaned expression in reading
// order, duplicates included.
func operatorsIn(cleaned string) []domain.Operator {
	var ops []domain.Operator
	for _, r := range cleaned {
		if op := domain.Operator(r); op.IsValid() {
			ops = append(ops, op)
		}
	}
	return ops
}

// sameNumbers reports whether the extracted numbers equal the dealt
// operands as multisets.
func sameNumbers(numbers []int, operands domain.OperandSet) bool {
	if len(numbers) != domain.OperandCount {
		return false
	}
	used := append([]int(nil), numbers...)
	dealt := operands.Values()
	sort.Ints(used)
	sort.Ints(dealt)
	for i := range used {
		if used[i] != dealt[i] {
			return false
		}
	}
	return true
}

// forbiddenOperators returns the distinct glyphs of used operators
// outside the allowed subset, sorted for stable messages.
func forbiddenOperators(used, allowed []domain.Operator) []string {
	permitted := make(map[domain.Operator]bool, len(allowed))
	for _, op := range allowed {
		permitted[op] = true
	}

	symbols := domain.UnicodeSymbols()
	seen := make(map[string]bool)
	var forbidden []string
	for _, op := range used {
		if permitted[op] {
			continue
		}
		g := symbols.Glyph(op)
		if !seen[g] {
			seen[g] = true
			forbidden = append(forbidden, g)
		}
	}
	sort.Strings(forbidden)
	return forbidden
}
