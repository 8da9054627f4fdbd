package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// SolveInput is the input schema for the solve tool.
type SolveInput struct {
	Numbers   []int    `json:"numbers" jsonschema:"the four numbers to combine, each between 1 and 9"`
	Operators []string `json:"operators,omitempty" jsonschema:"operators to allow (default all of + - * /)"`
	Target    int      `json:"target,omitempty" jsonschema:"the value to reach (default 24)"`
}

// SolveOutput is the output schema for the solve tool.
type SolveOutput struct {
	Numbers   []int    `json:"numbers"`
	Target    int      `json:"target"`
	Solvable  bool     `json:"solvable"`
	Count     int      `json:"count"`
	Solutions []string `json:"solutions"`
}

// CheckInput is the input schema for the check tool.
type CheckInput struct {
	Numbers    []int  `json:"numbers" jsonschema:"the four dealt numbers, each between 1 and 9"`
	Expression string `json:"expression" jsonschema:"the arithmetic expression to check"`
	Target     int    `json:"target,omitempty" jsonschema:"the value to reach (default 24)"`
}

// CheckOutput is the output schema for the check tool.
type CheckOutput struct {
	Accepted bool   `json:"accepted"`
	Value    string `json:"value,omitempty"`
	Message  string `json:"message"`
}

// PuzzleInput is the input schema for the puzzle tool.
type PuzzleInput struct {
	Difficulty string `json:"difficulty,omitempty" jsonschema:"difficulty to deal at: easy, normal, hard, or expert (default normal)"`
}

// PuzzleOutput is the output schema for the puzzle tool.
type PuzzleOutput struct {
	Numbers    []int  `json:"numbers"`
	Target     int    `json:"target"`
	Difficulty string `json:"difficulty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "solve",
		Description: "List every distinct expression that makes the target from four numbers",
	}, s.handleSolve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check",
		Description: "Check an arithmetic expression against four dealt numbers",
	}, s.handleCheck)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "puzzle",
		Description: "Deal a fresh four-number puzzle for a difficulty",
	}, s.handlePuzzle)
}

// handleSolve handles the solve tool invocation.
func (s *Server) handleSolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SolveInput,
) (*mcp.CallToolResult, SolveOutput, error) {
	puzzle, err := buildPuzzle(input.Numbers, input.Operators, input.Target)
	if err != nil {
		return nil, SolveOutput{}, err
	}

	solutions, err := s.ports.Solver.Solve(ctx, puzzle)
	if err != nil {
		return nil, SolveOutput{}, err
	}

	output := SolveOutput{
		Numbers:   puzzle.Operands.Values(),
		Target:    puzzle.Target,
		Solvable:  len(solutions) > 0,
		Count:     len(solutions),
		Solutions: make([]string, len(solutions)),
	}
	for i := range solutions {
		output.Solutions[i] = solutions[i].Text
	}

	return nil, output, nil
}

// handleCheck handles the check tool invocation.
func (s *Server) handleCheck(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckInput,
) (*mcp.CallToolResult, CheckOutput, error) {
	puzzle, err := buildPuzzle(input.Numbers, nil, input.Target)
	if err != nil {
		return nil, CheckOutput{}, err
	}

	verdict, err := s.ports.Checker.Check(ctx, puzzle, input.Expression)
	if err != nil {
		return nil, CheckOutput{}, err
	}

	output := CheckOutput{
		Accepted: verdict.Accepted,
		Message:  verdict.Message,
	}
	if !verdict.Value.IsUndefined() {
		output.Value = verdict.Value.String()
	}

	return nil, output, nil
}

// handlePuzzle handles the puzzle tool invocation.
func (s *Server) handlePuzzle(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PuzzleInput,
) (*mcp.CallToolResult, PuzzleOutput, error) {
	difficulty := domain.DefaultDifficulty()
	if input.Difficulty != "" {
		difficulty = domain.Difficulty(strings.ToLower(strings.TrimSpace(input.Difficulty)))
		if !difficulty.IsValid() {
			return nil, PuzzleOutput{}, fmt.Errorf(
				"%w: unknown difficulty %q", domain.ErrInvalidInput, input.Difficulty)
		}
	}

	puzzle, err := s.ports.Generator.Generate(ctx, difficulty)
	if err != nil {
		return nil, PuzzleOutput{}, err
	}

	return nil, PuzzleOutput{
		Numbers:    puzzle.Operands.Values(),
		Target:     puzzle.Target,
		Difficulty: string(puzzle.Difficulty),
	}, nil
}

// buildPuzzle assembles a puzzle from tool input, applying the classic
// defaults for target and operators.
func buildPuzzle(numbers []int, operators []string, target int) (domain.Puzzle, error) {
	operands, err := domain.NewOperandSet(numbers)
	if err != nil {
		return domain.Puzzle{}, err
	}

	if target == 0 {
		target = domain.DefaultTarget
	}

	puzzle := domain.NewPuzzle(operands, domain.DifficultyNormal, target)
	if len(operators) > 0 {
		allowed, err := parseOperators(operators)
		if err != nil {
			return domain.Puzzle{}, err
		}
		puzzle.Allowed = allowed
	}

	return puzzle, nil
}

// parseOperators converts operator tokens into an allowed subset.
// ASCII and display glyphs are both accepted.
func parseOperators(tokens []string) ([]domain.Operator, error) {
	operators := make([]domain.Operator, 0, len(tokens))
	seen := make(map[domain.Operator]bool, len(tokens))

	for _, token := range tokens {
		normalized := domain.NormalizeExpression(strings.TrimSpace(token))
		if normalized == "" {
			continue
		}
		op := domain.Operator(normalized)
		if !op.IsValid() {
			return nil, fmt.Errorf("%w: unknown operator %q", domain.ErrInvalidInput, token)
		}
		if seen[op] {
			continue
		}
		seen[op] = true
		operators = append(operators, op)
	}

	if len(operators) == 0 {
		return nil, fmt.Errorf("%w: no usable operators", domain.ErrInvalidInput)
	}
	return operators, nil
}
