package mcp

import (
	"context"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// mockSolverService is a mock implementation of driving.SolverService.
type mockSolverService struct {
	solutions []domain.Solution
	solvable  bool
	hint      string
	err       error

	lastPuzzle domain.Puzzle
}

func (m *mockSolverService) Solve(_ context.Context, puzzle domain.Puzzle) ([]domain.Solution, error) {
	m.lastPuzzle = puzzle
	return m.solutions, m.err
}

func (m *mockSolverService) IsSolvable(_ context.Context, puzzle domain.Puzzle) (bool, error) {
	m.lastPuzzle = puzzle
	return m.solvable, m.err
}

func (m *mockSolverService) Hint(_ context.Context, puzzle domain.Puzzle) (string, error) {
	m.lastPuzzle = puzzle
	return m.hint, m.err
}

// mockCheckerService is a mock implementation of driving.CheckerService.
type mockCheckerService struct {
	verdict domain.Verdict
	err     error

	lastPuzzle     domain.Puzzle
	lastExpression string
}

func (m *mockCheckerService) Check(
	_ context.Context, puzzle domain.Puzzle, expression string,
) (domain.Verdict, error) {
	m.lastPuzzle = puzzle
	m.lastExpression = expression
	return m.verdict, m.err
}

// mockGeneratorService is a mock implementation of driving.GeneratorService.
type mockGeneratorService struct {
	puzzle domain.Puzzle
	err    error

	lastDifficulty domain.Difficulty
}

func (m *mockGeneratorService) Generate(
	_ context.Context, difficulty domain.Difficulty,
) (domain.Puzzle, error) {
	m.lastDifficulty = difficulty
	return m.puzzle, m.err
}

// validPorts returns ports with all services mocked.
func validPorts() *Ports {
	return &Ports{
		Solver:    &mockSolverService{},
		Checker:   &mockCheckerService{},
		Generator: &mockGeneratorService{},
	}
}

// mustOperands builds an operand set for tests with known-good values.
func mustOperands(values []int) domain.OperandSet {
	operands, err := domain.NewOperandSet(values)
	if err != nil {
		panic(err)
	}
	return operands
}
