package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// mockSolver implements driving.SolverService with scripted answers.
type mockSolver struct {
	solvable bool
	solveErr error
	calls    int
}

func (m *mockSolver) Solve(_ context.Context, _ domain.Puzzle) ([]domain.Solution, error) {
	if m.solveErr != nil {
		return nil, m.solveErr
	}
	if !m.solvable {
		return []domain.Solution{}, nil
	}
	return []domain.Solution{{Text: "(1 + 2) × 3 + 4"}}, nil
}

func (m *mockSolver) IsSolvable(_ context.Context, _ domain.Puzzle) (bool, error) {
	m.calls++
	if m.solveErr != nil {
		return false, m.solveErr
	}
	return m.solvable, nil
}

func (m *mockSolver) Hint(_ context.Context, _ domain.Puzzle) (string, error) {
	return "", nil
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestNewGeneratorService(t *testing.T) {
	svc := NewGeneratorService(NewSolverService(nil), nil, nil)
	assert.NotNil(t, svc)
}

func TestGeneratorService_Generate_Normal(t *testing.T) {
	svc := NewGeneratorService(NewSolverService(nil), nil, testRand())

	puzzle, err := svc.Generate(context.Background(), domain.DifficultyNormal)

	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyNormal, puzzle.Difficulty)
	assert.Equal(t, 24, puzzle.Target)
	assert.Equal(t, domain.AllOperators(), puzzle.Allowed)
	for _, v := range puzzle.Operands {
		assert.GreaterOrEqual(t, v, domain.OperandMin)
		assert.LessOrEqual(t, v, domain.OperandMax)
	}

	// Random deals and fallback sets are both solvable with four operators.
	solvable, err := NewSolverService(nil).IsSolvable(context.Background(), puzzle)
	require.NoError(t, err)
	assert.True(t, solvable)
}

func TestGeneratorService_Generate_Easy(t *testing.T) {
	svc := NewGeneratorService(NewSolverService(nil), nil, testRand())

	puzzle, err := svc.Generate(context.Background(), domain.DifficultyEasy)

	require.NoError(t, err)
	assert.Equal(t, []domain.Operator{domain.OperatorAdd, domain.OperatorSubtract}, puzzle.Allowed)
}

func TestGeneratorService_Generate_FallsBack(t *testing.T) {
	solver := &mockSolver{solvable: false}
	svc := NewGeneratorService(solver, nil, testRand())

	puzzle, err := svc.Generate(context.Background(), domain.DifficultyNormal)

	require.NoError(t, err)
	assert.Equal(t, maxDealAttempts, solver.calls)
	assert.Contains(t, domain.FallbackSets(), puzzle.Operands)
}

func TestGeneratorService_Generate_FirstSolvableSample(t *testing.T) {
	solver := &mockSolver{solvable: true}
	svc := NewGeneratorService(solver, nil, testRand())

	_, err := svc.Generate(context.Background(), domain.DifficultyNormal)

	require.NoError(t, err)
	assert.Equal(t, 1, solver.calls)
}

func TestGeneratorService_Generate_Expert(t *testing.T) {
	svc := NewGeneratorService(NewSolverService(nil), nil, testRand())

	puzzle, err := svc.Generate(context.Background(), domain.DifficultyExpert)

	require.NoError(t, err)
	assert.False(t, puzzle.Operands.IsTrivial(24))

	solvable, err := NewSolverService(nil).IsSolvable(context.Background(), puzzle)
	require.NoError(t, err)
	assert.True(t, solvable)
}

func TestGeneratorService_Generate_ExpertCancelled(t *testing.T) {
	svc := NewGeneratorService(&mockSolver{solvable: false}, nil, testRand())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, domain.DifficultyExpert)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestGeneratorService_Generate_InvalidDifficulty(t *testing.T) {
	svc := NewGeneratorService(NewSolverService(nil), nil, testRand())

	_, err := svc.Generate(context.Background(), domain.Difficulty("nightmare"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGeneratorService_Generate_SolverError(t *testing.T) {
	solver := &mockSolver{solveErr: errors.New("search blew up")}
	svc := NewGeneratorService(solver, nil, testRand())

	_, err := svc.Generate(context.Background(), domain.DifficultyNormal)

	assert.ErrorContains(t, err, "search blew up")
}

func TestGeneratorService_Generate_ConfiguredTarget(t *testing.T) {
	settings := &stubSettings{settings: domain.GameSettings{
		Difficulty: domain.DifficultyNormal,
		Target:     10,
		Symbols:    domain.SymbolSetUnicode,
	}}
	svc := NewGeneratorService(&mockSolver{solvable: true}, settings, testRand())

	puzzle, err := svc.Generate(context.Background(), domain.DifficultyNormal)

	require.NoError(t, err)
	assert.Equal(t, 10, puzzle.Target)
}

func TestGeneratorService_Generate_SettingsErrorFallsBackToDefaultTarget(t *testing.T) {
	settings := &stubSettings{getErr: errors.New("config unreadable")}
	svc := NewGeneratorService(&mockSolver{solvable: true}, settings, testRand())

	puzzle, err := svc.Generate(context.Background(), domain.DifficultyNormal)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTarget, puzzle.Target)
}
