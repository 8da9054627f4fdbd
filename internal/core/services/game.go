package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/logger"
)

// Ensure GameService implements the interface.
var _ driving.GameService = (*GameService)(nil)

// hintCooldown is the wait between hints on difficulties that throttle
// them.
const hintCooldown = 30 * time.Second

// GameService orchestrates interactive rounds: dealing, checking,
// hints, reveals, and session bookkeeping. One round is active at a
// time; the mutex keeps the round state consistent when TUI commands
// run in goroutines.
type GameService struct {
	generator driving.GeneratorService
	solver    driving.SolverService
	checker   driving.CheckerService
	session   driving.SessionService

	mu       sync.Mutex
	round    *domain.Round
	hintGate *rate.Limiter
}

// NewGameService creates a new game service.
// The session parameter is optional (can be nil); finished rounds are
// then not recorded.
func NewGameService(
	generator driving.GeneratorService,
	solver driving.SolverService,
	checker driving.CheckerService,
	session driving.SessionService,
) *GameService {
	return &GameService{
		generator: generator,
		solver:    solver,
		checker:   checker,
		session:   session,
	}
}

// StartRound deals a puzzle at the difficulty and opens a round.
// A still-open previous round is recorded as unsolved first.
func (g *GameService) StartRound(ctx context.Context, difficulty domain.Difficulty) (domain.Round, error) {
	if !difficulty.IsValid() {
		return domain.Round{}, fmt.Errorf("%w: unknown difficulty %q", domain.ErrInvalidInput, difficulty)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// A failed recording should not block the next deal.
	if err := g.abandonLocked(ctx); err != nil {
		logger.Warn("Recording abandoned round failed: %v", err)
	}

	puzzle, err := g.generator.Generate(ctx, difficulty)
	if err != nil {
		return domain.Round{}, fmt.Errorf("start round: %w", err)
	}

	round := domain.Round{
		Puzzle:    puzzle,
		StartedAt: time.Now(),
		Outcome:   domain.RoundOpen,
	}
	g.round = &round
	if difficulty.ThrottlesHints() {
		g.hintGate = rate.NewLimiter(rate.Every(hintCooldown), 1)
	} else {
		g.hintGate = nil
	}

	logger.Info("Round started: %s at %s", puzzle.Operands, difficulty)
	return round, nil
}

// CurrentRound returns the active round.
func (g *GameService) CurrentRound() (domain.Round, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil {
		return domain.Round{}, domain.ErrNoPuzzle
	}
	return *g.round, nil
}

// Submit checks an expression against the open round. An accepted
// verdict closes the round as solved and records it.
func (g *GameService) Submit(ctx context.Context, expression string) (domain.Verdict, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil {
		return domain.Verdict{}, domain.ErrNoPuzzle
	}
	if g.round.IsFinished() {
		return domain.Verdict{}, domain.ErrRoundOver
	}

	verdict, err := g.checker.Check(ctx, g.round.Puzzle, expression)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("check expression: %w", err)
	}
	if !verdict.Accepted {
		return verdict, nil
	}

	g.round.Outcome = domain.RoundSolved
	g.round.FinishedAt = time.Now()
	if err := g.record(ctx, *g.round); err != nil {
		logger.Warn("Recording solved round failed: %v", err)
	}

	logger.Info("Round solved in %s", g.round.Elapsed(g.round.FinishedAt).Round(time.Millisecond))
	return verdict, nil
}

// Hint returns a nudge for the open round. Hard and expert rounds wait
// out a cooldown between hints.
func (g *GameService) Hint(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil {
		return "", domain.ErrNoPuzzle
	}
	if g.round.IsFinished() {
		return "", domain.ErrRoundOver
	}
	if g.hintGate != nil && !g.hintGate.Allow() {
		return "", domain.ErrHintThrottled
	}

	hint, err := g.solver.Hint(ctx, g.round.Puzzle)
	if err != nil {
		return "", fmt.Errorf("hint: %w", err)
	}

	g.round.HintsUsed++
	logger.Debug("Hint %d issued", g.round.HintsUsed)
	return hint, nil
}

// Reveal closes a still-open round as unsolved, records it, and
// returns every solution. On an already finished round it returns the
// solutions without touching the record stream.
func (g *GameService) Reveal(ctx context.Context) ([]domain.Solution, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil {
		return nil, domain.ErrNoPuzzle
	}

	solutions, err := g.solver.Solve(ctx, g.round.Puzzle)
	if err != nil {
		return nil, fmt.Errorf("reveal: %w", err)
	}

	if !g.round.IsFinished() {
		g.round.Outcome = domain.RoundRevealed
		g.round.FinishedAt = time.Now()
		if err := g.record(ctx, *g.round); err != nil {
			logger.Warn("Recording revealed round failed: %v", err)
		}
	}

	return solutions, nil
}

// Solutions returns the active round's solutions without changing its
// state. The solver memoizes per puzzle, so repeated calls do not
// re-run the search.
func (g *GameService) Solutions(ctx context.Context) ([]domain.Solution, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil {
		return nil, domain.ErrNoPuzzle
	}

	solutions, err := g.solver.Solve(ctx, g.round.Puzzle)
	if err != nil {
		return nil, fmt.Errorf("list solutions: %w", err)
	}
	return solutions, nil
}

// Abandon records a still-open round as unsolved and clears it.
func (g *GameService) Abandon(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.abandonLocked(ctx); err != nil {
		return fmt.Errorf("abandon round: %w", err)
	}
	return nil
}

// abandonLocked closes a still-open round as unsolved and records it.
// Callers must hold mu.
func (g *GameService) abandonLocked(ctx context.Context) error {
	round := g.round
	g.round = nil
	g.hintGate = nil

	if round == nil || round.IsFinished() {
		return nil
	}

	round.Outcome = domain.RoundRevealed
	round.FinishedAt = time.Now()
	return g.record(ctx, *round)
}

// record folds one finished round into the session stream.
func (g *GameService) record(ctx context.Context, round domain.Round) error {
	if g.session == nil {
		return nil
	}

	record := domain.GameRecord{
		ID:         uuid.NewString(),
		Operands:   round.Puzzle.Operands,
		Difficulty: round.Puzzle.Difficulty,
		Solved:     round.Outcome == domain.RoundSolved,
		Duration:   round.Elapsed(round.FinishedAt),
		PlayedAt:   round.FinishedAt,
	}
	return g.session.Record(ctx, record)
}
