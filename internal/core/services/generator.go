package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/logger"
)

// Ensure GeneratorService implements the interface.
var _ driving.GeneratorService = (*GeneratorService)(nil)

// maxDealAttempts bounds random sampling before falling back to a
// known-solvable set.
const maxDealAttempts = 50

// GeneratorService deals puzzles according to difficulty policy:
// solvable sets for easy through hard, solvable non-trivial sets for
// expert.
type GeneratorService struct {
	solver   driving.SolverService
	settings driving.SettingsService

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGeneratorService creates a new generator service.
// The settings parameter is optional (can be nil); the target then
// stays at the classic default. A nil rng is seeded from the clock;
// tests inject a fixed seed for reproducible deals.
func NewGeneratorService(
	solver driving.SolverService,
	settings driving.SettingsService,
	rng *rand.Rand,
) *GeneratorService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // G404: deal sampling needs no crypto randomness
	}
	return &GeneratorService{
		solver:   solver,
		settings: settings,
		rng:      rng,
	}
}

// Generate deals the next puzzle for a difficulty.
func (g *GeneratorService) Generate(ctx context.Context, difficulty domain.Difficulty) (domain.Puzzle, error) {
	if !difficulty.IsValid() {
		return domain.Puzzle{}, fmt.Errorf("%w: unknown difficulty %q", domain.ErrInvalidInput, difficulty)
	}

	target := g.target()
	logger.Section("Puzzle Deal")
	logger.Debug("Difficulty: %s, target: %d", difficulty, target)

	if difficulty.RejectsTrivialDeals() {
		return g.dealExpert(ctx, difficulty, target)
	}
	return g.deal(ctx, difficulty, target)
}

// deal samples up to maxDealAttempts random sets looking for a solvable
// one, then falls back to a known-solvable set.
func (g *GeneratorService) deal(
	ctx context.Context, difficulty domain.Difficulty, target int,
) (domain.Puzzle, error) {
	for attempt := 1; attempt <= maxDealAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.Puzzle{}, fmt.Errorf("deal puzzle: %w", err)
		}

		puzzle := domain.NewPuzzle(g.sample(), difficulty, target)
		solvable, err := g.solver.IsSolvable(ctx, puzzle)
		if err != nil {
			return domain.Puzzle{}, fmt.Errorf("deal puzzle: %w", err)
		}
		if solvable {
			logger.Debug("Dealt %s after %d attempts", puzzle.Operands, attempt)
			return puzzle, nil
		}
	}

	sets := domain.FallbackSets()
	set := sets[g.intn(len(sets))]
	logger.Info("Sampling missed %d times, dealing fallback set %s", maxDealAttempts, set)
	return domain.NewPuzzle(set, difficulty, target), nil
}

// dealExpert resamples until the set is solvable and fails the
// trivial-solution screen. Termination relies on such sets being
// plentiful in [1,9]^4; cancellation stops the loop.
func (g *GeneratorService) dealExpert(
	ctx context.Context, difficulty domain.Difficulty, target int,
) (domain.Puzzle, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.Puzzle{}, fmt.Errorf("deal expert puzzle: %w", err)
		}

		set := g.sample()
		if set.IsTrivial(target) {
			continue
		}

		puzzle := domain.NewPuzzle(set, difficulty, target)
		solvable, err := g.solver.IsSolvable(ctx, puzzle)
		if err != nil {
			return domain.Puzzle{}, fmt.Errorf("deal expert puzzle: %w", err)
		}
		if solvable {
			logger.Debug("Dealt %s after %d attempts", set, attempt)
			return puzzle, nil
		}
	}
}

// sample deals four uniform numbers in the operand range.
func (g *GeneratorService) sample() domain.OperandSet {
	var set domain.OperandSet
	for i := range set {
		set[i] = domain.OperandMin + g.intn(domain.OperandMax-domain.OperandMin+1)
	}
	return set
}

// intn draws from the shared rng under the lock; *rand.Rand is not
// goroutine safe.
func (g *GeneratorService) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

// target returns the configured target value, defaulting when no
// settings service is wired.
func (g *GeneratorService) target() int {
	if g.settings == nil {
		return domain.DefaultTarget
	}
	settings, err := g.settings.Get()
	if err != nil || settings.Target < 1 {
		return domain.DefaultTarget
	}
	return settings.Target
}
