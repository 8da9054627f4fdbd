package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/logger"
)

// Ensure SolverService implements the interface.
var _ driving.SolverService = (*SolverService)(nil)

// solveCacheLimit bounds the memo; the whole map is dropped when full.
const solveCacheLimit = 64

// cancelCheckStride is how many combinations are visited between
// context checks during a search.
const cancelCheckStride = 1024

// SolverService searches a puzzle's combination space. Results are
// memoized per puzzle, so the usual solvability-then-solutions call
// pair runs the enumeration once.
type SolverService struct {
	settings driving.SettingsService

	mu    sync.Mutex
	cache map[string][]domain.Solution
}

// NewSolverService creates a new solver service.
// The settings parameter is optional (can be nil); solutions are then
// rendered with Unicode glyphs.
func NewSolverService(settings driving.SettingsService) *SolverService {
	return &SolverService{
		settings: settings,
		cache:    make(map[string][]domain.Solution),
	}
}

// Solve returns every distinct solution for the puzzle, in
// first-discovered order under the deterministic enumeration.
// An empty slice means the puzzle is not solvable; that is not an
// error.
func (s *SolverService) Solve(ctx context.Context, puzzle domain.Puzzle) ([]domain.Solution, error) {
	symbols, symbolSet := s.symbols()
	key := solveKey(puzzle, symbolSet)

	s.mu.Lock()
	if cached, ok := s.cache[key]; ok {
		s.mu.Unlock()
		logger.Debug("Solve cache hit: %s", key)
		return cached, nil
	}
	s.mu.Unlock()

	logger.Section("Solution Search")
	logger.Debug("Operands: %s, operators: %d, target: %d", puzzle.Operands, len(puzzle.Allowed), puzzle.Target)

	solutions, err := s.search(ctx, puzzle, symbols)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	logger.Info("Distinct solutions: %d", len(solutions))

	s.mu.Lock()
	if len(s.cache) >= solveCacheLimit {
		s.cache = make(map[string][]domain.Solution)
	}
	s.cache[key] = solutions
	s.mu.Unlock()

	return solutions, nil
}

// IsSolvable reports whether at least one solution exists.
func (s *SolverService) IsSolvable(ctx context.Context, puzzle domain.Puzzle) (bool, error) {
	solutions, err := s.Solve(ctx, puzzle)
	if err != nil {
		return false, err
	}
	return len(solutions) > 0, nil
}

// Hint returns a nudge toward the first solution, phrased for the
// puzzle's difficulty: the allowed operators on easy, the grouping
// shape on normal, and the solution's distinct operators on hard and
// expert. Unsolvable puzzles yield an ErrNotFound-wrapped error.
func (s *SolverService) Hint(ctx context.Context, puzzle domain.Puzzle) (string, error) {
	solutions, err := s.Solve(ctx, puzzle)
	if err != nil {
		return "", err
	}
	if len(solutions) == 0 {
		return "", fmt.Errorf("%w: no solution exists for these numbers", domain.ErrNotFound)
	}

	symbols, _ := s.symbols()
	first := solutions[0]

	switch puzzle.Difficulty {
	case domain.DifficultyEasy:
		glyphs := make([]string, len(puzzle.Allowed))
		for i, op := range puzzle.Allowed {
			glyphs[i] = symbols.Glyph(op)
		}
		return fmt.Sprintf("Try using these operators: %s", strings.Join(glyphs, ", ")), nil

	case domain.DifficultyNormal:
		if strings.Contains(first.Text, "(") {
			return "Try using parentheses to group operations.", nil
		}
		return "Try operations from left to right without parentheses.", nil

	default:
		seen := make(map[string]bool)
		var glyphs []string
		for _, op := range first.Combination.Operators {
			g := symbols.Glyph(op)
			if !seen[g] {
				seen[g] = true
				glyphs = append(glyphs, g)
			}
		}
		sort.Strings(glyphs)
		return fmt.Sprintf("You'll need these operators: %s", strings.Join(glyphs, ", ")), nil
	}
}

// search runs the full enumeration, keeping exact target matches and
// deduplicating by rendered text. Order follows the enumeration, so
// identical calls return identical slices.
func (s *SolverService) search(
	ctx context.Context, puzzle domain.Puzzle, symbols domain.Symbols,
) ([]domain.Solution, error) {
	solutions := []domain.Solution{}
	seen := make(map[string]bool)
	visited := 0
	var cancelled error

	err := domain.EachCombination(puzzle.Operands, puzzle.Allowed, func(c domain.Combination) bool {
		visited++
		if visited%cancelCheckStride == 0 {
			if cancelled = ctx.Err(); cancelled != nil {
				return false
			}
		}

		value := c.Evaluate()
		if !value.EqualsInt(puzzle.Target) {
			return true
		}

		text := c.Render(symbols)
		if seen[text] {
			return true
		}
		seen[text] = true
		solutions = append(solutions, domain.Solution{Text: text, Combination: c})
		return true
	})
	if err != nil {
		return nil, err
	}
	if cancelled != nil {
		return nil, cancelled
	}

	logger.Debug("Visited %d combinations, kept %d distinct solutions", visited, len(solutions))

	return solutions, nil
}

// symbols returns the display glyph table and the set it came from,
// falling back to Unicode when no settings service is wired.
func (s *SolverService) symbols() (domain.Symbols, domain.SymbolSet) {
	if s.settings == nil {
		return domain.UnicodeSymbols(), domain.SymbolSetUnicode
	}
	settings, err := s.settings.Get()
	if err != nil || !settings.Symbols.IsValid() {
		return domain.UnicodeSymbols(), domain.SymbolSetUnicode
	}
	return settings.Symbols.Symbols(), settings.Symbols
}

// solveKey identifies one memoized search. Rendered text depends on
// the glyph set, so the set is part of the key.
func solveKey(puzzle domain.Puzzle, symbolSet domain.SymbolSet) string {
	ops := make([]string, len(puzzle.Allowed))
	for i, op := range puzzle.Allowed {
		ops[i] = op.String()
	}
	return fmt.Sprintf("%s|%s|%d|%s", puzzle.Operands, strings.Join(ops, ""), puzzle.Target, symbolSet)
}
