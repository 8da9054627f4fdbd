package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

var (
	solveJSON       bool
	solveLimit      int
	solveOps        string
	solveDifficulty string
	solveTarget     int
)

var solveCmd = &cobra.Command{
	Use:   "solve <a> <b> <c> <d>",
	Short: "List every solution for four numbers",
	Long: `Searches every operator assignment and grouping of the four numbers
and prints the distinct expressions that reach the target.

Numbers must be between 1 and 9. Expressions that render identically
are reported once, in discovery order.`,
	Args: cobra.ExactArgs(4),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "output solutions as JSON")
	solveCmd.Flags().IntVarP(&solveLimit, "limit", "n", 0, "maximum number of solutions to print (0 = all)")
	solveCmd.Flags().StringVar(&solveOps, "ops", "", "comma-separated operators to allow (e.g. \"+,-,*\")")
	solveCmd.Flags().StringVar(&solveDifficulty, "difficulty", "normal", "difficulty whose operator set applies")
	solveCmd.Flags().IntVar(&solveTarget, "target", domain.DefaultTarget, "target value to reach")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solverService == nil {
		return errors.New("solver service not configured")
	}

	operands, err := parseOperands(args)
	if err != nil {
		return err
	}

	difficulty := domain.Difficulty(strings.ToLower(strings.TrimSpace(solveDifficulty)))
	if !difficulty.IsValid() {
		return fmt.Errorf("%w: unknown difficulty %q (valid: %s)",
			domain.ErrInvalidInput, solveDifficulty, difficultyNames())
	}

	puzzle := domain.NewPuzzle(operands, difficulty, solveTarget)
	if solveOps != "" {
		allowed, err := parseOperatorList(solveOps)
		if err != nil {
			return err
		}
		puzzle.Allowed = allowed
	}

	ctx := context.Background()
	solutions, err := solverService.Solve(ctx, puzzle)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	total := len(solutions)
	if solveLimit > 0 && len(solutions) > solveLimit {
		solutions = solutions[:solveLimit]
	}

	if solveJSON {
		return outputSolveJSON(cmd, puzzle, solutions, total)
	}

	return outputSolveText(cmd, puzzle, solutions, total)
}

// solveResult is the JSON shape of a solve run.
type solveResult struct {
	Numbers   []int    `json:"numbers"`
	Target    int      `json:"target"`
	Count     int      `json:"count"`
	Solutions []string `json:"solutions"`
}

func outputSolveJSON(cmd *cobra.Command, puzzle domain.Puzzle, solutions []domain.Solution, total int) error {
	result := solveResult{
		Numbers:   puzzle.Operands.Values(),
		Target:    puzzle.Target,
		Count:     total,
		Solutions: make([]string, 0, len(solutions)),
	}
	for _, solution := range solutions {
		result.Solutions = append(result.Solutions, solution.Text)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal solutions: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSolveText(cmd *cobra.Command, puzzle domain.Puzzle, solutions []domain.Solution, total int) error {
	if total == 0 {
		cmd.Printf("No solution: %s cannot reach %d.\n", puzzle.Operands, puzzle.Target)
		return nil
	}

	if len(solutions) < total {
		cmd.Printf("Found %d solutions for %s (showing %d):\n", total, puzzle.Operands, len(solutions))
	} else {
		cmd.Printf("Found %d solution(s) for %s:\n", total, puzzle.Operands)
	}
	cmd.Println()
	for i, solution := range solutions {
		cmd.Printf("  [%d] %s = %d\n", i+1, solution.Text, puzzle.Target)
	}
	return nil
}

// parseOperatorList converts a comma-separated --ops value into an
// operator subset. ASCII and display glyphs are both accepted.
func parseOperatorList(value string) ([]domain.Operator, error) {
	parts := strings.Split(value, ",")
	operators := make([]domain.Operator, 0, len(parts))
	seen := make(map[domain.Operator]bool, len(parts))

	for _, part := range parts {
		token := domain.NormalizeExpression(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		op := domain.Operator(token)
		if !op.IsValid() {
			return nil, fmt.Errorf("%w: unknown operator %q", domain.ErrInvalidInput, part)
		}
		if seen[op] {
			continue
		}
		seen[op] = true
		operators = append(operators, op)
	}

	if len(operators) == 0 {
		return nil, fmt.Errorf("%w: no operators in %q", domain.ErrInvalidInput, value)
	}
	return operators, nil
}
