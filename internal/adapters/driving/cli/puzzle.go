package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	puzzleDifficulty    string
	puzzleShowSolutions bool
)

var puzzleCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Deal a fresh set of four numbers",
	Long: `Deals four numbers according to the difficulty's policy: sets are
checked for solvability, and expert mode skips sets with trivial
solutions.

Use --show-solutions to spoil the puzzle immediately.`,
	Args: cobra.NoArgs,
	RunE: runPuzzle,
}

func init() {
	puzzleCmd.Flags().StringVar(&puzzleDifficulty, "difficulty", "", "difficulty to deal at (default: configured setting)")
	puzzleCmd.Flags().BoolVar(&puzzleShowSolutions, "show-solutions", false, "print every solution for the dealt set")
	rootCmd.AddCommand(puzzleCmd)
}

func runPuzzle(cmd *cobra.Command, args []string) error {
	if generatorService == nil {
		return errors.New("generator service not configured")
	}

	difficulty, err := resolveDifficulty(puzzleDifficulty)
	if err != nil {
		return err
	}

	ctx := context.Background()
	puzzle, err := generatorService.Generate(ctx, difficulty)
	if err != nil {
		return fmt.Errorf("deal failed: %w", err)
	}

	cmd.Printf("Your numbers: %s\n", puzzle.Operands)
	cmd.Printf("Difficulty:   %s\n", puzzle.Difficulty)
	cmd.Printf("Make %d using each number exactly once.\n", puzzle.Target)

	if !puzzleShowSolutions {
		return nil
	}

	if solverService == nil {
		return errors.New("solver service not configured")
	}

	solutions, err := solverService.Solve(ctx, puzzle)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	cmd.Println()
	cmd.Printf("Solutions (%d):\n", len(solutions))
	for _, solution := range solutions {
		cmd.Printf("  %s = %d\n", solution.Text, puzzle.Target)
	}
	return nil
}
