package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// errRejected signals a rejected expression so the process exits
// non-zero without repeating the verdict.
var errRejected = errors.New("expression rejected")

var (
	checkNumbers    string
	checkDifficulty string
	checkTarget     int
)

var checkCmd = &cobra.Command{
	Use:   "check <expression>",
	Short: "Check an expression against four numbers",
	Long: `Checks an expression against a set of four numbers: it must use each
number exactly once, only allowed operators, and reach the target.

Prints the verdict and exits non-zero when the expression is rejected.
Quote the expression so the shell leaves it alone:

  twentyfour check "(1+2+3)*4" --numbers 1,2,3,4`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkNumbers, "numbers", "", "the four dealt numbers, comma separated (e.g. \"1,2,3,4\")")
	checkCmd.Flags().StringVar(&checkDifficulty, "difficulty", "normal", "difficulty whose operator set applies")
	checkCmd.Flags().IntVar(&checkTarget, "target", domain.DefaultTarget, "target value to reach")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	expression := args[0]

	if checkerService == nil {
		return errors.New("checker service not configured")
	}

	if strings.TrimSpace(checkNumbers) == "" {
		return fmt.Errorf("%w: --numbers is required (e.g. --numbers 1,2,3,4)", domain.ErrInvalidInput)
	}

	operands, err := parseOperands(strings.Split(checkNumbers, ","))
	if err != nil {
		return err
	}

	difficulty := domain.Difficulty(strings.ToLower(strings.TrimSpace(checkDifficulty)))
	if !difficulty.IsValid() {
		return fmt.Errorf("%w: unknown difficulty %q (valid: %s)",
			domain.ErrInvalidInput, checkDifficulty, difficultyNames())
	}

	puzzle := domain.NewPuzzle(operands, difficulty, checkTarget)

	ctx := context.Background()
	verdict, err := checkerService.Check(ctx, puzzle, expression)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	cmd.Println(verdict.Message)

	if !verdict.Accepted {
		// The verdict is already printed; exit non-zero quietly.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errRejected
	}
	return nil
}
