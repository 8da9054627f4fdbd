// Package cli provides the twentyfour command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/logger"
)

// version is the build version, overridden by the composition root at
// release time.
var version = "dev"

// Services used by the commands, injected before Execute.
var (
	gameService      driving.GameService
	solverService    driving.SolverService
	checkerService   driving.CheckerService
	generatorService driving.GeneratorService
	sessionService   driving.SessionService
	settingsService  driving.SettingsService
)

var verbose bool

// rootCmd represents the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "twentyfour",
	Short: "Play and solve the 24 puzzle",
	Long: `twentyfour deals four numbers between 1 and 9. Combine all four
with +, -, *, / and parentheses to reach the target (24 by default).

Use "play" for the interactive game, "solve" to see every solution for
a set of numbers, or "puzzle" to deal a fresh set.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles the core services the commands depend on.
type Services struct {
	Game      driving.GameService
	Solver    driving.SolverService
	Checker   driving.CheckerService
	Generator driving.GeneratorService
	Session   driving.SessionService
	Settings  driving.SettingsService
}

// SetServices injects the core services. The composition root calls
// this before Execute.
func SetServices(services Services) {
	gameService = services.Game
	solverService = services.Solver
	checkerService = services.Checker
	generatorService = services.Generator
	sessionService = services.Session
	settingsService = services.Settings
}

// SetVersion overrides the version string reported by the version
// command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// resolveDifficulty turns a --difficulty flag value into a domain
// difficulty. An empty value falls back to the configured default, or
// the built-in default when no settings service is wired.
func resolveDifficulty(value string) (domain.Difficulty, error) {
	if strings.TrimSpace(value) == "" {
		if settingsService != nil {
			if settings, err := settingsService.Get(); err == nil {
				return settings.Difficulty, nil
			}
		}
		return domain.DefaultDifficulty(), nil
	}

	difficulty := domain.Difficulty(strings.ToLower(strings.TrimSpace(value)))
	if !difficulty.IsValid() {
		return "", fmt.Errorf("%w: unknown difficulty %q (valid: %s)",
			domain.ErrInvalidInput, value, difficultyNames())
	}
	return difficulty, nil
}

// difficultyNames lists the valid difficulty names for flag help and
// error messages.
func difficultyNames() string {
	all := domain.AllDifficulties()
	names := make([]string, 0, len(all))
	for _, d := range all {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}

// parseOperands converts number arguments into an operand set.
func parseOperands(args []string) (domain.OperandSet, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return domain.OperandSet{}, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, arg)
		}
		values = append(values, n)
	}
	return domain.NewOperandSet(values)
}
