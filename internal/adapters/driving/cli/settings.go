package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// Settable keys.
const (
	settingKeyDifficulty = "difficulty"
	settingKeyTarget     = "target"
	settingKeySymbols    = "symbols"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage game settings",
	Long: `View and configure the default difficulty, the target value, and the
display glyphs. Settings persist in ~/.twentyfour/config.toml.`,
	RunE: runSettingsGet,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show current settings",
	Long:  `Shows all settings, or a single one of: difficulty, target, symbols.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Changes one setting and persists it immediately.

Keys:
  difficulty   easy, normal, hard, or expert
  target       the value expressions must reach (default 24)
  symbols      unicode or ascii display glyphs`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if len(args) == 1 {
		return outputSetting(cmd, settings, strings.ToLower(args[0]))
	}

	cmd.Println("Current settings:")
	cmd.Println()
	cmd.Printf("  difficulty  %s\n", settings.Difficulty.Description())
	cmd.Printf("  target      %d\n", settings.Target)
	cmd.Printf("  symbols     %s\n", settings.Symbols.Description())
	return nil
}

func outputSetting(cmd *cobra.Command, settings domain.GameSettings, key string) error {
	switch key {
	case settingKeyDifficulty:
		cmd.Println(settings.Difficulty)
	case settingKeyTarget:
		cmd.Println(settings.Target)
	case settingKeySymbols:
		cmd.Println(settings.Symbols)
	default:
		return fmt.Errorf("%w: unknown setting %q (valid: %s, %s, %s)",
			domain.ErrInvalidInput, key, settingKeyDifficulty, settingKeyTarget, settingKeySymbols)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := strings.ToLower(args[0])
	value := strings.TrimSpace(args[1])

	switch key {
	case settingKeyDifficulty:
		difficulty := domain.Difficulty(strings.ToLower(value))
		if !difficulty.IsValid() {
			return fmt.Errorf("%w: unknown difficulty %q (valid: %s)",
				domain.ErrInvalidInput, value, difficultyNames())
		}
		if err := settingsService.SetDifficulty(difficulty); err != nil {
			return fmt.Errorf("failed to set difficulty: %w", err)
		}
		cmd.Printf("Difficulty set to %s.\n", difficulty)

	case settingKeyTarget:
		target, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: target %q is not a number", domain.ErrInvalidInput, value)
		}
		if err := settingsService.SetTarget(target); err != nil {
			return fmt.Errorf("failed to set target: %w", err)
		}
		cmd.Printf("Target set to %d.\n", target)

	case settingKeySymbols:
		symbols := domain.SymbolSet(strings.ToLower(value))
		if !symbols.IsValid() {
			return fmt.Errorf("%w: unknown symbol set %q (valid: %s)",
				domain.ErrInvalidInput, value, symbolSetNames())
		}
		if err := settingsService.SetSymbols(symbols); err != nil {
			return fmt.Errorf("failed to set symbols: %w", err)
		}
		cmd.Printf("Symbols set to %s.\n", symbols)

	default:
		return fmt.Errorf("%w: unknown setting %q (valid: %s, %s, %s)",
			domain.ErrInvalidInput, key, settingKeyDifficulty, settingKeyTarget, settingKeySymbols)
	}
	return nil
}

// symbolSetNames lists the valid symbol set names for error messages.
func symbolSetNames() string {
	all := domain.AllSymbolSets()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
