package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show all-time game statistics",
	Long: `Shows aggregates over every recorded round: games played and solved,
success rate, and solve times, overall and per difficulty.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()
	overall, err := sessionService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("loading statistics failed: %w", err)
	}

	byDifficulty, err := sessionService.StatsByDifficulty(ctx)
	if err != nil {
		return fmt.Errorf("loading statistics failed: %w", err)
	}

	if statsJSON {
		return outputStatsJSON(cmd, overall, byDifficulty)
	}

	return outputStatsText(cmd, overall, byDifficulty)
}

// statsEntry is the JSON shape of one aggregate row. Times are in
// milliseconds, matching the session store.
type statsEntry struct {
	GamesPlayed int     `json:"games_played"`
	GamesSolved int     `json:"games_solved"`
	SuccessRate float64 `json:"success_rate"`
	AverageMS   int64   `json:"average_solve_ms"`
	BestMS      int64   `json:"best_solve_ms"`
}

// statsResult is the JSON shape of a stats run.
type statsResult struct {
	Overall      statsEntry            `json:"overall"`
	ByDifficulty map[string]statsEntry `json:"by_difficulty,omitempty"`
}

func toStatsEntry(stats domain.SessionStats) statsEntry {
	return statsEntry{
		GamesPlayed: stats.GamesPlayed,
		GamesSolved: stats.GamesSolved,
		SuccessRate: stats.SuccessRate(),
		AverageMS:   stats.AverageSolveTime().Milliseconds(),
		BestMS:      stats.BestTime.Milliseconds(),
	}
}

func outputStatsJSON(cmd *cobra.Command, overall domain.SessionStats, byDifficulty map[domain.Difficulty]domain.SessionStats) error {
	result := statsResult{Overall: toStatsEntry(overall)}
	if len(byDifficulty) > 0 {
		result.ByDifficulty = make(map[string]statsEntry, len(byDifficulty))
		for difficulty, stats := range byDifficulty {
			result.ByDifficulty[difficulty.String()] = toStatsEntry(stats)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal statistics: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputStatsText(cmd *cobra.Command, overall domain.SessionStats, byDifficulty map[domain.Difficulty]domain.SessionStats) error {
	if overall.GamesPlayed == 0 {
		cmd.Println("No games recorded yet. Play a round first!")
		return nil
	}

	cmd.Println("All-time statistics:")
	cmd.Println()
	cmd.Printf("  Games played:  %d\n", overall.GamesPlayed)
	cmd.Printf("  Games solved:  %d (%.1f%%)\n", overall.GamesSolved, overall.SuccessRate())
	cmd.Printf("  Average solve: %s\n", formatSolveTime(overall.AverageSolveTime()))
	cmd.Printf("  Best solve:    %s\n", formatSolveTime(overall.BestTime))

	if len(byDifficulty) == 0 {
		return nil
	}

	// Fixed easiest-first order; maps iterate randomly.
	cmd.Println()
	cmd.Println("By difficulty:")
	for _, difficulty := range sortedDifficulties(byDifficulty) {
		stats := byDifficulty[difficulty]
		cmd.Printf("  %-8s %d played, %d solved, best %s\n",
			difficulty, stats.GamesPlayed, stats.GamesSolved, formatSolveTime(stats.BestTime))
	}
	return nil
}

// sortedDifficulties returns the map's keys easiest first, with any
// unrecognised difficulty sorted last by name.
func sortedDifficulties(byDifficulty map[domain.Difficulty]domain.SessionStats) []domain.Difficulty {
	rank := make(map[domain.Difficulty]int, 4)
	for i, d := range domain.AllDifficulties() {
		rank[d] = i
	}

	difficulties := make([]domain.Difficulty, 0, len(byDifficulty))
	for difficulty := range byDifficulty {
		difficulties = append(difficulties, difficulty)
	}
	sort.Slice(difficulties, func(i, j int) bool {
		ri, iKnown := rank[difficulties[i]]
		rj, jKnown := rank[difficulties[j]]
		if iKnown != jKnown {
			return iKnown
		}
		if iKnown {
			return ri < rj
		}
		return difficulties[i] < difficulties[j]
	})
	return difficulties
}

// formatSolveTime renders a duration for display, with a dash for the
// zero value (no solved rounds yet).
func formatSolveTime(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	return d.Round(100 * time.Millisecond).String()
}
