// Package stats provides the session statistics view for the TUI.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/messages"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/styles"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
)

// View is the session statistics view.
type View struct {
	styles         *styles.Styles
	sessionService driving.SessionService
	ctx            context.Context

	overall      domain.SessionStats
	byDifficulty map[domain.Difficulty]domain.SessionStats
	loaded       bool
	err          error

	width  int
	height int
	ready  bool
}

// NewView creates a new stats view.
func NewView(s *styles.Styles, sessionService driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:         s,
		sessionService: sessionService,
		ctx:            context.Background(),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads statistics.
func (v *View) Init() tea.Cmd {
	return v.loadStats()
}

// loadStats returns a command that loads session aggregates.
func (v *View) loadStats() tea.Cmd {
	return func() tea.Msg {
		if v.sessionService == nil {
			return messages.StatsLoaded{Err: fmt.Errorf("session service not available")}
		}
		overall, err := v.sessionService.Stats(v.ctx)
		if err != nil {
			return messages.StatsLoaded{Err: err}
		}
		byDifficulty, err := v.sessionService.StatsByDifficulty(v.ctx)
		return messages.StatsLoaded{Overall: overall, ByDifficulty: byDifficulty, Err: err}
	}
}

// Update handles messages for the stats view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.StatsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.overall = msg.Overall
		v.byDifficulty = msg.ByDifficulty
		v.loaded = true
		v.err = nil
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "r":
			return v, v.loadStats()
		}
	}

	return v, nil
}

// View renders the stats view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Statistics"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	switch {
	case !v.loaded:
		b.WriteString(v.styles.Muted.Render("Loading statistics..."))
		b.WriteString("\n")
	case v.overall.GamesPlayed == 0:
		b.WriteString(v.styles.Muted.Render("No games recorded yet. Play a round first!"))
		b.WriteString("\n")
	default:
		b.WriteString(v.renderOverall())
		b.WriteString(v.renderByDifficulty())
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[r] refresh  [esc] back"))

	return b.String()
}

// renderOverall shows the all-time aggregates.
func (v *View) renderOverall() string {
	var b strings.Builder

	lines := []string{
		fmt.Sprintf("Games played:  %d", v.overall.GamesPlayed),
		fmt.Sprintf("Games solved:  %d (%.1f%%)", v.overall.GamesSolved, v.overall.SuccessRate()),
		fmt.Sprintf("Average solve: %s", formatDuration(v.overall.AverageSolveTime())),
		fmt.Sprintf("Best solve:    %s", formatDuration(v.overall.BestTime)),
	}
	for _, line := range lines {
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// renderByDifficulty shows per-difficulty aggregates, easiest first.
func (v *View) renderByDifficulty() string {
	if len(v.byDifficulty) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("By difficulty"))
	b.WriteString("\n")

	for _, difficulty := range domain.AllDifficulties() {
		stats, ok := v.byDifficulty[difficulty]
		if !ok {
			continue
		}
		line := fmt.Sprintf("%-8s %d played, %d solved, best %s",
			difficulty, stats.GamesPlayed, stats.GamesSolved, formatDuration(stats.BestTime))
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// formatDuration renders a solve time, or a dash when there is none.
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	return d.Round(100 * time.Millisecond).String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset clears the loaded aggregates so the next Init shows fresh data.
func (v *View) Reset() {
	v.loaded = false
	v.err = nil
}

// Loaded returns whether aggregates have arrived.
func (v *View) Loaded() bool {
	return v.loaded
}

// Overall returns the all-time aggregates.
func (v *View) Overall() domain.SessionStats {
	return v.overall
}

// Err returns the last error that occurred.
func (v *View) Err() error {
	return v.err
}
