// Package game provides the interactive puzzle view for the TUI.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/components/status"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/keymap"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/messages"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/styles"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
)

// Phase tracks where the round lifecycle is on screen.
type Phase int

const (
	// PhaseIdle means no round is on the table yet.
	PhaseIdle Phase = iota
	// PhaseDealing means a deal is in flight.
	PhaseDealing
	// PhasePlaying means the player is working on the puzzle.
	PhasePlaying
	// PhaseSolved means the player reached the target.
	PhaseSolved
	// PhaseRevealed means the solutions were shown without a win.
	PhaseRevealed
)

// View is the interactive puzzle view: the dealt numbers, an expression
// input, and the round clock.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	gameService     driving.GameService
	settingsService driving.SettingsService
	ctx             context.Context

	// Round state
	phase     Phase
	round     domain.Round
	verdict   *domain.Verdict
	hint      string
	solutions []domain.Solution
	err       error

	// difficulty overrides the configured default when set.
	difficulty domain.Difficulty

	input textinput.Model

	// clock only drives periodic re-renders; elapsed time is always
	// computed from the round itself so it survives view switches.
	clock stopwatch.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new game view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	gameService driving.GameService,
	settingsService driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ti := textinput.New()
	ti.Placeholder = "(1 + 2 + 3) * 4"
	ti.CharLimit = 64
	ti.Width = 40

	return &View{
		styles:          s,
		keymap:          km,
		statusbar:       status.NewBar(s, km),
		gameService:     gameService,
		settingsService: settingsService,
		ctx:             context.Background(),
		input:           ti,
		clock:           stopwatch.NewWithInterval(time.Second),
		width:           80,
		height:          24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetDifficulty pins the difficulty for deals from this view,
// overriding the configured default.
func (v *View) SetDifficulty(difficulty domain.Difficulty) {
	v.difficulty = difficulty
}

// Init initialises the view and puts a round on the table.
func (v *View) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, v.resumeOrDeal())
}

// resumeOrDeal returns a command that picks up a still-open round, or
// deals a fresh one when there is nothing to come back to.
func (v *View) resumeOrDeal() tea.Cmd {
	return func() tea.Msg {
		if v.gameService == nil {
			return messages.RoundStarted{Err: ErrNoGameService}
		}
		if round, err := v.gameService.CurrentRound(); err == nil && !round.IsFinished() {
			return messages.RoundStarted{Round: round}
		}
		round, err := v.gameService.StartRound(v.ctx, v.resolveDifficulty())
		return messages.RoundStarted{Round: round, Err: err}
	}
}

// startRound returns a command that deals a fresh round. The service
// records a still-open previous round as unsolved first.
func (v *View) startRound() tea.Cmd {
	return func() tea.Msg {
		if v.gameService == nil {
			return messages.RoundStarted{Err: ErrNoGameService}
		}
		round, err := v.gameService.StartRound(v.ctx, v.resolveDifficulty())
		return messages.RoundStarted{Round: round, Err: err}
	}
}

// resolveDifficulty picks the difficulty for the next deal: the pinned
// override, then the configured default, then the built-in default.
func (v *View) resolveDifficulty() domain.Difficulty {
	if v.difficulty != "" {
		return v.difficulty
	}
	if v.settingsService != nil {
		if settings, err := v.settingsService.Get(); err == nil {
			return settings.Difficulty
		}
	}
	return domain.DefaultDifficulty()
}

// submit returns a command that checks the typed expression.
func (v *View) submit(expression string) tea.Cmd {
	return func() tea.Msg {
		if v.gameService == nil {
			return messages.VerdictReceived{Err: ErrNoGameService}
		}
		verdict, err := v.gameService.Submit(v.ctx, expression)
		return messages.VerdictReceived{Verdict: verdict, Err: err}
	}
}

// requestHint returns a command that asks for a nudge.
func (v *View) requestHint() tea.Cmd {
	return func() tea.Msg {
		if v.gameService == nil {
			return messages.HintReceived{Err: ErrNoGameService}
		}
		hint, err := v.gameService.Hint(v.ctx)
		return messages.HintReceived{Hint: hint, Err: err}
	}
}

// reveal returns a command that forfeits the round for its solutions.
func (v *View) reveal() tea.Cmd {
	return func() tea.Msg {
		if v.gameService == nil {
			return messages.SolutionsRevealed{Err: ErrNoGameService}
		}
		solutions, err := v.gameService.Reveal(v.ctx)
		return messages.SolutionsRevealed{Solutions: solutions, Err: err}
	}
}

// listSolutions returns a command that fetches the solutions without
// touching the round, for showing them after a win.
func (v *View) listSolutions() tea.Cmd {
	return func() tea.Msg {
		if v.gameService == nil {
			return messages.SolutionsRevealed{Err: ErrNoGameService}
		}
		solutions, err := v.gameService.Solutions(v.ctx)
		return messages.SolutionsRevealed{Solutions: solutions, Err: err}
	}
}

// Update handles messages for the game view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.RoundStarted:
		return v.handleRoundStarted(msg)

	case messages.VerdictReceived:
		return v.handleVerdict(msg)

	case messages.HintReceived:
		return v.handleHint(msg)

	case messages.SolutionsRevealed:
		return v.handleSolutions(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	// Everything else feeds the clock and the input cursor.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	v.clock, cmd = v.clock.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	v.input, cmd = v.input.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return v, tea.Batch(cmds...)
}

// handleRoundStarted puts a dealt or resumed round on the table.
func (v *View) handleRoundStarted(msg messages.RoundStarted) (*View, tea.Cmd) {
	if msg.Err != nil {
		v.phase = PhaseIdle
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Coming back to a round already on screen keeps the typed
	// expression and hint intact.
	resuming := v.phase == PhasePlaying && msg.Round.StartedAt.Equal(v.round.StartedAt)

	v.phase = PhasePlaying
	v.round = msg.Round
	v.err = nil
	if !resuming {
		v.verdict = nil
		v.hint = ""
		v.solutions = nil
		v.input.Reset()
		v.statusbar.SetMessage("")
	}
	v.statusbar.SetState(status.StatePlaying)
	return v, tea.Batch(v.input.Focus(), v.clock.Start())
}

// handleVerdict applies the ruling on a submitted expression.
func (v *View) handleVerdict(msg messages.VerdictReceived) (*View, tea.Cmd) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	verdict := msg.Verdict
	v.verdict = &verdict
	if !verdict.Accepted {
		v.statusbar.SetState(status.StatePlaying)
		v.statusbar.SetMessage(verdict.Message)
		return v, nil
	}

	// Refresh the round so the clock freezes at the solve.
	if round, err := v.gameService.CurrentRound(); err == nil {
		v.round = round
	}
	v.phase = PhaseSolved
	v.input.Blur()
	v.statusbar.SetState(status.StateSolved)
	v.statusbar.SetMessage(verdict.Message)
	return v, tea.Batch(v.clock.Stop(), v.listSolutions())
}

// handleHint shows a hint, treating a throttled one as a nudge to wait.
func (v *View) handleHint(msg messages.HintReceived) (*View, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, domain.ErrHintThrottled) {
			v.hint = "Hints are cooling down. Keep trying!"
			return v, nil
		}
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	v.hint = msg.Hint
	return v, nil
}

// handleSolutions shows the solution list, closing the round when it
// arrived through an explicit reveal.
func (v *View) handleSolutions(msg messages.SolutionsRevealed) (*View, tea.Cmd) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	v.solutions = msg.Solutions
	if v.phase == PhaseSolved {
		return v, nil
	}

	// An explicit reveal forfeits the round.
	if round, err := v.gameService.CurrentRound(); err == nil {
		v.round = round
	}
	v.phase = PhaseRevealed
	v.input.Blur()
	v.statusbar.SetState(status.StateRevealed)
	v.statusbar.SetMessage("Better luck next deal!")
	return v, v.clock.Stop()
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc parks the round and returns to the menu.
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.Type == tea.KeyEnter && v.phase == PhasePlaying {
		expression := strings.TrimSpace(v.input.Value())
		if expression == "" {
			return v, nil
		}
		return v, v.submit(expression)
	}

	// Letters never appear in a valid expression, so they are safe as
	// action keys even while the input has focus.
	switch msg.String() {
	case "h":
		if v.phase == PhasePlaying {
			return v, v.requestHint()
		}
		return v, nil
	case "r":
		if v.phase == PhasePlaying {
			return v, v.reveal()
		}
		return v, nil
	case "n":
		if v.phase == PhaseDealing {
			return v, nil
		}
		v.phase = PhaseDealing
		v.statusbar.SetState(status.StateDealing)
		return v, v.startRound()
	}

	if v.phase != PhasePlaying {
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the game view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("twentyfour"))
	if elapsed := v.renderElapsed(); elapsed != "" {
		b.WriteString("  ")
		b.WriteString(v.styles.Timer.Render(elapsed))
	}
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	switch v.phase {
	case PhaseIdle, PhaseDealing:
		b.WriteString(v.styles.Muted.Render("Dealing..."))
		b.WriteString("\n")
	case PhasePlaying:
		b.WriteString(v.renderBoard())
		b.WriteString(v.renderInput())
	case PhaseSolved, PhaseRevealed:
		b.WriteString(v.renderBoard())
		b.WriteString(v.renderSolutions())
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())

	return b.String()
}

// renderElapsed formats the round clock: running while open, frozen at
// close once finished.
func (v *View) renderElapsed() string {
	if v.phase == PhaseIdle || v.phase == PhaseDealing {
		return ""
	}
	return v.round.Elapsed(time.Now()).Round(time.Second).String()
}

// renderBoard shows the dealt numbers, the goal line, and any hint.
func (v *View) renderBoard() string {
	var b strings.Builder

	cards := make([]string, 0, 4)
	for _, value := range v.round.Puzzle.Operands.Values() {
		cards = append(cards, v.styles.Operand.Render(fmt.Sprintf("[ %d ]", value)))
	}
	b.WriteString(strings.Join(cards, " "))
	b.WriteString("\n\n")

	goal := fmt.Sprintf("Make %d using each number exactly once (%s).",
		v.round.Puzzle.Target, v.round.Puzzle.Difficulty)
	b.WriteString(v.styles.Normal.Render(goal))
	b.WriteString("\n")

	if v.hint != "" {
		b.WriteString(v.styles.Hint.Render("Hint: " + v.hint))
		b.WriteString("\n")
	}

	return b.String()
}

// renderInput shows the expression input and the last rejection.
func (v *View) renderInput() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(v.styles.InputField.Render(v.input.View()))
	b.WriteString("\n")

	if v.verdict != nil && !v.verdict.Accepted {
		b.WriteString(v.styles.Warning.Render(v.verdict.Message))
		b.WriteString("\n")
	}

	return b.String()
}

// renderSolutions shows the outcome and the full solution list.
func (v *View) renderSolutions() string {
	var b strings.Builder

	b.WriteString("\n")
	if v.phase == PhaseSolved && v.verdict != nil {
		b.WriteString(v.styles.Success.Render(v.verdict.Message))
		b.WriteString("\n\n")
	}

	if len(v.solutions) == 0 {
		b.WriteString(v.styles.Muted.Render("Loading solutions..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Solutions (%d):", len(v.solutions))))
	b.WriteString("\n")
	for _, solution := range v.solutions {
		line := fmt.Sprintf("  %s = %d", solution.Text, v.round.Puzzle.Target)
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Reset clears transient display state. The round itself lives in the
// game service and is picked up again on Init.
func (v *View) Reset() {
	v.phase = PhaseIdle
	v.verdict = nil
	v.hint = ""
	v.solutions = nil
	v.err = nil
	v.input.Reset()
	v.input.Blur()
	v.statusbar.Clear()
}

// Phase returns the current round phase.
func (v *View) Phase() Phase {
	return v.phase
}

// Round returns the round on the table.
func (v *View) Round() domain.Round {
	return v.round
}

// Hint returns the last hint shown.
func (v *View) Hint() string {
	return v.hint
}

// Solutions returns the solutions on display.
func (v *View) Solutions() []domain.Solution {
	return v.solutions
}

// Err returns the last error that occurred.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view has been sized.
func (v *View) Ready() bool {
	return v.ready
}
