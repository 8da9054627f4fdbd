package game

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/components/status"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/messages"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/styles"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

// MockGameService implements driving.GameService for testing.
type MockGameService struct {
	StartRoundFunc   func(ctx context.Context, difficulty domain.Difficulty) (domain.Round, error)
	CurrentRoundFunc func() (domain.Round, error)
	SubmitFunc       func(ctx context.Context, expression string) (domain.Verdict, error)
	HintFunc         func(ctx context.Context) (string, error)
	RevealFunc       func(ctx context.Context) ([]domain.Solution, error)
	SolutionsFunc    func(ctx context.Context) ([]domain.Solution, error)
	AbandonFunc      func(ctx context.Context) error
}

func (m *MockGameService) StartRound(
	ctx context.Context, difficulty domain.Difficulty,
) (domain.Round, error) {
	if m.StartRoundFunc != nil {
		return m.StartRoundFunc(ctx, difficulty)
	}
	return domain.Round{}, nil
}

func (m *MockGameService) CurrentRound() (domain.Round, error) {
	if m.CurrentRoundFunc != nil {
		return m.CurrentRoundFunc()
	}
	return domain.Round{}, domain.ErrNoPuzzle
}

func (m *MockGameService) Submit(ctx context.Context, expression string) (domain.Verdict, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, expression)
	}
	return domain.Verdict{}, nil
}

func (m *MockGameService) Hint(ctx context.Context) (string, error) {
	if m.HintFunc != nil {
		return m.HintFunc(ctx)
	}
	return "", nil
}

func (m *MockGameService) Reveal(ctx context.Context) ([]domain.Solution, error) {
	if m.RevealFunc != nil {
		return m.RevealFunc(ctx)
	}
	return nil, nil
}

func (m *MockGameService) Solutions(ctx context.Context) ([]domain.Solution, error) {
	if m.SolutionsFunc != nil {
		return m.SolutionsFunc(ctx)
	}
	return nil, nil
}

func (m *MockGameService) Abandon(ctx context.Context) error {
	if m.AbandonFunc != nil {
		return m.AbandonFunc(ctx)
	}
	return nil
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	GetFunc func() (domain.GameSettings, error)
}

func (m *MockSettingsService) Get() (domain.GameSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	return domain.DefaultGameSettings(), nil
}

func (m *MockSettingsService) Save(settings domain.GameSettings) error { return nil }

func (m *MockSettingsService) SetDifficulty(difficulty domain.Difficulty) error { return nil }

func (m *MockSettingsService) SetTarget(target int) error { return nil }

func (m *MockSettingsService) SetSymbols(set domain.SymbolSet) error { return nil }

func (m *MockSettingsService) Symbols() domain.Symbols { return domain.UnicodeSymbols() }

func (m *MockSettingsService) GetDefaults() domain.GameSettings {
	return domain.DefaultGameSettings()
}

func testRound(t *testing.T) domain.Round {
	t.Helper()
	operands, err := domain.NewOperandSet([]int{1, 2, 3, 4})
	require.NoError(t, err)
	return domain.Round{
		Puzzle:    domain.NewPuzzle(operands, domain.DifficultyNormal, domain.DefaultTarget),
		StartedAt: time.Now(),
		Outcome:   domain.RoundOpen,
	}
}

// playingView returns a view with a round on the table.
func playingView(t *testing.T, game *MockGameService) *View {
	t.Helper()
	view := NewView(nil, nil, game, &MockSettingsService{})
	view.SetDimensions(80, 24)
	view.Update(messages.RoundStarted{Round: testRound(t)})
	require.Equal(t, PhasePlaying, view.Phase())
	return view
}

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()

	view := NewView(s, nil, &MockGameService{}, &MockSettingsService{})

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
	assert.Equal(t, PhaseIdle, view.Phase())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, nil, &MockGameService{}, &MockSettingsService{})

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Init(t *testing.T) {
	view := NewView(nil, nil, &MockGameService{}, &MockSettingsService{})

	cmd := view.Init()

	assert.NotNil(t, cmd)
}

func TestView_ResumeOrDeal_DealsWhenNoRound(t *testing.T) {
	round := testRound(t)
	var dealt domain.Difficulty
	game := &MockGameService{
		StartRoundFunc: func(ctx context.Context, difficulty domain.Difficulty) (domain.Round, error) {
			dealt = difficulty
			return round, nil
		},
	}
	view := NewView(nil, nil, game, &MockSettingsService{})

	msg := view.resumeOrDeal()()

	started, ok := msg.(messages.RoundStarted)
	require.True(t, ok)
	require.NoError(t, started.Err)
	assert.Equal(t, round.Puzzle.Operands, started.Round.Puzzle.Operands)
	assert.Equal(t, domain.DefaultDifficulty(), dealt)
}

func TestView_ResumeOrDeal_ResumesOpenRound(t *testing.T) {
	round := testRound(t)
	game := &MockGameService{
		CurrentRoundFunc: func() (domain.Round, error) {
			return round, nil
		},
		StartRoundFunc: func(ctx context.Context, difficulty domain.Difficulty) (domain.Round, error) {
			t.Fatal("an open round must not be redealt")
			return domain.Round{}, nil
		},
	}
	view := NewView(nil, nil, game, &MockSettingsService{})

	msg := view.resumeOrDeal()()

	started, ok := msg.(messages.RoundStarted)
	require.True(t, ok)
	require.NoError(t, started.Err)
	assert.True(t, started.Round.StartedAt.Equal(round.StartedAt))
}

func TestView_ResumeOrDeal_NoService(t *testing.T) {
	view := NewView(nil, nil, nil, &MockSettingsService{})

	msg := view.resumeOrDeal()()

	started, ok := msg.(messages.RoundStarted)
	require.True(t, ok)
	assert.ErrorIs(t, started.Err, ErrNoGameService)
}

func TestView_ResolveDifficulty_Override(t *testing.T) {
	view := NewView(nil, nil, &MockGameService{}, &MockSettingsService{})
	view.SetDifficulty(domain.DifficultyExpert)

	assert.Equal(t, domain.DifficultyExpert, view.resolveDifficulty())
}

func TestView_ResolveDifficulty_ConfiguredDefault(t *testing.T) {
	settings := &MockSettingsService{
		GetFunc: func() (domain.GameSettings, error) {
			s := domain.DefaultGameSettings()
			s.Difficulty = domain.DifficultyHard
			return s, nil
		},
	}
	view := NewView(nil, nil, &MockGameService{}, settings)

	assert.Equal(t, domain.DifficultyHard, view.resolveDifficulty())
}

func TestView_ResolveDifficulty_FallsBackOnError(t *testing.T) {
	settings := &MockSettingsService{
		GetFunc: func() (domain.GameSettings, error) {
			return domain.GameSettings{}, errors.New("config unreadable")
		},
	}
	view := NewView(nil, nil, &MockGameService{}, settings)

	assert.Equal(t, domain.DefaultDifficulty(), view.resolveDifficulty())
}

func TestView_Update_RoundStarted(t *testing.T) {
	view := NewView(nil, nil, &MockGameService{}, &MockSettingsService{})
	view.SetDimensions(80, 24)

	_, cmd := view.Update(messages.RoundStarted{Round: testRound(t)})

	assert.Equal(t, PhasePlaying, view.Phase())
	assert.True(t, view.input.Focused())
	assert.Equal(t, status.StatePlaying, view.statusbar.State())
	assert.NotNil(t, cmd)
}

func TestView_Update_RoundStarted_Error(t *testing.T) {
	view := NewView(nil, nil, &MockGameService{}, &MockSettingsService{})

	view.Update(messages.RoundStarted{Err: errors.New("deal failed")})

	assert.Equal(t, PhaseIdle, view.Phase())
	assert.Error(t, view.Err())
	assert.Equal(t, status.StateError, view.statusbar.State())
}

func TestView_Update_RoundStarted_ResumeKeepsTypedExpression(t *testing.T) {
	round := testRound(t)
	view := NewView(nil, nil, &MockGameService{}, &MockSettingsService{})
	view.SetDimensions(80, 24)
	view.Update(messages.RoundStarted{Round: round})
	view.input.SetValue("(1 + 2")
	view.hint = "Parentheses first."

	view.Update(messages.RoundStarted{Round: round})

	assert.Equal(t, "(1 + 2", view.input.Value())
	assert.Equal(t, "Parentheses first.", view.Hint())
}

func TestView_Update_SubmitOnEnter(t *testing.T) {
	var submitted string
	game := &MockGameService{
		SubmitFunc: func(ctx context.Context, expression string) (domain.Verdict, error) {
			submitted = expression
			return domain.Verdict{Accepted: true, Message: "Correct! (1+2+3)*4 = 24", Value: domain.RationalFromInt(24)}, nil
		},
	}
	view := playingView(t, game)
	view.input.SetValue("(1+2+3)*4")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg := cmd()
	verdict, ok := msg.(messages.VerdictReceived)
	require.True(t, ok)
	assert.True(t, verdict.Verdict.Accepted)
	assert.Equal(t, "(1+2+3)*4", submitted)
}

func TestView_Update_EnterWithEmptyInput(t *testing.T) {
	view := playingView(t, &MockGameService{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Update_VerdictAccepted(t *testing.T) {
	view := playingView(t, &MockGameService{})

	verdict := domain.Verdict{Accepted: true, Message: "Correct! (1+2+3)*4 = 24", Value: domain.RationalFromInt(24)}
	_, cmd := view.Update(messages.VerdictReceived{Verdict: verdict})

	assert.Equal(t, PhaseSolved, view.Phase())
	assert.False(t, view.input.Focused())
	assert.Equal(t, status.StateSolved, view.statusbar.State())
	// Stops the clock and fetches the solution list
	assert.NotNil(t, cmd)
}

func TestView_Update_VerdictRejected(t *testing.T) {
	view := playingView(t, &MockGameService{})

	verdict := domain.Verdict{Accepted: false, Message: "Result is 10, not 24.", Value: domain.RationalFromInt(10)}
	view.Update(messages.VerdictReceived{Verdict: verdict})

	assert.Equal(t, PhasePlaying, view.Phase())
	assert.Equal(t, "Result is 10, not 24.", view.statusbar.Message())
}

func TestView_Update_VerdictError(t *testing.T) {
	view := playingView(t, &MockGameService{})

	view.Update(messages.VerdictReceived{Err: domain.ErrRoundOver})

	assert.Error(t, view.Err())
	assert.Equal(t, status.StateError, view.statusbar.State())
}

func TestView_Update_HintKey(t *testing.T) {
	game := &MockGameService{
		HintFunc: func(ctx context.Context) (string, error) {
			return "Try using only + and -.", nil
		},
	}
	view := playingView(t, game)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})

	require.NotNil(t, cmd)
	msg := cmd()
	hint, ok := msg.(messages.HintReceived)
	require.True(t, ok)
	assert.Equal(t, "Try using only + and -.", hint.Hint)
}

func TestView_Update_HintReceived(t *testing.T) {
	view := playingView(t, &MockGameService{})

	view.Update(messages.HintReceived{Hint: "Shape: (a op b) op (c op d)"})

	assert.Equal(t, "Shape: (a op b) op (c op d)", view.Hint())
}

func TestView_Update_HintThrottled(t *testing.T) {
	view := playingView(t, &MockGameService{})

	view.Update(messages.HintReceived{Err: domain.ErrHintThrottled})

	// A throttled hint is a nudge to wait, not an error
	assert.NoError(t, view.Err())
	assert.Contains(t, view.Hint(), "cooling down")
}

func TestView_Update_RevealKey(t *testing.T) {
	solutions := []domain.Solution{{Text: "(1 + 2 + 3) × 4"}}
	game := &MockGameService{
		RevealFunc: func(ctx context.Context) ([]domain.Solution, error) {
			return solutions, nil
		},
	}
	view := playingView(t, game)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	require.NotNil(t, cmd)
	msg := cmd()
	revealed, ok := msg.(messages.SolutionsRevealed)
	require.True(t, ok)
	assert.Len(t, revealed.Solutions, 1)
}

func TestView_Update_SolutionsAfterReveal(t *testing.T) {
	view := playingView(t, &MockGameService{})

	view.Update(messages.SolutionsRevealed{Solutions: []domain.Solution{{Text: "8 ÷ (3 − 8 ÷ 3)"}}})

	assert.Equal(t, PhaseRevealed, view.Phase())
	assert.Len(t, view.Solutions(), 1)
	assert.Equal(t, status.StateRevealed, view.statusbar.State())
}

func TestView_Update_SolutionsAfterWin(t *testing.T) {
	view := playingView(t, &MockGameService{})
	verdict := domain.Verdict{Accepted: true, Message: "Correct! (1+2+3)*4 = 24", Value: domain.RationalFromInt(24)}
	view.Update(messages.VerdictReceived{Verdict: verdict})
	require.Equal(t, PhaseSolved, view.Phase())

	view.Update(messages.SolutionsRevealed{Solutions: []domain.Solution{{Text: "(1 + 2 + 3) × 4"}}})

	// Listing solutions after a win must not flip the outcome
	assert.Equal(t, PhaseSolved, view.Phase())
	assert.Len(t, view.Solutions(), 1)
}

func TestView_Update_NewPuzzleKey(t *testing.T) {
	round := testRound(t)
	game := &MockGameService{
		StartRoundFunc: func(ctx context.Context, difficulty domain.Difficulty) (domain.Round, error) {
			return round, nil
		},
	}
	view := playingView(t, game)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.Equal(t, PhaseDealing, view.Phase())
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(messages.RoundStarted)
	assert.True(t, ok)
}

func TestView_Update_EscReturnsToMenu(t *testing.T) {
	view := playingView(t, &MockGameService{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
	// The round stays open; it is picked up again on return
	assert.Equal(t, PhasePlaying, view.Phase())
}

func TestView_Update_TypingFlowsToInput(t *testing.T) {
	view := playingView(t, &MockGameService{})

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})

	assert.Equal(t, "1+2", view.input.Value())
}

func TestView_Update_ActionKeysIgnoredOnceFinished(t *testing.T) {
	view := playingView(t, &MockGameService{})
	verdict := domain.Verdict{Accepted: true, Message: "Correct! (1+2+3)*4 = 24", Value: domain.RationalFromInt(24)}
	view.Update(messages.VerdictReceived{Verdict: verdict})

	_, hintCmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	_, revealCmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	assert.Nil(t, hintCmd)
	assert.Nil(t, revealCmd)
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil, nil, &MockGameService{}, &MockSettingsService{})

	output := view.View()

	assert.Contains(t, output, "Initialising")
}

func TestView_View_Dealing(t *testing.T) {
	view := NewView(nil, nil, &MockGameService{}, &MockSettingsService{})
	view.SetDimensions(80, 24)

	output := view.View()

	assert.Contains(t, output, "Dealing")
}

func TestView_View_Playing(t *testing.T) {
	view := playingView(t, &MockGameService{})

	output := view.View()

	assert.Contains(t, output, "[ 1 ]")
	assert.Contains(t, output, "[ 4 ]")
	assert.Contains(t, output, "Make 24 using each number exactly once")
	assert.Contains(t, output, "normal")
}

func TestView_View_PlayingShowsHint(t *testing.T) {
	view := playingView(t, &MockGameService{})
	view.Update(messages.HintReceived{Hint: "Try grouping a pair first."})

	output := view.View()

	assert.Contains(t, output, "Hint: Try grouping a pair first.")
}

func TestView_View_RevealedShowsSolutions(t *testing.T) {
	view := playingView(t, &MockGameService{})
	view.Update(messages.SolutionsRevealed{Solutions: []domain.Solution{
		{Text: "(1 + 2 + 3) × 4"},
		{Text: "1 × 2 × 3 × 4"},
	}})

	output := view.View()

	assert.Contains(t, output, "Solutions (2):")
	assert.Contains(t, output, "(1 + 2 + 3) × 4 = 24")
	assert.Contains(t, output, "1 × 2 × 3 × 4 = 24")
}

func TestView_Reset(t *testing.T) {
	view := playingView(t, &MockGameService{})
	view.hint = "stale"
	view.err = errors.New("stale")

	view.Reset()

	assert.Equal(t, PhaseIdle, view.Phase())
	assert.Empty(t, view.Hint())
	assert.NoError(t, view.Err())
	assert.Empty(t, view.input.Value())
}

func TestView_SetDimensions(t *testing.T) {
	view := NewView(nil, nil, &MockGameService{}, &MockSettingsService{})

	view.SetDimensions(120, 40)

	assert.True(t, view.Ready())
	assert.Equal(t, 120, view.statusbar.Width())
}
