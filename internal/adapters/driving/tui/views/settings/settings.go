// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/messages"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/tui/styles"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionDifficulty
	SectionSymbols
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	// Current settings
	settings domain.GameSettings
	loaded   bool
	err      error

	// Navigation state
	section  Section
	selected int // selection within current section

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.loaded = true
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		// Reload settings after save
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses based on current section.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Global escape to go back
	if msg.String() == "esc" {
		switch v.section {
		case SectionOverview:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		default:
			v.section = SectionOverview
			v.selected = 0
			return v, nil
		}
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionDifficulty:
		return v.handleDifficultyKeys(msg)
	case SectionSymbols:
		return v.handleSymbolsKeys(msg)
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Overview menu: Difficulty, Symbols
	maxItems := 2

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < maxItems-1 {
			v.selected++
		}
	case keyEnter:
		switch v.selected {
		case 0:
			v.section = SectionDifficulty
			v.selected = v.getDifficultyIndex()
		case 1:
			v.section = SectionSymbols
			v.selected = v.getSymbolsIndex()
		}
	}
	return v, nil
}

func (v *View) handleDifficultyKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	difficulties := domain.AllDifficulties()

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(difficulties)-1 {
			v.selected++
		}
	case keyEnter:
		if v.selected >= 0 && v.selected < len(difficulties) {
			return v, v.setDifficulty(difficulties[v.selected])
		}
	}
	return v, nil
}

func (v *View) handleSymbolsKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	sets := domain.AllSymbolSets()

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(sets)-1 {
			v.selected++
		}
	case keyEnter:
		if v.selected >= 0 && v.selected < len(sets) {
			return v, v.setSymbols(sets[v.selected])
		}
	}
	return v, nil
}

// Commands to update settings.

func (v *View) setDifficulty(difficulty domain.Difficulty) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		err := v.settingsService.SetDifficulty(difficulty)
		if err == nil {
			v.section = SectionOverview
			v.selected = 0
		}
		return messages.SettingsSaved{Err: err}
	}
}

func (v *View) setSymbols(set domain.SymbolSet) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		err := v.settingsService.SetSymbols(set)
		if err == nil {
			v.section = SectionOverview
			v.selected = 1
		}
		return messages.SettingsSaved{Err: err}
	}
}

// Helper methods to get current selection indices.

func (v *View) getDifficultyIndex() int {
	for i, d := range domain.AllDifficulties() {
		if d == v.settings.Difficulty {
			return i
		}
	}
	return 0
}

func (v *View) getSymbolsIndex() int {
	for i, s := range domain.AllSymbolSets() {
		if s == v.settings.Symbols {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	// Error display
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	// Loading state
	if !v.loaded {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionDifficulty:
		b.WriteString(v.renderDifficultySelect())
	case SectionSymbols:
		b.WriteString(v.renderSymbolsSelect())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	items := []struct {
		label string
		value string
	}{
		{label: "Difficulty", value: v.settings.Difficulty.Description()},
		{label: "Symbols", value: v.settings.Symbols.Description()},
	}

	for i, item := range items {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		line := fmt.Sprintf("%s%s: %s", indicator, item.label, item.value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	note := fmt.Sprintf("Target is %d. Change it with: twentyfour settings set target <n>", v.settings.Target)
	b.WriteString(v.styles.Muted.Render(note))

	return b.String()
}

func (v *View) renderDifficultySelect() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Select Difficulty"))
	b.WriteString("\n\n")

	for i, difficulty := range domain.AllDifficulties() {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		current := ""
		if difficulty == v.settings.Difficulty {
			current = v.styles.Success.Render(" (current)")
		}

		line := fmt.Sprintf("%s%s%s", indicator, difficulty.Description(), current)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderSymbolsSelect() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Select Symbols"))
	b.WriteString("\n\n")

	for i, set := range domain.AllSymbolSets() {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		current := ""
		if set == v.settings.Symbols {
			current = v.styles.Success.Render(" (current)")
		}

		line := fmt.Sprintf("%s%s%s", indicator, set.Description(), current)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	case SectionDifficulty, SectionSymbols:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] back")
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.err = nil
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Selected returns the selection within the active section.
func (v *View) Selected() int {
	return v.selected
}

// Settings returns the loaded settings.
func (v *View) Settings() domain.GameSettings {
	return v.settings
}

// Err returns the last error that occurred.
func (v *View) Err() error {
	return v.err
}
