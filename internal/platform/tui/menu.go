package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// MenuChoice is the entry picked on the title menu.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuDifficulty
	MenuScores
	MenuQuit
)

var menuLabels = map[MenuChoice]string{
	MenuPlay:       "Play",
	MenuDifficulty: "Difficulty",
	MenuScores:     "High Scores",
	MenuQuit:       "Quit",
}

var menuOrder = []MenuChoice{MenuPlay, MenuDifficulty, MenuScores, MenuQuit}

// Menu styles
var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	menuSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	gameID     string
	title      string
	cursor     int
	difficulty int // Index into config.Presets
	best       int
	width      int
	height     int
	config     core.RuntimeConfig
	keys       MenuKeyMap
	gameKeys   GameKeyMap
	help       help.Model
	quitting   bool
	chosen     bool
}

// NewMenuModel creates a new menu model. The best score is read from store
// when it is not nil.
func NewMenuModel(gameID, title string, store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		gameID:   gameID,
		title:    title,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		config:   cfg,
		keys:     DefaultMenuKeyMap(),
		gameKeys: DefaultGameKeyMap(),
		help:     help.New(),
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}
	m.difficulty = presetIndex(preset)
	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			m.best = best
		}
	}
	return m
}

func presetIndex(p config.DifficultyPreset) int {
	for i, known := range config.Presets {
		if known == p {
			return i
		}
	}
	return 0
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = core.Clamp(m.cursor-1, 0, len(menuOrder)-1)

	case key.Matches(msg, m.keys.Down):
		m.cursor = core.Clamp(m.cursor+1, 0, len(menuOrder)-1)

	case key.Matches(msg, m.keys.Left):
		if menuOrder[m.cursor] == MenuDifficulty {
			m.difficulty = (m.difficulty + len(config.Presets) - 1) % len(config.Presets)
		}

	case key.Matches(msg, m.keys.Right):
		if menuOrder[m.cursor] == MenuDifficulty {
			m.difficulty = (m.difficulty + 1) % len(config.Presets)
		}

	case key.Matches(msg, m.keys.Select):
		switch menuOrder[m.cursor] {
		case MenuDifficulty:
			m.difficulty = (m.difficulty + 1) % len(config.Presets)
		case MenuQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.chosen = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(strings.ToUpper(spaced(m.title))), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuSubtitleStyle.Render(fmt.Sprintf("Best: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i, choice := range menuOrder {
		label := menuLabels[choice]
		if choice == MenuDifficulty {
			label = fmt.Sprintf("%s: < %s >", label, m.Difficulty())
			if config.IsFixedPreset(m.Difficulty()) {
				label += " no speed-up"
			}
		}
		line := menuItemStyle.Render("  " + label + "  ")
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + label + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuSubtitleStyle.Render("In game: ")+m.help.ShortHelpView(m.gameKeys.ShortHelp()), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the picked entry and whether one was picked.
func (m MenuModel) Choice() (MenuChoice, bool) {
	if !m.chosen {
		return MenuPlay, false
	}
	return menuOrder[m.cursor], true
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// spaced puts a space between the letters of s.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// centerText centers text within given width. Width is measured without
// ANSI escapes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Play            bool
	WantsScoreboard bool
	Quit            bool
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
}

// result converts the final menu state.
func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.Config(), Difficulty: m.Difficulty()}
	choice, ok := m.Choice()
	switch {
	case m.IsQuitting() || !ok:
		res.Quit = true
	case choice == MenuScores:
		res.WantsScoreboard = true
	default:
		res.Play = true
	}
	return res
}

// RunMenu runs the title menu and returns the selection result.
func RunMenu(gameID, title string, store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(gameID, title, store, cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
