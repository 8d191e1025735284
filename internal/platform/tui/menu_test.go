package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{endAfter: 1000} })
}

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel("fake", "Fake", nil, core.DefaultConfig(), "")
	if m.Difficulty() != config.DifficultyNormal {
		t.Fatalf("default difficulty = %s", m.Difficulty())
	}

	// Left and right only act on the difficulty row.
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyNormal {
		t.Error("right on Play should not change difficulty")
	}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("expected hard, got %s", m.Difficulty())
	}
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("difficulty should wrap, got %s", m.Difficulty())
	}

	if !strings.Contains(m.View(), "fixed") {
		t.Error("view should show the difficulty")
	}
}

func TestMenuResult(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		want  MenuResult
	}{
		{"play", 0, MenuResult{Play: true}},
		{"scores", 2, MenuResult{WantsScoreboard: true}},
		{"quit", 3, MenuResult{Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel("fake", "Fake", nil, core.DefaultConfig(), config.DifficultyEasy)
			for i := 0; i < tt.downs; i++ {
				m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
			}
			m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			res := m.result()
			if res.Play != tt.want.Play || res.WantsScoreboard != tt.want.WantsScoreboard || res.Quit != tt.want.Quit {
				t.Errorf("result() = %+v", res)
			}
			if res.Difficulty != config.DifficultyEasy {
				t.Errorf("difficulty lost: %s", res.Difficulty)
			}
		})
	}
}

func TestSessionFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	s := NewSessionModel("fake", nil, cfg, "", nil)

	update := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.gameModel == nil {
		t.Fatal("enter on Play should start a game")
	}
	if !strings.Contains(stripANSI(s.View()), "fake") {
		t.Error("session should render the game")
	}

	update(runeKey('p'))
	update(TickMsg{Loop: s.gameModel.loop})
	update(runeKey('b'))
	if s.gameModel != nil {
		t.Fatal("back should return to the menu")
	}

	update(tea.KeyMsg{Type: tea.KeyDown})
	update(tea.KeyMsg{Type: tea.KeyDown})
	update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.scoreboard == nil {
		t.Fatal("High Scores should open the scoreboard")
	}
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.scoreboard != nil {
		t.Fatal("esc should leave the scoreboard")
	}

	if cmd := update(runeKey('q')); cmd == nil || !s.quitting {
		t.Error("q on the menu should end the session")
	}
}
