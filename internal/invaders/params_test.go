package invaders

import (
	"errors"
	"testing"
)

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("DefaultParams().Validate() = %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero field width", func(p *Params) { p.FieldW = 0 }},
		{"negative alien height", func(p *Params) { p.AlienH = -1 }},
		{"zero lives", func(p *Params) { p.Lives = 0 }},
		{"empty grid", func(p *Params) { p.AlienCols = 0 }},
		{"negative alien speed", func(p *Params) { p.AlienSpeed = -2 }},
		{"shoot chance above one", func(p *Params) { p.ShootChance = 1.5 }},
		{"negative shoot chance", func(p *Params) { p.ShootChance = -0.1 }},
		{"negative points", func(p *Params) { p.PointsPerKill = -10 }},
		{"player wider than field", func(p *Params) { p.PlayerW = 900 }},
		{"zero level factor", func(p *Params) { p.LevelSpeedFactor = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestParamsEdgeValuesAccepted(t *testing.T) {
	p := DefaultParams()
	p.ShootChance = 1
	p.AlienSpeed = 0
	p.AlienRows, p.AlienCols = 1, 1
	if err := p.Validate(); err != nil {
		t.Errorf("edge values should be valid: %v", err)
	}
}

func TestEventKindString(t *testing.T) {
	kinds := map[EventKind]string{
		EventPlayerFired: "player_fired",
		EventAlienFired:  "alien_fired",
		EventAlienKilled: "alien_killed",
		EventPlayerHit:   "player_hit",
		EventLevelUp:     "level_up",
		EventGameOver:    "game_over",
		EventKind(99):    "unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, expected %q", int(k), got, want)
		}
	}
}
