// Package config provides YAML (and TOML) game configuration loading and
// difficulty presets for the invaders game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	Field    InvadersField    `yaml:"field" toml:"field"`
	Player   InvadersPlayer   `yaml:"player" toml:"player"`
	Aliens   InvadersAliens   `yaml:"aliens" toml:"aliens"`
	Missiles InvadersMissiles `yaml:"missiles" toml:"missiles"`
	Gameplay InvadersGameplay `yaml:"gameplay" toml:"gameplay"`
}

// InvadersField defines the playfield size in units.
type InvadersField struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// InvadersPlayer defines the ship.
type InvadersPlayer struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	SpawnOffsetX float64 `yaml:"spawn_offset_x" toml:"spawn_offset_x"` // Spawn x is field width/2 minus this
	SpawnOffsetY float64 `yaml:"spawn_offset_y" toml:"spawn_offset_y"` // Spawn y is field height minus this
	Step         float64 `yaml:"step" toml:"step"`                     // Units moved per key press
}

// InvadersAliens defines the alien formation.
type InvadersAliens struct {
	Rows        int     `yaml:"rows" toml:"rows"`
	Cols        int     `yaml:"cols" toml:"cols"`
	Spacing     float64 `yaml:"spacing" toml:"spacing"`
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	Speed       float64 `yaml:"speed" toml:"speed"`
	ShootChance float64 `yaml:"shoot_chance" toml:"shoot_chance"`
}

// InvadersMissiles defines projectile size and speeds.
type InvadersMissiles struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	PlayerSpeed float64 `yaml:"player_speed" toml:"player_speed"`
	AlienSpeed  float64 `yaml:"alien_speed" toml:"alien_speed"`
}

// InvadersGameplay defines scoring, lives, progression and hit feedback.
type InvadersGameplay struct {
	Lives            int     `yaml:"lives" toml:"lives"`
	PointsPerKill    int     `yaml:"points_per_kill" toml:"points_per_kill"`
	LevelSpeedFactor float64 `yaml:"level_speed_factor" toml:"level_speed_factor"`
	HitBlinks        int     `yaml:"hit_blinks" toml:"hit_blinks"`     // Visibility toggles after a hit
	HitBlinkMillis   int     `yaml:"hit_blink_ms" toml:"hit_blink_ms"` // Duration of one toggle
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid invaders config")

// Validate checks value ranges. It does not check that the geometry makes a
// fun game, only a playable one.
func (c InvadersConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %vx%v", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Width > c.Field.Width:
		return fmt.Errorf("%w: player wider than field", ErrInvalidConfig)
	case c.Player.Step <= 0:
		return fmt.Errorf("%w: player step must be positive, got %v", ErrInvalidConfig, c.Player.Step)
	case c.Aliens.Rows <= 0 || c.Aliens.Cols <= 0:
		return fmt.Errorf("%w: alien grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Aliens.Rows, c.Aliens.Cols)
	case c.Aliens.Width <= 0 || c.Aliens.Height <= 0 || c.Aliens.Spacing <= 0:
		return fmt.Errorf("%w: alien size and spacing must be positive", ErrInvalidConfig)
	case c.Aliens.Speed < 0:
		return fmt.Errorf("%w: alien speed must not be negative", ErrInvalidConfig)
	case c.Aliens.ShootChance < 0 || c.Aliens.ShootChance > 1:
		return fmt.Errorf("%w: shoot chance must be within [0, 1], got %v", ErrInvalidConfig, c.Aliens.ShootChance)
	case c.Missiles.Width <= 0 || c.Missiles.Height <= 0:
		return fmt.Errorf("%w: missile size must be positive", ErrInvalidConfig)
	case c.Missiles.PlayerSpeed <= 0 || c.Missiles.AlienSpeed <= 0:
		return fmt.Errorf("%w: missile speeds must be positive", ErrInvalidConfig)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	case c.Gameplay.PointsPerKill < 0:
		return fmt.Errorf("%w: points per kill must not be negative", ErrInvalidConfig)
	case c.Gameplay.LevelSpeedFactor <= 0:
		return fmt.Errorf("%w: level speed factor must be positive", ErrInvalidConfig)
	case c.Gameplay.HitBlinks < 0 || c.Gameplay.HitBlinkMillis < 0:
		return fmt.Errorf("%w: hit feedback must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every known preset in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value to a preset. The empty string means
// normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Aliens.ShootChance /= 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Aliens.ShootChance = min(cfg.Aliens.ShootChance*2, 1)
		cfg.Aliens.Speed *= 1.5
	case DifficultyFixed:
		cfg.Gameplay.LevelSpeedFactor = 1
	}
}
