package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: InvadersField{
			Width:  800,
			Height: 600,
		},
		Player: InvadersPlayer{
			Width:        70,
			Height:       50,
			SpawnOffsetX: 25,
			SpawnOffsetY: 40,
			Step:         10,
		},
		Aliens: InvadersAliens{
			Rows:        5,
			Cols:        8,
			Spacing:     50,
			Width:       40,
			Height:      30,
			Speed:       2,
			ShootChance: 0.01,
		},
		Missiles: InvadersMissiles{
			Width:       3,
			Height:      10,
			PlayerSpeed: 10,
			AlienSpeed:  6,
		},
		Gameplay: InvadersGameplay{
			Lives:            3,
			PointsPerKill:    10,
			LevelSpeedFactor: 1.5,
			HitBlinks:        6,
			HitBlinkMillis:   66,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
