// Package invaders implements the fixed-timestep simulation of an alien
// invasion shooter: a player ship, a descending alien formation, a turn-taking
// alien fire policy and collision resolution driving score, lives and levels.
//
// The package is pure: it performs no I/O, holds no timers and never
// schedules itself. A platform calls Engine.Tick at a fixed rate and reads
// state back through views and snapshots.
package invaders

import (
	"errors"
	"fmt"
)

// Params holds every tunable of the simulation, in playfield units and ticks.
type Params struct {
	FieldW float64
	FieldH float64

	Lives int

	PlayerW       float64
	PlayerH       float64
	PlayerOffsetX float64 // Spawn x is FieldW/2 - PlayerOffsetX
	PlayerOffsetY float64 // Spawn y is FieldH - PlayerOffsetY

	AlienRows    int
	AlienCols    int
	AlienSpacing float64
	AlienW       float64
	AlienH       float64
	AlienSpeed   float64

	// ShootChance is the per-check probability that an eligible alien fires.
	ShootChance float64

	MissileW           float64
	MissileH           float64
	PlayerMissileSpeed float64
	AlienMissileSpeed  float64

	PointsPerKill int

	// LevelSpeedFactor multiplies the base speed of each respawned formation.
	LevelSpeedFactor float64
}

// DefaultParams returns the canonical game tuning.
func DefaultParams() Params {
	return Params{
		FieldW: 800,
		FieldH: 600,

		Lives: 3,

		PlayerW:       70,
		PlayerH:       50,
		PlayerOffsetX: 25,
		PlayerOffsetY: 40,

		AlienRows:    5,
		AlienCols:    8,
		AlienSpacing: 50,
		AlienW:       40,
		AlienH:       30,
		AlienSpeed:   2,

		ShootChance: 0.01,

		MissileW:           3,
		MissileH:           10,
		PlayerMissileSpeed: 10,
		AlienMissileSpeed:  6,

		PointsPerKill: 10,

		LevelSpeedFactor: 1.5,
	}
}

// ErrInvalidParams is wrapped by every Validate failure.
var ErrInvalidParams = errors.New("invaders: invalid params")

// Validate checks that the parameters describe a playable game.
func (p Params) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"field width", p.FieldW},
		{"field height", p.FieldH},
		{"player width", p.PlayerW},
		{"player height", p.PlayerH},
		{"alien width", p.AlienW},
		{"alien height", p.AlienH},
		{"alien spacing", p.AlienSpacing},
		{"missile width", p.MissileW},
		{"missile height", p.MissileH},
		{"player missile speed", p.PlayerMissileSpeed},
		{"alien missile speed", p.AlienMissileSpeed},
		{"level speed factor", p.LevelSpeedFactor},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParams, f.name, f.v)
		}
	}

	if p.Lives <= 0 {
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidParams, p.Lives)
	}
	if p.AlienRows <= 0 || p.AlienCols <= 0 {
		return fmt.Errorf("%w: alien grid must be at least 1x1, got %dx%d", ErrInvalidParams, p.AlienRows, p.AlienCols)
	}
	if p.AlienSpeed < 0 {
		return fmt.Errorf("%w: alien speed must not be negative, got %v", ErrInvalidParams, p.AlienSpeed)
	}
	if p.ShootChance < 0 || p.ShootChance > 1 {
		return fmt.Errorf("%w: shoot chance must be within [0, 1], got %v", ErrInvalidParams, p.ShootChance)
	}
	if p.PointsPerKill < 0 {
		return fmt.Errorf("%w: points per kill must not be negative, got %d", ErrInvalidParams, p.PointsPerKill)
	}
	if p.PlayerW > p.FieldW {
		return fmt.Errorf("%w: player (%v) wider than field (%v)", ErrInvalidParams, p.PlayerW, p.FieldW)
	}
	return nil
}
