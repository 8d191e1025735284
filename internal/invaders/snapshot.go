package invaders

import (
	"math"
	"slices"
)

// AlienView is a read-only copy of an alien.
type AlienView struct {
	ID       int
	X, Y     float64
	W, H     float64
	Speed    float64
	Dir      Direction
	CanShoot bool
}

// ProjectileView is a read-only copy of a projectile.
type ProjectileView struct {
	X, Y  float64
	W, H  float64
	VY    float64
	Owner Owner
}

// PlayerView is a read-only copy of the ship.
type PlayerView struct {
	X, Y     float64
	W, H     float64
	CanShoot bool
}

// Aliens returns copies of the live aliens in formation order.
func (e *Engine) Aliens() []AlienView {
	aliens := e.formation.Aliens()
	out := make([]AlienView, len(aliens))
	for i, a := range aliens {
		out[i] = AlienView{
			ID:       a.ID,
			X:        a.Pos.X,
			Y:        a.Pos.Y,
			W:        a.W,
			H:        a.H,
			Speed:    a.Speed,
			Dir:      a.Dir,
			CanShoot: a.CanShoot,
		}
	}
	return out
}

// Projectiles returns copies of the projectiles in flight.
func (e *Engine) Projectiles() []ProjectileView {
	out := make([]ProjectileView, len(e.projectiles))
	for i, m := range e.projectiles {
		out[i] = ProjectileView{
			X:     m.Pos.X,
			Y:     m.Pos.Y,
			W:     m.W,
			H:     m.H,
			VY:    m.VY,
			Owner: m.Owner,
		}
	}
	return out
}

// Player returns a copy of the ship.
func (e *Engine) Player() PlayerView {
	return PlayerView{
		X:        e.player.Pos.X,
		Y:        e.player.Pos.Y,
		W:        e.player.W,
		H:        e.player.H,
		CanShoot: e.player.CanShoot,
	}
}

// Snapshot is the complete observable game state at one tick.
type Snapshot struct {
	Tick        uint64
	Lives       int
	Score       int
	Level       int
	GameOver    bool
	Reason      GameOverReason
	Direction   Direction
	Shooter     ShooterState
	Player      PlayerView
	Aliens      []AlienView
	Projectiles []ProjectileView
}

// Snapshot returns the current game state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:        e.tick,
		Lives:       e.lives,
		Score:       e.score,
		Level:       e.level,
		GameOver:    e.reason != ReasonNone,
		Reason:      e.reason,
		Direction:   e.formation.Direction(),
		Shooter:     e.shooter.State(),
		Player:      e.Player(),
		Aliens:      e.Aliens(),
		Projectiles: e.Projectiles(),
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Tick == o.Tick &&
		s.Lives == o.Lives &&
		s.Score == o.Score &&
		s.Level == o.Level &&
		s.GameOver == o.GameOver &&
		s.Reason == o.Reason &&
		s.Direction == o.Direction &&
		s.Shooter == o.Shooter &&
		s.Player == o.Player &&
		slices.Equal(s.Aliens, o.Aliens) &&
		slices.Equal(s.Projectiles, o.Projectiles)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Reason)    //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Direction) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Shooter)   //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(s.Player.X)

	for _, a := range s.Aliens {
		h = h*31 + uint64(a.ID) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(a.X)
		h = h*31 + math.Float64bits(a.Y)
		h = h*31 + math.Float64bits(a.Speed)
	}

	for _, m := range s.Projectiles {
		h = h*31 + uint64(m.Owner) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(m.X)
		h = h*31 + math.Float64bits(m.Y)
	}

	return h
}
