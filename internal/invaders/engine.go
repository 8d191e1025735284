package invaders

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Engine owns the whole game state and advances it one tick at a time.
//
// Engine is not safe for concurrent use; the driver must serialize Tick and
// the input calls.
type Engine struct {
	params Params
	rng    Rand

	player      Player
	formation   *Formation
	shooter     *ShooterPolicy
	projectiles []*Projectile

	lives  int
	score  int
	level  int
	reason GameOverReason
	tick   uint64

	events []Event
}

// New creates an engine in its initial state using rng for alien fire.
func New(params Params, rng Rand) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParams)
	}
	e := &Engine{
		params:    params,
		rng:       rng,
		formation: NewFormation(params),
		shooter:   NewShooterPolicy(params),
	}
	e.Reset()
	return e, nil
}

// NewSeeded creates an engine whose alien fire is driven by math/rand seeded
// with seed. Equal seeds and equal inputs replay identically.
func NewSeeded(params Params, seed int64) (*Engine, error) {
	return New(params, rand.New(rand.NewSource(seed))) //nolint:gosec // gameplay randomness
}

// Reset restores the initial state: full lives, zero score, level 1, a fresh
// formation, the ship at its spawn point and no projectiles. The random
// source is not rewound.
func (e *Engine) Reset() {
	p := e.params
	e.player = Player{
		Pos:      core.Vec2{X: p.FieldW/2 - p.PlayerOffsetX, Y: p.FieldH - p.PlayerOffsetY},
		W:        p.PlayerW,
		H:        p.PlayerH,
		CanShoot: true,
	}
	e.formation.Respawn()
	e.shooter.Reset()
	e.projectiles = nil
	e.lives = p.Lives
	e.score = 0
	e.level = 1
	e.reason = ReasonNone
	e.tick = 0
	e.events = e.events[:0]
}

// Tick advances the simulation by one step. It does nothing once the game
// is over.
func (e *Engine) Tick() {
	if e.reason != ReasonNone {
		return
	}
	e.tick++

	e.advanceProjectiles()
	e.formation.Step()

	e.shooter.Release(e.projectiles)
	if m := e.shooter.Fire(e.formation.Aliens(), e.rng); m != nil {
		e.projectiles = append(e.projectiles, m)
		e.emit(Event{Kind: EventAlienFired, AlienID: e.shooter.Owner().ID})
	}

	e.resolveCollisions()
	if e.reason != ReasonNone {
		return
	}
	e.shooter.Release(e.projectiles)
}

// advanceProjectiles moves every projectile and drops those that left the
// field. A player missile leaving the field re-arms the ship.
func (e *Engine) advanceProjectiles() {
	kept := e.projectiles[:0]
	for _, m := range e.projectiles {
		m.Advance()
		if m.outOfField(e.params.FieldH) {
			if m.Owner == OwnerPlayer {
				e.player.CanShoot = true
			}
			continue
		}
		kept = append(kept, m)
	}
	for i := len(kept); i < len(e.projectiles); i++ {
		e.projectiles[i] = nil
	}
	e.projectiles = kept
}

// resolveCollisions runs the collision pass and applies its effects.
func (e *Engine) resolveCollisions() {
	res := Resolve(ResolveInput{
		Player:        e.player.Box(),
		Aliens:        e.formation.Aliens(),
		Projectiles:   e.projectiles,
		Lives:         e.lives,
		PointsPerKill: e.params.PointsPerKill,
	})
	e.projectiles = res.Projectiles

	if res.PlayerHit {
		e.lives = max(e.lives-res.LivesLost, 0)
		e.emit(Event{Kind: EventPlayerHit, Value: e.lives})
	}
	if res.GameOver != ReasonNone {
		e.reason = res.GameOver
		e.emit(Event{Kind: EventGameOver, Value: e.score, Reason: res.GameOver})
		return
	}
	if res.RearmPlayer {
		e.player.CanShoot = true
	}

	if len(res.Killed) > 0 {
		dead := make(map[*Alien]bool, len(res.Killed))
		for _, a := range res.Killed {
			dead[a] = true
			e.shooter.Forget(a)
			e.emit(Event{Kind: EventAlienKilled, AlienID: a.ID})
		}
		e.formation.Remove(dead)
		e.score += res.ScoreGained
	}

	if res.Cleared {
		e.advanceLevel()
	}
}

// advanceLevel respawns the formation at base speed and scales it once.
// The speed-up does not compound across levels.
func (e *Engine) advanceLevel() {
	e.shooter.Forget(e.shooter.Owner())
	e.formation.Respawn()
	e.level++
	e.formation.ScaleSpeed(e.params.LevelSpeedFactor)
	e.emit(Event{Kind: EventLevelUp, Value: e.level})
}

// MovePlayer shifts the ship horizontally by delta, clamped to the field.
func (e *Engine) MovePlayer(delta float64) {
	if e.reason != ReasonNone {
		return
	}
	e.player.Pos.X = core.ClampF(e.player.Pos.X+delta, 0, e.params.FieldW-e.player.W)
}

// PlayerShoot fires a missile from the ship. It is a no-op unless the ship
// is armed and no player missile is in flight.
func (e *Engine) PlayerShoot() {
	if e.reason != ReasonNone || !e.player.CanShoot {
		return
	}
	for _, m := range e.projectiles {
		if m.Owner == OwnerPlayer {
			return
		}
	}
	e.projectiles = append(e.projectiles, newPlayerMissile(&e.player, e.params))
	e.player.CanShoot = false
	e.emit(Event{Kind: EventPlayerFired})
}

// Params returns the tuning the engine runs with.
func (e *Engine) Params() Params {
	return e.params
}

// Lives returns the remaining lives.
func (e *Engine) Lives() int {
	return e.lives
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current level, starting at 1.
func (e *Engine) Level() int {
	return e.level
}

// IsGameOver reports whether the game reached its terminal state.
func (e *Engine) IsGameOver() bool {
	return e.reason != ReasonNone
}

// GameOverReason returns why the game ended, or ReasonNone.
func (e *Engine) GameOverReason() GameOverReason {
	return e.reason
}

// Ticks returns the number of simulated ticks since the last reset.
func (e *Engine) Ticks() uint64 {
	return e.tick
}

// ShooterState returns the state of the alien fire policy.
func (e *Engine) ShooterState() ShooterState {
	return e.shooter.State()
}
