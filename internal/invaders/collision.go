package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// GameOverReason tells why a game ended.
type GameOverReason int

const (
	ReasonNone           GameOverReason = iota
	ReasonLivesExhausted                // Hostile missiles took the last life
	ReasonInvasion                      // An alien touched the ship
)

// String returns a short description of the reason.
func (r GameOverReason) String() string {
	switch r {
	case ReasonLivesExhausted:
		return "out of lives"
	case ReasonInvasion:
		return "invaded"
	default:
		return "none"
	}
}

// ResolveInput is the world state seen by the collision pass.
type ResolveInput struct {
	Player        core.Box
	Aliens        []*Alien
	Projectiles   []*Projectile
	Lives         int
	PointsPerKill int
}

// Resolution is the outcome of one collision pass. Resolve never mutates its
// input; the engine applies the resolution.
type Resolution struct {
	// Projectiles are the survivors, in their original order.
	Projectiles []*Projectile
	// Killed lists aliens hit by player missiles, in resolution order.
	Killed []*Alien

	LivesLost   int
	ScoreGained int
	// PlayerHit is set when a hostile missile struck the ship.
	PlayerHit bool
	// RearmPlayer is set when the player may fire again.
	RearmPlayer bool

	GameOver GameOverReason
	// Cleared is set when no alien survives the pass.
	Cleared bool
}

// Resolve runs the collision pass in fixed priority order:
//
//  1. hostile missiles against the ship (a lost last life ends the pass),
//  2. aliens against the ship (always fatal, ends the pass),
//  3. player missiles against aliens,
//  4. formation cleared check.
//
// Damage is therefore settled before any score on the same tick.
func Resolve(in ResolveInput) Resolution {
	var res Resolution
	consumed := make(map[*Projectile]bool)
	survivors := func() []*Projectile {
		out := make([]*Projectile, 0, len(in.Projectiles)-len(consumed))
		for _, m := range in.Projectiles {
			if !consumed[m] {
				out = append(out, m)
			}
		}
		return out
	}

	lives := in.Lives
	for i := len(in.Projectiles) - 1; i >= 0; i-- {
		m := in.Projectiles[i]
		if !m.Hostile() || !m.Box().Overlaps(in.Player) {
			continue
		}
		consumed[m] = true
		lives--
		res.LivesLost++
		res.PlayerHit = true
		if lives <= 0 {
			res.GameOver = ReasonLivesExhausted
			res.Projectiles = survivors()
			return res
		}
		res.RearmPlayer = true
	}

	for _, a := range in.Aliens {
		if a.Box().Overlaps(in.Player) {
			res.GameOver = ReasonInvasion
			res.Projectiles = survivors()
			return res
		}
	}

	for i := len(in.Aliens) - 1; i >= 0; i-- {
		a := in.Aliens[i]
		box := a.Box()
		for _, m := range in.Projectiles {
			if m.Hostile() || consumed[m] || !m.Box().Overlaps(box) {
				continue
			}
			consumed[m] = true
			res.Killed = append(res.Killed, a)
			res.ScoreGained += in.PointsPerKill
			res.RearmPlayer = true
			break
		}
	}

	res.Projectiles = survivors()
	res.Cleared = len(in.Aliens) == len(res.Killed)
	return res
}
