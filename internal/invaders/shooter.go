package invaders

// Rand is the random source consumed by the simulation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// ShooterState is the state of the alien fire policy.
type ShooterState int

const (
	// ShooterIdle means no alien missile is in flight.
	ShooterIdle ShooterState = iota
	// ShooterLocked means one alien missile is in flight and nobody else may fire.
	ShooterLocked
)

// String returns the state name.
func (s ShooterState) String() string {
	if s == ShooterLocked {
		return "locked"
	}
	return "idle"
}

// ShooterPolicy enforces turn-taking alien fire: at most one alien missile
// is in flight at any time.
//
// While idle, aliens are checked in formation order; every alien that may
// shoot draws one trial and the first success fires and locks the policy.
// The lock is released once its missile is gone from the field, which
// re-arms the alien that fired it.
type ShooterPolicy struct {
	params  Params
	state   ShooterState
	owner   *Alien // nil once the firing alien has been removed
	missile *Projectile
}

// NewShooterPolicy creates an idle policy.
func NewShooterPolicy(params Params) *ShooterPolicy {
	return &ShooterPolicy{params: params}
}

// State returns the current policy state.
func (s *ShooterPolicy) State() ShooterState {
	return s.state
}

// Owner returns the alien holding the lock, or nil.
func (s *ShooterPolicy) Owner() *Alien {
	return s.owner
}

// Missile returns the locked missile, or nil while idle.
func (s *ShooterPolicy) Missile() *Projectile {
	return s.missile
}

// Fire runs one idle-state scan over aliens and returns the spawned missile,
// or nil when nothing fired. A locked policy never fires.
func (s *ShooterPolicy) Fire(aliens []*Alien, rng Rand) *Projectile {
	if s.state == ShooterLocked {
		return nil
	}
	for _, a := range aliens {
		if !a.CanShoot {
			continue
		}
		if rng.Float64() >= s.params.ShootChance {
			continue
		}
		m := newAlienMissile(a, s.params)
		a.CanShoot = false
		s.state = ShooterLocked
		s.owner = a
		s.missile = m
		return m
	}
	return nil
}

// Release unlocks the policy if its missile is no longer among inFlight.
// Returns true when the policy transitioned to idle.
func (s *ShooterPolicy) Release(inFlight []*Projectile) bool {
	if s.state != ShooterLocked {
		return false
	}
	for _, m := range inFlight {
		if m == s.missile {
			return false
		}
	}
	if s.owner != nil {
		s.owner.CanShoot = true
	}
	s.state = ShooterIdle
	s.owner = nil
	s.missile = nil
	return true
}

// Forget drops the reference to a removed alien. The lock itself is kept
// until the missile is gone so the single-missile invariant holds.
func (s *ShooterPolicy) Forget(a *Alien) {
	if a != nil && s.owner == a {
		s.owner = nil
	}
}

// Reset returns the policy to idle without re-arming anyone.
func (s *ShooterPolicy) Reset() {
	s.state = ShooterIdle
	s.owner = nil
	s.missile = nil
}
