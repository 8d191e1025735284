package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func vec(x, y float64) core.Vec2 {
	return core.Vec2{X: x, Y: y}
}

// fixedRand always returns v; tests flip v to force or forbid alien fire.
type fixedRand struct {
	v     float64
	calls int
}

func (r *fixedRand) Float64() float64 {
	r.calls++
	return r.v
}

// scriptedRand returns vals in order, then 0.99 forever.
type scriptedRand struct {
	vals  []float64
	calls int
}

func (r *scriptedRand) Float64() float64 {
	r.calls++
	if len(r.vals) == 0 {
		return 0.99
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v
}

const (
	neverFire  = 0.99
	alwaysFire = 0.0
)

// newTestEngine returns an engine with default params and a controllable rng.
func newTestEngine(t *testing.T) (*Engine, *fixedRand) {
	t.Helper()
	rng := &fixedRand{v: neverFire}
	e, err := New(DefaultParams(), rng)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e, rng
}

// keepOnly removes every alien except the one with the given ID.
func keepOnly(e *Engine, id int) *Alien {
	dead := make(map[*Alien]bool)
	var kept *Alien
	for _, a := range e.formation.Aliens() {
		if a.ID == id {
			kept = a
			continue
		}
		dead[a] = true
	}
	e.formation.Remove(dead)
	return kept
}

// aimAt places a player missile that overlaps a after one tick of movement.
func aimAt(e *Engine, a *Alien) {
	p := e.params
	e.projectiles = append(e.projectiles, &Projectile{
		Pos:   a.Pos.Add(vec(10+a.Speed*float64(a.Dir), 20+p.PlayerMissileSpeed)),
		W:     p.MissileW,
		H:     p.MissileH,
		VY:    -p.PlayerMissileSpeed,
		Owner: OwnerPlayer,
	})
	e.player.CanShoot = false
}

// dropOnPlayer places a hostile missile that overlaps the ship after one tick.
func dropOnPlayer(e *Engine) *Projectile {
	p := e.params
	m := &Projectile{
		Pos:   vec(e.player.Pos.X+10, e.player.Pos.Y-p.AlienMissileSpeed+1),
		W:     p.MissileW,
		H:     p.MissileH,
		VY:    p.AlienMissileSpeed,
		Owner: OwnerAlien,
	}
	e.projectiles = append(e.projectiles, m)
	return m
}

func countHostile(views []ProjectileView) int {
	n := 0
	for _, m := range views {
		if m.Owner == OwnerAlien {
			n++
		}
	}
	return n
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
