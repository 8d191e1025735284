package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func alienAt(id int, x, y float64) *Alien {
	return &Alien{ID: id, Pos: vec(x, y), W: 40, H: 30, Speed: 2, Dir: DirRight, CanShoot: true}
}

func missileAt(owner Owner, x, y float64) *Projectile {
	vy := -10.0
	if owner == OwnerAlien {
		vy = 6
	}
	return &Projectile{Pos: vec(x, y), W: 3, H: 10, VY: vy, Owner: owner}
}

var testShip = core.NewBox(375, 560, 70, 50)

func TestResolveHostileHit(t *testing.T) {
	hostile := missileAt(OwnerAlien, 400, 555)
	in := ResolveInput{
		Player:        testShip,
		Aliens:        []*Alien{alienAt(0, 0, 0)},
		Projectiles:   []*Projectile{hostile},
		Lives:         3,
		PointsPerKill: 10,
	}

	res := Resolve(in)

	if !res.PlayerHit || res.LivesLost != 1 {
		t.Fatalf("expected one hit, got %+v", res)
	}
	if res.GameOver != ReasonNone {
		t.Errorf("game should continue, reason=%v", res.GameOver)
	}
	if !res.RearmPlayer {
		t.Error("a survived hit re-arms the ship")
	}
	if len(res.Projectiles) != 0 {
		t.Error("hostile missile should be consumed")
	}
}

func TestResolveLastLifeStopsBeforeScoring(t *testing.T) {
	target := alienAt(0, 100, 100)
	in := ResolveInput{
		Player: testShip,
		Aliens: []*Alien{target},
		Projectiles: []*Projectile{
			missileAt(OwnerPlayer, 110, 110),
			missileAt(OwnerAlien, 400, 555),
		},
		Lives:         1,
		PointsPerKill: 10,
	}

	res := Resolve(in)

	if res.GameOver != ReasonLivesExhausted {
		t.Fatalf("reason = %v, expected lives exhausted", res.GameOver)
	}
	if len(res.Killed) != 0 || res.ScoreGained != 0 {
		t.Errorf("no score may be awarded after the last life: %+v", res)
	}
}

func TestResolveInvasion(t *testing.T) {
	in := ResolveInput{
		Player:        testShip,
		Aliens:        []*Alien{alienAt(0, 0, 0), alienAt(1, 380, 540)},
		Lives:         3,
		PointsPerKill: 10,
	}

	res := Resolve(in)

	if res.GameOver != ReasonInvasion {
		t.Fatalf("reason = %v, expected invasion", res.GameOver)
	}
	if res.PlayerHit || res.LivesLost != 0 {
		t.Error("invasion does not consume lives")
	}
}

func TestResolveKill(t *testing.T) {
	a0, a1 := alienAt(0, 0, 0), alienAt(1, 100, 0)
	shot := missileAt(OwnerPlayer, 110, 10)
	stray := missileAt(OwnerPlayer, 600, 300)
	in := ResolveInput{
		Player:        testShip,
		Aliens:        []*Alien{a0, a1},
		Projectiles:   []*Projectile{shot, stray},
		Lives:         3,
		PointsPerKill: 10,
	}

	res := Resolve(in)

	if len(res.Killed) != 1 || res.Killed[0] != a1 {
		t.Fatalf("expected alien 1 killed, got %v", res.Killed)
	}
	if res.ScoreGained != 10 || !res.RearmPlayer {
		t.Errorf("unexpected resolution %+v", res)
	}
	if len(res.Projectiles) != 1 || res.Projectiles[0] != stray {
		t.Error("only the hitting missile is consumed")
	}
	if res.Cleared {
		t.Error("one alien is left")
	}
}

func TestResolveOneMissileTwoAliens(t *testing.T) {
	// Two overlapping aliens under a single missile: only one dies.
	a0, a1 := alienAt(0, 100, 100), alienAt(1, 110, 105)
	in := ResolveInput{
		Player:        testShip,
		Aliens:        []*Alien{a0, a1},
		Projectiles:   []*Projectile{missileAt(OwnerPlayer, 120, 110)},
		Lives:         3,
		PointsPerKill: 10,
	}

	res := Resolve(in)

	if len(res.Killed) != 1 || res.ScoreGained != 10 {
		t.Fatalf("one missile must kill at most one alien, killed %d", len(res.Killed))
	}
	if res.Killed[0] != a1 {
		t.Error("aliens are resolved from the back of the formation")
	}
}

func TestResolveTwoMissilesOneAlien(t *testing.T) {
	target := alienAt(0, 100, 100)
	m0, m1 := missileAt(OwnerPlayer, 110, 110), missileAt(OwnerPlayer, 120, 110)
	in := ResolveInput{
		Player:        testShip,
		Aliens:        []*Alien{target},
		Projectiles:   []*Projectile{m0, m1},
		Lives:         3,
		PointsPerKill: 10,
	}

	res := Resolve(in)

	if len(res.Killed) != 1 || res.ScoreGained != 10 {
		t.Fatalf("an alien dies once, got %d kills", len(res.Killed))
	}
	if len(res.Projectiles) != 1 || res.Projectiles[0] != m1 {
		t.Error("the second missile should survive")
	}
	if !res.Cleared {
		t.Error("formation is cleared")
	}
}

func TestResolveHostileIgnoresAliens(t *testing.T) {
	in := ResolveInput{
		Player:        testShip,
		Aliens:        []*Alien{alienAt(0, 100, 100)},
		Projectiles:   []*Projectile{missileAt(OwnerAlien, 110, 110)},
		Lives:         3,
		PointsPerKill: 10,
	}

	res := Resolve(in)

	if len(res.Killed) != 0 || len(res.Projectiles) != 1 {
		t.Error("alien missiles never hit aliens")
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	a := alienAt(0, 100, 100)
	shot := missileAt(OwnerPlayer, 110, 110)
	projectiles := []*Projectile{shot, missileAt(OwnerAlien, 400, 555)}
	in := ResolveInput{
		Player:        testShip,
		Aliens:        []*Alien{a},
		Projectiles:   projectiles,
		Lives:         3,
		PointsPerKill: 10,
	}
	before := *a

	Resolve(in)

	if *a != before {
		t.Error("alien mutated")
	}
	if len(in.Aliens) != 1 || len(projectiles) != 2 || projectiles[0] != shot {
		t.Error("input slices mutated")
	}
	if in.Lives != 3 {
		t.Error("lives mutated")
	}
}

func TestGameOverReasonString(t *testing.T) {
	tests := []struct {
		r    GameOverReason
		want string
	}{
		{ReasonNone, "none"},
		{ReasonLivesExhausted, "out of lives"},
		{ReasonInvasion, "invaded"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("%d.String() = %q, expected %q", tt.r, got, tt.want)
		}
	}
}
