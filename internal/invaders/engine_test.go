package invaders

import (
	"errors"
	"testing"
)

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(DefaultParams(), nil); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("nil rng: expected ErrInvalidParams, got %v", err)
	}

	p := DefaultParams()
	p.Lives = 0
	if _, err := New(p, &fixedRand{}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("zero lives: expected ErrInvalidParams, got %v", err)
	}
}

func TestEngineInitialState(t *testing.T) {
	e, _ := newTestEngine(t)

	pl := e.Player()
	if pl.X != 375 || pl.Y != 560 || pl.W != 70 || pl.H != 50 || !pl.CanShoot {
		t.Errorf("unexpected player %+v", pl)
	}
	if e.Lives() != 3 || e.Score() != 0 || e.Level() != 1 || e.IsGameOver() {
		t.Errorf("unexpected counters: lives=%d score=%d level=%d over=%v",
			e.Lives(), e.Score(), e.Level(), e.IsGameOver())
	}
	if n := len(e.Aliens()); n != 40 {
		t.Errorf("expected 40 aliens, got %d", n)
	}
	if len(e.Projectiles()) != 0 || e.ShooterState() != ShooterIdle {
		t.Error("no projectiles and an idle shooter expected")
	}
	if e.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0", e.Ticks())
	}
}

func TestMovePlayerClamps(t *testing.T) {
	tests := []struct {
		name  string
		moves []float64
		want  float64
	}{
		{"left step", []float64{-275}, 100},
		{"past right edge", []float64{-275, 1000}, 730},
		{"past left edge", []float64{-10000}, 0},
		{"back and forth", []float64{50, -50}, 375},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			for _, d := range tt.moves {
				e.MovePlayer(d)
			}
			if got := e.Player().X; got != tt.want {
				t.Errorf("player x = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestPlayerShootSingleMissile(t *testing.T) {
	e, _ := newTestEngine(t)

	e.PlayerShoot()
	e.PlayerShoot()

	shots := e.Projectiles()
	if len(shots) != 1 {
		t.Fatalf("expected one missile, got %d", len(shots))
	}
	m := shots[0]
	if m.X != 410 || m.Y != 560 || m.VY != -10 || m.Owner != OwnerPlayer {
		t.Errorf("unexpected missile %+v", m)
	}
	if e.Player().CanShoot {
		t.Error("ship should be disarmed while its missile flies")
	}
	if !hasEvent(e.DrainEvents(), EventPlayerFired) {
		t.Error("expected a player_fired event")
	}
}

func TestPlayerMissileLeavingTopRearms(t *testing.T) {
	e, _ := newTestEngine(t)
	e.MovePlayer(1000) // x=730, clear of the formation's path
	e.PlayerShoot()

	for i := 0; i < 55; i++ {
		e.Tick()
	}
	if len(e.Projectiles()) != 1 || e.Player().CanShoot {
		t.Fatal("missile should still be in flight after 55 ticks")
	}

	e.Tick()
	if len(e.Projectiles()) != 0 {
		t.Fatal("missile should leave the field at y=0")
	}
	if !e.Player().CanShoot {
		t.Error("ship should be re-armed")
	}
	if e.Score() != 0 {
		t.Errorf("score = %d, expected 0", e.Score())
	}
}

func TestClearingFormationAdvancesLevel(t *testing.T) {
	e, _ := newTestEngine(t)

	aimAt(e, keepOnly(e, 39))
	e.Tick()

	if e.Level() != 2 || e.Score() != 10 {
		t.Fatalf("level=%d score=%d, expected 2 and 10", e.Level(), e.Score())
	}
	aliens := e.Aliens()
	if len(aliens) != 40 {
		t.Fatalf("expected a fresh formation of 40, got %d", len(aliens))
	}
	for i, a := range aliens {
		if a.X != float64((i%8)*50) || a.Y != float64((i/8)*50) {
			t.Errorf("alien %d at (%v, %v), expected its spawn point", i, a.X, a.Y)
		}
		if a.Speed != 3 || a.Dir != DirRight {
			t.Errorf("alien %d speed=%v dir=%d, expected 3 and right", i, a.Speed, a.Dir)
		}
	}
	if !e.Player().CanShoot {
		t.Error("kill should re-arm the ship")
	}

	events := e.DrainEvents()
	if !hasEvent(events, EventAlienKilled) || !hasEvent(events, EventLevelUp) {
		t.Errorf("expected kill and level-up events, got %v", events)
	}

	aimAt(e, keepOnly(e, 39))
	e.Tick()
	if e.Level() != 3 || e.Score() != 20 {
		t.Fatalf("level=%d score=%d, expected 3 and 20", e.Level(), e.Score())
	}
	for i, a := range e.Aliens() {
		if a.Speed != 3 {
			t.Errorf("level 3 alien %d speed = %v, expected 3", i, a.Speed)
		}
	}
}

func TestHostileHitReleasesShooter(t *testing.T) {
	e, rng := newTestEngine(t)

	rng.v = alwaysFire
	e.Tick()
	rng.v = neverFire
	if e.ShooterState() != ShooterLocked {
		t.Fatal("an alien should have fired")
	}
	owner := e.shooter.Owner()

	pl := e.Player()
	e.shooter.Missile().Pos = vec(pl.X+10, pl.Y-e.params.AlienMissileSpeed+1)
	e.DrainEvents()
	e.Tick()

	if e.Lives() != 2 {
		t.Fatalf("lives = %d, expected 2", e.Lives())
	}
	if e.IsGameOver() {
		t.Fatal("game should continue")
	}
	if e.ShooterState() != ShooterIdle || countHostile(e.Projectiles()) != 0 {
		t.Error("shooter should be released once its missile hit")
	}
	if !owner.CanShoot {
		t.Error("firing alien should be re-armed")
	}
	if !hasEvent(e.DrainEvents(), EventPlayerHit) {
		t.Error("expected a player_hit event")
	}
}

func TestLastLifeEndsBeforeScoring(t *testing.T) {
	e, _ := newTestEngine(t)
	e.lives = 1

	aimAt(e, e.formation.Aliens()[39])
	dropOnPlayer(e)
	e.Tick()

	if !e.IsGameOver() || e.GameOverReason() != ReasonLivesExhausted {
		t.Fatalf("expected game over by lives, got %v", e.GameOverReason())
	}
	if e.Lives() != 0 || e.Score() != 0 {
		t.Errorf("lives=%d score=%d, expected 0 and 0", e.Lives(), e.Score())
	}
	if len(e.Aliens()) != 40 {
		t.Error("no alien may die on the tick the game ends")
	}
	if !hasEvent(e.DrainEvents(), EventGameOver) {
		t.Error("expected a game_over event")
	}

	frozen := e.Snapshot()
	e.Tick()
	e.MovePlayer(-100)
	e.PlayerShoot()
	if !e.Snapshot().Equal(frozen) {
		t.Error("state must not change after game over")
	}
	if len(e.DrainEvents()) != 0 {
		t.Error("no events after game over")
	}
}

func TestInvasionEndsGame(t *testing.T) {
	e, _ := newTestEngine(t)
	pl := e.Player()
	e.formation.Aliens()[0].Pos = vec(pl.X, pl.Y-10)

	e.Tick()

	if e.GameOverReason() != ReasonInvasion {
		t.Fatalf("reason = %v, expected invasion", e.GameOverReason())
	}
	if e.Lives() != 3 {
		t.Errorf("lives = %d, invasion does not consume lives", e.Lives())
	}
}

func TestResetRoundTrip(t *testing.T) {
	fresh, _ := newTestEngine(t)
	e, rng := newTestEngine(t)

	rng.v = alwaysFire
	e.PlayerShoot()
	for i := 0; i < 40; i++ {
		e.MovePlayer(5)
		e.Tick()
	}
	if e.Snapshot().Equal(fresh.Snapshot()) {
		t.Fatal("engine should have diverged before reset")
	}

	e.Reset()

	if !e.Snapshot().Equal(fresh.Snapshot()) {
		t.Error("Reset should restore the initial state")
	}
	if len(e.DrainEvents()) != 0 {
		t.Error("Reset should clear pending events")
	}
}

func TestEventsSurviveUntilDrained(t *testing.T) {
	e, _ := newTestEngine(t)

	e.PlayerShoot()
	e.Tick()
	e.Tick()

	events := e.DrainEvents()
	if len(events) == 0 || events[0].Kind != EventPlayerFired || events[0].Tick != 0 {
		t.Fatalf("expected player_fired at tick 0, got %v", events)
	}
	if e.DrainEvents() != nil {
		t.Error("second drain should be empty")
	}
}

func TestEventQueueIsBounded(t *testing.T) {
	e, _ := newTestEngine(t)

	for i := 0; i < 1000; i++ {
		e.emit(Event{Kind: EventAlienFired, AlienID: i})
	}

	events := e.DrainEvents()
	if len(events) > maxPendingEvents {
		t.Errorf("queue grew to %d", len(events))
	}
	if events[len(events)-1].AlienID != 999 {
		t.Error("newest event must be kept")
	}
}

func TestDeterminism(t *testing.T) {
	const seed = 42

	run := func() []uint64 {
		e, err := NewSeeded(DefaultParams(), seed)
		if err != nil {
			t.Fatalf("NewSeeded() failed: %v", err)
		}
		hashes := make([]uint64, 0, 2000)
		for i := 0; i < 2000; i++ {
			if i%7 == 0 {
				e.PlayerShoot()
			}
			if i%100 < 50 {
				e.MovePlayer(4)
			} else {
				e.MovePlayer(-4)
			}
			e.Tick()
			hashes = append(hashes, e.Snapshot().Hash())
		}
		return hashes
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at tick %d", i+1)
		}
	}
}

// TestInvariantsUnderPlay drives a simple bot over many seeds and checks the
// properties that must hold after every tick.
func TestInvariantsUnderPlay(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		e, err := NewSeeded(DefaultParams(), seed)
		if err != nil {
			t.Fatalf("NewSeeded(%d) failed: %v", seed, err)
		}

		prev := e.Snapshot()
		for i := 0; i < 3000; i++ {
			e.PlayerShoot()
			if (i/60)%2 == 0 {
				e.MovePlayer(5)
			} else {
				e.MovePlayer(-5)
			}
			e.Tick()

			s := e.Snapshot()
			events := e.DrainEvents()

			if s.Lives > prev.Lives || s.Lives < 0 {
				t.Fatalf("seed %d tick %d: lives went %d -> %d", seed, s.Tick, prev.Lives, s.Lives)
			}

			kills := 0
			for _, ev := range events {
				if ev.Kind == EventAlienKilled {
					kills++
				}
			}
			if s.Score-prev.Score != 10*kills {
				t.Fatalf("seed %d tick %d: score moved %d for %d kills", seed, s.Tick, s.Score-prev.Score, kills)
			}

			hostile := countHostile(s.Projectiles)
			if hostile > 1 {
				t.Fatalf("seed %d tick %d: %d hostile missiles", seed, s.Tick, hostile)
			}
			if !s.GameOver && (s.Shooter == ShooterLocked) != (hostile == 1) {
				t.Fatalf("seed %d tick %d: shooter %v with %d hostile missiles", seed, s.Tick, s.Shooter, hostile)
			}

			for _, a := range s.Aliens {
				if a.Dir != s.Direction {
					t.Fatalf("seed %d tick %d: alien %d heading %d, formation %d", seed, s.Tick, a.ID, a.Dir, s.Direction)
				}
			}
			if s.Player.X < 0 || s.Player.X > 730 {
				t.Fatalf("seed %d tick %d: player x %v out of bounds", seed, s.Tick, s.Player.X)
			}

			if s.GameOver {
				e.Tick()
				if !e.Snapshot().Equal(s) {
					t.Fatalf("seed %d: state changed after game over", seed)
				}
				break
			}
			prev = s
		}
	}
}
