package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Direction is the horizontal heading of an alien: +1 right, -1 left.
type Direction int

const (
	DirRight Direction = 1
	DirLeft  Direction = -1
)

// Alien is one member of the formation.
type Alien struct {
	ID       int // Spawn index within its formation, stable while alive
	Pos      core.Vec2
	W, H     float64
	Speed    float64
	Dir      Direction
	CanShoot bool
}

// Box returns the alien's collision box.
func (a *Alien) Box() core.Box {
	return core.NewBox(a.Pos.X, a.Pos.Y, a.W, a.H)
}

// Advance moves the alien one tick along its heading.
func (a *Alien) Advance() {
	a.Pos.X += a.Speed * float64(a.Dir)
}

// Descend drops the alien by its own height and flips its heading.
// Only the formation calls this, for every alien at once.
func (a *Alien) Descend() {
	a.Pos.Y += a.H
	a.Dir = -a.Dir
}

// pastEdge reports whether the alien has crossed the side it is heading to.
func (a *Alien) pastEdge(fieldW float64) bool {
	if a.Dir == DirRight {
		return a.Pos.X+a.W > fieldW
	}
	return a.Pos.X < 0
}

// Player is the ship controlled by the user.
type Player struct {
	Pos      core.Vec2
	W, H     float64
	CanShoot bool
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.Pos.X, p.Pos.Y, p.W, p.H)
}

// Owner tags a projectile as friendly or hostile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerAlien
)

// String returns the owner name.
func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "alien"
}

// Projectile is a missile in flight, fired by the player or an alien.
type Projectile struct {
	Pos   core.Vec2
	W, H  float64
	VY    float64 // Negative travels up, positive travels down
	Owner Owner
}

// Box returns the projectile's collision box.
func (m *Projectile) Box() core.Box {
	return core.NewBox(m.Pos.X, m.Pos.Y, m.W, m.H)
}

// Advance moves the projectile one tick along its velocity.
func (m *Projectile) Advance() {
	m.Pos.Y += m.VY
}

// Hostile reports whether the projectile can damage the player.
func (m *Projectile) Hostile() bool {
	return m.Owner != OwnerPlayer
}

// outOfField reports whether the projectile left through the top or bottom.
func (m *Projectile) outOfField(fieldH float64) bool {
	return m.Pos.Y <= 0 || m.Pos.Y > fieldH
}

// newPlayerMissile spawns a player missile at the ship's top centre.
func newPlayerMissile(p *Player, params Params) *Projectile {
	return &Projectile{
		Pos:   core.Vec2{X: p.Pos.X + p.W/2, Y: p.Pos.Y},
		W:     params.MissileW,
		H:     params.MissileH,
		VY:    -params.PlayerMissileSpeed,
		Owner: OwnerPlayer,
	}
}

// newAlienMissile spawns an alien missile at the alien's bottom centre.
func newAlienMissile(a *Alien, params Params) *Projectile {
	return &Projectile{
		Pos:   core.Vec2{X: a.Pos.X + a.W/2, Y: a.Pos.Y + a.H},
		W:     params.MissileW,
		H:     params.MissileH,
		VY:    params.AlienMissileSpeed,
		Owner: OwnerAlien,
	}
}
