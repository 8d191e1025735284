package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Formation is the ordered set of live aliens, moved as one rigid group.
// Order is spawn order (row-major) and is preserved across removals.
type Formation struct {
	params Params
	aliens []*Alien
	dir    Direction
}

// NewFormation creates a formation holding a freshly spawned grid.
func NewFormation(params Params) *Formation {
	f := &Formation{params: params}
	f.Respawn()
	return f
}

// Respawn discards every alien and rebuilds the grid at base speed.
// Alien (row, col) spawns at (col*spacing, row*spacing).
func (f *Formation) Respawn() {
	p := f.params
	f.aliens = make([]*Alien, 0, p.AlienRows*p.AlienCols)
	for row := 0; row < p.AlienRows; row++ {
		for col := 0; col < p.AlienCols; col++ {
			f.aliens = append(f.aliens, &Alien{
				ID:       len(f.aliens),
				Pos:      core.Vec2{X: float64(col) * p.AlienSpacing, Y: float64(row) * p.AlienSpacing},
				W:        p.AlienW,
				H:        p.AlienH,
				Speed:    p.AlienSpeed,
				Dir:      DirRight,
				CanShoot: true,
			})
		}
	}
	f.dir = DirRight
}

// AdvanceAll moves every alien one tick and reports whether any of them
// crossed the edge it was heading to.
func (f *Formation) AdvanceAll() (hitEdge bool) {
	for _, a := range f.aliens {
		a.Advance()
		if a.pastEdge(f.params.FieldW) {
			hitEdge = true
		}
	}
	return hitEdge
}

// DescendAndReverse drops every alien by its height and flips the heading
// of the whole formation.
func (f *Formation) DescendAndReverse() {
	for _, a := range f.aliens {
		a.Descend()
	}
	f.dir = -f.dir
}

// Step advances the formation and applies the synchronized descent when an
// edge was reached. Edge detection covers the whole formation before any
// alien descends. Returns whether a descent happened.
func (f *Formation) Step() bool {
	if !f.AdvanceAll() {
		return false
	}
	f.DescendAndReverse()
	return true
}

// ScaleSpeed multiplies the speed of every alien by factor.
func (f *Formation) ScaleSpeed(factor float64) {
	for _, a := range f.aliens {
		a.Speed *= factor
	}
}

// Remove drops the given aliens, keeping the order of the survivors.
func (f *Formation) Remove(dead map[*Alien]bool) {
	if len(dead) == 0 {
		return
	}
	alive := f.aliens[:0]
	for _, a := range f.aliens {
		if !dead[a] {
			alive = append(alive, a)
		}
	}
	// Clear the tail so removed aliens are not retained by the backing array.
	for i := len(alive); i < len(f.aliens); i++ {
		f.aliens[i] = nil
	}
	f.aliens = alive
}

// Aliens returns the live aliens in spawn order. The slice must not be modified.
func (f *Formation) Aliens() []*Alien {
	return f.aliens
}

// Len returns the number of live aliens.
func (f *Formation) Len() int {
	return len(f.aliens)
}

// Empty reports whether the formation has been wiped out.
func (f *Formation) Empty() bool {
	return len(f.aliens) == 0
}

// Direction returns the shared heading of the formation.
func (f *Formation) Direction() Direction {
	return f.dir
}
