package invaders

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
	sim "github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Visual characters for rendering
const (
	AlienChar     = '▓'
	ShipChar      = '█'
	ShipNoseChar  = '▲'
	PlayerMissile = '│'
	AlienMissile  = '┆'
	SeparatorChar = '─'
	LifeChar      = '♥'
)

const (
	minScreenW = 24
	minScreenH = 10
	hudRows    = 2 // Status line and separator
)

// alienColors cycles by formation row, top row first.
var alienColors = []core.Color{
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorBrightGreen,
	core.ColorYellow,
	core.ColorOrange,
}

// layout maps playfield units to screen cells. The field is stretched over
// every row below the HUD, so cells are not square.
type layout struct {
	screenW, screenH int
	top              int
	sx, sy           float64
	tooSmall         bool
}

func newLayout(screenW, screenH int, p sim.Params) layout {
	l := layout{
		screenW:  screenW,
		screenH:  screenH,
		top:      hudRows,
		tooSmall: screenW < minScreenW || screenH < minScreenH,
	}
	if l.tooSmall {
		return l
	}
	l.sx = float64(screenW) / p.FieldW
	l.sy = float64(screenH-hudRows) / p.FieldH
	return l
}

// cells converts a box in units to the cells it covers. Every visible
// entity covers at least one cell.
func (l layout) cells(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(x * l.sx))
	y0 := int(math.Floor(y * l.sy))
	x1 := max(x0+1, int(math.Ceil((x+w)*l.sx)))
	y1 := max(y0+1, int(math.Ceil((y+h)*l.sy)))
	return core.NewRect(x0, y0+l.top, x1-x0, y1-y0)
}

// point converts a unit position to a single cell.
func (l layout) point(x, y float64) (int, int) {
	return int(math.Floor(x * l.sx)), int(math.Floor(y*l.sy)) + l.top
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)
	g.renderAliens(dst)
	g.renderProjectiles(dst)
	if g.shipVisible() {
		g.renderShip(dst)
	}
	g.renderOverlay(dst)
}

// renderHUD draws score, lives, level and best score.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.engine.Score()))

	lives := "Lives: " + strings.Repeat(string(LifeChar), max(g.engine.Lives(), 0))
	dst.DrawTextColored(dst.Width()/2-len([]rune(lives))/2, 0, lives, core.ColorRed)

	right := fmt.Sprintf("Level: %d  Best: %d", g.engine.Level(), max(g.best, g.engine.Score()))
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	dst.DrawHLine(0, 1, dst.Width(), SeparatorChar)
}

func (g *Game) renderAliens(dst *core.Screen) {
	cols := max(g.engine.Params().AlienCols, 1)
	for _, a := range g.engine.Aliens() {
		color := alienColors[(a.ID/cols)%len(alienColors)]
		dst.DrawRectColored(g.layout.cells(a.X, a.Y, a.W, a.H), AlienChar, color)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen) {
	for _, m := range g.engine.Projectiles() {
		x, y := g.layout.point(m.X, m.Y)
		if m.Owner == sim.OwnerPlayer {
			dst.SetColored(x, y, PlayerMissile, core.ColorBrightWhite)
		} else {
			dst.SetColored(x, y, AlienMissile, core.ColorBrightRed)
		}
	}
}

func (g *Game) renderShip(dst *core.Screen) {
	p := g.engine.Player()
	r := g.layout.cells(p.X, p.Y, p.W, p.H)
	dst.DrawRectColored(r, ShipChar, core.ColorGreen)
	if r.H > 1 || r.W > 2 {
		nx, _ := g.layout.point(p.X+p.W/2, p.Y)
		dst.SetColored(nx, r.Y, ShipNoseChar, core.ColorBrightGreen)
	}
}

// renderOverlay draws the pause and game over boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.engine.IsGameOver():
		lines := []string{
			"GAME OVER",
			"",
			reasonText(g.engine.GameOverReason()),
			fmt.Sprintf("Score: %d  Level: %d", g.engine.Score(), g.engine.Level()),
		}
		if g.engine.Score() > g.best {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "", "R restart  Q quit")
		drawPanel(dst, lines)
	case g.paused:
		drawPanel(dst, []string{"PAUSED", "", "P resume  Q quit"})
	}
}

func reasonText(r sim.GameOverReason) string {
	switch r {
	case sim.ReasonInvasion:
		return "The aliens reached your ship"
	case sim.ReasonLivesExhausted:
		return "Your ship was destroyed"
	default:
		return ""
	}
}

// drawPanel draws centered lines inside a cleared box.
func drawPanel(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w := min(width+4, dst.Width())
	h := min(len(lines)+2, dst.Height())
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
