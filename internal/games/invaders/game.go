// Package invaders registers the alien invaders game with the arcade
// platform. It loads the game config, turns input frames into engine calls
// and draws the playfield into the cell screen.
package invaders

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	sim "github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameID is the registry and score storage key.
const GameID = "invaders"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select the
// config as written.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game adapts the simulation engine to registry.Game.
type Game struct {
	engine *sim.Engine
	cfg    config.InvadersConfig

	runtime core.RuntimeConfig
	preset  config.DifficultyPreset // overrides difficultyPreset when set
	paused  bool
	best    int

	// Hit feedback: the ship blinks for hitTicks after a hit.
	blinkTicks int
	hitTicks   int

	layout layout
}

// New creates a new invaders game instance. Reset must be called before use.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invaders"
}

// Reset loads the config and starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = fallbackConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyInvadersPreset(&cfg, preset)
	}

	engine, cfg, err := newEngine(cfg, runtime.Seed)
	if err != nil {
		if g.engine == nil {
			panic(err)
		}
		// Keep playing the previous game rather than drop the session.
		g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, g.engine.Params())
		return
	}
	g.cfg = cfg
	g.engine = engine

	g.paused = false
	g.hitTicks = 0
	g.blinkTicks = blinkTicks(g.cfg.Gameplay.HitBlinkMillis, runtime.TickRate)
	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, g.engine.Params())
}

// Resize recomputes the cell mapping without touching the game state.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.layout = newLayout(screenW, screenH, g.engine.Params())
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.best = score
}

// SetDifficulty selects a preset for this instance only. SSH sessions share
// the process, so they cannot use SetDifficultyPreset.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// fallbackConfig is used when the config file cannot be loaded or does not
// build an engine.
var fallbackConfig = config.DefaultInvadersConfig

// newEngine builds an engine from cfg, falling back to fallbackConfig when
// cfg is rejected. It returns the config the engine was built from.
func newEngine(cfg config.InvadersConfig, seed int64) (*sim.Engine, config.InvadersConfig, error) {
	engine, err := sim.NewSeeded(paramsFromConfig(cfg), seed)
	if err == nil {
		return engine, cfg, nil
	}
	// Presets keep a valid config valid; fall back like a bad config file.
	cfg = fallbackConfig()
	engine, fbErr := sim.NewSeeded(paramsFromConfig(cfg), seed)
	if fbErr != nil {
		return nil, cfg, fmt.Errorf("invaders: building engine: %w", errors.Join(err, fbErr))
	}
	return engine, cfg, nil
}

// paramsFromConfig converts the file config to engine tuning.
func paramsFromConfig(cfg config.InvadersConfig) sim.Params {
	return sim.Params{
		FieldW:             cfg.Field.Width,
		FieldH:             cfg.Field.Height,
		Lives:              cfg.Gameplay.Lives,
		PlayerW:            cfg.Player.Width,
		PlayerH:            cfg.Player.Height,
		PlayerOffsetX:      cfg.Player.SpawnOffsetX,
		PlayerOffsetY:      cfg.Player.SpawnOffsetY,
		AlienRows:          cfg.Aliens.Rows,
		AlienCols:          cfg.Aliens.Cols,
		AlienSpacing:       cfg.Aliens.Spacing,
		AlienW:             cfg.Aliens.Width,
		AlienH:             cfg.Aliens.Height,
		AlienSpeed:         cfg.Aliens.Speed,
		ShootChance:        cfg.Aliens.ShootChance,
		MissileW:           cfg.Missiles.Width,
		MissileH:           cfg.Missiles.Height,
		PlayerMissileSpeed: cfg.Missiles.PlayerSpeed,
		AlienMissileSpeed:  cfg.Missiles.AlienSpeed,
		PointsPerKill:      cfg.Gameplay.PointsPerKill,
		LevelSpeedFactor:   cfg.Gameplay.LevelSpeedFactor,
	}
}

// blinkTicks converts one blink duration to ticks, at least one.
func blinkTicks(millis, tickRate int) int {
	return max(1, int(math.Round(float64(millis)*float64(tickRate)/1000)))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.engine.IsGameOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.engine.IsGameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.engine.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	step := g.cfg.Player.Step
	if dx := in.Count(core.ActionRight) - in.Count(core.ActionLeft); dx != 0 {
		g.engine.MovePlayer(float64(dx) * step)
	}
	if in.Has(core.ActionFire) {
		g.engine.PlayerShoot()
	}

	if g.hitTicks > 0 {
		g.hitTicks--
	}
	g.engine.Tick()

	var result core.StepResult
	for _, ev := range g.engine.DrainEvents() {
		switch ev.Kind {
		case sim.EventPlayerHit:
			g.hitTicks = g.cfg.Gameplay.HitBlinks * g.blinkTicks
		case sim.EventLevelUp:
			result.LeveledUp = true
		case sim.EventGameOver:
			result.Ended = true
		}
	}
	result.State = g.State()
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.engine.Score(),
		Lives:    g.engine.Lives(),
		Level:    g.engine.Level(),
		GameOver: g.engine.IsGameOver(),
		Paused:   g.paused,
	}
	if st.GameOver {
		st.EndReason = g.engine.GameOverReason().String()
	}
	return st
}

// Snapshot returns the engine snapshot for determinism testing.
func (g *Game) Snapshot() sim.Snapshot {
	return g.engine.Snapshot()
}

// shipVisible reports whether the ship is drawn this tick. During hit
// feedback it alternates every blinkTicks, starting hidden.
func (g *Game) shipVisible() bool {
	if g.hitTicks <= 0 {
		return true
	}
	elapsed := g.cfg.Gameplay.HitBlinks*g.blinkTicks - g.hitTicks
	return (elapsed/g.blinkTicks)%2 == 1
}

// Register the game
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

var (
	_ registry.Game            = (*Game)(nil)
	_ registry.HighScoreAware  = (*Game)(nil)
	_ registry.Resizable       = (*Game)(nil)
	_ registry.DifficultyAware = (*Game)(nil)
)
