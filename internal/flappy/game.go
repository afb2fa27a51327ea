// Package flappy implements a single-screen flappy arcade game: the avatar
// falls under gravity, a flap applies an upward impulse, pipe pairs scroll
// in from the right, and the session ends on collision or out-of-bounds.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/registry"
)

// Game drives the session state machine (Ready -> Playing -> GameOver ->
// Ready) and coordinates the physics world, spawner, and scorer in fixed
// order each tick. All shared mutable state is owned here; the platform
// only reads snapshots through Render and State.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	seeds   *rand.Rand // Stream of per-session spawner seeds

	world   *World
	spawner *Spawner

	mode      core.Mode
	score     int
	highScore int
	paused    bool
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset initializes the game from scratch: loads config, seeds the session
// stream, adopts the persisted high score, and starts a fresh session in
// Ready mode.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg

	g.seeds = rand.New(rand.NewSource(runtime.Seed))
	if runtime.HighScore > g.highScore {
		g.highScore = runtime.HighScore
	}

	g.resetSession()
}

// resetSession replaces the World, avatar, and obstacle set wholesale.
// The old world is dropped as one value, so nothing from the previous
// session (bodies, pairs, spawn timer) can leak into the new one. The high
// score is the only state that survives.
func (g *Game) resetSession() {
	g.world = NewWorld(g.cfg, g.runtime.ScreenH)
	g.spawner = NewSpawner(g.seeds.Int63(), g.runtime.ScreenW, g.runtime.ScreenH, g.cfg)
	g.mode = core.ModeReady
	g.score = 0
	g.paused = false
}

// Step advances the game by one tick. delta is the wall-clock time since the
// previous tick; the world clamps it before integration. Inputs received in
// a state where they are not legal are silently ignored.
func (g *Game) Step(in core.InputFrame, delta time.Duration) core.StepResult {
	switch g.mode {
	case core.ModeReady:
		// The first flap both starts the session and flaps.
		if in.Has(core.ActionFlap) {
			g.mode = core.ModePlaying
			g.flap()
		}
		return core.StepResult{State: g.State()}

	case core.ModeGameOver:
		if in.Has(core.ActionRestart) {
			g.resetSession()
		}
		return core.StepResult{State: g.State()}
	}

	// Playing.
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionFlap) {
		g.flap()
	}

	deltaMs := float64(delta) / float64(time.Millisecond)
	outcome := g.world.Step(deltaMs, g.spawner.Rects())
	g.spawner.Update(g.world.Time, g.world.LastStepMs())

	av := g.world.Avatar
	g.score = scorePasses(g.spawner.Pairs(), g.spawner.PipeWidth(), av.X+av.Radius, g.score)

	if outcome.Collided || outcome.OutOfBounds {
		g.mode = core.ModeGameOver
		if g.score > g.highScore { // Strict: ties do not overwrite
			g.highScore = g.score
		}
		return core.StepResult{State: g.State(), Ended: true}
	}

	return core.StepResult{State: g.State()}
}

// flap overrides the avatar's vertical velocity with the flap impulse and
// sets the fixed flap tilt. Override, not additive: repeated taps cannot
// stack into an unbounded ascent.
func (g *Game) flap() {
	g.world.Avatar.VelY = g.cfg.Physics.FlapImpulse
	g.world.Avatar.Tilt = g.cfg.Physics.FlapTilt
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mode:      g.mode,
		Score:     g.score,
		HighScore: g.highScore,
		Paused:    g.paused,
	}
}

// Register the game with the registry.
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
