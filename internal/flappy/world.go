package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// RefFrameMs is the reference frame duration (60 fps). Every speed and
// acceleration in the config is expressed per reference frame, and each
// physics step is clamped to at most one reference frame of simulated time.
const RefFrameMs = 1000.0 / 60.0

// Body is the avatar's rigid state: a circle with vertical velocity and a
// presentation tilt. Obstacles are static and never go through a Body; their
// motion is imperative translation in the Spawner.
type Body struct {
	X, Y   float64 // Center, in cells
	VelY   float64 // Vertical velocity, cells per reference frame
	Radius float64
	Tilt   float64 // Degrees; negative = nose up
}

// Circle returns the body's collision circle.
func (b *Body) Circle() core.CircleF {
	return core.CircleF{X: b.X, Y: b.Y, R: b.Radius}
}

// StepOutcome reports the facts observed during one physics step.
// The step never transitions game state itself; the game reducer consumes
// this synchronously.
type StepOutcome struct {
	Collided    bool
	OutOfBounds bool
}

// World owns gravity, the avatar body, and simulation time accounting.
// Exactly one World exists per session; it is replaced wholesale together
// with its avatar on reset, never mutated piecemeal across sessions.
type World struct {
	Avatar *Body
	Time   float64 // Accumulated clamped simulation time, ms

	gravity  float64 // Cells per reference frame², downward
	maxFall  float64
	maxRise  float64
	tiltRate float64
	minTilt  float64
	maxTilt  float64
	screenH  float64
	lastStep float64 // Clamped delta of the most recent step, ms
}

// NewWorld creates a world with the avatar at the canonical start position:
// vertically centered, zero velocity, level tilt.
func NewWorld(cfg config.Config, screenH int) *World {
	return &World{
		Avatar: &Body{
			X:      cfg.Player.X,
			Y:      float64(screenH) / 2,
			Radius: cfg.Player.Radius,
		},
		gravity:  cfg.Physics.Gravity,
		maxFall:  cfg.Physics.MaxFallSpeed,
		maxRise:  cfg.Physics.MaxRiseSpeed,
		tiltRate: cfg.Physics.TiltRate,
		minTilt:  cfg.Physics.FlapTilt,
		maxTilt:  cfg.Physics.MaxDiveTilt,
		screenH:  float64(screenH),
	}
}

// clampDelta bounds a raw frame delta before integration. Large pauses
// (terminal suspended, debugger stalls) must not teleport the simulation,
// and a negative or NaN delta is treated as zero rather than propagated.
func clampDelta(deltaMs float64) float64 {
	if math.IsNaN(deltaMs) || deltaMs < 0 {
		return 0
	}
	if deltaMs > RefFrameMs {
		return RefFrameMs
	}
	return deltaMs
}

// Step advances the simulation by one clamped delta: integrates gravity and
// velocity, clamps the avatar's vertical velocity, derives the tilt, and
// tests the avatar against every obstacle segment and the vertical bounds.
// Mutates only body state; reports facts without transitioning anything.
func (w *World) Step(deltaMs float64, obstacles []core.RectF) StepOutcome {
	dt := clampDelta(deltaMs)
	w.lastStep = dt
	w.Time += dt

	frames := dt / RefFrameMs
	av := w.Avatar

	av.VelY += w.gravity * frames
	av.VelY = core.ClampF(av.VelY, w.maxRise, w.maxFall)
	av.Y += av.VelY * frames

	// Tilt follows post-clamp velocity monotonically within a fixed range.
	av.Tilt = core.ClampF(av.VelY*w.tiltRate, w.minTilt, w.maxTilt)

	var out StepOutcome
	circle := av.Circle()
	for _, r := range obstacles {
		if circle.OverlapsRect(r) {
			out.Collided = true
			break
		}
	}
	if av.Y < 0 || av.Y > w.screenH {
		out.OutOfBounds = true
	}
	return out
}

// LastStepMs returns the clamped delta used by the most recent step.
// The spawner advances by the same amount so obstacle motion stays in
// lockstep with the avatar regardless of frame jitter.
func (w *World) LastStepMs() float64 {
	return w.lastStep
}
