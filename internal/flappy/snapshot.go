package flappy

import "github.com/vovakirdan/flappy-tui/internal/core"

// Snapshot is a read-only view of the simulation using primitive types only.
// Floats are scaled by 1000 so comparisons are stable.
type Snapshot struct {
	Mode      core.Mode
	Score     int
	HighScore int
	AvatarY   int // Scaled by 1000
	VelY      int // Scaled by 1000
	Tilt      int // Scaled by 1000
	Pairs     int
	FirstX    int // Scaled by 1000; 0 when no pairs in flight
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:      g.mode,
		Score:     g.score,
		HighScore: g.highScore,
		AvatarY:   int(g.world.Avatar.Y * 1000),
		VelY:      int(g.world.Avatar.VelY * 1000),
		Tilt:      int(g.world.Avatar.Tilt * 1000),
		Pairs:     len(g.spawner.Pairs()),
	}
	if pairs := g.spawner.Pairs(); len(pairs) > 0 {
		snap.FirstX = int(pairs[0].X * 1000)
	}
	return snap
}
