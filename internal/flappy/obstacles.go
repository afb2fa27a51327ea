package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// PipePair is one obstacle: an upper and a lower segment sharing a
// horizontal position, separated by a fixed-height gap. Pairs carry a stable
// id and a scored flag so each pass counts exactly once. Both segments are
// derived from the pair and always retire together.
type PipePair struct {
	ID     uint64
	X      float64 // Left edge of both segments
	GapTop float64 // Top of the gap (bottom edge of the upper segment)
	Scored bool
}

// Spawner owns the ordered collection of in-flight pipe pairs: it spawns a
// new pair on a fixed interval, translates existing pairs left each step,
// and retires pairs that have fully left the screen.
type Spawner struct {
	pairs  []PipePair
	rng    *rand.Rand
	nextID uint64

	screenW float64
	screenH float64
	cfg     config.Obstacles
	speed   float64 // Cells per reference frame

	lastSpawn float64 // World time of the most recent spawn, ms
	spawned   bool    // False until the first spawn of the session
}

// NewSpawner creates a spawner with no in-flight pairs and an unset spawn
// timer, so the first Playing tick spawns immediately.
func NewSpawner(seed int64, screenW, screenH int, cfg config.Config) *Spawner {
	return &Spawner{
		pairs:   make([]PipePair, 0, 8),
		rng:     rand.New(rand.NewSource(seed)),
		screenW: float64(screenW),
		screenH: float64(screenH),
		cfg:     cfg.Obstacles,
		speed:   cfg.Physics.ScrollSpeed,
	}
}

// Update advances, retires, and spawns pairs for one tick. deltaMs must be
// the clamped delta the physics step used, keeping obstacle speed
// frame-rate independent. Only called while the game is in Playing mode.
func (s *Spawner) Update(worldTime, deltaMs float64) {
	dx := s.speed * deltaMs / RefFrameMs
	for i := range s.pairs {
		s.pairs[i].X -= dx
	}

	// Retire pairs whose trailing edge has crossed -pipeWidth.
	// A pair is removed whole; its segments never outlive each other.
	alive := s.pairs[:0]
	for _, p := range s.pairs {
		if p.X >= -s.cfg.PipeWidth {
			alive = append(alive, p)
		}
	}
	s.pairs = alive

	if !s.spawned || worldTime-s.lastSpawn >= s.cfg.SpawnIntervalMs {
		s.spawn(worldTime)
	}
}

// spawn creates one pair just off the right edge. The gap's vertical
// position is uniform over the range that keeps both segments at least
// MinSegment tall; the gap height itself is the fixed config constant.
func (s *Spawner) spawn(worldTime float64) {
	span := s.screenH - 2*s.cfg.MinSegment - s.cfg.GapSize
	if span < 0 {
		span = 0 // Screen shorter than margins+gap; pin the gap to the top margin
	}
	gapTop := s.cfg.MinSegment + s.rng.Float64()*span

	s.nextID++
	s.pairs = append(s.pairs, PipePair{
		ID:     s.nextID,
		X:      s.screenW + s.cfg.PipeWidth,
		GapTop: gapTop,
	})
	s.lastSpawn = worldTime
	s.spawned = true
}

// Pairs returns the live pair slice, ordered oldest first.
// The scorer mutates the Scored flags in place.
func (s *Spawner) Pairs() []PipePair {
	return s.pairs
}

// Upper returns the collision rect of a pair's upper segment.
func (s *Spawner) Upper(p PipePair) core.RectF {
	return core.NewRectF(p.X, 0, s.cfg.PipeWidth, p.GapTop)
}

// Lower returns the collision rect of a pair's lower segment.
func (s *Spawner) Lower(p PipePair) core.RectF {
	top := p.GapTop + s.cfg.GapSize
	return core.NewRectF(p.X, top, s.cfg.PipeWidth, s.screenH-top)
}

// Rects returns the collision rects of every in-flight segment,
// two per pair.
func (s *Spawner) Rects() []core.RectF {
	rects := make([]core.RectF, 0, len(s.pairs)*2)
	for _, p := range s.pairs {
		rects = append(rects, s.Upper(p), s.Lower(p))
	}
	return rects
}

// PipeWidth returns the configured segment width.
func (s *Spawner) PipeWidth() float64 {
	return s.cfg.PipeWidth
}
