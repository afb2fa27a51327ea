package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

const (
	testScreenW = 80
)

func newTestSpawner(seed int64) *Spawner {
	return NewSpawner(seed, testScreenW, testScreenH, config.Default())
}

func TestSpawnerFirstTickSpawns(t *testing.T) {
	s := newTestSpawner(1)

	if len(s.Pairs()) != 0 {
		t.Fatalf("fresh spawner has %d pairs, expected 0", len(s.Pairs()))
	}

	s.Update(0, 0)

	pairs := s.Pairs()
	if len(pairs) != 1 {
		t.Fatalf("after first update: %d pairs, expected 1", len(pairs))
	}
	if pairs[0].X != testScreenW+s.PipeWidth() {
		t.Errorf("new pair at x=%v, expected off-screen at %v", pairs[0].X, testScreenW+s.PipeWidth())
	}
	if pairs[0].Scored {
		t.Error("new pair should start unscored")
	}
}

func TestSpawnerInterval(t *testing.T) {
	cfg := config.Default()
	cfg.Obstacles.SpawnIntervalMs = 2000

	s := NewSpawner(1, testScreenW, testScreenH, cfg)
	s.spawned = true
	s.lastSpawn = 1000

	// 2100ms elapsed, past the interval
	s.Update(3100, 0)
	if len(s.Pairs()) != 1 {
		t.Fatalf("expected 1 pair after interval elapsed, got %d", len(s.Pairs()))
	}
	if s.lastSpawn != 3100 {
		t.Errorf("lastSpawn = %v, expected 3100", s.lastSpawn)
	}

	// Only 100ms since that spawn
	s.Update(3200, 0)
	if len(s.Pairs()) != 1 {
		t.Errorf("expected no spawn 100ms after previous, got %d pairs", len(s.Pairs()))
	}
}

func TestSpawnerScroll(t *testing.T) {
	cfg := config.Default()
	s := NewSpawner(1, testScreenW, testScreenH, cfg)
	s.Update(0, 0)
	startX := s.Pairs()[0].X

	s.Update(100, RefFrameMs)

	expected := startX - cfg.Physics.ScrollSpeed
	if s.Pairs()[0].X != expected {
		t.Errorf("after one frame pair at x=%v, expected %v", s.Pairs()[0].X, expected)
	}
}

func TestSpawnerGapBounds(t *testing.T) {
	cfg := config.Default()
	s := NewSpawner(99, testScreenW, testScreenH, cfg)

	for i := 0; i < 1000; i++ {
		s.spawn(float64(i))
	}

	for _, p := range s.Pairs() {
		if p.GapTop < cfg.Obstacles.MinSegment {
			t.Fatalf("gap top %v leaves upper segment shorter than %v", p.GapTop, cfg.Obstacles.MinSegment)
		}
		if p.GapTop+cfg.Obstacles.GapSize > testScreenH-cfg.Obstacles.MinSegment {
			t.Fatalf("gap bottom %v leaves lower segment shorter than %v",
				p.GapTop+cfg.Obstacles.GapSize, cfg.Obstacles.MinSegment)
		}

		// The gap height is the fixed config constant, never randomized.
		upper := s.Upper(p)
		lower := s.Lower(p)
		gap := lower.Y - (upper.Y + upper.H)
		if math.Abs(gap-cfg.Obstacles.GapSize) > 1e-9 {
			t.Fatalf("gap height %v, expected %v", gap, cfg.Obstacles.GapSize)
		}
	}
}

func TestSpawnerTinyScreenPinsGap(t *testing.T) {
	// Screen too short for margins plus gap; the gap pins to the top margin
	// instead of producing a negative random span.
	cfg := config.Default()
	s := NewSpawner(1, testScreenW, 10, cfg)

	for i := 0; i < 100; i++ {
		s.spawn(float64(i))
	}
	for _, p := range s.Pairs() {
		if p.GapTop != cfg.Obstacles.MinSegment {
			t.Fatalf("gap top %v on tiny screen, expected pinned at %v", p.GapTop, cfg.Obstacles.MinSegment)
		}
	}
}

func TestSpawnerRetiresPairsWhole(t *testing.T) {
	s := newTestSpawner(1)
	s.spawned = true

	s.pairs = []PipePair{
		{ID: 1, X: -s.PipeWidth() + 0.1, GapTop: 5}, // About to cross the retire line
		{ID: 2, X: 40, GapTop: 8},
	}
	s.lastSpawn = 1000

	if got := len(s.Rects()); got != 4 {
		t.Fatalf("before retirement: %d rects, expected 4", got)
	}

	// One frame of scroll pushes pair 1 past -pipeWidth.
	s.Update(1000, RefFrameMs)

	pairs := s.Pairs()
	if len(pairs) != 1 || pairs[0].ID != 2 {
		t.Fatalf("after retirement: pairs = %+v, expected only pair 2", pairs)
	}
	// Both segments retired together.
	if got := len(s.Rects()); got != 2 {
		t.Errorf("after retirement: %d rects, expected 2", got)
	}
}

func TestSpawnerDeterministicBySeed(t *testing.T) {
	a := newTestSpawner(42)
	b := newTestSpawner(42)

	for i := 0; i < 50; i++ {
		a.spawn(float64(i))
		b.spawn(float64(i))
	}

	pa, pb := a.Pairs(), b.Pairs()
	for i := range pa {
		if pa[i].GapTop != pb[i].GapTop {
			t.Fatalf("spawn %d: gap tops diverged (%v vs %v) for equal seeds", i, pa[i].GapTop, pb[i].GapTop)
		}
	}

	c := newTestSpawner(43)
	c.spawn(0)
	if c.Pairs()[0].GapTop == pa[0].GapTop {
		t.Error("different seeds produced identical first gap (possible, but suspicious)")
	}
}

func TestSpawnerSegmentRects(t *testing.T) {
	s := newTestSpawner(1)
	p := PipePair{ID: 1, X: 30, GapTop: 6}

	upper := s.Upper(p)
	if upper.X != 30 || upper.Y != 0 || upper.W != s.PipeWidth() || upper.H != 6 {
		t.Errorf("upper rect = %+v", upper)
	}

	lower := s.Lower(p)
	gapSize := config.Default().Obstacles.GapSize
	if lower.X != 30 || lower.Y != 6+gapSize || lower.H != testScreenH-(6+gapSize) {
		t.Errorf("lower rect = %+v", lower)
	}
}
