package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

// stubGame carries a field so it has nonzero size: the Go runtime gives
// all zero-size allocations the same address, which would make distinct
// instances compare equal below.
type stubGame struct{ id int }

func (s *stubGame) ID() string               { return "stub" }
func (s *stubGame) Title() string            { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Render(*core.Screen)      {}
func (s *stubGame) State() core.GameState    { return core.GameState{} }
func (s *stubGame) Step(core.InputFrame, time.Duration) core.StepResult {
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func() Game { return &stubGame{} })

	if !Exists("stub") {
		t.Error("Exists should report a registered game")
	}
	if Exists("missing") {
		t.Error("Exists should not report an unregistered game")
	}

	g, err := Create("stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub" {
		t.Errorf("created game ID = %q, expected \"stub\"", g.ID())
	}

	// Each Create returns a fresh instance.
	g2, err := Create("stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g == g2 {
		t.Error("Create should return a new instance per call")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create should fail for an unregistered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()

	Register("dup", func() Game { return &stubGame{} })
	Register("dup", func() Game { return &stubGame{} })
}
