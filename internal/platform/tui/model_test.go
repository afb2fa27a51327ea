package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/flappy"
)

// modelHarness drives a GameModel through Update messages with a synthetic
// clock, the way the Bubble Tea runtime would.
type modelHarness struct {
	model GameModel
	now   time.Time
}

func newModelHarness(t *testing.T) *modelHarness {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewGameModel(flappy.New(), nil, cfg, nil)
	m.Init()
	return &modelHarness{model: m, now: time.Now()}
}

func (h *modelHarness) send(msg tea.Msg) {
	updated, _ := h.model.Update(msg)
	h.model = updated.(GameModel)
}

func (h *modelHarness) key(msg tea.KeyMsg) {
	h.send(msg)
}

func (h *modelHarness) tick() {
	h.now = h.now.Add(17 * time.Millisecond)
	h.send(TickMsg(h.now))
}

var (
	keySpace   = tea.KeyMsg{Type: tea.KeySpace}
	keyRestart = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
)

// playUntilGameOver starts a run and lets the avatar fall out of bounds.
func (h *modelHarness) playUntilGameOver(t *testing.T) {
	t.Helper()
	h.key(keySpace)
	h.tick()

	for i := 0; i < 500; i++ {
		if h.model.gameState.GameOver() {
			return
		}
		h.tick()
	}
	t.Fatal("game never ended while falling unattended")
}

func TestModelRunsSession(t *testing.T) {
	h := newModelHarness(t)

	h.key(keySpace)
	h.tick()
	if h.model.gameState.Mode != core.ModePlaying {
		t.Fatalf("mode after flap tick = %v, expected Playing", h.model.gameState.Mode)
	}

	h.playUntilGameOver(t)
}

func TestModelResizeDuringGameOverAppliesOnRestart(t *testing.T) {
	h := newModelHarness(t)
	h.playUntilGameOver(t)

	// Grow the terminal while the game-over screen is up.
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	if !h.model.gameState.GameOver() {
		t.Fatal("resize during game over should not end the game-over screen")
	}

	// Restart, then play one spawn tick on the new geometry.
	h.key(keyRestart)
	h.tick()
	if h.model.gameState.GameOver() {
		t.Fatal("restart after resize did not leave game over")
	}
	h.key(keySpace)
	h.tick()
	h.tick()

	// The session must use the resized playfield: pipes spawn just past the
	// 120-cell right edge, so nothing is on screen yet. A run still sized to
	// the old 80-cell width would pop its first pipe in mid-screen.
	h.model.game.Render(h.model.screen)
	if w := h.model.screen.Width(); w != 120 {
		t.Fatalf("screen width = %d, expected 120", w)
	}
	if strings.ContainsRune(h.model.screen.String(), flappy.PipeBody) {
		t.Error("pipe visible right after restart: session still uses pre-resize width")
	}

	// The out-of-bounds floor moved too: the avatar restarts centered on the
	// 40-cell height and must survive falling past the old 24-cell bound.
	for i := 0; i < 8; i++ {
		h.tick()
	}
	if h.model.gameState.GameOver() {
		t.Error("session ended at the pre-resize bound after restart")
	}
}

func TestModelResizeWhilePlayingRestartsRun(t *testing.T) {
	h := newModelHarness(t)
	h.key(keySpace)
	h.tick()
	h.tick()

	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})

	state := h.model.game.State()
	if state.Mode != core.ModeReady {
		t.Errorf("mode after mid-session resize = %v, expected Ready", state.Mode)
	}
	if state.Score != 0 {
		t.Errorf("score after mid-session resize = %d, expected 0", state.Score)
	}
}
