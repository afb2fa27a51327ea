package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/registry"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game. It is the frame
// clock of the simulation: each TickMsg carries the wall clock, the model
// measures the elapsed delta and feeds it to Step. Persistence is
// fire-and-forget in a goroutine so a slow disk never stalls a tick.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time

	// Set when a resize arrives during game over; the session is reset on
	// the next restart so the new run plays on the current geometry.
	pendingResize bool

	quitting bool
}

// NewGameModel creates a model for the given game. store may be nil, in
// which case scores are not persisted.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "flappy"})
	}

	// Persisted high score; absence or failure degrades to 0.
	if store != nil {
		hs, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		} else {
			cfg.HighScore = hs
		}
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Keys are collected into the input
// frame and consumed by the next tick; input never mutates game state
// mid-step.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if NewKeyMapper().MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Mid-session resizes restart the run; the playfield geometry changed.
	// During game over the reset is deferred to the restart, otherwise the
	// game-over screen (and its score) would be wiped.
	if m.gameState.GameOver() {
		m.pendingResize = true
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick)
	}
	m.lastTick = now

	// A restart after a game-over resize must go through Reset: the game's
	// internal restart reuses the runtime captured at the last Reset, which
	// still has the old playfield dimensions.
	if m.pendingResize && m.gameState.GameOver() && m.inputFrame.Has(core.ActionRestart) {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.pendingResize = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame, delta)
	m.gameState = result.State

	// The session just ended: persist the final score without blocking the
	// loop. Failures are logged and never feed back into gameplay.
	if result.Ended && result.State.Score > 0 && m.store != nil {
		store, logger := m.store, m.logger
		gameID, score := m.game.ID(), result.State.Score
		go func() {
			if _, err := store.SaveScore(gameID, score); err != nil {
				logger.Warn("could not save score", "game", gameID, "score", score, "error", err)
			}
		}()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
