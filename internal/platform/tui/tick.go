// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, frame timing, and score
// persistence around the pure game logic.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. It carries the wall
// clock so the model can measure the real per-tick delta; the game clamps
// that delta before integrating, which keeps long stalls harmless.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
