package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Visual characters for rendering
const (
	PipeBody  = '█'
	PipeRim   = '▓'
	BirdBody  = '●'
	BirdBeak  = '>'
	WingLevel = '='
	WingUp    = '/'
	WingDown  = '\\'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, p := range g.spawner.Pairs() {
		g.drawPipe(dst, g.spawner.Upper(p), false)
		g.drawPipe(dst, g.spawner.Lower(p), true)
	}

	g.drawBird(dst)

	hud := fmt.Sprintf(" Score: %d  Best: %d ", g.score, g.highScore)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)

	switch {
	case g.mode == core.ModeReady:
		g.drawCenteredMessage(dst, "F L A P P Y", "Press Space to flap")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.mode == core.ModeGameOver:
		sub := fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", g.score, g.highScore)
		g.drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

// drawPipe renders one pipe segment with a rim row facing the gap.
func (g *Game) drawPipe(dst *core.Screen, r core.RectF, lower bool) {
	cell := r.Cell()
	if cell.H <= 0 || cell.W <= 0 {
		return
	}
	dst.DrawRectColored(cell, PipeBody, core.ColorGreen)

	rimY := cell.Bottom() - 1 // Upper segment: rim on its bottom edge
	if lower {
		rimY = cell.Y
	}
	for x := cell.X; x < cell.Right(); x++ {
		dst.SetColored(x, rimY, PipeRim, core.ColorBrightGreen)
	}
}

// drawBird renders the avatar at its current position, with the wing pose
// picked from the tilt derived by the physics step.
func (g *Game) drawBird(dst *core.Screen) {
	av := g.world.Avatar
	cx := int(av.X)
	cy := int(av.Y)

	wing := WingLevel
	switch {
	case av.Tilt <= -10:
		wing = WingUp
	case av.Tilt >= 30:
		wing = WingDown
	}

	dst.SetColored(cx-1, cy, wing, core.ColorYellow)
	dst.SetColored(cx, cy, BirdBody, core.ColorBrightYellow)
	dst.SetColored(cx+1, cy, BirdBeak, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
