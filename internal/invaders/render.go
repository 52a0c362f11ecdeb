package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	ShipChar       = '▲'
	AlienChar      = 'W'
	ProjectileChar = '|'
)

// HUDRows is the number of screen rows above the field.
const HUDRows = 1

// Render draws the current frame. Row 0 holds the HUD; the field starts on
// the row below it.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(dst, g.Frame())
}

// RenderFrame draws a frame onto dst.
func RenderFrame(dst *core.Screen, f Frame) {
	dst.Clear()

	renderHUD(dst, f)

	for _, a := range f.Aliens {
		drawBox(dst, a, AlienChar, core.ColorGreen)
	}
	for _, p := range f.Projectiles {
		drawBox(dst, p, ProjectileChar, core.ColorYellow)
	}
	drawBox(dst, f.Player, ShipChar, core.ColorCyan)

	switch {
	case f.ShowStart:
		renderStartButton(dst, f)
	case f.Paused:
		dst.DrawTextCentered(HUDRows+f.FieldH/2, " Ship lost ")
	}
}

// renderHUD draws the top status line: score and high score on the left,
// level and ships on the right.
func renderHUD(dst *core.Screen, f Frame) {
	left := fmt.Sprintf(" Score: %d  High: %d", f.Score, f.HighScore)
	right := fmt.Sprintf("Level: %d  Ships: %d ", f.Level, f.ShipsLeft)

	dst.DrawTextColored(0, 0, left, core.ColorWhite)
	dst.DrawTextColored(dst.Width()-len(right), 0, right, core.ColorWhite)
}

// renderStartButton draws the start control with its label centered inside.
func renderStartButton(dst *core.Screen, f Frame) {
	r := f.StartButton
	r.Y += HUDRows
	dst.DrawBox(r, core.ColorRed)

	label := f.StartLabel
	if len(label) > r.W-2 && r.W > 2 {
		label = label[:r.W-2]
	}
	cx, cy := r.Center()
	dst.DrawTextColored(cx-len(label)/2, cy, label, core.ColorWhite)
}

// drawBox fills the cells covered by b, shifted below the HUD.
func drawBox(dst *core.Screen, b core.Box, ch rune, c core.Color) {
	r := b.Cells()
	r.Y += HUDRows
	dst.DrawRect(r, ch, c)
}
