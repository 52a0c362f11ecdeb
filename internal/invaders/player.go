package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Intent is the player's current movement intent, toggled by discrete
// start/stop input events and consumed once per tick.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
}

// Player is the ship at the bottom of the field.
type Player struct {
	X, Y   float64
	W, H   float64
	Intent Intent
}

// newPlayer creates a ship of the given size centered at the field bottom.
func newPlayer(w, h, fieldW, fieldH int) *Player {
	p := &Player{W: float64(w), H: float64(h)}
	p.Center(fieldW, fieldH)
	return p
}

// Center places the ship at the bottom center of the field.
func (p *Player) Center(fieldW, fieldH int) {
	p.X = (float64(fieldW) - p.W) / 2
	p.Y = float64(fieldH) - p.H
}

// Update moves the ship according to its intent. Each direction is applied
// independently and only while the ship is inside the field on that side.
func (p *Player) Update(speed float64, fieldW int) {
	if p.Intent.MoveRight && p.X+p.W < float64(fieldW) {
		p.X += speed
	}
	if p.Intent.MoveLeft && p.X > 0 {
		p.X -= speed
	}
}

// Bounds returns the ship's bounding box.
func (p *Player) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}
