package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Frame is a read-only copy of the game after a completed pass. The renderer
// only ever sees whole passes; nothing in a Frame aliases game state.
type Frame struct {
	FieldW, FieldH int

	Player      core.Box
	Aliens      []core.Box
	Projectiles []core.Box

	Score     int
	HighScore int
	Level     int
	ShipsLeft int

	ShowStart     bool // Menu state: draw the start control
	StartButton   core.Rect
	StartLabel    string
	CursorVisible bool
	Paused        bool // Life-lost pause is counting down
}

// Frame returns a copy of the current state for rendering.
func (g *Game) Frame() Frame {
	f := Frame{
		FieldW:        g.fieldW,
		FieldH:        g.fieldH,
		Player:        g.player.Bounds(),
		Aliens:        make([]core.Box, 0, g.fleet.Len()),
		Projectiles:   make([]core.Box, 0, g.shots.Len()),
		Score:         g.stats.Score,
		HighScore:     g.stats.HighScore,
		Level:         g.stats.Level,
		ShipsLeft:     g.stats.ShipsLeft,
		ShowStart:     g.state == StateMenu,
		StartButton:   g.startButton,
		StartLabel:    g.cfg.Menu.ButtonLabel,
		CursorVisible: g.cursorVisible,
		Paused:        g.pauseTicks > 0,
	}
	for _, a := range g.fleet.Aliens {
		f.Aliens = append(f.Aliens, a.Bounds())
	}
	for _, p := range g.shots.Shots {
		f.Projectiles = append(f.Projectiles, p.Bounds())
	}
	return f
}
