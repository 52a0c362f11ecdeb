// Package invaders implements the alien invasion shooter: a ship at the bottom
// of the field fires upward at a grid of aliens that sweeps sideways and
// drops a row each time it touches a side.
//
// The package has no terminal dependencies. The platform feeds core.Event
// values in, calls Step once per tick and draws Frame or Render out.
package invaders

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// State is the top-level game state.
type State int

const (
	StateMenu   State = iota // Start control shown, simulation idle
	StateActive              // Session running
)

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "menu"
}

// Option configures a Game at construction.
type Option func(*Game)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game implements the invaders simulation.
type Game struct {
	// Game objects
	player *Player
	fleet  *Fleet
	shots  *Projectiles
	stats  Stats

	// Game state
	state         State
	cursorVisible bool
	quit          bool
	tickCount     uint64
	pauseTicks    int // Remaining ticks of the life-lost pause
	pauseLength   int // Pause length in ticks, derived from the tick rate
	signals       []core.Signal

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.Config
	difficulty *config.Difficulty

	// Layout
	fieldW, fieldH int
	startButton    core.Rect

	logger *log.Logger
}

// New creates a game in the Menu state. The field size comes from cfg, or
// from the runtime screen size when cfg leaves it at zero. Returns an error
// if the configuration is invalid.
func New(runtime core.RuntimeConfig, cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invaders: %w", err)
	}
	cfg = cfg.Resolve(runtime.ScreenW, runtime.ScreenH)
	if err := cfg.ValidateField(); err != nil {
		return nil, fmt.Errorf("invaders: %w", err)
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}

	g := &Game{
		runtime:       runtime,
		cfg:           cfg,
		difficulty:    config.NewDifficulty(cfg),
		fieldW:        cfg.Field.Width,
		fieldH:        cfg.Field.Height,
		state:         StateMenu,
		cursorVisible: true,
		logger:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.pauseLength = int(math.Round(cfg.Gameplay.LifeLostPause.Seconds() * float64(runtime.TickRate)))
	g.startButton = g.layoutStartButton()

	g.player = newPlayer(cfg.Player.Width, cfg.Player.Height, g.fieldW, g.fieldH)
	g.fleet = NewFleet(g.fieldW, g.fieldH, cfg.Fleet.MemberWidth, cfg.Fleet.MemberHeight)
	g.shots = NewProjectiles(cfg.Projectile.MaxActive, cfg.Projectile.Width, cfg.Projectile.Height)
	g.stats.Reset(cfg.Gameplay.ShipLimit)

	return g, nil
}

// MustNew is like New but panics on invalid configuration.
func MustNew(runtime core.RuntimeConfig, cfg config.Config, opts ...Option) *Game {
	g, err := New(runtime, cfg, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// layoutStartButton centers the start control in the field, shrinking it to
// fit when the field is smaller than the configured size.
func (g *Game) layoutStartButton() core.Rect {
	w := core.Clamp(g.cfg.Menu.ButtonWidth, 1, g.fieldW)
	h := core.Clamp(g.cfg.Menu.ButtonHeight, 1, g.fieldH)
	return core.NewRect((g.fieldW-w)/2, (g.fieldH-h)/2, w, h)
}

// Apply handles one input event immediately.
//
// Movement start/stop events always update the ship's intent. Fire only
// works while a session is running and the life-lost pause is over. A click
// starts a session when it lands on the start control in the Menu state and
// is ignored otherwise.
func (g *Game) Apply(e core.Event) {
	switch e.Action {
	case core.ActionMoveLeftStart:
		g.player.Intent.MoveLeft = true
	case core.ActionMoveLeftStop:
		g.player.Intent.MoveLeft = false
	case core.ActionMoveRightStart:
		g.player.Intent.MoveRight = true
	case core.ActionMoveRightStop:
		g.player.Intent.MoveRight = false

	case core.ActionFire:
		if g.state == StateActive && g.pauseTicks == 0 {
			g.shots.Fire(g.player.Bounds())
		}

	case core.ActionClick:
		if g.state == StateMenu && g.startButton.Contains(e.X, e.Y) {
			g.start()
		}

	case core.ActionQuit:
		if !g.quit {
			g.logger.Info("quit requested", "score", g.stats.Score, "level", g.stats.Level)
		}
		g.quit = true
	}
}

// Step applies the frame's events in order and runs one update pass.
//
// A pass moves the ship, moves projectiles, resolves hits (rebuilding the
// fleet and levelling up on a cleared wave), moves the fleet and finally
// checks whether the fleet reached the ship or the floor. Nothing moves in
// the Menu state, after quit, or while the life-lost pause counts down.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, e := range in.Events {
		g.Apply(e)
	}

	if g.quit || g.state != StateActive {
		return g.result()
	}

	if g.pauseTicks > 0 {
		g.pauseTicks--
		return g.result()
	}

	g.tickCount++

	g.player.Update(g.difficulty.Current().PlayerSpeed, g.fieldW)
	g.shots.Update(g.difficulty.Current().ProjectileSpeed)

	g.resolveShots()
	g.updateFleet()
	g.checkShipHit()

	return g.result()
}

// resolveShots scores projectile hits and starts the next wave once the
// fleet is gone.
func (g *Game) resolveShots() {
	points := g.difficulty.Current().Points
	resolveShots(g.shots, g.fleet, &g.stats, points)

	if !g.fleet.Empty() {
		return
	}

	g.shots.Clear()
	g.fleet.Build()
	g.difficulty.LevelUp()
	g.stats.Level++

	g.signal(core.SignalWaveCleared)
	g.logger.Info("wave cleared",
		"level", g.stats.Level,
		"points", g.difficulty.Current().Points,
		"score", g.stats.Score)
}

// updateFleet moves the fleet and stores the direction it ended up moving in.
func (g *Game) updateFleet() {
	dyn := g.difficulty.Current()
	dir := g.fleet.Update(dyn.FleetSpeed, dyn.FleetDirection, g.cfg.Fleet.Drop)
	if dir != dyn.FleetDirection {
		g.difficulty.Reverse()
	}
}

// checkShipHit costs a ship if an alien touches the player, then again if
// the session is still running and an alien reached the floor.
func (g *Game) checkShipHit() {
	if fleetHitsPlayer(g.fleet, g.player) {
		g.shipHit("collision")
	}
	if g.state == StateActive && fleetReachedFloor(g.fleet) {
		g.shipHit("floor")
	}
}

// shipHit handles the loss of the ship: with ships in reserve the board is
// reset and the pause starts, otherwise the session ends.
func (g *Game) shipHit(cause string) {
	if g.stats.ShipsLeft <= 0 {
		g.gameOver()
		return
	}

	g.stats.ShipsLeft--
	g.shots.Clear()
	g.fleet.Clear()
	g.fleet.Build()
	g.player.Center(g.fieldW, g.fieldH)
	g.pauseTicks = g.pauseLength

	g.signal(core.SignalShipLost)
	g.logger.Info("ship lost", "cause", cause, "ships_left", g.stats.ShipsLeft)
}

// start begins a new session from the Menu state.
func (g *Game) start() {
	g.stats.Reset(g.cfg.Gameplay.ShipLimit)
	g.difficulty.Reset()

	g.fleet.Clear()
	g.fleet.Build()
	g.shots.Clear()
	g.player.Center(g.fieldW, g.fieldH)
	g.player.Intent = Intent{}

	g.pauseTicks = 0
	g.state = StateActive
	g.cursorVisible = false

	g.signal(core.SignalStarted)
	g.logger.Info("session started", "ships", g.stats.ShipsLeft, "aliens", g.fleet.Len())
}

// gameOver returns to the Menu state. Score and level stay visible until the
// next session starts.
func (g *Game) gameOver() {
	g.state = StateMenu
	g.cursorVisible = true
	g.difficulty.Reset()
	g.fleet.Clear()
	g.shots.Clear()
	g.pauseTicks = 0

	g.signal(core.SignalGameOver)
	g.logger.Info("game over",
		"score", g.stats.Score,
		"level", g.stats.Level,
		"high_score", g.stats.HighScore)
}

func (g *Game) signal(s core.Signal) {
	g.signals = append(g.signals, s)
}

// result builds the step result and hands over the pending signals.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Signals: g.signals}
	g.signals = nil
	return res
}

// State returns the current game state summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.stats.Score,
		HighScore: g.stats.HighScore,
		Level:     g.stats.Level,
		ShipsLeft: g.stats.ShipsLeft,
		Active:    g.state == StateActive,
		Paused:    g.pauseTicks > 0,
		Quit:      g.quit,
	}
}

// Mode returns whether the game is in the Menu or Active state.
func (g *Game) Mode() State {
	return g.state
}

// Stats returns a copy of the session stats.
func (g *Game) Stats() Stats {
	return g.stats
}

// CursorVisible reports whether the pointer cursor should be shown.
func (g *Game) CursorVisible() bool {
	return g.cursorVisible
}

// Field returns the play field size in cells.
func (g *Game) Field() (int, int) {
	return g.fieldW, g.fieldH
}

// StartButton returns the start control's rectangle in field coordinates.
func (g *Game) StartButton() core.Rect {
	return g.startButton
}

// Difficulty returns the current dynamic tunables.
func (g *Game) Difficulty() config.Dynamic {
	return g.difficulty.Current()
}

// Config returns the resolved configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}
