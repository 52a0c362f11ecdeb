package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Options configures the terminal session.
type Options struct {
	TickRate int           // Frames per second
	Release  time.Duration // Hold window for movement keys
	Logger   *log.Logger
}

// Model is the Bubble Tea model driving one invaders game.
type Model struct {
	game       *invaders.Game
	screen     *core.Screen
	store      *storage.Store
	scoreboard *Scoreboard
	logger     *log.Logger

	keys KeyMap
	help help.Model
	hold holdTracker

	tickRate   int
	inputFrame core.InputFrame
	gameState  core.GameState
	mouseOn    bool // Mouse reporting follows the game's cursor visibility
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *invaders.Game, store *storage.Store, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	w, h := game.Field()
	return Model{
		game:       game,
		screen:     core.NewScreen(w, h+invaders.HUDRows),
		store:      store,
		scoreboard: NewScoreboard(store),
		logger:     opts.Logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		hold:       newHoldTracker(opts.Release),
		tickRate:   opts.TickRate,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		mouseOn:    game.CursorVisible(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			m.inputFrame.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case KeyQuit:
		m.game.Apply(core.Event{Action: core.ActionQuit})
		m.quitting = true
		return m, tea.Quit

	case KeyLeft:
		if m.hold.pressLeft(now) {
			m.inputFrame.Set(core.ActionMoveLeftStart)
		}

	case KeyRight:
		if m.hold.pressRight(now) {
			m.inputFrame.Set(core.ActionMoveRightStart)
		}

	case KeyFire:
		// Auto-repeat bursts fire once per frame
		if !m.inputFrame.Has(core.ActionFire) {
			m.inputFrame.Set(core.ActionFire)
		}

	case KeyStart:
		m.inputFrame.Push(core.Click(m.game.StartButton().Center()))
	}

	return m, nil
}

// handleFrame runs one simulation pass and reacts to its signals.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.hold.held() {
		for _, ev := range m.hold.expire(now) {
			m.inputFrame.Push(ev)
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.State.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	if result.Has(core.SignalGameOver) {
		m.saveResult(result.State)
	}

	cmds := []tea.Cmd{frameCmd(m.tickRate)}
	if visible := m.game.CursorVisible(); visible != m.mouseOn {
		m.mouseOn = visible
		if visible {
			cmds = append(cmds, tea.EnableMouseCellMotion)
		} else {
			cmds = append(cmds, tea.DisableMouse)
		}
	}

	return m, tea.Batch(cmds...)
}

// saveResult records a finished game on the leaderboard.
func (m Model) saveResult(state core.GameState) {
	if m.store == nil || state.Score <= 0 {
		return
	}
	if _, err := m.store.SaveResult(state.Score, state.Level); err != nil {
		m.logger.Error("saving result", "err", err)
		return
	}
	m.scoreboard.Refresh()
	m.logger.Debug("result saved", "score", state.Score, "level", state.Level)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if !m.gameState.Active {
		btn := m.game.StartButton()
		m.scoreboard.Draw(m.screen, btn.Bottom()+invaders.HUDRows+1)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the game driven by this model.
func (m Model) Game() *invaders.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given game.
func Run(game *invaders.Game, store *storage.Store, opts Options) error {
	model := NewModel(game, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // The game starts in the menu with the cursor shown
	)

	_, err := p.Run()
	return err
}
