// Package tui provides the Bubble Tea integration for the invaders game.
// It handles the terminal UI loop, input mapping and the leaderboard view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one simulation pass.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after one
// time quantum at the specified rate.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
