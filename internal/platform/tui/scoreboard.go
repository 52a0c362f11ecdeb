package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// maxResults is how many finished games the leaderboard shows.
const maxResults = 5

// Scoreboard shows the best games of this process under the start control.
type Scoreboard struct {
	store   *storage.Store
	results []storage.Result
	summary storage.Summary
	table   table.Model
	err     error
}

// NewScoreboard creates a leaderboard backed by store. A nil store yields an
// empty board.
func NewScoreboard(store *storage.Store) *Scoreboard {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
	}

	// Plain styles: the table is copied into the cell buffer, which carries
	// its own colors.
	s := table.Styles{
		Header:   lipgloss.NewStyle().Padding(0, 1),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
		Selected: lipgloss.NewStyle(),
	}

	sb := &Scoreboard{
		store: store,
		table: table.New(
			table.WithColumns(columns),
			table.WithHeight(maxResults+1),
			table.WithStyles(s),
		),
	}
	sb.Refresh()
	return sb
}

// Refresh reloads the top results from the store.
func (sb *Scoreboard) Refresh() {
	if sb.store == nil {
		sb.results = nil
		sb.updateRows()
		return
	}

	sb.results, sb.summary = nil, storage.Summary{}
	results, err := sb.store.TopResults(maxResults)
	if err == nil {
		sb.summary, err = sb.store.Summary()
	}
	sb.err = err
	if err == nil {
		sb.results = results
	}
	sb.updateRows()
}

// updateRows converts results to table rows.
func (sb *Scoreboard) updateRows() {
	rows := make([]table.Row, len(sb.results))
	for i, r := range sb.results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
		}
	}
	sb.table.SetRows(rows)
}

// Len returns the number of results shown.
func (sb *Scoreboard) Len() int {
	return len(sb.results)
}

// Lines returns the board as plain text lines: a summary of every finished
// game followed by the top results.
func (sb *Scoreboard) Lines() []string {
	if sb.err != nil {
		return []string{"Scores unavailable"}
	}
	if len(sb.results) == 0 {
		return nil
	}

	lines := []string{
		fmt.Sprintf("Games: %d  Best: %d  Avg: %.0f", sb.summary.Games, sb.summary.HighScore, sb.summary.AvgScore),
		"Best games",
	}
	for _, line := range strings.Split(sb.table.View(), "\n") {
		line = strings.TrimRight(line, " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Draw writes the board into dst, centered, starting at row y. Rows past the
// bottom of the screen are dropped.
func (sb *Scoreboard) Draw(dst *core.Screen, y int) {
	lines := sb.Lines()
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	x := (dst.Width() - width) / 2

	for i, line := range lines {
		dst.DrawTextColored(x, y+i, line, core.ColorGray)
	}
}
